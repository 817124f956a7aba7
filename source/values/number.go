package values

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type NumberKind uint8

const (
	INT_NUMBER NumberKind = iota
	FLOAT_NUMBER
	DECIMAL_NUMBER
)

// Number is the payload of a NUMBER value. Only the field selected by Kind is meaningful.
type Number struct {
	Kind NumberKind
	I    int64
	F    float64
	D    decimal.Decimal
}

func IntNumber(i int64) Number {
	return Number{Kind: INT_NUMBER, I: i}
}

func FloatNumber(f float64) Number {
	return Number{Kind: FLOAT_NUMBER, F: f}
}

func DecimalNumber(d decimal.Decimal) Number {
	return Number{Kind: DECIMAL_NUMBER, D: d}
}

// AsInt truncates toward zero. Floats outside the int64 range saturate, NaN gives 0.
func (n Number) AsInt() int64 {
	switch n.Kind {
	case FLOAT_NUMBER:
		switch {
		case math.IsNaN(n.F):
			return 0
		case n.F >= math.MaxInt64:
			return math.MaxInt64
		case n.F <= math.MinInt64:
			return math.MinInt64
		}
		return int64(n.F)
	case DECIMAL_NUMBER:
		return n.D.IntPart()
	}
	return n.I
}

func (n Number) AsFloat() float64 {
	switch n.Kind {
	case INT_NUMBER:
		return float64(n.I)
	case DECIMAL_NUMBER:
		f, _ := n.D.Float64()
		return f
	}
	return n.F
}

func (n Number) AsDecimal() decimal.Decimal {
	switch n.Kind {
	case INT_NUMBER:
		return decimal.NewFromInt(n.I)
	case FLOAT_NUMBER:
		return decimal.NewFromFloat(n.F)
	}
	return n.D
}

// Compare orders numbers by magnitude regardless of kind. If either side is a decimal the comparison
// is made in decimal, except that a non-finite float has no decimal form and is compared as a float.
func (n Number) Compare(m Number) int {
	if n.Kind == m.Kind {
		switch n.Kind {
		case INT_NUMBER:
			return cmp.Compare(n.I, m.I)
		case FLOAT_NUMBER:
			return cmp.Compare(n.F, m.F)
		case DECIMAL_NUMBER:
			return n.D.Cmp(m.D)
		}
	}
	if (n.Kind == DECIMAL_NUMBER || m.Kind == DECIMAL_NUMBER) && n.finite() && m.finite() {
		return n.AsDecimal().Cmp(m.AsDecimal())
	}
	if n.Kind == INT_NUMBER && m.Kind == FLOAT_NUMBER && !math.IsNaN(m.F) && !math.IsInf(m.F, 0) {
		return -compareFloatInt(m.F, n.I)
	}
	if n.Kind == FLOAT_NUMBER && m.Kind == INT_NUMBER && !math.IsNaN(n.F) && !math.IsInf(n.F, 0) {
		return compareFloatInt(n.F, m.I)
	}
	return cmp.Compare(n.AsFloat(), m.AsFloat())
}

// Ints beyond 2^53 don't survive conversion to float, so a finite float is compared against
// the int on the integer line first.
func compareFloatInt(f float64, i int64) int {
	if f >= math.MaxInt64 {
		return 1
	}
	if f < math.MinInt64 {
		return -1
	}
	whole := math.Trunc(f)
	if c := cmp.Compare(int64(whole), i); c != 0 {
		return c
	}
	return cmp.Compare(f, whole)
}

func (n Number) finite() bool {
	return n.Kind != FLOAT_NUMBER || !(math.IsNaN(n.F) || math.IsInf(n.F, 0))
}

func (n Number) String() string {
	switch n.Kind {
	case FLOAT_NUMBER:
		s := strconv.FormatFloat(n.F, 'g', -1, 64)
		if math.IsNaN(n.F) || math.IsInf(n.F, 0) {
			return s
		}
		if !strings.ContainsAny(s, ".e") {
			s = s + ".0"
		}
		return s
	case DECIMAL_NUMBER:
		return n.D.String() + "dec"
	}
	return strconv.FormatInt(n.I, 10)
}
