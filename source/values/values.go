package values

import (
	"cmp"

	"github.com/shopspring/decimal"
	"src.elv.sh/pkg/persistent/vector"
)

type ValueType uint32

// The order of declaration is also the rank of each type in the total order used by Compare.
const (
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	NONE
	NULL
	BOOL
	NUMBER
	STRING
	ARRAY
	OBJECT
)

var TypeNames = map[ValueType]string{
	UNDEFINED_VALUE: "undefined",
	NONE:            "none",
	NULL:            "null",
	BOOL:            "bool",
	NUMBER:          "number",
	STRING:          "string",
	ARRAY:           "array",
	OBJECT:          "object",
}

func (t ValueType) String() string {
	if name, ok := TypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// A Value is a tagged union. The payload V is nil for NONE and NULL, a bool, a Number, a string,
// a vector.Vector of Values, or an *Object, according to T.
type Value struct {
	T ValueType
	V any
}

var (
	NONE_VALUE = Value{T: NONE}
	NULL_VALUE = Value{T: NULL}
	FALSE      = Value{T: BOOL, V: false}
	TRUE       = Value{T: BOOL, V: true}
	EMPTY      = Value{T: ARRAY, V: vector.Empty}
)

func None() Value { return NONE_VALUE }
func Null() Value { return NULL_VALUE }

func Bool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func Int(i int64) Value               { return Value{NUMBER, IntNumber(i)} }
func Float(f float64) Value           { return Value{NUMBER, FloatNumber(f)} }
func Decimal(d decimal.Decimal) Value { return Value{NUMBER, DecimalNumber(d)} }
func String(s string) Value           { return Value{STRING, s} }
func ArrayOf(vec vector.Vector) Value { return Value{ARRAY, vec} }
func ObjectOf(obj *Object) Value      { return Value{OBJECT, obj} }

func Array(elements ...Value) Value {
	vec := vector.Empty
	for _, el := range elements {
		vec = vec.Conj(el)
	}
	return Value{ARRAY, vec}
}

// Elements copies the elements of an ARRAY out into a slice. It returns nil for anything else.
func Elements(v Value) []Value {
	if v.T != ARRAY {
		return nil
	}
	vec := v.V.(vector.Vector)
	result := make([]Value, 0, vec.Len())
	for it := vec.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(Value))
	}
	return result
}

func (v Value) IsArray() bool {
	return v.T == ARRAY
}

// Compare is the default total order over all values. Values of different types are ordered by type;
// values of the same type by their payloads.
func Compare(v, w Value) int {
	if v.T != w.T {
		return cmp.Compare(v.T, w.T)
	}
	switch v.T {
	case BOOL:
		switch {
		case v.V.(bool) == w.V.(bool):
			return 0
		case w.V.(bool):
			return -1
		}
		return 1
	case NUMBER:
		return v.V.(Number).Compare(w.V.(Number))
	case STRING:
		return cmp.Compare(v.V.(string), w.V.(string))
	case ARRAY:
		return compareVectors(v.V.(vector.Vector), w.V.(vector.Vector))
	case OBJECT:
		return v.V.(*Object).compare(w.V.(*Object))
	}
	// NONE, NULL and UNDEFINED_VALUE have no payload.
	return 0
}

func compareVectors(K, L vector.Vector) int {
	lth := min(K.Len(), L.Len())
	for i := 0; i < lth; i++ {
		kEl, _ := K.Index(i)
		lEl, _ := L.Index(i)
		if c := Compare(kEl.(Value), lEl.(Value)); c != 0 {
			return c
		}
	}
	return cmp.Compare(K.Len(), L.Len())
}

// Equals implements equality-by-value. Numbers are equal if they have the same magnitude, whatever
// their kind, so Equals agrees with Compare.
func Equals(v, w Value) bool {
	if v.T != w.T {
		return false
	}
	switch v.T {
	case BOOL:
		return v.V.(bool) == w.V.(bool)
	case NUMBER:
		return v.V.(Number).Compare(w.V.(Number)) == 0
	case STRING:
		return v.V.(string) == w.V.(string)
	case ARRAY:
		K := v.V.(vector.Vector)
		L := w.V.(vector.Vector)
		lth := K.Len()
		if L.Len() != lth {
			return false
		}
		for i := 0; i < lth; i++ {
			kEl, _ := K.Index(i)
			lEl, _ := L.Index(i)
			if !Equals(kEl.(Value), lEl.(Value)) {
				return false
			}
		}
		return true
	case OBJECT:
		return v.V.(*Object).equals(w.V.(*Object))
	}
	return true
}
