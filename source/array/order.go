package array

import (
	"slices"

	"github.com/querykit/arrayfn/source/values"
)

// Ordering is what the library needs from the value type: a total order over all values, and
// equality. Equal values must compare as equal, though values which compare as equal need not be
// Equal. Implementations must be pure, since a Library may be used from many goroutines.
type Ordering interface {
	Compare(a, b values.Value) int
	Equal(a, b values.Value) bool
}

type defaultOrdering struct{}

func (defaultOrdering) Compare(a, b values.Value) int { return values.Compare(a, b) }
func (defaultOrdering) Equal(a, b values.Value) bool  { return values.Equals(a, b) }

// DefaultOrdering is the value type's own order and equality.
var DefaultOrdering Ordering = defaultOrdering{}

type Direction int

const (
	ASCENDING Direction = iota
	DESCENDING
)

func (d Direction) String() string {
	if d == DESCENDING {
		return "desc"
	}
	return "asc"
}

// The string spellings of an order directive.
var directiveSpellings = map[string]Direction{
	"asc":  ASCENDING,
	"desc": DESCENDING,
}

// DirectionOf interprets the optional second argument of 'array::sort'. An absent directive is passed
// as NONE. Booleans mean ascending-or-not, recognized strings mean what they say, and anything else
// means ascending.
func DirectionOf(directive values.Value) Direction {
	switch directive.T {
	case values.BOOL:
		if !directive.V.(bool) {
			return DESCENDING
		}
	case values.STRING:
		if d, ok := directiveSpellings[directive.V.(string)]; ok {
			return d
		}
	}
	return ASCENDING
}

// sorted returns a new array with the elements of arr in the given direction. The sort is not stable.
func (lib *Library) sorted(arr values.Value, d Direction) values.Value {
	els := values.Elements(arr)
	compare := lib.order.Compare
	if d == DESCENDING {
		compare = func(a, b values.Value) int { return lib.order.Compare(b, a) }
	}
	slices.SortFunc(els, compare)
	return values.Array(els...)
}
