// Package array implements the 'array::*' functions of the query language.
//
// Every function takes already-evaluated values and returns a new value, leaving its arguments
// untouched. Where a function wants an array and gets something else it returns NONE rather than
// an error, so that a type mismatch propagates through the enclosing expression as a null. The
// sort functions are the exception: they give back a non-array unchanged. The only errors are for
// being called with the wrong number of arguments.
package array

import (
	"os"

	"github.com/sirupsen/logrus"
	"src.elv.sh/pkg/persistent/vector"

	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/settings"
	"github.com/querykit/arrayfn/source/values"
)

// A Library is immutable once made and may be shared between goroutines.
type Library struct {
	order Ordering
	log   *logrus.Entry
}

// New makes a library which orders and compares values with the given Ordering, or with
// DefaultOrdering if it is nil.
func New(order Ordering) *Library {
	if order == nil {
		order = DefaultOrdering
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(settings.LogLevel())
	return &Library{order: order, log: logger.WithField("component", "array")}
}

// WithLogger returns a copy of the library which logs to the given entry.
func (lib *Library) WithLogger(log *logrus.Entry) *Library {
	clone := *lib
	clone.log = log.WithField("component", "array")
	return &clone
}

func (lib *Library) newSet() values.Set {
	return values.NewSet(lib.order.Compare, lib.order.Equal)
}

func vectorOf(v values.Value) vector.Vector {
	return v.V.(vector.Vector)
}

// Combine pairs every element of a with every element of b, a-major.
func (lib *Library) Combine(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	right := values.Elements(b)
	result := vector.Empty
	for it := vectorOf(a).Iterator(); it.HasElem(); it.Next() {
		for _, w := range right {
			result = result.Conj(values.Array(it.Elem().(values.Value), w))
		}
	}
	return values.ArrayOf(result)
}

// Complement keeps the elements of a which are not in b, duplicates and all.
func (lib *Library) Complement(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	if vectorOf(b).Len() == 0 {
		return a
	}
	inB := lib.newSet().AddAll(values.Elements(b))
	return lib.filter(a, func(v values.Value) bool { return !inB.Contains(v) })
}

func (lib *Library) Concat(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	result := vectorOf(a)
	for it := vectorOf(b).Iterator(); it.HasElem(); it.Next() {
		result = result.Conj(it.Elem())
	}
	return values.ArrayOf(result)
}

// Difference is the symmetric difference: the elements of a which aren't in b, followed by the
// elements of b which aren't in a.
func (lib *Library) Difference(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	inA := lib.newSet().AddAll(values.Elements(a))
	inB := lib.newSet().AddAll(values.Elements(b))
	result := vector.Empty
	for it := vectorOf(a).Iterator(); it.HasElem(); it.Next() {
		if !inB.Contains(it.Elem().(values.Value)) {
			result = result.Conj(it.Elem())
		}
	}
	for it := vectorOf(b).Iterator(); it.HasElem(); it.Next() {
		if !inA.Contains(it.Elem().(values.Value)) {
			result = result.Conj(it.Elem())
		}
	}
	return values.ArrayOf(result)
}

// Intersect keeps every element of a which is also in b. How often it occurs in b doesn't matter.
func (lib *Library) Intersect(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	inB := lib.newSet().AddAll(values.Elements(b))
	return lib.filter(a, inB.Contains)
}

// Union is the distinct elements of a followed by the distinct elements of b not already seen.
func (lib *Library) Union(a, b values.Value) values.Value {
	if !a.IsArray() || !b.IsArray() {
		return values.None()
	}
	seen := lib.newSet()
	result := vector.Empty
	for _, vec := range []vector.Vector{vectorOf(a), vectorOf(b)} {
		seen, result = lib.distinctInto(seen, result, vec)
	}
	return values.ArrayOf(result)
}

// Distinct keeps the first occurrence of each element.
func (lib *Library) Distinct(a values.Value) values.Value {
	if !a.IsArray() {
		return values.None()
	}
	if vectorOf(a).Len() < 2 {
		return a
	}
	seen, result := lib.distinctInto(lib.newSet(), vector.Empty, vectorOf(a))
	if seen.Len() == vectorOf(a).Len() {
		return a
	}
	return values.ArrayOf(result)
}

func (lib *Library) distinctInto(seen values.Set, result, vec vector.Vector) (values.Set, vector.Vector) {
	for it := vec.Iterator(); it.HasElem(); it.Next() {
		el := it.Elem().(values.Value)
		if !seen.Contains(el) {
			seen = seen.Add(el)
			result = result.Conj(el)
		}
	}
	return seen, result
}

// Flatten splices the elements of each array in a into its place. Only one level is removed.
func (lib *Library) Flatten(a values.Value) values.Value {
	if !a.IsArray() {
		return values.None()
	}
	result := vector.Empty
	for it := vectorOf(a).Iterator(); it.HasElem(); it.Next() {
		el := it.Elem().(values.Value)
		if !el.IsArray() {
			result = result.Conj(el)
			continue
		}
		for inner := vectorOf(el).Iterator(); inner.HasElem(); inner.Next() {
			result = result.Conj(inner.Elem())
		}
	}
	return values.ArrayOf(result)
}

func (lib *Library) Len(a values.Value) values.Value {
	if !a.IsArray() {
		return values.None()
	}
	return values.Int(int64(vectorOf(a).Len()))
}

// The argument shapes 'array::insert' accepts.
type insertShape int

const (
	insertMismatch insertShape = iota // The first argument isn't an array, or the index isn't a number.
	insertAppend                      // (array, data) or (array, data, NONE).
	insertAt                          // (array, data, number).
)

func shapeOfInsert(args []values.Value) insertShape {
	if args[0].T != values.ARRAY {
		return insertMismatch
	}
	if len(args) == 2 {
		return insertAppend
	}
	switch args[2].T {
	case values.NONE:
		return insertAppend
	case values.NUMBER:
		return insertAt
	}
	return insertMismatch
}

// Insert puts args[1] into the array args[0] at the index args[2], or at the end if there is no
// index. A negative index counts back from the end. An index out of range leaves the array as it
// was. Arguments after the third are ignored.
func (lib *Library) Insert(args []values.Value) (values.Value, *err.Error) {
	if len(args) < 2 {
		return values.None(), err.CreateFnErr("array/insert/args", "array::insert")
	}
	arr, data := args[0], args[1]
	switch shapeOfInsert(args) {
	case insertAppend:
		return values.ArrayOf(vectorOf(arr).Conj(data)), nil
	case insertAt:
		vec := vectorOf(arr)
		lth := int64(vec.Len())
		index := args[2].V.(values.Number).AsInt()
		if index < 0 {
			index = index + lth
		}
		if index < 0 || index > lth {
			return arr, nil
		}
		return values.ArrayOf(insertInto(vec, int(index), data)), nil
	}
	return values.None(), nil
}

func insertInto(vec vector.Vector, index int, data values.Value) vector.Vector {
	if index == vec.Len() {
		return vec.Conj(data)
	}
	result := vector.Empty
	for i := 0; i < vec.Len(); i++ {
		if i == index {
			result = result.Conj(data)
		}
		el, _ := vec.Index(i)
		result = result.Conj(el)
	}
	return result
}

// Sort orders the elements of an array in the direction given by the directive; see DirectionOf.
// Anything but an array is returned as it is.
func (lib *Library) Sort(arr, directive values.Value) values.Value {
	if !arr.IsArray() {
		return arr
	}
	return lib.sorted(arr, DirectionOf(directive))
}

func (lib *Library) SortAsc(arr values.Value) values.Value {
	if !arr.IsArray() {
		return arr
	}
	return lib.sorted(arr, ASCENDING)
}

func (lib *Library) SortDesc(arr values.Value) values.Value {
	if !arr.IsArray() {
		return arr
	}
	return lib.sorted(arr, DESCENDING)
}

func (lib *Library) filter(a values.Value, keep func(values.Value) bool) values.Value {
	result := vector.Empty
	for it := vectorOf(a).Iterator(); it.HasElem(); it.Next() {
		if keep(it.Elem().(values.Value)) {
			result = result.Conj(it.Elem())
		}
	}
	return values.ArrayOf(result)
}
