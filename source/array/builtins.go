package array

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/values"
)

// UNBOUNDED as the maximum arity of a builtin means it takes any number of arguments past the minimum.
const UNBOUNDED = -1

type builtin struct {
	f       func(lib *Library, args []values.Value) (values.Value, *err.Error)
	minArgs int
	maxArgs int
}

// BUILTINS is the function table, keyed by the names the evaluator dispatches on. 'array::insert'
// checks its own arguments and so is given no bounds here.
var BUILTINS = map[string]builtin{
	"array::combine":    {(*Library).btCombine, 2, 2},
	"array::complement": {(*Library).btComplement, 2, 2},
	"array::concat":     {(*Library).btConcat, 2, 2},
	"array::difference": {(*Library).btDifference, 2, 2},
	"array::distinct":   {(*Library).btDistinct, 1, 1},
	"array::flatten":    {(*Library).btFlatten, 1, 1},
	"array::insert":     {(*Library).Insert, 0, UNBOUNDED},
	"array::intersect":  {(*Library).btIntersect, 2, 2},
	"array::len":        {(*Library).btLen, 1, 1},
	"array::sort":       {(*Library).btSort, 1, 2},
	"array::sort::asc":  {(*Library).btSortAsc, 1, 1},
	"array::sort::desc": {(*Library).btSortDesc, 1, 1},
	"array::union":      {(*Library).btUnion, 2, 2},
}

// Names returns the names of all the functions in the table in alphabetical order.
func Names() []string {
	result := make([]string, 0, len(BUILTINS))
	for name := range BUILTINS {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Call dispatches a call by name. An unknown name, or a number of arguments the function can't
// take, is an error; everything else is up to the function.
func (lib *Library) Call(name string, args []values.Value) (values.Value, *err.Error) {
	bt, ok := BUILTINS[name]
	if !ok {
		lib.log.WithField("fn", name).Warn("unknown function")
		return values.None(), err.CreateErr("fn/unknown", nil, name)
	}
	if len(args) < bt.minArgs || (bt.maxArgs != UNBOUNDED && len(args) > bt.maxArgs) {
		e := err.CreateFnErr("fn/args/count", name, bt.minArgs, bt.maxArgs, len(args))
		lib.log.WithFields(logrus.Fields{"fn": name, "count": len(args)}).Warn(e.Message)
		return values.None(), e
	}
	if lib.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		lib.log.WithFields(logrus.Fields{"fn": name, "args": describeArgs(args)}).Debug("dispatch")
	}
	result, e := bt.f(lib, args)
	if e != nil {
		lib.log.WithFields(logrus.Fields{"fn": name, "error": e.ErrorId}).Warn(e.Error())
	}
	return result, e
}

func describeArgs(args []values.Value) string {
	result := "("
	sep := ""
	for _, v := range args {
		result = result + sep + values.Describe(v)
		sep = ", "
	}
	return result + ")"
}

func (lib *Library) btCombine(args []values.Value) (values.Value, *err.Error) {
	return lib.Combine(args[0], args[1]), nil
}

func (lib *Library) btComplement(args []values.Value) (values.Value, *err.Error) {
	return lib.Complement(args[0], args[1]), nil
}

func (lib *Library) btConcat(args []values.Value) (values.Value, *err.Error) {
	return lib.Concat(args[0], args[1]), nil
}

func (lib *Library) btDifference(args []values.Value) (values.Value, *err.Error) {
	return lib.Difference(args[0], args[1]), nil
}

func (lib *Library) btDistinct(args []values.Value) (values.Value, *err.Error) {
	return lib.Distinct(args[0]), nil
}

func (lib *Library) btFlatten(args []values.Value) (values.Value, *err.Error) {
	return lib.Flatten(args[0]), nil
}

func (lib *Library) btIntersect(args []values.Value) (values.Value, *err.Error) {
	return lib.Intersect(args[0], args[1]), nil
}

func (lib *Library) btLen(args []values.Value) (values.Value, *err.Error) {
	return lib.Len(args[0]), nil
}

func (lib *Library) btSort(args []values.Value) (values.Value, *err.Error) {
	directive := values.None()
	if len(args) == 2 {
		directive = args[1]
	}
	return lib.Sort(args[0], directive), nil
}

func (lib *Library) btSortAsc(args []values.Value) (values.Value, *err.Error) {
	return lib.SortAsc(args[0]), nil
}

func (lib *Library) btSortDesc(args []values.Value) (values.Value, *err.Error) {
	return lib.SortDesc(args[0]), nil
}

func (lib *Library) btUnion(args []values.Value) (values.Value, *err.Error) {
	return lib.Union(args[0], args[1]), nil
}
