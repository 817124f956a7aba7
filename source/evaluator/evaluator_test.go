package evaluator_test

import (
	"testing"

	"github.com/querykit/arrayfn/source/array"
	"github.com/querykit/arrayfn/source/evaluator"
	"github.com/querykit/arrayfn/source/test_helper"
)

func TestLiterals(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `42`, Want: `42`},
		{Input: `-7`, Want: `-7`},
		{Input: `2.5`, Want: `2.5`},
		{Input: `1e3`, Want: `1000.0`},
		{Input: `1.50dec`, Want: `1.5dec`},
		{Input: `99999999999999999999`, Want: `99999999999999999999dec`},
		{Input: `array::sort([99999999999999999999, 9223372036854775807])`, Want: `[9223372036854775807, 99999999999999999999dec]`},
		{Input: `"a\tb"`, Want: `"a\tb"`},
		{Input: `false`, Want: `false`},
		{Input: `NONE`, Want: `NONE`},
		{Input: `NULL`, Want: `NULL`},
		{Input: `[1, [NULL], 'x']`, Want: `[1, [NULL], "x"]`},
		{Input: `{b: 2, a: 1, 'c d': [], a: 3}`, Want: `{a: 3, b: 2, "c d": []}`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestArrayFunctions(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `array::combine([1, 2], ["a", "b"])`, Want: `[[1, "a"], [1, "b"], [2, "a"], [2, "b"]]`},
		{Input: `array::complement([1, 2, 2, 3], [2])`, Want: `[1, 3]`},
		{Input: `array::concat([1], [[2]])`, Want: `[1, [2]]`},
		{Input: `array::difference([1, 2, 3], [3, 4])`, Want: `[1, 2, 4]`},
		{Input: `array::distinct([3, 1, 3, 1.0, "1"])`, Want: `[3, 1, "1"]`},
		{Input: `array::flatten([[1, [2]], 3, []])`, Want: `[1, [2], 3]`},
		{Input: `array::insert([1, 2], 9)`, Want: `[1, 2, 9]`},
		{Input: `array::insert([1, 2], 9, 0)`, Want: `[9, 1, 2]`},
		{Input: `array::insert([1, 2], 9, -1)`, Want: `[1, 9, 2]`},
		{Input: `array::insert([1, 2], 9, 5)`, Want: `[1, 2]`},
		{Input: `array::insert([1, 2], 9, "x")`, Want: `NONE`},
		{Input: `array::intersect([1, 2, 2, 3], [2, 3, 4])`, Want: `[2, 2, 3]`},
		{Input: `array::len([1, [2, 3]])`, Want: `2`},
		{Input: `array::len("abc")`, Want: `NONE`},
		{Input: `array::sort([3, "a", 1, NULL, true])`, Want: `[NULL, true, 1, 3, "a"]`},
		{Input: `array::sort([3, 1, 2], false)`, Want: `[3, 2, 1]`},
		{Input: `array::sort([3, 1, 2], "desc")`, Want: `[3, 2, 1]`},
		{Input: `array::sort([3, 1, 2], "sideways")`, Want: `[1, 2, 3]`},
		{Input: `array::sort("x")`, Want: `"x"`},
		{Input: `array::sort::asc([2, 1.5, 1dec])`, Want: `[1dec, 1.5, 2]`},
		{Input: `array::sort::desc([[1], [1, 0], []])`, Want: `[[1, 0], [1], []]`},
		{Input: `array::union([1, 2, 1], [3, 2])`, Want: `[1, 2, 3]`},
		{Input: `array::len(array::union(array::flatten([[1], [2]]), [2, 3]))`, Want: `3`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `array::len([])`, Want: `OK`},
		{Input: `array::nope([])`, Want: `fn/unknown`},
		{Input: `array::len([], [])`, Want: `fn/args/count`},
		{Input: `array::sort([], true, 1)`, Want: `fn/args/count`},
		{Input: `array::insert([1])`, Want: `array/insert/args`},
		{Input: `[array::len()]`, Want: `fn/args/count`},
		{Input: `array::len(`, Want: `parse/eof`},
	}
	test_helper.RunTest(t, tests, test_helper.TestErrors)
}

func TestErrorsCarryTheCallToken(t *testing.T) {
	c := evaluator.NewContext(array.New(nil))
	_, ers := c.EvaluateLine("test", `array::len([1], array::insert([]))`)
	if len(ers) != 1 {
		t.Fatalf("expected one error, got %d", len(ers))
	}
	e := ers[0]
	if e.Name != "array::insert" {
		t.Fatalf("expected the error to name 'array::insert', got %q", e.Name)
	}
	if e.Token == nil || e.Token.ChStart != 16 {
		t.Fatalf("expected the error to be at the inner call, got %v", e.Token)
	}
}
