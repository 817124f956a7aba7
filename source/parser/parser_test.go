package parser_test

import (
	"testing"

	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/parser"
	"github.com/querykit/arrayfn/source/test_helper"
)

func TestParser(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `42`, Want: `42`},
		{Input: `-0.5`, Want: `-0.5`},
		{Input: `1e3`, Want: `1e3`},
		{Input: `2.50dec`, Want: `2.50dec`},
		{Input: `'q'`, Want: `"q"`},
		{Input: `true`, Want: `true`},
		{Input: `NULL`, Want: `NULL`},
		{Input: `[]`, Want: `[]`},
		{Input: `[1, [2, 3], "x"]`, Want: `[1, [2, 3], "x"]`},
		{Input: `{}`, Want: `{}`},
		{Input: `{a: 1, 'b c': [NONE]}`, Want: `{"a": 1, "b c": [NONE]}`},
		{Input: `array::len([])`, Want: `array::len([])`},
		{Input: `array::sort::desc([3, 1])`, Want: `array::sort::desc([3, 1])`},
		{Input: `array::union(array::distinct([1, 1]), [2])`, Want: `array::union(array::distinct([1, 1]), [2])`},
		{Input: `f()`, Want: `f()`},
	}
	test_helper.RunTest(t, tests, testParserOutput)
}

func TestParserErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `array::len`, Want: `parse/ident`},
		{Input: `array::len(`, Want: `parse/eof`},
		{Input: `[1, 2`, Want: `parse/eof`},
		{Input: `[1 2]`, Want: `parse/expected`},
		{Input: `{1: 2}`, Want: `parse/key`},
		{Input: `{a 2}`, Want: `parse/expected`},
		{Input: `1 2`, Want: `parse/trailing`},
		{Input: `)`, Want: `parse/expected`},
		{Input: ``, Want: `parse/eof`},
		{Input: `array::(1)`, Want: `parse/expected`},
		{Input: `[1, ?]`, Want: `lex/char`},
		{Input: `"abc`, Want: `lex/string/term`},
	}
	test_helper.RunTest(t, tests, testParserErrors)
}

func testParserOutput(s string) (string, err.Errors) {
	p := parser.New()
	node := p.ParseLine("test", s)
	if p.ErrorsExist() {
		return "", p.Errors
	}
	return node.String(), nil
}

func testParserErrors(s string) (string, err.Errors) {
	p := parser.New()
	p.ParseLine("test", s)
	if !p.ErrorsExist() {
		return "OK", nil
	}
	return p.Errors[0].ErrorId, nil
}
