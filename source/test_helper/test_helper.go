package test_helper

import (
	"strconv"
	"testing"

	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/evaluator"
	"github.com/querykit/arrayfn/source/settings"
	"github.com/querykit/arrayfn/source/text"
	"github.com/querykit/arrayfn/source/values"
)

// Auxiliary types and functions for testing the parser and evaluator.

type TestItem struct {
	Input string
	Want  string
}

func RunTest(t *testing.T, tests []TestItem, F func(s string) (string, err.Errors)) {
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		got, ers := F(test.Input)
		if len(ers) > 0 {
			println(text.Red(test.Input))
			println("There were errors evaluating the line:")
			for i, e := range ers {
				println("[" + strconv.Itoa(i) + "] " + e.Error())
			}
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// TestValues evaluates the line with a fresh context and describes the result.
func TestValues(s string) (string, err.Errors) {
	v, ers := evaluator.NewContext(nil).EvaluateLine("test", s)
	return values.Describe(v), ers
}

// TestErrors evaluates the line and returns the id of the first error, or "OK".
func TestErrors(s string) (string, err.Errors) {
	_, ers := evaluator.NewContext(nil).EvaluateLine("test", s)
	if len(ers) == 0 {
		return "OK", nil
	}
	return ers[0].ErrorId, nil
}
