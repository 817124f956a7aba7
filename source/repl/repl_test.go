package repl

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/lmorg/readline"

	"github.com/querykit/arrayfn/source/evaluator"
)

func TestDo(t *testing.T) {
	var out bytes.Buffer
	r := New(evaluator.NewContext(nil), &out)
	tests := []struct {
		input string
		want  string
	}{
		{`array::sort::desc([1, 3, 2])`, "[3, 2, 1]\n"},
		{`  array::len([[]])  `, "1\n"},
		{``, ""},
		{`help`, "array::sort::desc"},
		{`array::len(`, "[0]"},
		{`why 0`, "ended before"},
		{`why 7`, "takes the number"},
		{`why`, "takes the number"},
	}
	for _, test := range tests {
		out.Reset()
		if r.Do(test.input) {
			t.Fatalf("%q shouldn't quit", test.input)
		}
		if !strings.Contains(out.String(), test.want) || (test.want == "" && out.Len() > 0) {
			t.Fatalf("Test failed with input %s | Wanted : %q | Got : %q.", test.input, test.want, out.String())
		}
	}
	if !r.Do("quit") {
		t.Fatalf("'quit' should quit")
	}
}

func TestErrorsAreForgottenAfterASuccess(t *testing.T) {
	var out bytes.Buffer
	r := New(evaluator.NewContext(nil), &out)
	r.Do(`array::nope()`)
	r.Do(`array::len([])`)
	out.Reset()
	r.Do(`why 0`)
	if !strings.Contains(out.String(), "takes the number") {
		t.Fatalf("expected no errors to explain, got %q", out.String())
	}
}

func TestComplete(t *testing.T) {
	var dtx readline.DelayedTabContext
	line := []rune(`array::len(array::so`)
	prefix, suggestions, _, _ := complete(line, len(line), dtx)
	if prefix != "array::so" {
		t.Fatalf("wrong prefix %q", prefix)
	}
	if !slices.Equal(suggestions, []string{"rt", "rt::asc", "rt::desc"}) {
		t.Fatalf("wrong suggestions %v", suggestions)
	}
}
