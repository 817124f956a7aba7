package array_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/querykit/arrayfn/source/array"
	"github.com/querykit/arrayfn/source/values"
)

func quietLibrary() (*array.Library, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return array.New(nil).WithLogger(logrus.NewEntry(logger)), &buf
}

func TestNames(t *testing.T) {
	want := []string{
		"array::combine", "array::complement", "array::concat", "array::difference",
		"array::distinct", "array::flatten", "array::insert", "array::intersect", "array::len",
		"array::sort", "array::sort::asc", "array::sort::desc", "array::union",
	}
	if got := array.Names(); !slices.Equal(got, want) {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestCall(t *testing.T) {
	lib, _ := quietLibrary()
	tests := []struct {
		name string
		args []values.Value
		want values.Value
	}{
		{"array::combine", []values.Value{a(i(1)), a(i(2))}, a(a(i(1), i(2)))},
		{"array::complement", []values.Value{a(i(1), i(2)), a(i(2))}, a(i(1))},
		{"array::concat", []values.Value{a(i(1)), a(i(2))}, a(i(1), i(2))},
		{"array::difference", []values.Value{a(i(1), i(2)), a(i(2), i(3))}, a(i(1), i(3))},
		{"array::distinct", []values.Value{a(i(1), i(1))}, a(i(1))},
		{"array::flatten", []values.Value{a(a(i(1)), i(2))}, a(i(1), i(2))},
		{"array::insert", []values.Value{a(i(1)), i(2), i(0)}, a(i(2), i(1))},
		{"array::intersect", []values.Value{a(i(1), i(2)), a(i(2))}, a(i(2))},
		{"array::len", []values.Value{a(i(1), i(2))}, i(2)},
		{"array::sort", []values.Value{a(i(2), i(1))}, a(i(1), i(2))},
		{"array::sort", []values.Value{a(i(1), i(2)), s("desc")}, a(i(2), i(1))},
		{"array::sort::asc", []values.Value{a(i(2), i(1))}, a(i(1), i(2))},
		{"array::sort::desc", []values.Value{a(i(1), i(2))}, a(i(2), i(1))},
		{"array::union", []values.Value{a(i(1)), a(i(1), i(2))}, a(i(1), i(2))},
		{"array::len", []values.Value{s("x")}, values.None()},
	}
	for _, test := range tests {
		got, e := lib.Call(test.name, test.args)
		if e != nil {
			t.Fatalf("%s: unexpected error %s", test.name, e.Error())
		}
		assertValue(t, test.name, got, test.want)
	}
}

func TestCallErrors(t *testing.T) {
	lib, buf := quietLibrary()
	tests := []struct {
		name    string
		args    []values.Value
		errorId string
		message string
	}{
		{"array::nothing", nil, "fn/unknown", "there is no function 'array::nothing'"},
		{"array::len", nil, "fn/args/count", "Incorrect arguments for function array::len(). The function expects 1 argument."},
		{"array::union", []values.Value{a()}, "fn/args/count", "Incorrect arguments for function array::union(). The function expects 2 arguments."},
		{"array::sort", []values.Value{a(), values.TRUE, values.TRUE}, "fn/args/count", "Incorrect arguments for function array::sort(). The function expects 1 or 2 arguments."},
		{"array::insert", []values.Value{a()}, "array/insert/args", "Incorrect arguments for function array::insert(). Expected at least two arguments"},
	}
	for _, test := range tests {
		got, e := lib.Call(test.name, test.args)
		if e == nil {
			t.Fatalf("%s: expected an error, got %s", test.name, got)
		}
		if e.ErrorId != test.errorId {
			t.Fatalf("%s: wanted error %q, got %q", test.name, test.errorId, e.ErrorId)
		}
		if e.Error() != test.message {
			t.Fatalf("%s: wanted message %q, got %q", test.name, test.message, e.Error())
		}
		assertValue(t, test.name, got, values.None())
	}
	if !strings.Contains(buf.String(), "level=warning") {
		t.Fatalf("expected the errors to be logged, got %q", buf.String())
	}
}

func TestCallLogsDispatch(t *testing.T) {
	lib, buf := quietLibrary()
	lib.Call("array::len", []values.Value{a(i(1), s("x"))})
	out := buf.String()
	if !strings.Contains(out, "level=debug") || !strings.Contains(out, "fn=\"array::len\"") ||
		!strings.Contains(out, "component=array") {
		t.Fatalf("dispatch wasn't logged as expected: %q", out)
	}
}
