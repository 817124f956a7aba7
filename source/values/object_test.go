package values_test

import (
	"testing"

	"github.com/querykit/arrayfn/source/values"
)

func TestObjectSetGet(t *testing.T) {
	obj := values.NewObject(values.Field{"x", values.Int(1)}, values.Field{"y", values.Int(2)})
	updated := obj.Set("x", values.String("one")).Set("z", values.Null())

	if v, ok := obj.Get("x"); !ok || !values.Equals(v, values.Int(1)) {
		t.Fatalf(`Original object was changed: x is %s.`, v)
	}
	if v, ok := updated.Get("x"); !ok || !values.Equals(v, values.String("one")) {
		t.Fatalf(`Set didn't take: x is %s.`, v)
	}
	if _, ok := obj.Get("z"); ok {
		t.Fatalf(`Original object gained a field.`)
	}
	if v, ok := updated.Get("nope"); ok || v.T != values.NONE {
		t.Fatalf(`A missing key should give NONE, got %s.`, v)
	}
	if obj.Len() != 2 || updated.Len() != 3 {
		t.Fatalf(`Wrong lengths %d and %d.`, obj.Len(), updated.Len())
	}
}

func TestObjectFieldsAreSorted(t *testing.T) {
	obj := values.NewObject(values.Field{"c", values.Int(3)}, values.Field{"a", values.Int(1)}, values.Field{"b", values.Int(2)})
	keys := ""
	for _, f := range obj.Fields() {
		keys = keys + f.Key
	}
	if keys != "abc" {
		t.Fatalf(`Wanted keys in order "abc", got %q.`, keys)
	}
}
