package values

import (
	"cmp"
	"math/rand"
)

// Object is a persistent map from field names to values. Updates return a new Object and leave
// the receiver untouched, so Objects may be shared freely between values.
type Object struct {
	root *fieldNode
}

type fieldNode struct {
	key         string
	value       Value
	weight      uint64
	left, right *fieldNode
}

type Field struct {
	Key   string
	Value Value
}

func NewObject(fields ...Field) *Object {
	obj := &Object{}
	for _, f := range fields {
		obj = obj.Set(f.Key, f.Value)
	}
	return obj
}

func Obj(fields ...Field) Value {
	return ObjectOf(NewObject(fields...))
}

func newFieldNode(key string, value Value) *fieldNode {
	return &fieldNode{
		key:    key,
		value:  value,
		weight: rand.Uint64(),
	}
}

func (node *fieldNode) shallowClone() *fieldNode {
	return &fieldNode{
		key:    node.key,
		value:  node.value,
		weight: node.weight,
	}
}

// Range calls f sequentially in ascending key order for all fields of the object.
func (obj *Object) Range(f func(key string, value Value)) {
	obj.root.forEach(f)
}

func (node *fieldNode) forEach(f func(key string, value Value)) {
	if node == nil {
		return
	}
	node.left.forEach(f)
	f(node.key, node.value)
	node.right.forEach(f)
}

func (obj *Object) Fields() []Field {
	result := []Field{}
	obj.Range(func(k string, v Value) {
		result = append(result, Field{k, v})
	})
	return result
}

func (obj *Object) Len() int {
	return obj.root.len()
}

func (node *fieldNode) len() int {
	if node == nil {
		return 0
	}
	return node.left.len() + 1 + node.right.len()
}

// Get returns the value of the named field. The ok result indicates whether the field was found.
func (obj *Object) Get(key string) (Value, bool) {
	node := obj.root
	for node != nil {
		switch c := cmp.Compare(key, node.key); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node.value, true
		}
	}
	return NONE_VALUE, false
}

// Set returns a copy of the object with the named field set to the value.
func (obj *Object) Set(key string, value Value) *Object {
	return &Object{root: fieldUnion(obj.root, newFieldNode(key, value), true)}
}

// fieldUnion returns a new tree which is a union of first and second one.
// If overwrite is set to true, second one would override a value for any duplicate keys.
func fieldUnion(first, second *fieldNode, overwrite bool) *fieldNode {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}

	if first.weight < second.weight {
		second, first, overwrite = first, second, !overwrite
	}

	left, mid, right := fieldSplit(second, first.key)
	var result *fieldNode
	if overwrite && mid != nil {
		result = mid.shallowClone()
	} else {
		result = first.shallowClone()
	}
	result.weight = first.weight
	result.left = fieldUnion(first.left, left, overwrite)
	result.right = fieldUnion(first.right, right, overwrite)
	return result
}

// fieldSplit splits the tree by the key into three new ones: left with all nodes smaller than key,
// mid with the node matching the key, right with all nodes larger than key. Any of them may be nil.
func fieldSplit(n *fieldNode, key string) (left, mid, right *fieldNode) {
	if n == nil {
		return nil, nil, nil
	}

	if n.key < key {
		left, mid, right := fieldSplit(n.right, key)
		newN := n.shallowClone()
		newN.left = n.left
		newN.right = left
		return newN, mid, right
	} else if key < n.key {
		left, mid, right := fieldSplit(n.left, key)
		newN := n.shallowClone()
		newN.left = right
		newN.right = n.right
		return left, mid, newN
	}
	mid = n.shallowClone()
	return n.left, mid, n.right
}

// Objects are ordered lexicographically by their (key, value) pairs in key order, and then by size.
func (obj *Object) compare(other *Object) int {
	K := obj.Fields()
	L := other.Fields()
	lth := min(len(K), len(L))
	for i := 0; i < lth; i++ {
		if c := cmp.Compare(K[i].Key, L[i].Key); c != 0 {
			return c
		}
		if c := Compare(K[i].Value, L[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(K), len(L))
}

func (obj *Object) equals(other *Object) bool {
	if obj.Len() != other.Len() {
		return false
	}
	result := true
	obj.Range(func(k string, v Value) {
		w, ok := other.Get(k)
		result = result && ok && Equals(v, w)
	})
	return result
}
