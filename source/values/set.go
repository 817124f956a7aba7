package values

import (
	"math/rand"
)

// Set is a persistent set of values ordered by a caller-supplied comparison. Membership is decided
// by a caller-supplied equality: elements which compare as equal but are not Equal to one another
// share a node, so the only requirement is that equal values compare as equal.
type Set struct {
	root    *setNode
	compare func(v, w Value) int
	equal   func(v, w Value) bool
}

type setNode struct {
	elements    []Value
	weight      uint64
	left, right *setNode
}

func NewSet(compare func(v, w Value) int, equal func(v, w Value) bool) Set {
	return Set{compare: compare, equal: equal}
}

func (pm Set) Add(element Value) Set {
	if pm.Contains(element) {
		return pm
	}
	left, mid, right := pm.split(pm.root, element)
	if mid == nil {
		mid = &setNode{weight: rand.Uint64()}
	}
	mid.elements = append(mid.elements[:len(mid.elements):len(mid.elements)], element)
	pm.root = pm.merge(pm.merge(left, mid), right)
	return pm
}

func (pm Set) AddAll(elements []Value) Set {
	for _, el := range elements {
		pm = pm.Add(el)
	}
	return pm
}

func (pm Set) Contains(element Value) bool {
	node := pm.root
	for node != nil {
		c := pm.compare(element, node.elements[0])
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			for _, el := range node.elements {
				if pm.equal(element, el) {
					return true
				}
			}
			return false
		}
	}
	return false
}

func (pm Set) Len() int {
	return pm.root.len()
}

func (node *setNode) shallowClone() *setNode {
	return &setNode{
		elements: node.elements,
		weight:   node.weight,
	}
}

func (node *setNode) len() int {
	if node == nil {
		return 0
	}
	return node.left.len() + len(node.elements) + node.right.len()
}

// split the tree midway by the element into three new ones: left with all nodes smaller than the
// element, mid with the node comparing equal to it, right with all nodes larger than it. If there
// are no nodes in one of the trees, it is returned as nil.
func (pm Set) split(n *setNode, element Value) (left, mid, right *setNode) {
	if n == nil {
		return nil, nil, nil
	}
	c := pm.compare(n.elements[0], element)
	if c < 0 {
		left, mid, right := pm.split(n.right, element)
		newN := n.shallowClone()
		newN.left = n.left
		newN.right = left
		return newN, mid, right
	} else if c > 0 {
		left, mid, right := pm.split(n.left, element)
		newN := n.shallowClone()
		newN.left = right
		newN.right = n.right
		return left, mid, newN
	}
	mid = n.shallowClone()
	return n.left, mid, n.right
}

// merge two trees while preserving the weight invariant.
// All nodes in left must be smaller than any node in right.
func (pm Set) merge(left, right *setNode) *setNode {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case left.weight > right.weight:
		root := left.shallowClone()
		root.left = left.left
		root.right = pm.merge(left.right, right)
		return root
	default:
		root := right.shallowClone()
		root.left = pm.merge(left, right.left)
		root.right = right.right
		return root
	}
}
