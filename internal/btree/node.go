package btree

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Node represents a node in the tree.
// It is either an internal node (keys and child nodes) or a leaf node
// (keys and the values stored under them).
type Node[K constraints.Ordered, V any] struct {
	// keys are kept in non-decreasing order.
	// For internal nodes: keys[i] separates children[i] and children[i+1].
	// For leaf nodes: keys[i] corresponds to values[i].
	keys []K

	// leaf selects which of values/children is populated.
	leaf bool

	// values holds the stored values (leaf nodes only).
	// len(values) == len(keys).
	values []V

	// children holds the child nodes (internal nodes only).
	// len(children) == len(keys) + 1 once the node is linked into a tree.
	children []*Node[K, V]
}

func newNode[K constraints.Ordered, V any](leaf bool) *Node[K, V] {
	n := &Node[K, V]{leaf: leaf}
	if leaf {
		n.values = []V{}
	} else {
		n.children = []*Node[K, V]{}
	}
	n.keys = []K{}
	return n
}

// IsLeaf returns true if the node stores values rather than children.
func (n *Node[K, V]) IsLeaf() bool {
	return n.leaf
}

// KeyCount returns the number of keys in the node.
func (n *Node[K, V]) KeyCount() int {
	return len(n.keys)
}

// Keys returns a copy of the node's keys.
func (n *Node[K, V]) Keys() []K {
	return slices.Clone(n.keys)
}

// Values returns a copy of the values of a leaf node, or nil for internal nodes.
func (n *Node[K, V]) Values() []V {
	if !n.leaf {
		return nil
	}
	return slices.Clone(n.values)
}

// Children returns the child nodes of an internal node, or nil for leaves.
// The returned slice is a copy; the nodes themselves are shared.
func (n *Node[K, V]) Children() []*Node[K, V] {
	if n.leaf {
		return nil
	}
	return slices.Clone(n.children)
}

// IsFull returns true if the node holds order-1 keys.
func (n *Node[K, V]) IsFull(order int) bool {
	return len(n.keys) >= order-1
}

// lowerBound returns the first index i with key <= keys[i] and whether
// keys[i] equals key.
func (n *Node[K, V]) lowerBound(key K) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

// upperBound returns the first index i with keys[i] > key.
func (n *Node[K, V]) upperBound(key K) int {
	i, _ := slices.BinarySearchFunc(n.keys, key, func(e, target K) int {
		if e <= target {
			return -1
		}
		return 1
	})
	return i
}

// insertEntry inserts a key/value pair into a leaf at index i.
func (n *Node[K, V]) insertEntry(i int, key K, value V) {
	n.keys = slices.Insert(n.keys, i, key)
	n.values = slices.Insert(n.values, i, value)
}

// truncate cuts s to length i and zeroes the tail so the dropped
// elements can be collected.
func truncate[E any](s []E, i int) []E {
	var zero E
	for j := i; j < len(s); j++ {
		s[j] = zero
	}
	return s[:i]
}
