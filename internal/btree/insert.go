package btree

import "golang.org/x/exp/slices"

// Insert adds a key/value pair to the tree.
// An existing equal key is never overwritten: the new entry is placed
// immediately before it in leaf order.
//
// Algorithm:
// 1. If the root is full, put it under a new internal root and split it.
// 2. Walk down, splitting any full child before entering it.
// 3. Insert the pair into the leaf at its lower-bound position.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root.IsFull(t.order) {
		newRoot := newNode[K, V](false)
		newRoot.children = append(newRoot.children, t.root)
		t.splitChild(newRoot, 0)
		t.root = newRoot
	}

	t.insertNonFull(t.root, key, value)
	t.notify(Event[K, V]{Op: OpInsert, Key: key, Value: value})
}

// insertNonFull inserts into the subtree rooted at n, which must not be full.
func (t *Tree[K, V]) insertNonFull(n *Node[K, V], key K, value V) {
	for !n.leaf {
		i := t.childIndex(n, key)
		if n.children[i].IsFull(t.order) {
			t.splitChild(n, i)
			if t.rightOf(key, n.keys[i]) {
				i++
			}
		}
		n = n.children[i]
	}

	i, _ := n.lowerBound(key)
	n.insertEntry(i, key, value)
}

// splitChild splits the full child parent.children[index] around its median.
// The median key is inserted into parent.keys at index and the new right
// sibling into parent.children at index+1.
func (t *Tree[K, V]) splitChild(parent *Node[K, V], index int) {
	child := parent.children[index]
	mid := len(child.keys) / 2
	separator := child.keys[mid]

	sibling := newNode[K, V](child.leaf)
	switch {
	case !child.leaf:
		sibling.keys = slices.Clone(child.keys[mid+1:])
		sibling.children = slices.Clone(child.children[mid+1:])
		child.keys = truncate(child.keys, mid)
		child.children = truncate(child.children, mid+1)
	case t.policy == CopyMedian:
		sibling.keys = slices.Clone(child.keys[mid:])
		sibling.values = slices.Clone(child.values[mid:])
		child.keys = truncate(child.keys, mid)
		child.values = truncate(child.values, mid)
	default:
		// The median entry survives only as a separator.
		sibling.keys = slices.Clone(child.keys[mid+1:])
		sibling.values = slices.Clone(child.values[mid+1:])
		child.keys = truncate(child.keys, mid)
		child.values = truncate(child.values, mid)
	}

	parent.keys = slices.Insert(parent.keys, index, separator)
	parent.children = slices.Insert(parent.children, index+1, sibling)
}

// childIndex returns the index of the child of internal node n to descend
// into for key.
func (t *Tree[K, V]) childIndex(n *Node[K, V], key K) int {
	if t.policy == CopyMedian {
		return n.upperBound(key)
	}
	i, _ := n.lowerBound(key)
	return i
}

// rightOf reports whether key belongs to the right of separator.
func (t *Tree[K, V]) rightOf(key, separator K) bool {
	if t.policy == CopyMedian {
		return key >= separator
	}
	return key > separator
}
