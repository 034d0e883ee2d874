package btree

import "golang.org/x/exp/constraints"

// Walk visits every node depth-first, parents before children, left to right.
// The root is at depth 0. Returning false from fn skips the node's children.
func (t *Tree[K, V]) Walk(fn func(depth int, n *Node[K, V]) bool) {
	walk(t.root, 0, fn)
}

func walk[K constraints.Ordered, V any](n *Node[K, V], depth int, fn func(int, *Node[K, V]) bool) {
	if !fn(depth, n) || n.leaf {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}

// Levels returns the nodes grouped by depth, each level ordered left to right.
func (t *Tree[K, V]) Levels() [][]*Node[K, V] {
	var levels [][]*Node[K, V]
	current := []*Node[K, V]{t.root}

	for len(current) > 0 {
		levels = append(levels, current)
		var next []*Node[K, V]
		for _, n := range current {
			if !n.leaf {
				next = append(next, n.children...)
			}
		}
		current = next
	}

	return levels
}
