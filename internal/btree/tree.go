// Package btree provides an in-memory ordered index that stores values in its leaves.
package btree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree constants.
const (
	// MinOrder is the smallest order for which a split yields two nodes.
	MinOrder = 3

	// DefaultOrder is the order used by the command line tool.
	DefaultOrder = 4
)

// SplitPolicy selects what happens to the median entry of a splitting leaf.
type SplitPolicy int

const (
	// PromoteMedian moves the median key into the parent and drops its value
	// from the leaf level. A search that meets the key in an internal node
	// reports it as not found.
	PromoteMedian SplitPolicy = iota

	// CopyMedian copies the median key into the parent and keeps the median
	// entry as the first entry of the new right leaf. Every inserted key stays
	// reachable.
	CopyMedian
)

// String returns the name used in documents and configuration files.
func (p SplitPolicy) String() string {
	switch p {
	case PromoteMedian:
		return "promote-median"
	case CopyMedian:
		return "copy-median"
	default:
		return "unknown"
	}
}

// ParseSplitPolicy parses a policy name. The empty string selects PromoteMedian.
func ParseSplitPolicy(s string) (SplitPolicy, error) {
	switch s {
	case "", "promote-median":
		return PromoteMedian, nil
	case "copy-median":
		return CopyMedian, nil
	default:
		return PromoteMedian, fmt.Errorf("%w: %q", ErrUnknownSplitPolicy, s)
	}
}

// Option configures a Tree.
type Option func(*options)

type options struct {
	policy SplitPolicy
}

// WithSplitPolicy sets the leaf split policy. The default is PromoteMedian.
func WithSplitPolicy(p SplitPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Tree is an ordered index with a fixed order.
// A Tree is not safe for concurrent use.
type Tree[K constraints.Ordered, V any] struct {
	root      *Node[K, V]
	order     int
	policy    SplitPolicy
	observers []Observer[K, V]
}

// New creates an empty tree whose root is an empty leaf.
// Returns ErrInvalidOrder if order is less than MinOrder.
func New[K constraints.Ordered, V any](order int, opts ...Option) (*Tree[K, V], error) {
	if order < MinOrder {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	o := options{policy: PromoteMedian}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy != PromoteMedian && o.policy != CopyMedian {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSplitPolicy, int(o.policy))
	}

	return &Tree[K, V]{
		root:   newNode[K, V](true),
		order:  order,
		policy: o.policy,
	}, nil
}

// Root returns the root node for read-only traversal.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Order returns the order of the tree.
func (t *Tree[K, V]) Order() int {
	return t.order
}

// Policy returns the split policy of the tree.
func (t *Tree[K, V]) Policy() SplitPolicy {
	return t.policy
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root.leaf && len(t.root.keys) == 0
}

// Height returns the number of levels in the tree. An empty tree has height 1.
func (t *Tree[K, V]) Height() int {
	height := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		height++
	}
	return height
}

// TreeStats holds statistics about the tree.
type TreeStats struct {
	Height        int
	InternalNodes int
	LeafNodes     int
	// SeparatorKeys counts keys held by internal nodes.
	SeparatorKeys int
	// Entries counts key/value pairs held by leaves.
	Entries int
}

// Stats walks the whole tree and returns its statistics.
func (t *Tree[K, V]) Stats() TreeStats {
	stats := TreeStats{Height: t.Height()}
	t.Walk(func(_ int, n *Node[K, V]) bool {
		if n.leaf {
			stats.LeafNodes++
			stats.Entries += len(n.keys)
		} else {
			stats.InternalNodes++
			stats.SeparatorKeys += len(n.keys)
		}
		return true
	})
	return stats
}

// replace swaps in the structure of other, keeping the observers of t.
func (t *Tree[K, V]) replace(other *Tree[K, V]) {
	t.root = other.root
	t.order = other.order
	t.policy = other.policy
}
