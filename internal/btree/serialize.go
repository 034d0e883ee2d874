package btree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// DocumentIndent is the indentation used by Serialize and Save.
const DocumentIndent = "    "

// Document is the serialized form of a tree:
//
//	{"order": 4, "root": {"keys": [...], "children": [...], "is_leaf": true}}
//
// split_policy is written only for trees that do not use PromoteMedian.
type Document[K constraints.Ordered, V any] struct {
	Order       int
	SplitPolicy string
	Root        *NodeDocument[K, V]
}

// NodeDocument is the serialized form of a node. Its "children" member
// holds Values for leaves and Children for internal nodes.
type NodeDocument[K constraints.Ordered, V any] struct {
	Keys     []K
	IsLeaf   bool
	Values   []V
	Children []*NodeDocument[K, V]
}

type documentJSON[K constraints.Ordered, V any] struct {
	Order       *int                `json:"order"`
	SplitPolicy string              `json:"split_policy,omitempty"`
	Root        *NodeDocument[K, V] `json:"root"`
}

// MarshalJSON implements json.Marshaler.
func (d Document[K, V]) MarshalJSON() ([]byte, error) {
	order := d.Order
	return json.Marshal(documentJSON[K, V]{
		Order:       &order,
		SplitPolicy: d.SplitPolicy,
		Root:        d.Root,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document[K, V]) UnmarshalJSON(data []byte) error {
	var raw documentJSON[K, V]
	if err := json.Unmarshal(data, &raw); err != nil {
		return malformed(err)
	}
	if raw.Order == nil {
		return fmt.Errorf("%w: missing \"order\"", ErrMalformedDocument)
	}
	if raw.Root == nil {
		return fmt.Errorf("%w: missing \"root\"", ErrMalformedDocument)
	}

	d.Order = *raw.Order
	d.SplitPolicy = raw.SplitPolicy
	d.Root = raw.Root
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d NodeDocument[K, V]) MarshalJSON() ([]byte, error) {
	keys := d.Keys
	if keys == nil {
		keys = []K{}
	}

	var children interface{}
	if d.IsLeaf {
		values := d.Values
		if values == nil {
			values = []V{}
		}
		children = values
	} else {
		nodes := d.Children
		if nodes == nil {
			nodes = []*NodeDocument[K, V]{}
		}
		children = nodes
	}

	return json.Marshal(struct {
		Keys     []K         `json:"keys"`
		Children interface{} `json:"children"`
		IsLeaf   bool        `json:"is_leaf"`
	}{keys, children, d.IsLeaf})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *NodeDocument[K, V]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Keys     json.RawMessage `json:"keys"`
		Children json.RawMessage `json:"children"`
		IsLeaf   *bool           `json:"is_leaf"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return malformed(err)
	}

	switch {
	case absent(raw.Keys):
		return fmt.Errorf("%w: node is missing \"keys\"", ErrMalformedDocument)
	case absent(raw.Children):
		return fmt.Errorf("%w: node is missing \"children\"", ErrMalformedDocument)
	case raw.IsLeaf == nil:
		return fmt.Errorf("%w: node is missing \"is_leaf\"", ErrMalformedDocument)
	}

	if err := json.Unmarshal(raw.Keys, &d.Keys); err != nil {
		return malformed(err)
	}
	d.IsLeaf = *raw.IsLeaf

	if d.IsLeaf {
		if err := json.Unmarshal(raw.Children, &d.Values); err != nil {
			return malformed(err)
		}
		return nil
	}
	if err := json.Unmarshal(raw.Children, &d.Children); err != nil {
		return malformed(err)
	}
	return nil
}

// Document returns the serialized form of the tree.
func (t *Tree[K, V]) Document() *Document[K, V] {
	doc := &Document[K, V]{
		Order: t.order,
		Root:  t.root.Document(),
	}
	if t.policy != PromoteMedian {
		doc.SplitPolicy = t.policy.String()
	}
	return doc
}

// Document returns the serialized form of the subtree rooted at n.
func (n *Node[K, V]) Document() *NodeDocument[K, V] {
	doc := &NodeDocument[K, V]{
		Keys:   slices.Clone(n.keys),
		IsLeaf: n.leaf,
	}
	if n.leaf {
		doc.Values = slices.Clone(n.values)
		return doc
	}

	doc.Children = make([]*NodeDocument[K, V], len(n.children))
	for i, child := range n.children {
		doc.Children[i] = child.Document()
	}
	return doc
}

// Serialize encodes the tree as indented JSON.
func (t *Tree[K, V]) Serialize() ([]byte, error) {
	return json.MarshalIndent(t.Document(), "", DocumentIndent)
}

// Deserialize decodes a tree produced by Serialize.
// Any decoding or structural problem is reported as ErrMalformedDocument.
func Deserialize[K constraints.Ordered, V any](data []byte) (*Tree[K, V], error) {
	var doc Document[K, V]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err)
	}
	return FromDocument(&doc)
}

// FromDocument builds a tree from its serialized form after validating it.
// The document is not retained.
func FromDocument[K constraints.Ordered, V any](doc *Document[K, V]) (*Tree[K, V], error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("%w: missing \"root\"", ErrMalformedDocument)
	}

	policy, err := ParseSplitPolicy(doc.SplitPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if doc.Order < MinOrder {
		return nil, fmt.Errorf("%w: %w: got %d", ErrMalformedDocument, ErrInvalidOrder, doc.Order)
	}

	b := &builder[K, V]{order: doc.Order, leafDepth: -1}
	root, err := b.build(doc.Root, 0)
	if err != nil {
		return nil, err
	}

	return &Tree[K, V]{
		root:   root,
		order:  doc.Order,
		policy: policy,
	}, nil
}

// builder converts node documents into nodes, checking the shape
// invariants on the way.
type builder[K constraints.Ordered, V any] struct {
	order     int
	leafDepth int
}

func (b *builder[K, V]) build(doc *NodeDocument[K, V], depth int) (*Node[K, V], error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: null node at depth %d", ErrMalformedDocument, depth)
	}
	if len(doc.Keys) > b.order-1 {
		return nil, fmt.Errorf("%w: node at depth %d holds %d keys, order %d allows %d",
			ErrMalformedDocument, depth, len(doc.Keys), b.order, b.order-1)
	}
	if !slices.IsSorted(doc.Keys) {
		return nil, fmt.Errorf("%w: keys out of order at depth %d", ErrMalformedDocument, depth)
	}

	n := newNode[K, V](doc.IsLeaf)
	n.keys = append(n.keys, doc.Keys...)

	if doc.IsLeaf {
		if len(doc.Values) != len(doc.Keys) {
			return nil, fmt.Errorf("%w: leaf at depth %d has %d keys and %d values",
				ErrMalformedDocument, depth, len(doc.Keys), len(doc.Values))
		}
		if b.leafDepth == -1 {
			b.leafDepth = depth
		} else if b.leafDepth != depth {
			return nil, fmt.Errorf("%w: leaves at depths %d and %d",
				ErrMalformedDocument, b.leafDepth, depth)
		}
		n.values = append(n.values, doc.Values...)
		return n, nil
	}

	if len(doc.Children) != len(doc.Keys)+1 {
		return nil, fmt.Errorf("%w: internal node at depth %d has %d keys and %d children",
			ErrMalformedDocument, depth, len(doc.Keys), len(doc.Children))
	}
	for _, childDoc := range doc.Children {
		child, err := b.build(childDoc, depth+1)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

// malformed wraps a decoding error in ErrMalformedDocument unless it already is one.
func malformed(err error) error {
	if errors.Is(err, ErrMalformedDocument) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
}

// absent reports whether a raw member was missing or null.
func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
