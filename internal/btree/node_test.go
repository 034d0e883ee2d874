package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeafNode(t *testing.T) {
	n := newNode[int, string](true)

	assert.True(t, n.IsLeaf())
	assert.Equal(t, 0, n.KeyCount())
	assert.NotNil(t, n.values)
	assert.Nil(t, n.children)
	assert.Nil(t, n.Children())
	assert.Empty(t, n.Values())
}

func TestNewInternalNode(t *testing.T) {
	n := newNode[int, string](false)

	assert.False(t, n.IsLeaf())
	assert.Equal(t, 0, n.KeyCount())
	assert.Nil(t, n.values)
	assert.NotNil(t, n.children)
	assert.Nil(t, n.Values())
}

func TestNodeIsFull(t *testing.T) {
	n := newNode[int, string](true)
	n.insertEntry(0, 1, "a")
	n.insertEntry(1, 2, "b")

	assert.False(t, n.IsFull(4))
	assert.True(t, n.IsFull(3))

	n.insertEntry(2, 3, "c")
	assert.True(t, n.IsFull(4))
}

func TestNodeLowerBound(t *testing.T) {
	n := newNode[int, string](true)
	n.keys = []int{3, 5, 5, 9}

	tests := []struct {
		key   int
		index int
		found bool
	}{
		{1, 0, false},
		{3, 0, true},
		{4, 1, false},
		{5, 1, true},
		{9, 3, true},
		{10, 4, false},
	}

	for _, tt := range tests {
		index, found := n.lowerBound(tt.key)
		assert.Equal(t, tt.index, index, "lowerBound(%d) index", tt.key)
		assert.Equal(t, tt.found, found, "lowerBound(%d) found", tt.key)
	}
}

func TestNodeUpperBound(t *testing.T) {
	n := newNode[int, string](true)
	n.keys = []int{3, 5, 5, 9}

	tests := []struct {
		key   int
		index int
	}{
		{1, 0},
		{3, 1},
		{4, 1},
		{5, 3},
		{8, 3},
		{9, 4},
		{10, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.index, n.upperBound(tt.key), "upperBound(%d)", tt.key)
	}
}

func TestNodeInsertEntryKeepsValuesParallel(t *testing.T) {
	n := newNode[string, int](true)
	n.insertEntry(0, "m", 1)
	n.insertEntry(0, "a", 2)
	n.insertEntry(2, "z", 3)
	n.insertEntry(1, "f", 4)

	assert.Equal(t, []string{"a", "f", "m", "z"}, n.Keys())
	assert.Equal(t, []int{2, 4, 1, 3}, n.Values())
}

func TestNodeAccessorsReturnCopies(t *testing.T) {
	n := newNode[int, string](true)
	n.insertEntry(0, 1, "a")

	keys := n.Keys()
	keys[0] = 100
	values := n.Values()
	values[0] = "changed"

	assert.Equal(t, []int{1}, n.keys)
	assert.Equal(t, []string{"a"}, n.values)
}

func TestTruncateZeroesTail(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	backing := s[:4]

	s = truncate(s, 1)

	require.Len(t, s, 1)
	assert.Equal(t, []string{"a", "", "", ""}, backing)
}
