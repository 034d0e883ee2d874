package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KilimcininKorOglu/bptree/internal/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTree(t *testing.T) *btree.Tree[int, string] {
	t.Helper()

	tree, err := btree.New[int, string](4)
	require.NoError(t, err)
	for i, k := range []int{1, 3, 7, 10, 15} {
		tree.Insert(k, string(rune('A'+i)))
	}
	return tree
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, scenarioTree(t))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, Title+"\n"))
	assert.Contains(t, out, "Level")
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "7, 10, 15")

	// Rows appear depth-first: the root, then each leaf.
	root := strings.Index(out, " 3 ")
	left := strings.Index(out, " 1 ")
	right := strings.Index(out, "7, 10, 15")
	require.NotEqual(t, -1, root)
	assert.Less(t, root, right)
	assert.Less(t, left, right)
}

func TestTableEmptyTree(t *testing.T) {
	tree, err := btree.New[string, string](3)
	require.NoError(t, err)

	var buf bytes.Buffer
	Table(&buf, tree)
	assert.Contains(t, buf.String(), "Level")
}

func TestLevelTable(t *testing.T) {
	tree, err := btree.New[int, string](4)
	require.NoError(t, err)
	for k := 1; k <= 20; k++ {
		tree.Insert(k, "v")
	}

	var buf bytes.Buffer
	LevelTable(&buf, tree)

	out := buf.String()
	assert.Contains(t, out, "[8]")
	assert.Contains(t, out, "[4] | [12]")
	assert.Contains(t, out, "Nodes")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, scenarioTree(t))

	out := buf.String()
	assert.Contains(t, out, "promote-median")
	assert.Contains(t, out, "Height")
	assert.Contains(t, out, "Entries")
}
