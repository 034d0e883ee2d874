package btree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeScenario(t *testing.T) {
	tree := newTestTree(t, 4, PromoteMedian)
	insertScenario(tree)

	data, err := tree.Serialize()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"order": 4,
		"root": {
			"keys": [3],
			"children": [
				{"keys": [1], "children": ["A"], "is_leaf": true},
				{"keys": [7, 10, 15], "children": ["C", "D", "E"], "is_leaf": true}
			],
			"is_leaf": false
		}
	}`, string(data))
}

func TestSerializeEmptyTree(t *testing.T) {
	tree := newTestTree(t, 3, PromoteMedian)

	data, err := tree.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order": 3, "root": {"keys": [], "children": [], "is_leaf": true}}`, string(data))
}

func TestSerializeWritesCopyMedianPolicy(t *testing.T) {
	tree := newTestTree(t, 4, CopyMedian)
	tree.Insert(1, "A")

	data, err := tree.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"order": 4,
		"split_policy": "copy-median",
		"root": {"keys": [1], "children": ["A"], "is_leaf": true}
	}`, string(data))
}

func TestSerializeIndentation(t *testing.T) {
	tree := newTestTree(t, 4, PromoteMedian)

	data, err := tree.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"order\": 4,")
}

func TestSerializeRoundTripIsFixedPoint(t *testing.T) {
	for _, order := range []int{3, 4, 7} {
		for _, policy := range []SplitPolicy{PromoteMedian, CopyMedian} {
			t.Run(fmt.Sprintf("%d_%s", order, policy), func(t *testing.T) {
				tree := newTestTree(t, order, policy)
				rng := rand.New(rand.NewSource(7))
				for i := 0; i < 500; i++ {
					tree.Insert(rng.Intn(300), fmt.Sprintf("v%d", i))
				}

				first, err := tree.Serialize()
				require.NoError(t, err)

				restored, err := Deserialize[int, string](first)
				require.NoError(t, err)
				assert.Equal(t, tree.Order(), restored.Order())
				assert.Equal(t, tree.Policy(), restored.Policy())
				assert.Equal(t, tree.Stats(), restored.Stats())
				requireInvariants(t, restored)

				second, err := restored.Serialize()
				require.NoError(t, err)
				assert.Equal(t, string(first), string(second))

				for k := 0; k < 300; k++ {
					want, wantFound := tree.lookup(k)
					got, gotFound := restored.lookup(k)
					assert.Equal(t, wantFound, gotFound, "key %d", k)
					assert.Equal(t, want, got, "key %d", k)
				}
			})
		}
	}
}

func TestDeserializeRestoredTreeAcceptsInserts(t *testing.T) {
	tree := newTestTree(t, 4, CopyMedian)
	insertScenario(tree)
	data, err := tree.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize[int, string](data)
	require.NoError(t, err)
	for k := 20; k < 60; k++ {
		restored.Insert(k, "new")
		tree.Insert(k, "new")
	}

	want, err := tree.Serialize()
	require.NoError(t, err)
	got, err := restored.Serialize()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestDeserializeStringKeys(t *testing.T) {
	doc := `{
	    "order": 3,
	    "root": {
	        "keys": ["m"],
	        "children": [
	            {"keys": ["a"], "children": [1], "is_leaf": true},
	            {"keys": ["x", "z"], "children": [3, 4], "is_leaf": true}
	        ],
	        "is_leaf": false
	    }
	}`

	tree, err := Deserialize[string, int]([]byte(doc))
	require.NoError(t, err)

	value, found := tree.Search("z")
	assert.True(t, found)
	assert.Equal(t, 4, value)
	assert.False(t, tree.Contains("m"))
}

func TestDeserializeMalformed(t *testing.T) {
	leaf := `{"keys": [1], "children": ["A"], "is_leaf": true}`

	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"order": 4,`},
		{"not an object", `[1, 2, 3]`},
		{"missing order", `{"root": ` + leaf + `}`},
		{"missing root", `{"order": 4}`},
		{"null root", `{"order": 4, "root": null}`},
		{"order too small", `{"order": 2, "root": ` + leaf + `}`},
		{"unknown policy", `{"order": 4, "split_policy": "sideways", "root": ` + leaf + `}`},
		{"missing keys", `{"order": 4, "root": {"children": ["A"], "is_leaf": true}}`},
		{"missing children", `{"order": 4, "root": {"keys": [1], "is_leaf": true}}`},
		{"missing is_leaf", `{"order": 4, "root": {"keys": [1], "children": ["A"]}}`},
		{"null keys", `{"order": 4, "root": {"keys": null, "children": [], "is_leaf": true}}`},
		{"wrong key type", `{"order": 4, "root": {"keys": ["one"], "children": ["A"], "is_leaf": true}}`},
		{"wrong value type", `{"order": 4, "root": {"keys": [1], "children": [1], "is_leaf": true}}`},
		{"leaf value count", `{"order": 4, "root": {"keys": [1, 2], "children": ["A"], "is_leaf": true}}`},
		{"too many keys", `{"order": 3, "root": {"keys": [1, 2, 3], "children": ["A", "B", "C"], "is_leaf": true}}`},
		{"keys out of order", `{"order": 4, "root": {"keys": [2, 1], "children": ["A", "B"], "is_leaf": true}}`},
		{"internal child count", `{"order": 4, "root": {"keys": [3], "children": [` + leaf + `], "is_leaf": false}}`},
		{"internal child not a node", `{"order": 4, "root": {"keys": [3], "children": [` + leaf + `, "B"], "is_leaf": false}}`},
		{"internal null child", `{"order": 4, "root": {"keys": [3], "children": [` + leaf + `, null], "is_leaf": false}}`},
		{"nested child missing field", `{"order": 4, "root": {"keys": [3], "children": [` + leaf + `, {"keys": [5], "is_leaf": true}], "is_leaf": false}}`},
		{"uneven leaf depth", `{"order": 4, "root": {"keys": [3], "children": [` + leaf + `, {"keys": [5], "children": [` + leaf + `, ` + leaf + `], "is_leaf": false}], "is_leaf": false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Deserialize[int, string]([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrMalformedDocument)
			assert.Nil(t, tree)
		})
	}
}

func TestDeserializeOrderTooSmallIsInvalidOrder(t *testing.T) {
	_, err := Deserialize[int, string]([]byte(`{"order": 1, "root": {"keys": [], "children": [], "is_leaf": true}}`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestFromDocumentNil(t *testing.T) {
	_, err := FromDocument[int, string](nil)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestDocumentIsDetached(t *testing.T) {
	tree := newTestTree(t, 4, PromoteMedian)
	insertScenario(tree)

	doc := tree.Document()
	doc.Root.Keys[0] = 99
	doc.Root.Children[1].Values[0] = "changed"

	assert.Equal(t, []int{3}, tree.Root().Keys())
	value, _ := tree.Search(7)
	assert.Equal(t, "C", value)
}
