// Package render prints the structure of a tree for people.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KilimcininKorOglu/bptree/internal/btree"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/constraints"
)

// Title is printed above every table.
const Title = "B+ Tree Structure"

// Table prints one row per node, depth-first, with the node's depth and keys.
func Table[K constraints.Ordered, V any](w io.Writer, tree *btree.Tree[K, V]) {
	var rows [][]string
	tree.Walk(func(depth int, n *btree.Node[K, V]) bool {
		rows = append(rows, []string{strconv.Itoa(depth), joinKeys(n.Keys())})
		return true
	})

	write(w, []string{"Level", "Keys"}, rows)
}

// LevelTable prints one row per depth with the nodes of that level from left
// to right, separated by " | ".
func LevelTable[K constraints.Ordered, V any](w io.Writer, tree *btree.Tree[K, V]) {
	var rows [][]string
	for depth, level := range tree.Levels() {
		nodes := make([]string, len(level))
		for i, n := range level {
			nodes[i] = "[" + joinKeys(n.Keys()) + "]"
		}
		rows = append(rows, []string{strconv.Itoa(depth), strconv.Itoa(len(level)), strings.Join(nodes, " | ")})
	}

	write(w, []string{"Level", "Nodes", "Keys"}, rows)
}

// Summary prints the tree statistics as a two-column table.
func Summary[K constraints.Ordered, V any](w io.Writer, tree *btree.Tree[K, V]) {
	stats := tree.Stats()
	rows := [][]string{
		{"Order", strconv.Itoa(tree.Order())},
		{"Split policy", tree.Policy().String()},
		{"Height", strconv.Itoa(stats.Height)},
		{"Internal nodes", strconv.Itoa(stats.InternalNodes)},
		{"Leaf nodes", strconv.Itoa(stats.LeafNodes)},
		{"Separator keys", strconv.Itoa(stats.SeparatorKeys)},
		{"Entries", strconv.Itoa(stats.Entries)},
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(rows)
	table.Render()
}

func write(w io.Writer, header []string, rows [][]string) {
	fmt.Fprintln(w, Title)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetRowLine(true)
	table.AppendBulk(rows)
	table.Render()
}

func joinKeys[K constraints.Ordered](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ", ")
}
