// Package btree implements an in-memory ordered index: a B-tree whose
// leaves hold the stored values and whose internal nodes hold separator keys.
//
// # Overview
//
// The tree has a fixed order chosen at construction. A node is full when it
// holds order-1 keys. Insertion splits full nodes on the way down, so the
// tree only ever grows in height at the root. Leaves are not linked to each
// other; every lookup is a single walk from the root.
//
// # Usage
//
// Create and use a tree:
//
//	tree, err := btree.New[int64, string](4)
//	if err != nil {
//	    return err
//	}
//
//	tree.Insert(7, "Produto C")
//
//	value, found := tree.Search(7)
//
// # Split Policies
//
// When a full leaf splits, its median key becomes the separator in the parent.
//
//   - PromoteMedian (default): the median entry leaves the leaf level. Its
//     value is dropped and a search that reaches the separator reports a miss.
//   - CopyMedian: the median entry stays as the first entry of the new right
//     leaf, and searches always continue down to a leaf.
//
// # Serialization
//
// Trees are saved as a JSON document:
//
//	{
//	    "order": 4,
//	    "root": {
//	        "keys": [3],
//	        "children": [
//	            {"keys": [1], "children": ["A"], "is_leaf": true},
//	            {"keys": [7, 10, 15], "children": ["C", "D", "E"], "is_leaf": true}
//	        ],
//	        "is_leaf": false
//	    }
//	}
//
// Save and Load write and read such documents. Restore loads into an existing
// tree and only replaces its contents once the new document has been fully
// decoded and validated.
//
// # Observers
//
// Collaborators such as operation journals subscribe to the tree and receive
// an Event after every Insert and Search:
//
//	tree.Subscribe(btree.ObserverFunc[int64, string](func(e btree.Event[int64, string]) {
//	    fmt.Println(e.Op, e.Key)
//	}))
package btree
