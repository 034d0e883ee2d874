package btree

// Search returns the value stored under key.
// When several entries share the key, the first one in the leaf reached wins.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	value, found := t.lookup(key)
	t.notify(Event[K, V]{Op: OpSearch, Key: key, Value: value, Found: found})
	return value, found
}

// Contains returns true if Search would find key. No event is emitted.
func (t *Tree[K, V]) Contains(key K) bool {
	_, found := t.lookup(key)
	return found
}

// lookup performs a single top-down walk from the root.
func (t *Tree[K, V]) lookup(key K) (V, bool) {
	var zero V
	n := t.root

	for {
		if !n.leaf && t.policy == CopyMedian {
			n = n.children[n.upperBound(key)]
			continue
		}

		i, found := n.lowerBound(key)
		if found {
			if n.leaf {
				return n.values[i], true
			}
			// A separator's value was dropped when it was promoted.
			return zero, false
		}
		if n.leaf {
			return zero, false
		}
		n = n.children[i]
	}
}
