package btree

// Op identifies the tree operation an Event describes.
type Op int

const (
	// OpInsert is emitted after every Insert.
	OpInsert Op = iota + 1
	// OpSearch is emitted after every Search.
	OpSearch
)

// String returns the string representation of the operation.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Event describes a completed operation.
// For OpSearch, Value and Found carry the result.
type Event[K any, V any] struct {
	Op    Op
	Key   K
	Value V
	Found bool
}

// Observer receives an Event after each operation.
// Observers run synchronously on the caller's goroutine.
type Observer[K any, V any] interface {
	Observe(Event[K, V])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[K any, V any] func(Event[K, V])

// Observe calls f(e).
func (f ObserverFunc[K, V]) Observe(e Event[K, V]) {
	f(e)
}

// Subscribe registers an observer. Observers survive Restore.
func (t *Tree[K, V]) Subscribe(o Observer[K, V]) {
	if o == nil {
		return
	}
	t.observers = append(t.observers, o)
}

func (t *Tree[K, V]) notify(e Event[K, V]) {
	for _, o := range t.observers {
		o.Observe(e)
	}
}
