// Package oplog records tree operations in an append-only text journal.
//
// Each operation becomes one line:
//
//	Inserted key=7, value=Produto C
//	Searched for key=4
//
// A Journal is attached to a tree as an observer, so the tree never deals
// with the file itself.
package oplog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/KilimcininKorOglu/bptree/internal/btree"
	"github.com/KilimcininKorOglu/bptree/internal/logging"
	"golang.org/x/exp/constraints"
)

// DefaultPath is the journal file used when none is configured.
const DefaultPath = "bplustree_log.txt"

// Journal appends operation lines to a writer.
type Journal struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	logger logging.Logger
	lines  int
}

// Open opens path for appending, creating it if needed.
func Open(path string, logger logging.Logger) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := New(f, logger)
	j.closer = f
	return j, nil
}

// New creates a Journal writing to w. The caller keeps ownership of w.
func New(w io.Writer, logger logging.Logger) *Journal {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Journal{w: w, logger: logger}
}

// Record appends the line for one operation. Write failures are logged,
// not returned: a broken journal must not fail the tree operation.
func (j *Journal) Record(op btree.Op, key, value interface{}) {
	var line string
	switch op {
	case btree.OpInsert:
		line = fmt.Sprintf("Inserted key=%v, value=%v\n", key, value)
	case btree.OpSearch:
		line = fmt.Sprintf("Searched for key=%v\n", key)
	default:
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := io.WriteString(j.w, line); err != nil {
		j.logger.Error("journal write failed", "op", op.String(), "error", err)
		return
	}
	j.lines++
}

// Lines returns the number of lines written since the journal was created.
func (j *Journal) Lines() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lines
}

// Close closes the underlying file if the journal opened it.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

// Observer returns a tree observer that records every event in j.
func Observer[K constraints.Ordered, V any](j *Journal) btree.Observer[K, V] {
	return btree.ObserverFunc[K, V](func(e btree.Event[K, V]) {
		j.Record(e.Op, e.Key, e.Value)
	})
}
