// Package index binds an int64 -> string B+ tree to its configured data file,
// operation journal and logger, and makes it safe for concurrent use.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/KilimcininKorOglu/bptree/internal/btree"
	"github.com/KilimcininKorOglu/bptree/internal/config"
	"github.com/KilimcininKorOglu/bptree/internal/logging"
	"github.com/KilimcininKorOglu/bptree/internal/oplog"
)

// Store errors.
var (
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("index: store is closed")
	// ErrInvalidConfig is returned when the tree section of the config is unusable.
	ErrInvalidConfig = errors.New("index: invalid configuration")
	// ErrNoPath is returned by Save and Load when no path is given or configured.
	ErrNoPath = errors.New("index: no data file path")
)

// Tree is the tree type held by a Store.
type Tree = btree.Tree[int64, string]

// Store wraps a tree with persistence and journaling.
type Store struct {
	mu       sync.RWMutex
	tree     *Tree
	journal  *oplog.Journal
	dataFile string
	logger   logging.Logger
	closed   bool
}

// Open creates a Store from cfg. When cfg.Storage.LoadOnStart is set and the
// data file exists it is loaded; a missing data file starts an empty tree.
func Open(cfg *config.Config, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.WithFields("component", "index")

	policy, err := btree.ParseSplitPolicy(cfg.Tree.SplitPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	tree, err := btree.New[int64, string](cfg.Tree.Order, btree.WithSplitPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s := &Store{
		tree:     tree,
		dataFile: cfg.Storage.DataFile,
		logger:   logger,
	}

	if cfg.Storage.LoadOnStart && s.dataFile != "" {
		err := tree.Restore(s.dataFile)
		switch {
		case err == nil:
			logger.Info("tree loaded", "path", s.dataFile, "height", tree.Height())
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("data file not found, starting empty", "path", s.dataFile)
		default:
			return nil, err
		}
	}

	if cfg.Journal.Enabled {
		j, err := oplog.Open(cfg.Journal.Path, logger)
		if err != nil {
			return nil, err
		}
		s.journal = j
		tree.Subscribe(oplog.Observer[int64, string](j))
	}

	logger.Debug("store opened",
		"order", tree.Order(),
		"policy", tree.Policy().String(),
		"journal", cfg.Journal.Enabled,
	)
	return s, nil
}

// Insert adds key with value.
func (s *Store) Insert(key int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.tree.Insert(key, value)
	s.logger.Debug("inserted", "key", key)
	return nil
}

// Search returns the value stored for key.
func (s *Store) Search(key int64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrClosed
	}
	value, found := s.tree.Search(key)
	s.logger.Debug("searched", "key", key, "found", found)
	return value, found, nil
}

// Save writes the tree to path, or to the configured data file when path is empty.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}
	path, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := s.tree.Save(path); err != nil {
		s.logger.Error("save failed", "path", path, "error", err)
		return err
	}
	s.logger.Info("tree saved", "path", path)
	return nil
}

// Load replaces the tree with the one stored at path, or at the configured
// data file when path is empty. On error the current tree is kept.
func (s *Store) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	path, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := s.tree.Restore(path); err != nil {
		s.logger.Warn("load failed", "path", path, "error", err)
		return err
	}
	s.logger.Info("tree loaded", "path", path, "height", s.tree.Height())
	return nil
}

// Levels returns the keys of every node grouped by depth, root first.
func (s *Store) Levels() [][][]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels := s.tree.Levels()
	out := make([][][]int64, len(levels))
	for i, level := range levels {
		out[i] = make([][]int64, len(level))
		for j, n := range level {
			out[i][j] = n.Keys()
		}
	}
	return out
}

// Stats returns the current tree statistics.
func (s *Store) Stats() btree.TreeStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Stats()
}

// View calls fn with the tree while holding the read lock.
// fn must not retain the tree or modify it.
func (s *Store) View(fn func(*Tree)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.tree)
}

// DataFile returns the configured data file.
func (s *Store) DataFile() string {
	return s.dataFile
}

// Close closes the journal. Further operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.journal != nil {
		return s.journal.Close()
	}
	return nil
}

func (s *Store) resolve(path string) (string, error) {
	if path == "" {
		path = s.dataFile
	}
	if path == "" {
		return "", ErrNoPath
	}
	return path, nil
}
