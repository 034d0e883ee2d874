package btree

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
)

// Save writes the whole tree to path as indented JSON.
// The file is replaced atomically: the document is written to a temporary
// file in the same directory, synced, and renamed over path.
func (t *Tree[K, V]) Save(path string) error {
	data, err := t.Serialize()
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return writeFileAtomic(path, data, 0644)
}

// Load reads a tree previously written by Save.
// I/O failures are returned as reported by the os package; decoding and
// validation failures wrap ErrMalformedDocument.
func Load[K constraints.Ordered, V any](path string) (*Tree[K, V], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tree, err := Deserialize[K, V](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Restore replaces the contents of t with the tree stored at path.
// On any error t is left exactly as it was. Subscribed observers are kept.
func (t *Tree[K, V]) Restore(path string) error {
	loaded, err := Load[K, V](path)
	if err != nil {
		return err
	}
	t.replace(loaded)
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
