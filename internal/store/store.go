// Package store persists each record collection as one pretty-printed
// JSON array file under a data directory. Reads are fail-soft: a missing
// or corrupt file is treated as an empty collection. Writes are fail-loud
// and atomic via a temp file and rename.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store owns the data directory and serializes access per collection.
// The per-collection lock only prevents torn file writes from concurrent
// handlers; interleaved request sequences still resolve last-write-wins.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir. The directory is created lazily on
// the first save.
func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Init writes an empty array file for each named collection that does not
// exist yet, so a fresh data directory starts with the full layout.
func (s *Store) Init(collections ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", s.dir, err)
	}

	for _, c := range collections {
		path := s.path(c)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking collection %s: %w", c, err)
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("initializing collection %s: %w", c, err)
		}
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load reads a collection. A missing, unreadable or corrupt file yields
// an empty slice and no error.
func Load[T any](s *Store, collection string) ([]T, error) {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("collection unreadable, treating as empty", "collection", collection, "error", err)
		}
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("collection corrupt, treating as empty", "collection", collection, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces a collection's contents on disk. The new array is written
// to a temp file in the same directory and renamed into place, so a
// concurrent Load observes either the old or the new contents, never a
// partial write.
func Save[T any](s *Store, collection string, items []T) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", s.dir, err)
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.json")
	if err != nil {
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("saving collection %s: %w", collection, err)
	}
	return nil
}
