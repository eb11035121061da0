// Package savedstate keeps the small set of values that must survive a
// process restart, such as the current search text.
package savedstate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// KeySearchText is the key under which the search box text is stored
const KeySearchText = "search_text"

// Handle reads and writes restorable values
type Handle interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Store is a Handle backed by a TOML file. Set only updates memory;
// Save writes the current snapshot to disk.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
	dirty  bool
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := toml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return s, nil
}

// NewMemory returns a store that is never written to disk
func NewMemory() *Store {
	s, _ := Open("")
	return s
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.values[key]; ok && old == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

// Save writes the store to disk if anything changed since the last save
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" || !s.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	s.dirty = false
	return nil
}
