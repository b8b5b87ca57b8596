package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// SelectionStore persists the last-selected organization identifier between
// sessions. Load returns an empty string when nothing has been saved yet.
type SelectionStore interface {
	Load() (string, error)
	Save(id string) error
}

// FileSelectionStore keeps the selection in a single file.
type FileSelectionStore struct {
	path string
}

// NewFileSelectionStore creates a store backed by the given file path.
func NewFileSelectionStore(path string) *FileSelectionStore {
	return &FileSelectionStore{path: path}
}

// Load reads the saved selection. A missing file is not an error.
func (s *FileSelectionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the selection, creating parent directories as needed.
func (s *FileSelectionStore) Save(id string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(id+"\n"), 0o644)
}

// MemorySelectionStore is an in-memory store, used in tests and when
// persistence across runs is not wanted.
type MemorySelectionStore struct {
	id string
}

// NewMemorySelectionStore creates an empty in-memory store.
func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{}
}

// Load returns the held selection.
func (s *MemorySelectionStore) Load() (string, error) {
	return s.id, nil
}

// Save replaces the held selection.
func (s *MemorySelectionStore) Save(id string) error {
	s.id = id
	return nil
}
