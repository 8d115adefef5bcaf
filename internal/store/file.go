package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/mmcdole/reel/internal/domain"
)

// JSONFile keeps the watchlist in a single JSON document.
type JSONFile struct {
	path string
}

// NewJSONFile creates a backend for the document at path
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Location returns the document path
func (f *JSONFile) Location() string { return f.path }

// Load reads and parses the document
func (f *JSONFile) Load() (*domain.State, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoSavedState, f.path)
		}
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	st, err := decodeState(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", f.path, err)
	}
	return st, nil
}

// Save replaces the document atomically
func (f *JSONFile) Save(st *domain.State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// renameio handles temp file creation, fsync and rename
	pending, err := renameio.NewPendingFile(f.path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("failed to create pending state file: %w", err)
	}
	defer pending.Cleanup() // no-op once committed

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
