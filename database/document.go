package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is file-only singleton storage for the content kinds that
// bypass the database entirely (quotes, stats, site config): reads and
// writes both hit the JSON file, never a collection.
type Document[T any] struct {
	path string
}

func NewDocument[T any](dataDir, name string) *Document[T] {
	return &Document[T]{path: filepath.Join(dataDir, name+".json")}
}

// Path returns the location of the backing file.
func (d *Document[T]) Path() string {
	return d.path
}

// Load reads the document; present is false when no file exists yet.
func (d *Document[T]) Load() (T, bool, error) {
	var value T

	raw, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("reading document %s: %w", d.path, err)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("parsing document %s: %w", d.path, err)
	}
	return value, true, nil
}

// Save writes the document wholesale, creating the data directory on
// first use.
func (d *Document[T]) Save(value T) error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir for %s: %w", d.path, err)
	}

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", d.path, err)
	}

	if err := os.WriteFile(d.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", d.path, err)
	}
	return nil
}
