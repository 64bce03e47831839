package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Seed is the read-only JSON file backend of a fallback store. One file
// per collection, named after it, under the data directory. Normal CRUD
// never writes here.
type Seed[T any] struct {
	path string
}

func NewSeed[T any](dataDir, collection string) *Seed[T] {
	return &Seed[T]{path: filepath.Join(dataDir, collection+".json")}
}

// Path returns the location of the seed file.
func (s *Seed[T]) Path() string {
	return s.path
}

// Load reads and parses the seed file. A missing file is not an error;
// present is false and the caller decides what that means.
func (s *Seed[T]) Load() ([]T, bool, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading seed %s: %w", s.path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("parsing seed %s: %w", s.path, err)
	}
	return records, true, nil
}
