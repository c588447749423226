// Package jsonfile is the flat-file storage backend: one pretty-printed JSON
// document per collection, rewritten in full on every mutation. A missing
// file reads as an empty collection; any other read or parse failure is
// surfaced with the offending path.
//
// Two invocations running at the same time can both read the same snapshot
// and the second save wins, losing the first writer's change. That is an
// accepted limitation of this backend; use the sqlite backend when
// invocations may overlap.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}

func writeCollection[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// maxID returns the highest id among existing records. Insert assigns
// max+1, so an id freed by a delete can be handed out again; display
// numbers, not ids, carry the never-reused guarantee.
func maxID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max
}
