package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileGraphCache is a JSON file-backed GraphCacheService: one file per key
// under dir, named "<key>.json".
type FileGraphCache struct {
	dir    string
	logger *log.Logger
}

var _ GraphCacheService = (*FileGraphCache)(nil)

// NewFileGraphCache creates dir (and any missing parents) and returns a
// cache rooted there. logger defaults to log.Default() when nil.
func NewFileGraphCache(dir string, logger *log.Logger) (*FileGraphCache, error) {
	if logger == nil {
		logger = log.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating cache dir %s: %w", dir, err)
	}
	logger.Printf("cache: file cache ready at %s", dir)

	return &FileGraphCache{dir: dir, logger: logger}, nil
}

func (c *FileGraphCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get reads and decodes the cached entry for key. The second return value
// is false on a cache miss; it is not an error.
func (c *FileGraphCache) Get(_ context.Context, key string) (*graphEntry, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		c.logger.Printf("cache: miss %s", key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: reading %s: %w", key, err)
	}

	entry, err := unmarshalEntry(data)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decoding %s: %w", key, err)
	}

	c.logger.Printf("cache: hit %s (%d nodes, %d edges)", key, len(entry.Nodes), len(entry.Edges))

	return &entry, true, nil
}

// Set encodes graph as JSON and writes it to key's file, overwriting any
// existing entry.
func (c *FileGraphCache) Set(_ context.Context, key string, graph graphEntrySource) error {
	entry := entryFromGraph(graph)

	data, err := marshalEntry(entry)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}

	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", key, err)
	}

	c.logger.Printf("cache: stored %s (%d nodes, %d edges)", key, len(entry.Nodes), len(entry.Edges))

	return nil
}

// Delete removes key's cache file. Deleting a missing key is not an error.
func (c *FileGraphCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cache: deleting %s: %w", key, err)
	}

	c.logger.Printf("cache: deleted %s", key)

	return nil
}

// ClearAll removes every cached entry and returns how many files were
// removed.
func (c *FileGraphCache) ClearAll(_ context.Context) (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("cache: listing cache dir: %w", err)
	}

	count := 0
	for _, f := range matches {
		if err := os.Remove(f); err != nil {
			c.logger.Printf("cache: failed to remove %s: %v", f, err)
			continue
		}
		count++
	}

	c.logger.Printf("cache: cleared %d entries", count)

	return count, nil
}
