// Package filecache memoizes parsed file contents for as long as the file's
// modification time and size stay the same.
package filecache

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Stamp identifies one version of a file on disk.
type Stamp struct {
	ModTime int64 // UnixNano
	Size    int64
}

// Cache holds one parsed value per (path, value type).
type Cache struct {
	mu     sync.RWMutex
	items  map[string]cacheItem
	hits   int
	misses int
}

type cacheItem struct {
	stamp Stamp
	value any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		items: make(map[string]cacheItem),
	}
}

// StatFile returns the current stamp of path.
func StatFile(path string) (Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}
	if info.IsDir() {
		return Stamp{}, fmt.Errorf("%s is a directory", path)
	}
	return Stamp{ModTime: info.ModTime().UnixNano(), Size: info.Size()}, nil
}

// Load returns the parsed contents of path, reusing the previous result when
// the file is unchanged. Parse and read errors are returned and never cached.
func Load[T any](c *Cache, path string, parse func(io.Reader) (T, error)) (T, Stamp, error) {
	var zero T
	key := fmt.Sprintf("%T\x00%s", zero, path)

	stamp, err := StatFile(path)
	if err != nil {
		return zero, Stamp{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if value, ok := c.lookup(key, stamp); ok {
		if typed, ok := value.(T); ok {
			return typed, stamp, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return zero, Stamp{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	value, err := parse(f)
	if err != nil {
		return zero, Stamp{}, fmt.Errorf("parse %s: %w", path, err)
	}

	c.store(key, stamp, value)
	return value, stamp, nil
}

// ReadString is a parse function that returns the whole file as text.
func ReadString(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Cache) lookup(key string, stamp Stamp) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists || item.stamp != stamp {
		c.misses++
		return nil, false
	}
	c.hits++
	return item.value, true
}

func (c *Cache) store(key string, stamp Stamp, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{stamp: stamp, value: value}
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// HitRate returns hits/(hits+misses), or 0 before any lookup.
func (c *Cache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	}
	return 0.0
}
