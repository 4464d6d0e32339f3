package utils

import (
	"os"
	"sync"
	"time"
)

// Stamp identifies one version of a file on disk
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// StampOf reads the current stamp of the file at path
func StampOf(path string) (Stamp, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{ModTime: stat.ModTime(), Size: stat.Size()}, nil
}

type cacheEntry[V any] struct {
	value V
	stamp *Stamp // nil for entries not tied to a file
}

// Cache is a concurrency-safe memo table. Entries stored with a file stamp are
// only served while the file on disk still matches it.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]cacheEntry[V]
}

// NewCache creates an empty cache
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]cacheEntry[V])}
}

// Lookup returns the entry for key without checking any file stamp
func (c *Cache[K, V]) Lookup(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return e.value, ok
}

// GetOrCompute returns the entry for key, computing and storing it on a miss.
// compute runs without the lock held, so two callers racing on the same key may
// both compute it; the last one stored wins.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Lookup(key); ok {
		return v
	}

	v := compute()

	c.mu.Lock()
	c.entries[key] = cacheEntry[V]{value: v}
	c.mu.Unlock()
	return v
}

// Fresh returns the entry for key if it was stored for path and the file has not
// changed since. Stale entries are dropped.
func (c *Cache[K, V]) Fresh(key K, path string) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || e.stamp == nil {
		return zero, false
	}

	if now, err := StampOf(path); err == nil && now.ModTime.Equal(e.stamp.ModTime) && now.Size == e.stamp.Size {
		return e.value, true
	}

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return zero, false
}

// StoreFile stores value under key, stamped with the current state of path
func (c *Cache[K, V]) StoreFile(key K, path string, value V) error {
	stamp, err := StampOf(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[V]{value: value, stamp: &stamp}
	return nil
}

// Len returns the number of entries
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
