// Package cache implements the bounded metadata cache shared between
// filesystem operations: a true LRU variant backed by
// github.com/golang/groupcache/lru, and a null variant that stores
// nothing. Both satisfy the same Cache interface; the LRU variant tracks
// hit/miss counters, incremented only on Get, while the null variant
// counts nothing.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/vauradkar/pfs/pfserrors"
	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/ppath"
)

// Stats holds the hit/miss counters exposed by a Cache.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache is a bounded key-to-metadata store. Get, Put and Pop are keyed
// by portable path; Get increments the hit or miss counter.
type Cache interface {
	// Get returns the cached record for key, if present.
	Get(key ppath.Path) (pfsstat.FileStat, bool)
	// Put inserts or replaces the record for key, evicting the
	// least-recently-used entry if capacity is exceeded.
	Put(key ppath.Path, value pfsstat.FileStat)
	// Pop removes and returns the record for key, if present.
	Pop(key ppath.Path) (pfsstat.FileStat, bool)
	// Len returns the number of entries currently cached.
	Len() int
	// Stats returns a copy of the current hit/miss counters.
	Stats() Stats
}

// LRUCache is the bounded LRU variant of Cache, guarded by its own
// mutex so it is safe to share across concurrent walkers.
type LRUCache struct {
	mu    sync.Mutex
	inner *lru.Cache
	stats Stats
}

// NewLRUCache creates an LRU cache with the given capacity, which must
// be strictly positive.
func NewLRUCache(capacity int) (*LRUCache, error) {
	if capacity <= 0 {
		return nil, pfserrors.InvalidArgumentf("cache capacity must be positive")
	}
	return &LRUCache{inner: lru.New(capacity)}, nil
}

// Get returns the cached record for key, incrementing hits or misses
// and refreshing key's recency when present.
func (c *LRUCache) Get(key ppath.Path) (pfsstat.FileStat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.inner.Get(key.CacheKey())
	if ok {
		c.stats.Hits++
		return value.(pfsstat.FileStat), true
	}
	c.stats.Misses++
	return pfsstat.FileStat{}, false
}

// Put inserts or replaces the record for key.
func (c *LRUCache) Put(key ppath.Path, value pfsstat.FileStat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(key.CacheKey(), value)
}

// Pop removes and returns the record for key, if present.
func (c *LRUCache) Pop(key ppath.Path) (pfsstat.FileStat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.inner.Get(key.CacheKey())
	if !ok {
		return pfsstat.FileStat{}, false
	}
	c.inner.Remove(key.CacheKey())
	return value.(pfsstat.FileStat), true
}

// Len returns the number of entries currently cached.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

// Stats returns a copy of the current hit/miss counters.
func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// NullCache implements Cache but stores nothing: Get always misses
// (without counting), matching the "do not count hits/misses" rule for
// the null variant.
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() *NullCache { return &NullCache{} }

// Get always returns (zero value, false) and does not affect counters.
func (c *NullCache) Get(ppath.Path) (pfsstat.FileStat, bool) { return pfsstat.FileStat{}, false }

// Put is a no-op.
func (c *NullCache) Put(ppath.Path, pfsstat.FileStat) {}

// Pop always returns (zero value, false).
func (c *NullCache) Pop(ppath.Path) (pfsstat.FileStat, bool) { return pfsstat.FileStat{}, false }

// Len always returns 0.
func (c *NullCache) Len() int { return 0 }

// Stats always returns the zero value.
func (c *NullCache) Stats() Stats { return Stats{} }
