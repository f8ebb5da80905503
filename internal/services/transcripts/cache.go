package transcripts

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a transcript is served without a
// fresh fetch
const DefaultCacheTTL = 24 * time.Hour

// Cache maps video identifiers to previously acquired results for a
// bounded time. Expiry is lazy: an expired entry is treated as absent
// on reads but stays in the map until overwritten or cleared. There is
// no background sweeper; the working set is a handful of videos, not a
// general purpose store.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	result   Result
	storedAt time.Time
}

// NewCache creates a cache with the given TTL, falling back to the
// default when non-positive
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored result for the identifier while it is still
// within the TTL window. Expired entries read as absent.
func (c *Cache) Get(videoID string) (Result, bool) {
	c.mu.RLock()
	entry, exists := c.entries[videoID]
	c.mu.RUnlock()

	if !exists {
		return Result{}, false
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		return Result{}, false
	}

	return entry.result, true
}

// Put stores a result under the identifier, replacing any previous
// entry. Concurrent writers to the same key race with last-write-wins,
// which is harmless here.
func (c *Cache) Put(videoID string, result Result) {
	c.mu.Lock()
	c.entries[videoID] = cacheEntry{
		result:   result,
		storedAt: c.now(),
	}
	c.mu.Unlock()
}

// Clear removes every entry regardless of expiry state and returns the
// number removed
func (c *Cache) Clear() int {
	c.mu.Lock()
	removed := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
	return removed
}

// Len reports the number of stored entries, expired ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
