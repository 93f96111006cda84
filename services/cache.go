package services

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

type cacheEntry struct {
	response string
	storedAt time.Time
}

// ResponseCache maps exact question text to a previously shaped response.
// Entries expire after a fixed window; a periodic sweep removes them and
// enforces the capacity bound. Safe for concurrent use.
type ResponseCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	expiration time.Duration
	maxEntries int
	now        func() time.Time
}

// NewResponseCache creates an empty cache with the given expiration window
// and capacity bound.
func NewResponseCache(expiration time.Duration, maxEntries int) *ResponseCache {
	return &ResponseCache{
		entries:    make(map[string]cacheEntry),
		expiration: expiration,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the stored response for key if present and not expired.
// Expired entries are deleted lazily.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.now().Sub(entry.storedAt) >= c.expiration {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, ok := c.entries[key]; ok && c.now().Sub(current.storedAt) >= c.expiration {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.response, true
}

// Set stores the response for key, overwriting any prior entry and
// stamping the current time.
func (c *ResponseCache) Set(key, response string) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{response: response, storedAt: c.now()}
	c.mu.Unlock()
}

// ClearExpired removes all expired entries, then evicts oldest entries
// until the cache fits the capacity bound. Returns the number removed.
func (c *ResponseCache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if now.Sub(entry.storedAt) >= c.expiration {
			delete(c.entries, key)
			removed++
		}
	}

	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		type aged struct {
			key      string
			storedAt time.Time
		}
		all := make([]aged, 0, len(c.entries))
		for key, entry := range c.entries {
			all = append(all, aged{key, entry.storedAt})
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].storedAt.Before(all[j].storedAt)
		})
		for _, a := range all[:len(all)-c.maxEntries] {
			delete(c.entries, a.key)
			removed++
		}
		slog.Warn("Cache over capacity, evicted oldest entries",
			"maxEntries", c.maxEntries,
		)
	}

	return removed
}

// Len returns the current number of entries, expired or not.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
