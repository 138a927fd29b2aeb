// Package cache provides an in-memory TTL cache for search results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/use-agent/farescan/models"
)

const (
	defaultTTL      = 1 * time.Hour
	cleanupInterval = 5 * time.Minute
)

type entry struct {
	result    *models.SearchResult
	createdAt time.Time
}

// Cache is a thread-safe in-memory cache keyed by search parameters.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	maxEntries int
	stop       chan struct{}
}

// New creates a cache with the given capacity and starts its cleanup loop.
func New(maxEntries int) *Cache {
	c := &Cache{
		entries:    make(map[string]entry),
		maxEntries: maxEntries,
		stop:       make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Key derives the cache key from the parameters that affect a search.
func Key(params models.SearchParams) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%d",
		params.Origin, params.Destination,
		params.DepartureDate, params.ReturnDate,
		params.Passengers)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Get returns a cached result no older than maxAge. A zero maxAge uses the
// default TTL.
func (c *Cache) Get(key string, maxAge time.Duration) (*models.SearchResult, bool) {
	if maxAge <= 0 {
		maxAge = defaultTTL
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Since(e.createdAt) > maxAge {
		return nil, false
	}
	return e.result, true
}

// Set stores a result. At capacity an arbitrary entry is evicted; map
// iteration order supplies the randomness.
func (c *Cache) Set(key string, result *models.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = entry{result: result, createdAt: time.Now()}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup loop.
func (c *Cache) Close() {
	close(c.stop)
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if time.Since(e.createdAt) > defaultTTL {
			delete(c.entries, k)
		}
	}
}
