package registry

import (
	"sync"
	"time"
)

// Entry is one cached normalization result.
type Entry struct {
	Records   []Record
	FetchedAt time.Time
}

// Cache stores normalized records per source key. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(key string) (*Entry, bool)
	Put(key string, entry *Entry)
	Delete(key string)
	Flush()
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryCache returns the default in-process cache.
func NewMemoryCache() Cache {
	return &memoryCache{
		entries: make(map[string]*Entry),
	}
}

func (c *memoryCache) Get(key string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *memoryCache) Put(key string, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
}

func (c *memoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *memoryCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Entry)
}
