package cache

import (
	"sync"
	"time"
)

// CacheEntry represents a cached item with expiration
type CacheEntry struct {
	Value      any
	Expiration time.Time
}

// IsExpired checks if the cache entry has expired
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return now.After(e.Expiration)
}

// Stats counts cache lookups since creation or the last Clear
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// MemoryCache implements a simple in-memory cache with a fixed TTL. Expired
// entries are swept periodically until Stop is called.
type MemoryCache struct {
	items  map[string]*CacheEntry
	mutex  sync.RWMutex
	ttl    time.Duration
	hits   int64
	misses int64

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{
		items: make(map[string]*CacheEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
		now:   time.Now,
	}

	go cache.cleanupExpired(time.Minute * 5)

	return cache
}

// Set stores a value in the cache
func (c *MemoryCache) Set(key string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &CacheEntry{
		Value:      value,
		Expiration: c.now().Add(c.ttl),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.items[key]
	if !exists || entry.IsExpired(c.now()) {
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.Value, true
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// Clear removes all items from the cache and resets its counters
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]*CacheEntry)
	c.hits, c.misses = 0, 0
}

// Stats returns lookup counters and the current number of entries
func (c *MemoryCache) Stats() Stats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return Stats{Hits: c.hits, Misses: c.misses, Size: len(c.items)}
}

// Stop ends the background sweep. It is safe to call more than once.
func (c *MemoryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *MemoryCache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
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

func (c *MemoryCache) removeExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	for key, entry := range c.items {
		if entry.IsExpired(now) {
			delete(c.items, key)
		}
	}
}

// PageCache stores rendered pages of the catalog site
type PageCache struct {
	*MemoryCache
}

// NewPageCache creates a page cache. Pages are also dropped whenever the
// catalog is reloaded, so the TTL only bounds memory for rarely used pages.
func NewPageCache() *PageCache {
	return &PageCache{
		MemoryCache: NewMemoryCache(15 * time.Minute),
	}
}

// SetPage caches rendered page bytes
func (pc *PageCache) SetPage(key string, page []byte) {
	pc.Set(key, page)
}

// GetPage retrieves cached page bytes
func (pc *PageCache) GetPage(key string) ([]byte, bool) {
	value, exists := pc.Get(key)
	if !exists {
		return nil, false
	}

	page, ok := value.([]byte)
	return page, ok
}
