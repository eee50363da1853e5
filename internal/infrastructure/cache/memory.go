package cache

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cartwise/backend/internal/domain"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	Value      domain.RemoteCategory
	Expiration time.Time // zero means the item never expires
	seq        uint64
}

func (i cacheItem) expired(now time.Time) bool {
	return !i.Expiration.IsZero() && now.After(i.Expiration)
}

// Options controls the eviction policy of a MemoryCache
type Options struct {
	// TTL is how long an entry stays readable. Zero keeps entries forever.
	TTL time.Duration
	// MaxEntries bounds the cache size. Zero means unbounded. When full, the
	// oldest inserted entry is evicted.
	MaxEntries int
	// CleanupInterval is how often expired entries are swept. Defaults to 10 minutes.
	CleanupInterval time.Duration
}

// MemoryCache is a thread-safe in-memory store of remote categories with TTL
// and size bounds
type MemoryCache struct {
	data    map[string]cacheItem
	mutex   sync.RWMutex
	options Options
	nextSeq uint64
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup goroutine
func NewMemoryCache(options Options) *MemoryCache {
	if options.CleanupInterval <= 0 {
		options.CleanupInterval = 10 * time.Minute
	}

	cache := &MemoryCache{
		data:    make(map[string]cacheItem),
		options: options,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	if options.TTL > 0 {
		go cache.cleanupExpired()
	}

	return cache
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (domain.RemoteCategory, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || item.expired(c.now()) {
		return domain.RemoteCategory{}, domain.ErrCacheMiss
	}

	return item.Value, nil
}

// Set stores a value, replacing any previous value under the same key
func (c *MemoryCache) Set(ctx context.Context, key string, value domain.RemoteCategory) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.data[key]; !exists && c.options.MaxEntries > 0 && len(c.data) >= c.options.MaxEntries {
		c.evictOldestLocked()
	}

	var expiration time.Time
	if c.options.TTL > 0 {
		expiration = c.now().Add(c.options.TTL)
	}

	c.nextSeq++
	c.data[key] = cacheItem{
		Value:      value,
		Expiration: expiration,
		seq:        c.nextSeq,
	}

	return nil
}

// Values returns every live value, oldest insert first
func (c *MemoryCache) Values(ctx context.Context) []domain.RemoteCategory {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	now := c.now()
	items := make([]cacheItem, 0, len(c.data))
	for _, item := range c.data {
		if !item.expired(now) {
			items = append(items, item)
		}
	}

	// Insertion order keeps id scans deterministic
	sortBySeq(items)

	values := make([]domain.RemoteCategory, 0, len(items))
	for _, item := range items {
		values = append(values, item.Value)
	}
	return values
}

// evictOldestLocked drops expired entries, or the oldest one if none expired.
// Caller must hold the write lock.
func (c *MemoryCache) evictOldestLocked() {
	now := c.now()
	oldestKey := ""
	var oldestSeq uint64
	removed := false

	for key, item := range c.data {
		if item.expired(now) {
			delete(c.data, key)
			removed = true
			continue
		}
		if oldestKey == "" || item.seq < oldestSeq {
			oldestKey = key
			oldestSeq = item.seq
		}
	}

	if !removed && oldestKey != "" {
		delete(c.data, oldestKey)
	}
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(c.options.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mutex.Lock()
			now := c.now()
			for key, item := range c.data {
				if item.expired(now) {
					delete(c.data, key)
				}
			}
			c.mutex.Unlock()
		}
	}
}

// Close stops the cleanup goroutine. The cache stays usable afterwards.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

// Size returns the number of stored items, including expired ones not yet swept
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func sortBySeq(items []cacheItem) {
	slices.SortFunc(items, func(a, b cacheItem) int {
		return cmp.Compare(a.seq, b.seq)
	})
}
