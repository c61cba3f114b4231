package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mealdex/dietengine/internal/domain"
)

// cacheItem represents a single cached label with expiration
type cacheItem struct {
	label      domain.RecipeLabel
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory label cache with TTL support.
// Labels are pure functions of (ingredients, taxonomy version, policy), so
// long TTLs are safe as long as keys carry the taxonomy version.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory label cache
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go c.cleanupExpired()

	return c
}

// Get retrieves a label from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.RecipeLabel, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	label := item.label
	return &label, nil
}

// Set stores a label in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, label *domain.RecipeLabel, ttl time.Duration) error {
	if label == nil {
		return domain.ErrCacheMiss
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		label:      *label,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a label from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(item.expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
