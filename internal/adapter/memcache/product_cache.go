package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/repository"
)

// cleanupInterval is how often expired entries are swept out.
const cleanupInterval = 30 * time.Second

type cacheEntry struct {
	product   entity.Product
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// ProductCache is an in-memory implementation of
// repository.ProductDetailCache. The session keeps no external state,
// so cached products live in a map guarded by a RWMutex; a background
// sweep drops expired entries between reads.
type ProductCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewProductCache() *ProductCache {
	c := &ProductCache{
		entries:     make(map[string]cacheEntry),
		stopCleanup: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

func (c *ProductCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *ProductCache) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, id)
		}
	}
}

// Get returns a copy of the cached product, or repository.ErrNotFound
// on a miss or an expired entry.
func (c *ProductCache) Get(_ context.Context, productID string) (*entity.Product, error) {
	c.mu.RLock()
	entry, ok := c.entries[productID]
	c.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return nil, repository.ErrNotFound
	}
	product := entry.product
	return &product, nil
}

func (c *ProductCache) Set(_ context.Context, productID string, product *entity.Product, ttl time.Duration) error {
	if product == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[productID] = cacheEntry{
		product:   *product,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (c *ProductCache) Delete(_ context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, productID)
	return nil
}

// Close stops the background sweep and waits for it to finish.
func (c *ProductCache) Close() error {
	close(c.stopCleanup)
	c.wg.Wait()
	return nil
}
