package cache

import (
	"context"
	"sync"
	"time"

	"github.com/retrofy/backend/internal/domain"
)

// snapshot holds one cached view of the full catalog with its expiry.
type snapshot struct {
	products   []domain.Product
	expiration time.Time
}

// MemoryCatalog is a thread-safe in-memory catalog snapshot cache with TTL.
// Callers treat the returned slice as read-only; the search pipeline copies
// before sorting.
type MemoryCatalog struct {
	mutex sync.RWMutex
	snap  *snapshot
}

// NewMemoryCatalog creates an empty catalog cache.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

// Get returns the cached snapshot, or ErrCacheMiss when absent or expired.
func (c *MemoryCatalog) Get(ctx context.Context) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.snap == nil {
		return nil, domain.ErrCacheMiss
	}
	if time.Now().After(c.snap.expiration) {
		return nil, domain.ErrCacheMiss
	}

	return c.snap.products, nil
}

// Set stores a fresh snapshot with the given TTL.
func (c *MemoryCatalog) Set(ctx context.Context, products []domain.Product, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.snap = &snapshot{
		products:   products,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Invalidate drops the snapshot. Mutating endpoints call this so the next
// search re-reads the store.
func (c *MemoryCatalog) Invalidate(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.snap = nil
	return nil
}
