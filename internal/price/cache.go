package price

import (
	"sync"
	"time"
)

// NativeKey is the cache identifier for the chain's native coin; token
// quotes are keyed by lowercase contract address.
const NativeKey = "NATIVE"

// Quote is a unit USD price for one asset at fetch time.
type Quote struct {
	UnitPriceUSD float64
	FetchedAt    time.Time
}

// Cache holds recent quotes with a passive TTL check on read. Entries are
// overwritten on refresh, never actively evicted. Concurrent writers for
// the same key compute the same value, so last-writer-wins is benign.
type Cache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]Quote

	now func() time.Time // injectable for tests
}

// NewCache creates a quote cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl: ttl,
		m:   make(map[string]Quote),
		now: time.Now,
	}
}

// Get returns a quote only if it is younger than the TTL.
func (c *Cache) Get(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q, ok := c.m[key]
	if !ok || c.now().Sub(q.FetchedAt) >= c.ttl {
		return 0, false
	}
	return q.UnitPriceUSD, true
}

// GetStale returns a quote of any age. Used as a degraded fallback when the
// external source is unreachable.
func (c *Cache) GetStale(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q, ok := c.m[key]
	return q.UnitPriceUSD, ok
}

// Put stores or refreshes a quote.
func (c *Cache) Put(key string, priceUSD float64) {
	c.mu.Lock()
	c.m[key] = Quote{UnitPriceUSD: priceUSD, FetchedAt: c.now()}
	c.mu.Unlock()
}

// Len returns the number of cached quotes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
