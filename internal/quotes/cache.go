// Package quotes resolves ticker symbols into best-effort current prices,
// backed by an upstream quote source and a last-known-good price cache.
package quotes

import "sync"

// Cache is the process-wide memory of the most recent successfully observed
// price per symbol. Entries are seeded once, overwritten in place whenever a
// live fetch succeeds, and never deleted; staleness is unbounded and silent.
// Reads and writes are safe for concurrent use, and each update is atomic per
// symbol (there is no transactional guarantee across the whole map).
type Cache struct {
	mu     sync.RWMutex
	prices map[string]float64
}

// NewCache creates a cache pre-populated with the given seed prices.
func NewCache(seed map[string]float64) *Cache {
	prices := make(map[string]float64, len(seed))
	for symbol, price := range seed {
		prices[symbol] = price
	}
	return &Cache{prices: prices}
}

// Get returns the last known price for symbol and whether one has ever been
// observed.
func (c *Cache) Get(symbol string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	price, ok := c.prices[symbol]
	return price, ok
}

// Upsert records a freshly observed price for symbol, overwriting any
// previous value.
func (c *Cache) Upsert(symbol string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[symbol] = price
}

// BulkUpsert records a batch of freshly observed prices under one lock
// acquisition.
func (c *Cache) BulkUpsert(prices map[string]float64) {
	if len(prices) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for symbol, price := range prices {
		c.prices[symbol] = price
	}
}

// Snapshot returns a copy of the current cache contents.
func (c *Cache) Snapshot() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.prices))
	for symbol, price := range c.prices {
		out[symbol] = price
	}
	return out
}
