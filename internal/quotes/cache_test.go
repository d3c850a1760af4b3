package quotes

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheSeed(t *testing.T) {
	cache := NewCache(map[string]float64{"AAPL": 190.50, "MSFT": 425.00})

	price, ok := cache.Get("AAPL")
	if !ok || price != 190.50 {
		t.Errorf("expected seeded AAPL at 190.50, got %v (ok=%v)", price, ok)
	}
	if _, ok := cache.Get("ZZZZ"); ok {
		t.Error("expected miss for unseeded symbol")
	}
}

func TestCacheSeedIsCopied(t *testing.T) {
	seed := map[string]float64{"AAPL": 190.50}
	cache := NewCache(seed)
	seed["AAPL"] = 1.00

	if price, _ := cache.Get("AAPL"); price != 190.50 {
		t.Errorf("expected cache isolated from seed map mutation, got %v", price)
	}
}

func TestCacheUpsertOverwrites(t *testing.T) {
	cache := NewCache(map[string]float64{"AAPL": 190.50})
	cache.Upsert("AAPL", 201.25)

	if price, _ := cache.Get("AAPL"); price != 201.25 {
		t.Errorf("expected overwritten price 201.25, got %v", price)
	}
}

func TestCacheBulkUpsert(t *testing.T) {
	cache := NewCache(map[string]float64{"AAPL": 190.50})
	cache.BulkUpsert(map[string]float64{"AAPL": 200.00, "TSLA": 240.00})

	snapshot := cache.Snapshot()
	if snapshot["AAPL"] != 200.00 || snapshot["TSLA"] != 240.00 {
		t.Errorf("unexpected snapshot after bulk upsert: %v", snapshot)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			symbol := fmt.Sprintf("SYM%d", n)
			for j := 0; j < 100; j++ {
				cache.Upsert(symbol, float64(j))
				cache.Get(symbol)
				cache.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	if got := len(cache.Snapshot()); got != 8 {
		t.Errorf("expected 8 symbols after concurrent writes, got %d", got)
	}
}
