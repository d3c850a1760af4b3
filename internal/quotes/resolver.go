package quotes

import (
	"context"

	"go.uber.org/zap"
)

// Client fetches live prices for a batch of symbols.
type Client interface {
	FetchPrices(ctx context.Context, symbols []string) (map[string]float64, error)
}

// Resolver turns a set of symbols into best-effort current prices. It makes
// at most one live attempt per call and absorbs every upstream failure by
// falling back to the last-known-good cache, so resolution never returns an
// error to its caller.
type Resolver struct {
	client Client
	cache  *Cache
	logger *zap.SugaredLogger
}

// NewResolver creates a resolver over the given quote client and price cache.
func NewResolver(client Client, cache *Cache, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{client: client, cache: cache, logger: logger}
}

// Cache exposes the resolver-owned price cache.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns a price for every requested symbol: live when the upstream
// answers, the cached last-known-good price when it does not, and 0.0 for a
// symbol neither has ever seen. The result is total over the deduplicated
// non-empty input symbols.
//
// Live prices are written into the cache before the fallback fill, so a call
// that resolves only part of a batch still enriches the cache for the symbols
// it did get; repeated calls converge toward full live coverage.
//
// A returned 0.0 means "no price has ever been observed" just as much as it
// means a literal zero quote. Nothing distinguishes the two; callers must
// treat 0.0 as unknown, not worthless.
func (r *Resolver) Resolve(ctx context.Context, symbols []string) map[string]float64 {
	valid := dedupe(symbols)
	result := make(map[string]float64, len(valid))
	if len(valid) == 0 {
		return result
	}

	live, err := r.client.FetchPrices(ctx, valid)
	if err != nil {
		r.logger.Warnw("live quote fetch failed, serving cached prices",
			"symbols", len(valid),
			"error", err,
		)
	} else {
		r.cache.BulkUpsert(live)
		for symbol, price := range live {
			result[symbol] = price
		}
	}

	for _, symbol := range valid {
		if _, ok := result[symbol]; ok {
			continue
		}
		if cached, ok := r.cache.Get(symbol); ok {
			result[symbol] = cached
		} else {
			result[symbol] = 0.0
		}
	}

	return result
}

// dedupe drops empty symbols and duplicates, preserving first-seen order.
func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	var out []string
	for _, symbol := range symbols {
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		out = append(out, symbol)
	}
	return out
}
