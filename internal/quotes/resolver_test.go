package quotes

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// stubClient returns canned prices or a canned error and counts calls.
type stubClient struct {
	prices map[string]float64
	err    error
	calls  int
}

func (s *stubClient) FetchPrices(_ context.Context, _ []string) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.prices, nil
}

func newTestResolver(client Client, seed map[string]float64) *Resolver {
	return NewResolver(client, NewCache(seed), zap.NewNop().Sugar())
}

func TestResolve_LivePrices(t *testing.T) {
	client := &stubClient{prices: map[string]float64{"AAPL": 200.00, "MSFT": 430.00}}
	r := newTestResolver(client, map[string]float64{"AAPL": 190.50})

	got := r.Resolve(context.Background(), []string{"AAPL", "MSFT"})
	if got["AAPL"] != 200.00 || got["MSFT"] != 430.00 {
		t.Errorf("expected live prices, got %v", got)
	}
	if client.calls != 1 {
		t.Errorf("expected exactly one live attempt, got %d", client.calls)
	}
}

func TestResolve_FallsBackToCacheOnFailure(t *testing.T) {
	client := &stubClient{err: errors.New("quota exhausted")}
	r := newTestResolver(client, map[string]float64{"AAPL": 190.50, "MSFT": 425.00})

	got := r.Resolve(context.Background(), []string{"AAPL", "MSFT"})
	if len(got) != 2 {
		t.Fatalf("expected a price for every requested symbol, got %v", got)
	}
	if got["AAPL"] != 190.50 || got["MSFT"] != 425.00 {
		t.Errorf("expected cached prices, got %v", got)
	}
}

func TestResolve_UnknownSymbolIsZeroNotMissing(t *testing.T) {
	client := &stubClient{prices: map[string]float64{"AAPL": 200.00}}
	r := newTestResolver(client, nil)

	got := r.Resolve(context.Background(), []string{"AAPL", "ZZZZ"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
	price, ok := got["ZZZZ"]
	if !ok {
		t.Fatal("expected ZZZZ present in result")
	}
	if price != 0.0 {
		t.Errorf("expected 0.0 for never-seen symbol, got %v", price)
	}
}

func TestResolve_SuccessfulFetchEnrichesCache(t *testing.T) {
	client := &stubClient{prices: map[string]float64{"AAPL": 205.00}}
	r := newTestResolver(client, nil)

	r.Resolve(context.Background(), []string{"AAPL"})

	// Subsequent full outage still serves the price learned above.
	client.prices = nil
	client.err = errors.New("upstream down")
	got := r.Resolve(context.Background(), []string{"AAPL"})
	if got["AAPL"] != 205.00 {
		t.Errorf("expected cache fallback at 205.00, got %v", got)
	}
}

func TestResolve_PartialResponseFillsFromCache(t *testing.T) {
	// Live fetch succeeds but covers only AAPL; MSFT comes from the cache.
	client := &stubClient{prices: map[string]float64{"AAPL": 200.00}}
	r := newTestResolver(client, map[string]float64{"MSFT": 425.00})

	got := r.Resolve(context.Background(), []string{"AAPL", "MSFT"})
	if got["AAPL"] != 200.00 {
		t.Errorf("expected live AAPL at 200.00, got %v", got["AAPL"])
	}
	if got["MSFT"] != 425.00 {
		t.Errorf("expected cached MSFT at 425.00, got %v", got["MSFT"])
	}
}

func TestResolve_DisjointSetsConverge(t *testing.T) {
	// Resolving one batch teaches the cache symbols a later failing batch needs.
	client := &stubClient{prices: map[string]float64{"AAPL": 200.00, "TSLA": 250.00}}
	r := newTestResolver(client, nil)
	r.Resolve(context.Background(), []string{"AAPL", "TSLA"})

	client.err = errors.New("upstream down")
	got := r.Resolve(context.Background(), []string{"TSLA"})
	if got["TSLA"] != 250.00 {
		t.Errorf("expected TSLA served from enriched cache, got %v", got)
	}
}

func TestResolve_DedupesAndDropsEmptySymbols(t *testing.T) {
	client := &stubClient{prices: map[string]float64{"AAPL": 200.00}}
	r := newTestResolver(client, nil)

	got := r.Resolve(context.Background(), []string{"AAPL", "", "AAPL"})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %v", got)
	}
	if _, ok := got[""]; ok {
		t.Error("empty symbol must not appear in the result")
	}
}

func TestResolve_EmptyInputSkipsFetch(t *testing.T) {
	client := &stubClient{}
	r := newTestResolver(client, nil)

	got := r.Resolve(context.Background(), nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if client.calls != 0 {
		t.Errorf("expected no live attempt for empty input, got %d", client.calls)
	}
}

func TestResolve_NeverPanicsOnNilLiveMap(t *testing.T) {
	client := &stubClient{prices: nil}
	r := newTestResolver(client, map[string]float64{"AAPL": 190.50})

	got := r.Resolve(context.Background(), []string{"AAPL"})
	if got["AAPL"] != 190.50 {
		t.Errorf("expected cached fallback when live map is empty, got %v", got)
	}
}
