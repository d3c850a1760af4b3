package services

import (
	"context"
	"testing"

	"papertrade/internal/pagination"
	"papertrade/internal/store"
	"papertrade/internal/testutil"
)

func TestStockSearch(t *testing.T) {
	t.Run("matches_symbol_and_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedTestCatalog(t, db)
		svc := NewStockService(store.NewCatalogStore(db), &fixedResolver{prices: map[string]float64{"AAPL": 200.00}})

		quotes, err := svc.Search(context.Background(), "apple")
		testutil.AssertNoError(t, err)
		if len(quotes) != 1 {
			t.Fatalf("expected 1 match, got %d", len(quotes))
		}
		if quotes[0].Symbol != "AAPL" {
			t.Errorf("expected AAPL, got %s", quotes[0].Symbol)
		}
		if quotes[0].Price != 200.00 {
			t.Errorf("expected resolved price 200.00, got %v", quotes[0].Price)
		}
	})

	t.Run("empty_query_returns_popular_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedTestCatalog(t, db)
		svc := NewStockService(store.NewCatalogStore(db), &fixedResolver{})

		quotes, err := svc.Search(context.Background(), "   ")
		testutil.AssertNoError(t, err)
		if len(quotes) != 6 {
			t.Fatalf("expected the 6 popular stocks, got %d", len(quotes))
		}
		if quotes[0].Symbol != "AAPL" {
			t.Errorf("expected popular set order to start with AAPL, got %s", quotes[0].Symbol)
		}
	})

	t.Run("no_matches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedTestCatalog(t, db)
		svc := NewStockService(store.NewCatalogStore(db), &fixedResolver{})

		quotes, err := svc.Search(context.Background(), "zzzz-no-such-stock")
		testutil.AssertNoError(t, err)
		if len(quotes) != 0 {
			t.Errorf("expected no matches, got %d", len(quotes))
		}
	})

	t.Run("unpriced_match_gets_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedTestCatalog(t, db)
		svc := NewStockService(store.NewCatalogStore(db), &fixedResolver{})

		quotes, err := svc.Search(context.Background(), "tesla")
		testutil.AssertNoError(t, err)
		if len(quotes) != 1 {
			t.Fatalf("expected 1 match, got %d", len(quotes))
		}
		if quotes[0].Price != 0.0 {
			t.Errorf("expected 0.0 for unpriced symbol, got %v", quotes[0].Price)
		}
	})
}

func TestStockList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	testutil.SeedTestCatalog(t, db)
	svc := NewStockService(store.NewCatalogStore(db), &fixedResolver{})

	page, err := svc.List(pagination.PageRequest{Page: 1, PageSize: 4})
	testutil.AssertNoError(t, err)
	if len(page.Data) != 4 {
		t.Errorf("expected 4 rows on first page, got %d", len(page.Data))
	}
	if page.TotalItems != 6 {
		t.Errorf("expected 6 total items, got %d", page.TotalItems)
	}
	if page.Data[0].Symbol != "AAPL" {
		t.Errorf("expected symbol order starting at AAPL, got %s", page.Data[0].Symbol)
	}
}
