package services

import (
	"context"
	"strings"

	"papertrade/internal/models"
	"papertrade/internal/pagination"
	"papertrade/internal/store"
)

// searchLimit caps the number of catalog matches returned per query.
const searchLimit = 20

// popularSymbols is the default result set for an empty search query.
var popularSymbols = []string{"AAPL", "MSFT", "TSLA", "GOOG", "AMZN", "NVDA"}

// stockService handles stock catalog search and price lookups.
type stockService struct {
	catalog  *store.CatalogStore
	resolver PriceResolver
}

// NewStockService creates a new StockServicer.
func NewStockService(catalog *store.CatalogStore, resolver PriceResolver) StockServicer {
	return &stockService{catalog: catalog, resolver: resolver}
}

// Search returns catalog entries matching the query with best-effort current
// prices attached via one batched resolver call. An empty query returns the
// popular default set instead of the whole catalog.
func (s *stockService) Search(ctx context.Context, query string) ([]StockQuote, error) {
	var (
		refs []models.StockReference
		err  error
	)
	if strings.TrimSpace(query) == "" {
		refs, err = s.catalog.BySymbols(popularSymbols)
	} else {
		refs, err = s.catalog.Search(strings.TrimSpace(query), searchLimit)
	}
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(refs))
	for i, ref := range refs {
		symbols[i] = ref.Symbol
	}
	prices := s.resolver.Resolve(ctx, symbols)

	quotes := make([]StockQuote, len(refs))
	for i, ref := range refs {
		quotes[i] = StockQuote{
			Symbol: ref.Symbol,
			Name:   ref.Name,
			Price:  prices[ref.Symbol],
		}
	}
	return quotes, nil
}

// List returns one page of the full catalog.
func (s *stockService) List(page pagination.PageRequest) (*pagination.PageResponse[models.StockReference], error) {
	return s.catalog.List(page)
}
