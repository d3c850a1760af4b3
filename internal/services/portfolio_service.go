package services

import (
	"context"
	"fmt"
	"sync"

	apperrors "papertrade/internal/errors"
	"papertrade/internal/models"
	"papertrade/internal/store"
)

// portfolioService owns the in-memory holdings for all users. Holdings are
// loaded wholesale from the store at construction and written back, one user
// at a time, after every completed trade. A single mutex serializes all
// mutations so buy, sell, and the read side of aggregation never interleave
// on the same holding.
type portfolioService struct {
	mu       sync.Mutex
	holdings map[string]*models.Holding
	store    *store.HoldingsStore
	resolver PriceResolver
}

// NewPortfolioService creates a PortfolioServicer with holdings rebuilt from
// the persisted rows: a row of quantity N expands back into N lots at the
// row's average purchase price, carrying the last saved market price as the
// lots' price hint.
func NewPortfolioService(st *store.HoldingsStore, resolver PriceResolver) (PortfolioServicer, error) {
	byUser, err := st.LoadAll()
	if err != nil {
		return nil, err
	}

	holdings := make(map[string]*models.Holding, len(byUser))
	for username, rows := range byUser {
		holding := models.NewHolding()
		for _, row := range rows {
			holding.AddLots(row.Symbol, row.Name, row.PurchasePrice, row.Price, row.Quantity)
		}
		holdings[username] = holding
	}

	return &portfolioService{
		holdings: holdings,
		store:    st,
		resolver: resolver,
	}, nil
}

// GetPortfolio aggregates the user's lots into per-symbol rows priced by a
// single resolver call covering every distinct held symbol. A user with no
// holding yet gets an empty view, not an error.
func (s *portfolioService) GetPortfolio(ctx context.Context, username string) (*PortfolioView, error) {
	// Snapshot the lots under the lock, then resolve prices without it so a
	// slow upstream fetch does not block trades.
	s.mu.Lock()
	var snapshot *models.Holding
	if holding, ok := s.holdings[username]; ok {
		snapshot = models.HoldingFromLots(holding.Lots())
	} else {
		snapshot = models.NewHolding()
	}
	s.mu.Unlock()

	prices := s.resolver.Resolve(ctx, snapshot.Symbols())
	rows := snapshot.Aggregate(prices)
	if rows == nil {
		rows = []models.AggregatedRow{}
	}
	totalValue, totalGain := models.Totals(rows)

	return &PortfolioView{
		Username:   username,
		Holdings:   rows,
		TotalValue: totalValue,
		TotalGain:  totalGain,
	}, nil
}

// Buy appends quantity lots at unitPrice and persists the user's rows. There
// is no funds check: every valid purchase succeeds.
func (s *portfolioService) Buy(ctx context.Context, username, symbol, name string, unitPrice float64, quantity int) error {
	if err := validateOrder(symbol, quantity); err != nil {
		return err
	}
	if unitPrice <= 0 {
		return apperrors.WithMessage(apperrors.ErrMalformedRequest, "price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a copy and commit only after the store accepts the rewrite, so
	// a persistence failure leaves the in-memory holding untouched.
	next := s.cloneHolding(username)
	next.Buy(symbol, name, unitPrice, quantity)

	if err := s.store.SaveUser(username, recordsFromHolding(next)); err != nil {
		return err
	}
	s.holdings[username] = next
	return nil
}

// Sell removes quantity lots of symbol, oldest first, and persists the user's
// rows. The removal is all-or-nothing: a sale exceeding the owned count fails
// with ErrInsufficientHoldings and the holding is left unmodified.
func (s *portfolioService) Sell(ctx context.Context, username, symbol string, quantity int) error {
	if err := validateOrder(symbol, quantity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneHolding(username)
	if !next.Sell(symbol, quantity) {
		return apperrors.WithMessage(apperrors.ErrInsufficientHoldings,
			fmt.Sprintf("Cannot sell %d share(s) of %s: only %d owned", quantity, symbol, next.Quantity(symbol)))
	}

	if err := s.store.SaveUser(username, recordsFromHolding(next)); err != nil {
		return err
	}
	s.holdings[username] = next
	return nil
}

// cloneHolding returns a mutable copy of the user's holding, empty when the
// user has never traded. Callers must hold s.mu.
func (s *portfolioService) cloneHolding(username string) *models.Holding {
	if holding, ok := s.holdings[username]; ok {
		return models.HoldingFromLots(holding.Lots())
	}
	return models.NewHolding()
}

// validateOrder rejects malformed buy/sell input before any mutation.
func validateOrder(symbol string, quantity int) error {
	if symbol == "" {
		return apperrors.WithMessage(apperrors.ErrMalformedRequest, "symbol is required")
	}
	if quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrMalformedRequest, "quantity must be positive")
	}
	return nil
}

// recordsFromHolding projects a holding into its persisted rows: one row per
// symbol with the average purchase price and the lots' average price hint.
func recordsFromHolding(h *models.Holding) []models.HoldingRecord {
	rows := h.Aggregate(nil)
	records := make([]models.HoldingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.HoldingRecord{
			Symbol:        row.Symbol,
			Name:          row.Name,
			Quantity:      row.Quantity,
			Price:         row.CurrentPrice,
			PurchasePrice: row.AvgPurchasePrice,
		})
	}
	return records
}
