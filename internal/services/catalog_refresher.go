package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"papertrade/internal/models"
	"papertrade/internal/quotes"
	"papertrade/internal/store"
)

// CatalogClient downloads the upstream stock reference list.
type CatalogClient interface {
	FetchStockList(ctx context.Context) ([]quotes.StockListing, error)
}

// CatalogRefresher keeps the stock reference catalog reasonably current. The
// catalog is refreshed at startup when older than maxAge and then on a cron
// schedule; a failed download is logged and the existing catalog stays in
// place.
type CatalogRefresher struct {
	client CatalogClient
	store  *store.CatalogStore
	maxAge time.Duration
	logger *zap.SugaredLogger
}

// NewCatalogRefresher creates a refresher for the given catalog store.
func NewCatalogRefresher(client CatalogClient, st *store.CatalogStore, maxAge time.Duration, logger *zap.SugaredLogger) *CatalogRefresher {
	return &CatalogRefresher{client: client, store: st, maxAge: maxAge, logger: logger}
}

// RefreshIfStale refreshes the catalog when it is empty or older than maxAge.
func (r *CatalogRefresher) RefreshIfStale(ctx context.Context) error {
	updated, err := r.store.LastUpdated()
	if err != nil {
		return err
	}
	if !updated.IsZero() {
		age := time.Since(updated)
		if age < r.maxAge {
			r.logger.Infow("stock catalog is fresh, skipping download", "age", age.Round(time.Minute))
			return nil
		}
		r.logger.Infow("stock catalog is stale, refetching", "age", age.Round(time.Minute))
	}
	return r.Refresh(ctx)
}

// Refresh downloads the upstream catalog and swaps the stored one for it.
func (r *CatalogRefresher) Refresh(ctx context.Context) error {
	listings, err := r.client.FetchStockList(ctx)
	if err != nil {
		return err
	}

	refs := make([]models.StockReference, len(listings))
	for i, listing := range listings {
		refs[i] = models.StockReference{Symbol: listing.Symbol, Name: listing.Name}
	}
	if err := r.store.ReplaceAll(refs); err != nil {
		return err
	}

	r.logger.Infow("stock catalog refreshed", "entries", len(refs))
	return nil
}

// Start schedules periodic refreshes with the given cron expression and
// returns the started scheduler so the caller can stop it on shutdown.
func (r *CatalogRefresher) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := r.Refresh(context.Background()); err != nil {
			r.logger.Warnw("scheduled catalog refresh failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
