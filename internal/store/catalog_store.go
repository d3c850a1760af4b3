package store

import (
	"time"

	"gorm.io/gorm"

	apperrors "papertrade/internal/errors"
	"papertrade/internal/models"
	"papertrade/internal/pagination"
)

// CatalogStore persists the tradable-symbol reference catalog.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store over the given database.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ReplaceAll swaps the entire catalog for the given listings in one
// transaction. Called by the refresher after a successful upstream download;
// a failed download never reaches this point, so a stale catalog survives
// upstream outages.
func (s *CatalogStore) ReplaceAll(refs []models.StockReference) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.StockReference{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&refs, 500).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Search returns catalog entries whose symbol or name contains the query,
// case-insensitive, limited to limit rows.
func (s *CatalogStore) Search(query string, limit int) ([]models.StockReference, error) {
	pattern := "%" + query + "%"
	var refs []models.StockReference
	if err := s.db.
		Where("LOWER(symbol) LIKE LOWER(?) OR LOWER(name) LIKE LOWER(?)", pattern, pattern).
		Order("symbol").
		Limit(limit).
		Find(&refs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return refs, nil
}

// BySymbols returns the catalog entries for the given symbols, preserving the
// requested order. Symbols missing from the catalog are skipped.
func (s *CatalogStore) BySymbols(symbols []string) ([]models.StockReference, error) {
	var refs []models.StockReference
	if err := s.db.Where("symbol IN ?", symbols).Find(&refs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	bySymbol := make(map[string]models.StockReference, len(refs))
	for _, ref := range refs {
		bySymbol[ref.Symbol] = ref
	}
	ordered := make([]models.StockReference, 0, len(refs))
	for _, symbol := range symbols {
		if ref, ok := bySymbol[symbol]; ok {
			ordered = append(ordered, ref)
		}
	}
	return ordered, nil
}

// List returns a page of the catalog ordered by symbol.
func (s *CatalogStore) List(page pagination.PageRequest) (*pagination.PageResponse[models.StockReference], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.StockReference{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var refs []models.StockReference
	if err := s.db.Scopes(pagination.Paginate(page)).Order("symbol").Find(&refs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(refs, page.Page, page.PageSize, total)
	return &resp, nil
}

// LastUpdated returns the most recent catalog row timestamp, or the zero time
// when the catalog is empty. Drives the staleness check in the refresher.
func (s *CatalogStore) LastUpdated() (time.Time, error) {
	var newest models.StockReference
	err := s.db.Order("updated_at DESC").Limit(1).Find(&newest).Error
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return newest.UpdatedAt, nil
}
