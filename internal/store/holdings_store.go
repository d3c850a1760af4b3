// Package store provides the persistence layer for holdings and the stock
// reference catalog.
package store

import (
	"gorm.io/gorm"

	apperrors "papertrade/internal/errors"
	"papertrade/internal/models"
)

// HoldingsStore persists aggregated holding rows keyed by username. The write
// model is deliberately simple: a user's rows are replaced wholesale after
// every trade, so concurrent writers resolve as last write wins.
type HoldingsStore struct {
	db *gorm.DB
}

// NewHoldingsStore creates a holdings store over the given database.
func NewHoldingsStore(db *gorm.DB) *HoldingsStore {
	return &HoldingsStore{db: db}
}

// LoadAll reads every persisted holding row, grouped by username. Called once
// at process start to rebuild the in-memory holdings.
func (s *HoldingsStore) LoadAll() (map[string][]models.HoldingRecord, error) {
	var rows []models.HoldingRecord
	if err := s.db.Order("username, created_at").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byUser := make(map[string][]models.HoldingRecord)
	for _, row := range rows {
		byUser[row.Username] = append(byUser[row.Username], row)
	}
	return byUser, nil
}

// SaveUser replaces the user's persisted rows with the given set inside one
// transaction.
func (s *HoldingsStore) SaveUser(username string, rows []models.HoldingRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Hard delete: soft-deleted rows would collide with the
		// (username, symbol) unique index on re-insert.
		if err := tx.Unscoped().Where("username = ?", username).Delete(&models.HoldingRecord{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].Username = username
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
