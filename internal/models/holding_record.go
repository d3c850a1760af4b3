package models

// HoldingRecord is the persisted form of one aggregated position: one row per
// (username, symbol). Rows are the serialization unit for holdings; a user's
// rows are rewritten wholesale after every trade, so the table always reflects
// the last completed buy or sell (last write wins).
type HoldingRecord struct {
	Base
	Username      string  `gorm:"not null;uniqueIndex:uq_holdings_user_symbol" json:"username"`
	Symbol        string  `gorm:"not null;uniqueIndex:uq_holdings_user_symbol" json:"symbol"`
	Name          string  `gorm:"not null" json:"name"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	Price         float64 `gorm:"not null" json:"price"`
	PurchasePrice float64 `gorm:"not null" json:"purchasePrice"`
}

// TableName overrides the default pluralization.
func (HoldingRecord) TableName() string { return "holdings" }
