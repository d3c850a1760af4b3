package models

// StockReference is one entry in the tradable-symbol catalog (symbol plus
// display name). The catalog is reference data mirrored from the upstream
// quote source and refreshed in bulk; it carries no pricing.
type StockReference struct {
	Base
	Symbol string `gorm:"not null;uniqueIndex" json:"symbol"`
	Name   string `gorm:"not null" json:"name"`
}

// TableName overrides the default pluralization.
func (StockReference) TableName() string { return "stock_references" }
