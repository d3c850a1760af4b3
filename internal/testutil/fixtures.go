package testutil

import (
	"testing"

	"papertrade/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser inserts an active user with the given password hashed at
// MinCost to keep tests fast.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHolding inserts a holdings row for the given user.
func CreateTestHolding(t *testing.T, db *gorm.DB, username, symbol, name string, quantity int, price, purchasePrice float64) *models.HoldingRecord {
	t.Helper()

	rec := &models.HoldingRecord{
		Username:      username,
		Symbol:        symbol,
		Name:          name,
		Quantity:      quantity,
		Price:         price,
		PurchasePrice: purchasePrice,
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return rec
}

// SeedTestCatalog inserts a small set of stock references.
func SeedTestCatalog(t *testing.T, db *gorm.DB) []models.StockReference {
	t.Helper()

	refs := []models.StockReference{
		{Symbol: "AAPL", Name: "Apple Inc"},
		{Symbol: "AMZN", Name: "Amazon.com Inc"},
		{Symbol: "GOOG", Name: "Alphabet Inc"},
		{Symbol: "MSFT", Name: "Microsoft Corporation"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation"},
		{Symbol: "TSLA", Name: "Tesla Inc"},
	}
	if err := db.Create(&refs).Error; err != nil {
		t.Fatalf("failed to seed test catalog: %v", err)
	}
	return refs
}
