package services

import (
	"context"

	"papertrade/internal/models"
	"papertrade/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
}

// PortfolioView is the rendering-boundary response for a user's portfolio.
type PortfolioView struct {
	Username   string                 `json:"username"`
	Holdings   []models.AggregatedRow `json:"holdings"`
	TotalValue float64                `json:"totalValue"`
	TotalGain  float64                `json:"totalGain"`
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context, username string) (*PortfolioView, error)
	Buy(ctx context.Context, username, symbol, name string, unitPrice float64, quantity int) error
	Sell(ctx context.Context, username, symbol string, quantity int) error
}

// StockQuote is one stock search result with its resolved price attached.
type StockQuote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// StockServicer defines the contract for stock catalog lookups.
type StockServicer interface {
	Search(ctx context.Context, query string) ([]StockQuote, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.StockReference], error)
}

// PriceResolver resolves symbols into best-effort current prices. It is a
// total function over its input and never fails.
type PriceResolver interface {
	Resolve(ctx context.Context, symbols []string) map[string]float64
}
