package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "papertrade/internal/errors"
	"papertrade/internal/services"
)

// PortfolioHandler handles portfolio viewing and trading requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// BuyStockRequest represents the request payload for buying shares.
type BuyStockRequest struct {
	Symbol   string  `json:"symbol" binding:"required,ticker"`
	Name     string  `json:"name" binding:"required,min=1,max=200"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

// SellStockRequest represents the request payload for selling shares.
type SellStockRequest struct {
	Symbol   string `json:"symbol" binding:"required,ticker"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// GetPortfolio returns the user's holdings valued at current prices.
// @Summary     Get portfolio
// @Description Get the authenticated user's holdings with best-effort current prices, total value, and total gain
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioView "Aggregated portfolio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// BuyStock purchases shares for the authenticated user.
// @Summary     Buy shares
// @Description Add the requested number of shares to the user's holding and persist it
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BuyStockRequest true "Purchase details"
// @Success     200 {object} map[string]interface{} "Purchase confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/buy [post]
func (h *PortfolioHandler) BuyStock(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BuyStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMalformedRequest, err.Error()))
		return
	}

	if err := h.portfolioService.Buy(c.Request.Context(), username, req.Symbol, req.Name, req.Price, req.Quantity); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock purchased successfully",
	})
}

// SellStock sells shares for the authenticated user.
// @Summary     Sell shares
// @Description Remove the requested number of shares, oldest purchases first; fails without partial effect when the user owns fewer shares
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SellStockRequest true "Sale details"
// @Success     200 {object} map[string]interface{} "Sale confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient shares"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/sell [post]
func (h *PortfolioHandler) SellStock(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SellStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMalformedRequest, err.Error()))
		return
	}

	if err := h.portfolioService.Sell(c.Request.Context(), username, req.Symbol, req.Quantity); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock sold successfully",
	})
}
