package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "papertrade/internal/errors"
	"papertrade/internal/pagination"
	"papertrade/internal/services"
)

// StockHandler handles stock catalog search and listing requests.
type StockHandler struct {
	stockService services.StockServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService services.StockServicer) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// SearchStocks searches the catalog and attaches best-effort prices.
// @Summary     Search stocks
// @Description Search the tradable-symbol catalog by symbol or name; an empty query returns a popular default set
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       q query string false "Search query"
// @Success     200 {object} map[string][]services.StockQuote "Matching stocks with prices"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/search [get]
func (h *StockHandler) SearchStocks(c *gin.Context) {
	quotes, err := h.stockService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if quotes == nil {
		quotes = []services.StockQuote{}
	}

	c.JSON(http.StatusOK, gin.H{"stocks": quotes})
}

// ListStocks returns one page of the full catalog, without prices.
// @Summary     List catalog
// @Description Get a paginated list of all catalog entries
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.StockReference] "Catalog page"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMalformedRequest, err.Error()))
		return
	}

	resp, err := h.stockService.List(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
