package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for the market comparison.
type StockHandler struct {
	comparisonService service.ComparisonService
	logger            *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(comparisonService service.ComparisonService, logger *logger.Logger) *StockHandler {
	return &StockHandler{comparisonService: comparisonService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetStockCards)
}

// GetStockCards godoc
// @Summary Market comparison
// @Description Get company details of the configured comparison tickers
// @Tags stocks
// @Produce  json
// @Success 200 {array} dto.StockCard
// @Failure 500 {object} dto.ErrorResponse
// @Router /stocks [get]
func (h *StockHandler) GetStockCards(c echo.Context) error {
	cards, err := h.comparisonService.GetStockCards(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to build stock cards", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch stock data"})
	}
	return c.JSON(http.StatusOK, cards)
}
