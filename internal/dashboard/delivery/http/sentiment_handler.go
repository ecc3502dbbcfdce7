package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SentimentHandler handles HTTP requests for sentiment charts.
type SentimentHandler struct {
	sentimentService service.SentimentService
	logger           *logger.Logger
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(sentimentService service.SentimentService, logger *logger.Logger) *SentimentHandler {
	return &SentimentHandler{sentimentService: sentimentService, logger: logger}
}

// RegisterRoutes registers the sentiment routes to the Echo group.
func (h *SentimentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateView)
	g.GET("/:id", h.GetView)
	g.PUT("/:id", h.UpdateView)
	g.DELETE("/:id", h.DeleteView)
}

// CreateView godoc
// @Summary Open a sentiment chart
// @Description Fetch a line (time series) or pie (breakdown) sentiment chart for a ticker
// @Tags sentiments
// @Accept  json
// @Produce  json
// @Param   view  body    dto.CreateSentimentRequest   true    "Chart to open"
// @Success 201 {object} dto.SentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiments [post]
func (h *SentimentHandler) CreateView(c echo.Context) error {
	var req dto.CreateSentimentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.sentimentService.CreateView(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetView godoc
// @Summary Get a sentiment chart
// @Tags sentiments
// @Produce  json
// @Param   id  path    string true    "Chart ID"
// @Success 200 {object} dto.SentimentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sentiments/{id} [get]
func (h *SentimentHandler) GetView(c echo.Context) error {
	resp, err := h.sentimentService.GetView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateView godoc
// @Summary Change a sentiment chart
// @Description Change the ticker, granularity or time range and refetch
// @Tags sentiments
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Chart ID"
// @Param   view  body    dto.CreateSentimentRequest   true    "Changed parameters"
// @Success 200 {object} dto.SentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sentiments/{id} [put]
func (h *SentimentHandler) UpdateView(c echo.Context) error {
	var req dto.CreateSentimentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.sentimentService.UpdateView(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteView godoc
// @Summary Close a sentiment chart
// @Tags sentiments
// @Param   id  path    string true    "Chart ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /sentiments/{id} [delete]
func (h *SentimentHandler) DeleteView(c echo.Context) error {
	if err := h.sentimentService.DeleteView(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
