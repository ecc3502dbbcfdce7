package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FeedHandler handles HTTP requests for live mention feeds.
type FeedHandler struct {
	feedService service.FeedService
	logger      *logger.Logger
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService service.FeedService, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{feedService: feedService, logger: logger}
}

// RegisterRoutes registers the feed routes to the Echo group.
func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateFeed)
	g.GET("/:id", h.GetFeed)
	g.PUT("/:id", h.UpdateFeed)
	g.DELETE("/:id", h.DeleteFeed)
}

// CreateFeed godoc
// @Summary Open a mention feed
// @Description Open a live news or reddit mention feed for a ticker
// @Tags feeds
// @Accept  json
// @Produce  json
// @Param   feed  body    dto.CreateFeedRequest   true    "Feed to open"
// @Success 201 {object} dto.FeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feeds [post]
func (h *FeedHandler) CreateFeed(c echo.Context) error {
	var req dto.CreateFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.feedService.CreateFeed(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetFeed godoc
// @Summary Get a mention feed
// @Description Get the connection state and items of a feed
// @Tags feeds
// @Produce  json
// @Param   id  path    string true    "Feed ID"
// @Param   search  query    string false    "Title search term"
// @Param   sentiment  query    string false    "Sentiment label"
// @Param   source  query    string false    "Source or subreddit"
// @Success 200 {object} dto.FeedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /feeds/{id} [get]
func (h *FeedHandler) GetFeed(c echo.Context) error {
	var filter dto.FeedFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid query parameters"})
	}

	resp, err := h.feedService.GetFeed(c.Request().Context(), c.Param("id"), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateFeed godoc
// @Summary Re-scope a mention feed
// @Description Close the feed's channel and open a new one for the given subject
// @Tags feeds
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Feed ID"
// @Param   feed  body    dto.CreateFeedRequest   true    "New feed scope"
// @Success 200 {object} dto.FeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /feeds/{id} [put]
func (h *FeedHandler) UpdateFeed(c echo.Context) error {
	var req dto.CreateFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.feedService.UpdateFeed(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteFeed godoc
// @Summary Close a mention feed
// @Tags feeds
// @Param   id  path    string true    "Feed ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /feeds/{id} [delete]
func (h *FeedHandler) DeleteFeed(c echo.Context) error {
	if err := h.feedService.DeleteFeed(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
