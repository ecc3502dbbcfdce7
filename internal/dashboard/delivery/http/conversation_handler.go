package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ConversationHandler handles HTTP requests for trading copilot conversations.
type ConversationHandler struct {
	copilotService service.CopilotService
	logger         *logger.Logger
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(copilotService service.CopilotService, logger *logger.Logger) *ConversationHandler {
	return &ConversationHandler{copilotService: copilotService, logger: logger}
}

// RegisterRoutes registers the conversation routes to the Echo group.
func (h *ConversationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.StartConversation)
	g.GET("/:id", h.GetConversation)
	g.POST("/:id/messages", h.SendMessage)
	g.DELETE("/:id", h.EndConversation)
}

// StartConversation godoc
// @Summary Start a copilot conversation
// @Tags conversations
// @Accept  json
// @Produce  json
// @Param   conversation  body    dto.CreateConversationRequest   true    "Conversation subject"
// @Success 201 {object} dto.ConversationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /conversations [post]
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	var req dto.CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.copilotService.StartConversation(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetConversation godoc
// @Summary Get a copilot conversation
// @Description Get the transcript, created jobs and state of a conversation
// @Tags conversations
// @Produce  json
// @Param   id  path    string true    "Conversation ID"
// @Success 200 {object} dto.ConversationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c echo.Context) error {
	resp, err := h.copilotService.GetConversation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// SendMessage godoc
// @Summary Send a message to the copilot
// @Description Submit user text; the reply either asks for details, creates a job or reports a failure
// @Tags conversations
// @Accept  json
// @Produce  json
// @Param   id  path    string true    "Conversation ID"
// @Param   message  body    dto.SendMessageRequest   true    "User text"
// @Success 200 {object} dto.SendMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.copilotService.SendMessage(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// EndConversation godoc
// @Summary End a copilot conversation
// @Tags conversations
// @Param   id  path    string true    "Conversation ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{id} [delete]
func (h *ConversationHandler) EndConversation(c echo.Context) error {
	if err := h.copilotService.EndConversation(c.Request().Context(), c.Param("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
