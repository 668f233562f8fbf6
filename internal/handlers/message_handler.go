package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// MessageHandler handles HTTP requests related to the inbox
type MessageHandler struct {
	inboxService *services.InboxService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(inboxService *services.InboxService) *MessageHandler {
	return &MessageHandler{inboxService: inboxService}
}

// RegisterMessageRoutes registers inbox routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/users/:id/inbox", h.GetInbox)
	g.GET("/users/:id/conversations/:partner_id", h.OpenConversation)
	g.POST("/messages", h.SendMessage)
}

// GetInbox lists a user's conversations, most recent first
func (h *MessageHandler) GetInbox(c echo.Context) error {
	userID, err := parseID(c, "id", "user")
	if err != nil {
		return err
	}
	convs, err := h.inboxService.Conversations(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err, "User not found")
	}
	unread := 0
	for _, conv := range convs {
		unread += conv.UnreadCount
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    convs,
		"meta":    echo.Map{"total": len(convs), "unread": unread},
	})
}

// OpenConversation returns a full thread and marks it read
func (h *MessageHandler) OpenConversation(c echo.Context) error {
	userID, err := parseID(c, "id", "user")
	if err != nil {
		return err
	}
	partnerID, err := parseID(c, "partner_id", "partner")
	if err != nil {
		return err
	}
	conv, err := h.inboxService.Open(c.Request().Context(), userID, partnerID)
	if err != nil {
		return toHTTPError(err, "Conversation not found")
	}
	return ok(c, http.StatusOK, conv)
}

// SendMessage records a local message
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	msg, err := h.inboxService.Send(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "Recipient not found")
	}
	return ok(c, http.StatusCreated, msg)
}
