package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// ReplyHandler handles HTTP requests related to post replies
type ReplyHandler struct {
	forumService *services.ForumService
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(forumService *services.ForumService) *ReplyHandler {
	return &ReplyHandler{forumService: forumService}
}

// RegisterReplyRoutes registers reply-related routes
func (h *ReplyHandler) RegisterReplyRoutes(g *echo.Group) {
	g.GET("/posts/:id/replies", h.GetReplies)
	g.POST("/posts/:id/replies", h.CreateReply)
}

// GetReplies lists a post's replies, oldest first
func (h *ReplyHandler) GetReplies(c echo.Context) error {
	postID, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	replies, err := h.forumService.Replies(c.Request().Context(), postID)
	if err != nil {
		return toHTTPError(err, "Post not found")
	}
	return ok(c, http.StatusOK, replies)
}

// CreateReply adds a local reply to a post
func (h *ReplyHandler) CreateReply(c echo.Context) error {
	postID, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	var req models.CreateReplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	reply, err := h.forumService.CreateReply(c.Request().Context(), postID, req)
	if err != nil {
		return toHTTPError(err, "Post or author not found")
	}
	return ok(c, http.StatusCreated, reply)
}
