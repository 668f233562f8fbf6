package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// PostHandler handles HTTP requests related to forum posts
type PostHandler struct {
	forumService *services.ForumService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(forumService *services.ForumService) *PostHandler {
	return &PostHandler{forumService: forumService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts) // ?type=opinion|suggestion|report|all&policy=degrade|strict
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts", h.CreatePost)
}

// GetPosts returns the enriched forum list, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	policy, err := services.ParseEnrichmentPolicy(c.QueryParam("policy"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	postType := c.QueryParam("type")
	if postType != "" && postType != "all" && !validPostType(postType) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post type")
	}

	posts, err := h.forumService.List(c.Request().Context(), postType, policy)
	if err != nil {
		return toHTTPError(err, "Posts not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    posts,
		"meta": echo.Map{
			"total":  len(posts),
			"type":   postType,
			"policy": policy.String(),
		},
	})
}

// GetPost retrieves a post with its replies
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	detail, err := h.forumService.Detail(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "Post not found")
	}
	return ok(c, http.StatusOK, detail)
}

// CreatePost creates a new local post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	post, err := h.forumService.CreatePost(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "Author not found")
	}
	return ok(c, http.StatusCreated, post)
}

func validPostType(t string) bool {
	switch t {
	case models.PostTypeOpinion, models.PostTypeSuggestion, models.PostTypeReport:
		return true
	}
	return false
}
