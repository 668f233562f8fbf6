package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/services"
)

// FollowHandler handles HTTP requests related to company followers
type FollowHandler struct {
	followerService *services.FollowerService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followerService *services.FollowerService) *FollowHandler {
	return &FollowHandler{followerService: followerService}
}

// RegisterFollowRoutes registers follower routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/companies/:id/followers", h.GetFollowers) // ?q= searches username and email
	g.GET("/companies/:id/followers/stats", h.GetFollowerStats)
}

// GetFollowers lists a company's followers with their following-since label
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	companyID, err := parseID(c, "id", "company")
	if err != nil {
		return err
	}
	page, err := h.followerService.Followers(c.Request().Context(), companyID, c.QueryParam("q"))
	if err != nil {
		return toHTTPError(err, "Company not found")
	}
	return ok(c, http.StatusOK, page)
}

// GetFollowerStats returns a company's follower totals
func (h *FollowHandler) GetFollowerStats(c echo.Context) error {
	companyID, err := parseID(c, "id", "company")
	if err != nil {
		return err
	}
	stats, err := h.followerService.Stats(c.Request().Context(), companyID)
	if err != nil {
		return toHTTPError(err, "Company not found")
	}
	return ok(c, http.StatusOK, stats)
}
