package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository  repositories.UserRepository
	followerService *services.FollowerService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followerService *services.FollowerService) *UserHandler {
	return &UserHandler{userRepository: userRepo, followerService: followerService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)                    // All users, or ?role=company
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/companies", h.GetFollowedCompanies)
}

// GetUsers lists users, optionally limited to one role
func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		users []models.User
		err   error
	)
	if role := c.QueryParam("role"); role != "" {
		users, err = h.userRepository.GetByRole(ctx, role)
	} else {
		users, err = h.userRepository.GetAll(ctx)
	}
	if err != nil {
		return toHTTPError(err, "Users not found")
	}
	return ok(c, http.StatusOK, users)
}

// GetUser retrieves a user by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id", "user")
	if err != nil {
		return err
	}
	user, err := h.userRepository.GetByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "User not found")
	}
	return ok(c, http.StatusOK, user)
}

// GetFollowedCompanies lists the companies a user follows
func (h *UserHandler) GetFollowedCompanies(c echo.Context) error {
	id, err := parseID(c, "id", "user")
	if err != nil {
		return err
	}
	companies, err := h.followerService.Companies(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err, "User not found")
	}
	return ok(c, http.StatusOK, companies)
}
