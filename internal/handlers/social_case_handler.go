package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// SocialCaseHandler handles HTTP requests related to social investment cases
type SocialCaseHandler struct {
	socialCaseService *services.SocialCaseService
	defaultSeed       uint64
}

// NewSocialCaseHandler creates a new SocialCaseHandler
func NewSocialCaseHandler(socialCaseService *services.SocialCaseService, defaultSeed uint64) *SocialCaseHandler {
	return &SocialCaseHandler{socialCaseService: socialCaseService, defaultSeed: defaultSeed}
}

// RegisterSocialCaseRoutes registers social case routes
func (h *SocialCaseHandler) RegisterSocialCaseRoutes(g *echo.Group) {
	g.GET("/companies/:id/social-cases", h.GetSocialCases) // ?status=active|completed|planned|all&seed=
	g.POST("/companies/:id/social-cases", h.CreateSocialCase)
}

// GetSocialCases returns a company's portfolio with stats
func (h *SocialCaseHandler) GetSocialCases(c echo.Context) error {
	companyID, err := parseID(c, "id", "company")
	if err != nil {
		return err
	}
	seed, err := parseSeed(c, h.defaultSeed)
	if err != nil {
		return err
	}
	status := c.QueryParam("status")
	if status != "" && status != "all" && !validCaseStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	portfolio, err := h.socialCaseService.List(c.Request().Context(), companyID, status, seed)
	if err != nil {
		return toHTTPError(err, "Company not found")
	}
	return ok(c, http.StatusOK, portfolio)
}

// CreateSocialCase adds a local planned case
func (h *SocialCaseHandler) CreateSocialCase(c echo.Context) error {
	companyID, err := parseID(c, "id", "company")
	if err != nil {
		return err
	}
	var req models.CreateSocialCaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.socialCaseService.Create(c.Request().Context(), companyID, req)
	if err != nil {
		return toHTTPError(err, "Company not found")
	}
	return ok(c, http.StatusCreated, created)
}

func validCaseStatus(s string) bool {
	for _, status := range models.CaseStatuses {
		if s == status {
			return true
		}
	}
	return false
}
