package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/services"
)

// ReportHandler handles HTTP requests related to community reports
type ReportHandler struct {
	reportService *services.CommunityReportService
	defaultSeed   uint64
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *services.CommunityReportService, defaultSeed uint64) *ReportHandler {
	return &ReportHandler{reportService: reportService, defaultSeed: defaultSeed}
}

// RegisterReportRoutes registers community report routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.GET("/reports", h.GetReports) // ?seed=&category=&zipcode=
	g.GET("/reports/heatmap", h.GetHeatmap)
	g.GET("/reports/:id", h.GetReport)
	g.POST("/reports", h.CreateReport)
}

// GetReports returns the placed reports for the map
func (h *ReportHandler) GetReports(c echo.Context) error {
	seed, err := parseSeed(c, h.defaultSeed)
	if err != nil {
		return err
	}
	reports, err := h.reportService.Map(c.Request().Context(), seed, c.QueryParam("category"), c.QueryParam("zipcode"))
	if err != nil {
		return toHTTPError(err, "Reports not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    reports,
		"meta":    echo.Map{"total": len(reports), "seed": seed},
	})
}

// GetHeatmap returns weighted points for the density layer
func (h *ReportHandler) GetHeatmap(c echo.Context) error {
	seed, err := parseSeed(c, h.defaultSeed)
	if err != nil {
		return err
	}
	points, err := h.reportService.Heatmap(c.Request().Context(), seed)
	if err != nil {
		return toHTTPError(err, "Reports not found")
	}
	return ok(c, http.StatusOK, points)
}

// GetReport retrieves one placed report
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseID(c, "id", "report")
	if err != nil {
		return err
	}
	seed, err := parseSeed(c, h.defaultSeed)
	if err != nil {
		return err
	}
	report, err := h.reportService.Get(c.Request().Context(), id, seed)
	if err != nil {
		return toHTTPError(err, "Report not found")
	}
	return ok(c, http.StatusOK, report)
}

// CreateReport files a local report
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req models.CreateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	report, err := h.reportService.Create(c.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "Report not found")
	}
	return ok(c, http.StatusCreated, report)
}
