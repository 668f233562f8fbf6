package services

import (
	"context"
	"fmt"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/store"
)

// CommunityReportService places community reports on the map.
type CommunityReportService struct {
	reports repositories.CommunityReportRepository
	overlay *store.Overlay
}

// NewCommunityReportService creates a new CommunityReportService
func NewCommunityReportService(reports repositories.CommunityReportRepository, overlay *store.Overlay) *CommunityReportService {
	return &CommunityReportService{reports: reports, overlay: overlay}
}

// Map returns every report with a location and status synthesised from seed,
// followed by locally filed reports. category and zipcode narrow the result.
func (s *CommunityReportService) Map(ctx context.Context, seed uint64, category, zipcode string) ([]models.MappedReport, error) {
	reports, err := s.reports.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list community reports: %w", err)
	}
	placed := append(aggregate.PlaceReports(reports, seed), s.overlay.Reports()...)
	return aggregate.FilterReports(placed, category, zipcode), nil
}

// Heatmap weights every placed report by its category priority.
func (s *CommunityReportService) Heatmap(ctx context.Context, seed uint64) ([]models.HeatmapPoint, error) {
	placed, err := s.Map(ctx, seed, "", "")
	if err != nil {
		return nil, err
	}
	return aggregate.Heatmap(placed), nil
}

// Get returns one report placed exactly as Map places it for the same seed.
func (s *CommunityReportService) Get(ctx context.Context, id uint, seed uint64) (models.MappedReport, error) {
	for _, r := range s.overlay.Reports() {
		if r.ID == id {
			return r, nil
		}
	}
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return models.MappedReport{}, fmt.Errorf("load report: %w", err)
	}
	return aggregate.PlaceReport(*r, seed), nil
}

// Create files a local report at the caller's location. It starts pending.
func (s *CommunityReportService) Create(_ context.Context, req models.CreateReportRequest) (models.MappedReport, error) {
	if req.Location == nil {
		return models.MappedReport{}, fmt.Errorf("location is required: %w", ErrInvalidInput)
	}
	return s.overlay.AddReport(models.MappedReport{
		Type:        req.Type,
		Description: req.Description,
		Location:    *req.Location,
		Zipcode:     req.Zipcode,
		UserID:      req.UserID,
	}), nil
}
