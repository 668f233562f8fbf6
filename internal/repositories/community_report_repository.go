package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// CommunityReportRepository defines the interface for community report data operations
type CommunityReportRepository interface {
	GetAll(ctx context.Context) ([]models.CommunityReport, error)
	GetByID(ctx context.Context, id uint) (*models.CommunityReport, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.CommunityReport, error)
	GetByCategory(ctx context.Context, category string) ([]models.CommunityReport, error)
	GetByZipcode(ctx context.Context, zipcode string) ([]models.CommunityReport, error)
}

// MockCommunityReportRepository implements CommunityReportRepository over the static record set
type MockCommunityReportRepository struct {
	mockBase
}

// GetAll retrieves every community report
func (r *MockCommunityReportRepository) GetAll(ctx context.Context) ([]models.CommunityReport, error) {
	if err := r.call(ctx, "communityReports.getAll", nil, delayReportsGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.CommunityReports), nil
}

// GetByID retrieves a report by ID
func (r *MockCommunityReportRepository) GetByID(ctx context.Context, id uint) (*models.CommunityReport, error) {
	if err := r.call(ctx, "communityReports.getById", id, delayReportsGetByID); err != nil {
		return nil, err
	}
	report, ok := find(r.snap.CommunityReports, func(c models.CommunityReport) bool { return c.ID == id })
	if !ok {
		return nil, notFound("report", id)
	}
	return &report, nil
}

// GetByUserID retrieves the reports filed by a user
func (r *MockCommunityReportRepository) GetByUserID(ctx context.Context, userID uint) ([]models.CommunityReport, error) {
	if err := r.call(ctx, "communityReports.getByUserId", userID, delayReportsGetByUserID); err != nil {
		return nil, err
	}
	return filter(r.snap.CommunityReports, func(c models.CommunityReport) bool { return c.UserID == userID }), nil
}

// GetByCategory retrieves the reports of a category
func (r *MockCommunityReportRepository) GetByCategory(ctx context.Context, category string) ([]models.CommunityReport, error) {
	if err := r.call(ctx, "communityReports.getByCategory", category, delayReportsGetByCategory); err != nil {
		return nil, err
	}
	return filter(r.snap.CommunityReports, func(c models.CommunityReport) bool { return c.Category == category }), nil
}

// GetByZipcode retrieves the reports filed in a zipcode
func (r *MockCommunityReportRepository) GetByZipcode(ctx context.Context, zipcode string) ([]models.CommunityReport, error) {
	if err := r.call(ctx, "communityReports.getByZipcode", zipcode, delayReportsGetByZipcode); err != nil {
		return nil, err
	}
	return filter(r.snap.CommunityReports, func(c models.CommunityReport) bool { return c.Zipcode == zipcode }), nil
}
