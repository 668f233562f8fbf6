package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
)

// SocialCaseRepository defines the interface for social investment data operations
type SocialCaseRepository interface {
	GetAll(ctx context.Context) ([]models.SocialCase, error)
	GetByCompanyID(ctx context.Context, companyID uint) ([]models.SocialCase, error)
	GetTotalInvestment(ctx context.Context, companyID uint) (float64, error)
}

// MockSocialCaseRepository implements SocialCaseRepository over the static record set
type MockSocialCaseRepository struct {
	mockBase
}

// GetAll retrieves every social case
func (r *MockSocialCaseRepository) GetAll(ctx context.Context) ([]models.SocialCase, error) {
	if err := r.call(ctx, "socialCases.getAll", nil, delaySocialCasesGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.SocialCases), nil
}

// GetByCompanyID retrieves the cases of a company
func (r *MockSocialCaseRepository) GetByCompanyID(ctx context.Context, companyID uint) ([]models.SocialCase, error) {
	if err := r.call(ctx, "socialCases.getByCompanyId", companyID, delaySocialCasesGetByCompany); err != nil {
		return nil, err
	}
	return filter(r.snap.SocialCases, func(c models.SocialCase) bool { return c.CompanyID == companyID }), nil
}

// GetTotalInvestment sums the investment of a company's cases
func (r *MockSocialCaseRepository) GetTotalInvestment(ctx context.Context, companyID uint) (float64, error) {
	if err := r.call(ctx, "socialCases.getTotalInvestment", companyID, delaySocialCasesGetTotal); err != nil {
		return 0, err
	}
	return aggregate.TotalInvestment(r.snap.SocialCases, companyID), nil
}
