package services

import (
	"context"
	"fmt"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/store"
)

// SocialCaseService builds a company's social investment portfolio.
type SocialCaseService struct {
	cases   repositories.SocialCaseRepository
	users   repositories.UserRepository
	overlay *store.Overlay
}

// NewSocialCaseService creates a new SocialCaseService
func NewSocialCaseService(cases repositories.SocialCaseRepository, users repositories.UserRepository, overlay *store.Overlay) *SocialCaseService {
	return &SocialCaseService{cases: cases, users: users, overlay: overlay}
}

// List returns companyID's cases with synthesised status, beneficiaries and
// missing categories drawn from seed. Stats cover the whole portfolio; status
// only narrows the returned cases.
func (s *SocialCaseService) List(ctx context.Context, companyID uint, status string, seed uint64) (models.SocialCasePortfolio, error) {
	all, err := s.cases.GetAll(ctx)
	if err != nil {
		return models.SocialCasePortfolio{}, fmt.Errorf("list social cases: %w", err)
	}

	enhanced := aggregate.EnhanceCases(aggregate.CasesOf(all, companyID), aggregate.NewRand(seed))
	for _, c := range s.overlay.SocialCases(companyID) {
		enhanced = append(enhanced, models.EnhancedSocialCase{SocialCase: c, Status: models.CaseStatusPlanned})
	}

	return models.SocialCasePortfolio{
		CompanyID: companyID,
		Seed:      seed,
		Cases:     aggregate.FilterCasesByStatus(enhanced, status),
		Stats:     aggregate.CaseStats(enhanced),
	}, nil
}

// Create records a local case for a company. It starts planned.
func (s *SocialCaseService) Create(ctx context.Context, companyID uint, req models.CreateSocialCaseRequest) (models.EnhancedSocialCase, error) {
	company, err := s.users.GetByID(ctx, companyID)
	if err != nil {
		return models.EnhancedSocialCase{}, fmt.Errorf("resolve company: %w", err)
	}
	if company.Role != models.RoleCompany {
		return models.EnhancedSocialCase{}, fmt.Errorf("user %d is not a company: %w", companyID, ErrInvalidInput)
	}
	c := s.overlay.AddSocialCase(models.SocialCase{
		CompanyID:        companyID,
		Title:            req.Title,
		Description:      req.Description,
		InvestmentAmount: req.InvestmentAmount,
		Location:         req.Location,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
	})
	return models.EnhancedSocialCase{SocialCase: c, Status: models.CaseStatusPlanned}, nil
}
