package aggregate

import (
	"testing"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseFixture() []models.SocialCase {
	return []models.SocialCase{
		{ID: 1, CompanyID: 5, InvestmentAmount: 250000, Category: "education"},
		{ID: 2, CompanyID: 5, InvestmentAmount: 480000, Category: "health"},
		{ID: 3, CompanyID: 5, InvestmentAmount: 175000.5, Category: ""},
		{ID: 4, CompanyID: 4, InvestmentAmount: 900000, Category: "infrastructure"},
	}
}

func TestTotalInvestment(t *testing.T) {
	assert.InDelta(t, 905000.5, TotalInvestment(caseFixture(), 5), 1e-9)
	assert.InDelta(t, 900000, TotalInvestment(caseFixture(), 4), 1e-9)
	assert.Zero(t, TotalInvestment(caseFixture(), 99))
}

func TestEnhanceCases(t *testing.T) {
	cases := CasesOf(caseFixture(), 5)
	require.Len(t, cases, 3)

	enhanced := EnhanceCases(cases, NewRand(1))
	for _, c := range enhanced {
		assert.Contains(t, models.CaseStatuses, c.Status)
		assert.GreaterOrEqual(t, c.Beneficiaries, 50)
		assert.Less(t, c.Beneficiaries, 1050)
		assert.NotEmpty(t, c.Category)
	}
	assert.Equal(t, "education", enhanced[0].Category)
	assert.Contains(t, models.CaseCategories, enhanced[2].Category)
	assert.Empty(t, cases[2].Category, "input must not be modified")

	t.Run("same seed same synthesis", func(t *testing.T) {
		assert.Equal(t, enhanced, EnhanceCases(cases, NewRand(1)))
	})
}

func TestCaseStats(t *testing.T) {
	cases := []models.EnhancedSocialCase{
		{SocialCase: models.SocialCase{InvestmentAmount: 100, Category: "health"}, Status: models.CaseStatusActive, Beneficiaries: 10},
		{SocialCase: models.SocialCase{InvestmentAmount: 200, Category: "health"}, Status: models.CaseStatusActive, Beneficiaries: 30},
		{SocialCase: models.SocialCase{InvestmentAmount: 50, Category: "education"}, Status: models.CaseStatusPlanned, Beneficiaries: 10},
	}
	stats := CaseStats(cases)

	assert.InDelta(t, 350, stats.TotalInvestment, 1e-9)
	assert.Equal(t, 3, stats.TotalCases)
	assert.Equal(t, 2, stats.ActiveCases)
	assert.Equal(t, 0, stats.CompletedCases)
	assert.Equal(t, 1, stats.PlannedCases)
	assert.Equal(t, map[string]int{"health": 2, "education": 1}, stats.Categories)
	assert.Equal(t, 50, stats.TotalBeneficiaries)
	assert.InDelta(t, 7, stats.InvestmentPerBeneficiary, 1e-9)

	empty := CaseStats(nil)
	assert.Zero(t, empty.InvestmentPerBeneficiary)
	assert.NotNil(t, empty.Categories)
}

func TestFilterCasesByStatus(t *testing.T) {
	enhanced := EnhanceCases(CasesOf(caseFixture(), 5), NewRand(99))
	for _, status := range models.CaseStatuses {
		for _, c := range FilterCasesByStatus(enhanced, status) {
			assert.Equal(t, status, c.Status)
		}
	}
	assert.Len(t, FilterCasesByStatus(enhanced, FilterAll), len(enhanced))
}
