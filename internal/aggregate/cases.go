package aggregate

import (
	"math/rand/v2"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// Beneficiary counts are drawn from [minBeneficiaries, minBeneficiaries+beneficiarySpan).
const (
	minBeneficiaries = 50
	beneficiarySpan  = 1000
)

// NewRand returns a PRNG whose sequence depends only on seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))
}

// CasesOf returns the cases owned by companyID.
func CasesOf(cases []models.SocialCase, companyID uint) []models.SocialCase {
	var out []models.SocialCase
	for _, c := range cases {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out
}

// TotalInvestment sums investment_amount over the cases of companyID.
func TotalInvestment(cases []models.SocialCase, companyID uint) float64 {
	var total float64
	for _, c := range cases {
		if c.CompanyID == companyID {
			total += c.InvestmentAmount
		}
	}
	return total
}

// EnhanceCases synthesises status and beneficiaries for each case, and a category
// for cases without one. Draws happen in case order: status, beneficiaries, then
// category only when missing.
func EnhanceCases(cases []models.SocialCase, rng *rand.Rand) []models.EnhancedSocialCase {
	out := make([]models.EnhancedSocialCase, len(cases))
	for i, c := range cases {
		status := models.CaseStatuses[rng.IntN(len(models.CaseStatuses))]
		beneficiaries := rng.IntN(beneficiarySpan) + minBeneficiaries
		if c.Category == "" {
			c.Category = models.CaseCategories[rng.IntN(len(models.CaseCategories))]
		}
		out[i] = models.EnhancedSocialCase{SocialCase: c, Status: status, Beneficiaries: beneficiaries}
	}
	return out
}

// CaseStats reduces cases into investment, status and category totals.
func CaseStats(cases []models.EnhancedSocialCase) models.SocialCaseStats {
	stats := models.SocialCaseStats{
		TotalCases: len(cases),
		Categories: make(map[string]int),
	}
	for _, c := range cases {
		stats.TotalInvestment += c.InvestmentAmount
		stats.TotalBeneficiaries += c.Beneficiaries
		switch c.Status {
		case models.CaseStatusActive:
			stats.ActiveCases++
		case models.CaseStatusCompleted:
			stats.CompletedCases++
		case models.CaseStatusPlanned:
			stats.PlannedCases++
		}
		stats.Categories[c.Category]++
	}
	if stats.TotalBeneficiaries > 0 {
		stats.InvestmentPerBeneficiary = stats.TotalInvestment / float64(stats.TotalBeneficiaries)
	}
	return stats
}

// FilterCasesByStatus keeps cases with the given status. Empty or FilterAll keeps everything.
func FilterCasesByStatus(cases []models.EnhancedSocialCase, status string) []models.EnhancedSocialCase {
	if status == "" || status == FilterAll {
		return cases
	}
	out := make([]models.EnhancedSocialCase, 0, len(cases))
	for _, c := range cases {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}
