package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
)

func TestSocialCaseList(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	portfolio, err := f.svc.SocialCases.List(ctx, 5, "", 42)
	require.NoError(t, err)
	require.Len(t, portfolio.Cases, 5)

	stats := portfolio.Stats
	assert.Equal(t, 5, stats.TotalCases)
	assert.InDelta(t, 2165000.5, stats.TotalInvestment, 0.001)
	assert.Equal(t, 5, stats.ActiveCases+stats.CompletedCases+stats.PlannedCases)
	assert.NotContains(t, stats.Categories, "")

	beneficiaries := 0
	for _, c := range portfolio.Cases {
		assert.GreaterOrEqual(t, c.Beneficiaries, 50)
		assert.Less(t, c.Beneficiaries, 1050)
		assert.Contains(t, models.CaseCategories, c.Category)
		beneficiaries += c.Beneficiaries
	}
	assert.Equal(t, beneficiaries, stats.TotalBeneficiaries)
	assert.InDelta(t, stats.TotalInvestment/float64(beneficiaries), stats.InvestmentPerBeneficiary, 1e-9)

	again, err := f.svc.SocialCases.List(ctx, 5, "", 42)
	require.NoError(t, err)
	assert.Equal(t, portfolio, again)
}

func TestSocialCaseList_StatusFilter(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	full, err := f.svc.SocialCases.List(ctx, 5, "", 7)
	require.NoError(t, err)

	for _, status := range models.CaseStatuses {
		filtered, err := f.svc.SocialCases.List(ctx, 5, status, 7)
		require.NoError(t, err)
		assert.Equal(t, full.Stats, filtered.Stats)
		for _, c := range filtered.Cases {
			assert.Equal(t, status, c.Status)
		}
	}

	active, err := f.svc.SocialCases.List(ctx, 5, models.CaseStatusActive, 7)
	require.NoError(t, err)
	assert.Len(t, active.Cases, full.Stats.ActiveCases)
}

func TestSocialCaseCreate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	created, err := f.svc.SocialCases.Create(ctx, 4, models.CreateSocialCaseRequest{
		Title:            "Horta escolar",
		Description:      "Implantação de hortas em 3 escolas.",
		InvestmentAmount: 30000,
		Location:         "Ouro Preto, MG",
		Category:         "education",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), created.ID)
	assert.Equal(t, models.CaseStatusPlanned, created.Status)

	portfolio, err := f.svc.SocialCases.List(ctx, 4, "", 1)
	require.NoError(t, err)
	assert.Len(t, portfolio.Cases, 2)
	assert.InDelta(t, 930000, portfolio.Stats.TotalInvestment, 0.001)
	assert.GreaterOrEqual(t, portfolio.Stats.PlannedCases, 1)

	_, err = f.svc.SocialCases.Create(ctx, 1, models.CreateSocialCaseRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.SocialCases.Create(ctx, 99, models.CreateSocialCaseRequest{Title: "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
