package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/repositories"
)

func TestFollowers(t *testing.T) {
	f := newFixture(t, nil)

	page, err := f.svc.Followers.Followers(context.Background(), 5, "")
	require.NoError(t, err)
	require.Len(t, page.Followers, 4)

	since := map[uint]string{}
	for _, v := range page.Followers {
		since[v.FollowerID] = v.FollowingSince
	}
	assert.Equal(t, map[uint]string{
		1: "2 anos",
		2: "4 meses",
		3: "2 semanas",
		7: "3 dias",
	}, since)
	assert.Equal(t, 4, page.Stats.Total)
	assert.Equal(t, 2, page.Stats.NewThisMonth)
}

func TestFollowers_SearchKeepsStats(t *testing.T) {
	f := newFixture(t, nil)

	page, err := f.svc.Followers.Followers(context.Background(), 5, "ANA")
	require.NoError(t, err)
	require.Len(t, page.Followers, 1)
	assert.Equal(t, "ana_oliveira", page.Followers[0].Username)
	assert.Equal(t, 4, page.Stats.Total)

	page, err = f.svc.Followers.Followers(context.Background(), 5, "email.com")
	require.NoError(t, err)
	assert.Len(t, page.Followers, 4)
}

func TestFollowerStatsAndCompanies(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	stats, err := f.svc.Followers.Stats(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Zero(t, stats.NewThisMonth)

	companies, err := f.svc.Followers.Companies(ctx, 1)
	require.NoError(t, err)
	var names []string
	for _, c := range companies {
		names = append(names, c.Username)
	}
	assert.Equal(t, []string{"vale_verde", "eco_miner", "minas_ouro"}, names)
}

func TestFollowers_FailureIsFatal(t *testing.T) {
	f := newFixture(t, failOn("follows.getAll", nil))

	_, err := f.svc.Followers.Followers(context.Background(), 5, "")
	assert.True(t, repositories.IsRetryable(err))
}
