package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
)

func TestReportMap(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	placed, err := f.svc.CommunityReports.Map(ctx, 7, "", "")
	require.NoError(t, err)
	require.Len(t, placed, 8)
	for _, r := range placed {
		assert.LessOrEqual(t, math.Abs(r.Location.Lat-aggregate.MapCenter.Lat), aggregate.JitterSpan/2+1e-9)
		assert.LessOrEqual(t, math.Abs(r.Location.Lng-aggregate.MapCenter.Lng), aggregate.JitterSpan/2+1e-9)
	}

	again, err := f.svc.CommunityReports.Map(ctx, 7, "", "")
	require.NoError(t, err)
	assert.Equal(t, placed, again)

	water, err := f.svc.CommunityReports.Map(ctx, 7, models.ReportWater, "")
	require.NoError(t, err)
	assert.Len(t, water, 2)

	one, err := f.svc.CommunityReports.Get(ctx, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, placed[4], one)

	_, err = f.svc.CommunityReports.Get(ctx, 50, 7)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestReportHeatmap(t *testing.T) {
	f := newFixture(t, nil)

	points, err := f.svc.CommunityReports.Heatmap(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, points, 8)

	weights := make([]int, len(points))
	for i, p := range points {
		weights[i] = p.Weight
	}
	// dust, noise, vibration, water, risk, other, water, dust
	assert.Equal(t, []int{3, 2, 3, 4, 5, 1, 4, 3}, weights)
}

func TestReportCreate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	loc := models.Location{Lat: -19.93, Lng: -43.95}
	created, err := f.svc.CommunityReports.Create(ctx, models.CreateReportRequest{
		UserID:      2,
		Type:        models.ReportNoise,
		Description: "Sirene de detonação sem aviso.",
		Location:    &loc,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)
	assert.Equal(t, models.ReportStatusPending, created.Status)
	assert.Equal(t, loc, created.Location)

	placed, err := f.svc.CommunityReports.Map(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, placed, 9)
	assert.Equal(t, created, placed[8])

	got, err := f.svc.CommunityReports.Get(ctx, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = f.svc.CommunityReports.Create(ctx, models.CreateReportRequest{Type: models.ReportDust, Description: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
