package aggregate

import (
	"math"
	"testing"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceReports(t *testing.T) {
	reports := []models.CommunityReport{
		{ID: 1, UserID: 1, Category: models.ReportDust, Zipcode: "30150-000"},
		{ID: 2, UserID: 7, Category: models.ReportRisk, Zipcode: "30160-000"},
	}
	placed := PlaceReports(reports, 3)
	require.Len(t, placed, 2)

	for i, r := range placed {
		assert.Equal(t, reports[i].ID, r.ID)
		assert.Equal(t, reports[i].Category, r.Type)
		assert.LessOrEqual(t, math.Abs(r.Location.Lat-MapCenter.Lat), JitterSpan/2+1e-9)
		assert.LessOrEqual(t, math.Abs(r.Location.Lng-MapCenter.Lng), JitterSpan/2+1e-9)
		assert.Contains(t, []string{models.ReportStatusPending, models.ReportStatusInReview, models.ReportStatusResolved}, r.Status)
	}

	assert.Equal(t, placed, PlaceReports(reports, 3))
	assert.NotEqual(t, placed, PlaceReports(reports, 4))
}

func TestPlaceReport_IndependentOfListPosition(t *testing.T) {
	a := models.CommunityReport{ID: 1, Category: models.ReportDust}
	b := models.CommunityReport{ID: 2, Category: models.ReportWater}

	together := PlaceReports([]models.CommunityReport{a, b}, 9)
	assert.Equal(t, together[1], PlaceReport(b, 9))
	assert.Equal(t, together[0], PlaceReports([]models.CommunityReport{b, a}, 9)[1])
}

func TestDrawReportStatus_Distribution(t *testing.T) {
	rng := NewRand(11)
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[DrawReportStatus(rng)]++
	}
	assert.InDelta(t, 0.5, float64(counts[models.ReportStatusPending])/n, 0.02)
	assert.InDelta(t, 0.2, float64(counts[models.ReportStatusInReview])/n, 0.02)
	assert.InDelta(t, 0.3, float64(counts[models.ReportStatusResolved])/n, 0.02)
}

func TestHeatmap(t *testing.T) {
	placed := []models.MappedReport{
		{Type: models.ReportRisk, Location: models.Location{Lat: 1, Lng: 2}},
		{Type: models.ReportNoise},
		{Type: "landslide"},
	}
	points := Heatmap(placed)
	require.Len(t, points, 3)
	assert.Equal(t, 5, points[0].Weight)
	assert.Equal(t, models.Location{Lat: 1, Lng: 2}, points[0].Location)
	assert.Equal(t, 2, points[1].Weight)
	assert.Equal(t, 1, points[2].Weight)
}

func TestFilterReports(t *testing.T) {
	placed := []models.MappedReport{
		{ID: 1, Type: models.ReportDust, Zipcode: "1"},
		{ID: 2, Type: models.ReportWater, Zipcode: "1"},
		{ID: 3, Type: models.ReportDust, Zipcode: "2"},
	}
	assert.Len(t, FilterReports(placed, "", ""), 3)
	assert.Len(t, FilterReports(placed, models.ReportDust, ""), 2)
	assert.Len(t, FilterReports(placed, models.ReportDust, "2"), 1)
	assert.Len(t, FilterReports(placed, FilterAll, "1"), 2)
}
