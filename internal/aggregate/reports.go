package aggregate

import (
	"math/rand/v2"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// MapCenter is the point stored reports are scattered around (Belo Horizonte).
var MapCenter = models.Location{Lat: -19.9167, Lng: -43.9345}

// JitterSpan is the width of the square reports are scattered over, in degrees.
const JitterSpan = 0.1

// Cumulative thresholds of the synthesised report status distribution:
// pending 50%, in_review 20%, resolved 30%.
const (
	pendingThreshold  = 0.5
	inReviewThreshold = 0.7
)

var categoryPriority = map[string]int{
	models.ReportRisk:      5,
	models.ReportWater:     4,
	models.ReportDust:      3,
	models.ReportVibration: 3,
	models.ReportNoise:     2,
	models.ReportOther:     1,
}

// Priority is the heatmap weight of a report category. Unknown categories weigh 1.
func Priority(category string) int {
	if p, ok := categoryPriority[category]; ok {
		return p
	}
	return 1
}

// DrawReportStatus draws a status from the synthesised distribution.
func DrawReportStatus(rng *rand.Rand) string {
	u := rng.Float64()
	switch {
	case u < pendingThreshold:
		return models.ReportStatusPending
	case u < inReviewThreshold:
		return models.ReportStatusInReview
	default:
		return models.ReportStatusResolved
	}
}

// Jitter perturbs center by independent offsets in [-JitterSpan/2, JitterSpan/2).
func Jitter(center models.Location, rng *rand.Rand) models.Location {
	return models.Location{
		Lat: center.Lat + (rng.Float64()-0.5)*JitterSpan,
		Lng: center.Lng + (rng.Float64()-0.5)*JitterSpan,
	}
}

// PlaceReports gives each stored report a synthesised location and status.
// Each report draws from its own stream derived from seed and its id, so a
// report lands in the same place whatever list it is placed with.
func PlaceReports(reports []models.CommunityReport, seed uint64) []models.MappedReport {
	out := make([]models.MappedReport, len(reports))
	for i, r := range reports {
		out[i] = PlaceReport(r, seed)
	}
	return out
}

// PlaceReport places one report. Draws: latitude, longitude, status.
func PlaceReport(r models.CommunityReport, seed uint64) models.MappedReport {
	rng := NewRand(seed ^ (uint64(r.ID) * 0x9e3779b97f4a7c15))
	loc := Jitter(MapCenter, rng)
	return models.MappedReport{
		ID:          r.ID,
		Type:        r.Category,
		Description: r.Description,
		Location:    loc,
		Status:      DrawReportStatus(rng),
		CreatedAt:   r.CreatedAt,
		Zipcode:     r.Zipcode,
		UserID:      r.UserID,
	}
}

// Heatmap weights each placed report by its category priority.
func Heatmap(reports []models.MappedReport) []models.HeatmapPoint {
	out := make([]models.HeatmapPoint, len(reports))
	for i, r := range reports {
		out[i] = models.HeatmapPoint{Location: r.Location, Weight: Priority(r.Type)}
	}
	return out
}

// FilterReports keeps reports matching category and zipcode. Empty values match everything.
func FilterReports(reports []models.MappedReport, category, zipcode string) []models.MappedReport {
	if category == "" && zipcode == "" {
		return reports
	}
	out := make([]models.MappedReport, 0, len(reports))
	for _, r := range reports {
		if category != "" && category != FilterAll && r.Type != category {
			continue
		}
		if zipcode != "" && r.Zipcode != zipcode {
			continue
		}
		out = append(out, r)
	}
	return out
}
