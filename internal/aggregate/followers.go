package aggregate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// ElapsedDays is the whole number of days between t and now, rounded up.
func ElapsedDays(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// FollowingSince renders how long ago a follow started, in the coarsest unit whose
// threshold is not exceeded: days below 7, weeks below 30, months below 365, then years.
func FollowingSince(created, now time.Time) string {
	days := ElapsedDays(created, now)
	switch {
	case days < 7:
		return fmt.Sprintf("%d dias", days)
	case days < 30:
		return fmt.Sprintf("%d semanas", days/7)
	case days < 365:
		return fmt.Sprintf("%d meses", days/30)
	default:
		return fmt.Sprintf("%d anos", days/365)
	}
}

// FollowerViews joins a company's followers with their follow rows.
// Followers without a follow row for companyID are skipped.
func FollowerViews(followers []models.User, follows []models.Follow, companyID uint, now time.Time) []models.FollowerView {
	since := make(map[uint]models.Follow)
	for _, f := range follows {
		if f.CompanyID == companyID {
			since[f.FollowerID] = f
		}
	}
	out := make([]models.FollowerView, 0, len(followers))
	for _, u := range followers {
		f, ok := since[u.ID]
		if !ok {
			continue
		}
		out = append(out, models.FollowerView{
			ID:             f.ID,
			FollowerID:     u.ID,
			CompanyID:      companyID,
			Username:       u.Username,
			Email:          u.Email,
			CreatedAt:      f.CreatedAt,
			FollowingSince: FollowingSince(f.CreatedAt, now),
		})
	}
	return out
}

// SearchFollowers keeps followers whose username or email contains term, case-insensitively.
func SearchFollowers(views []models.FollowerView, term string) []models.FollowerView {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return views
	}
	out := make([]models.FollowerView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Username), term) || strings.Contains(strings.ToLower(v.Email), term) {
			out = append(out, v)
		}
	}
	return out
}

// SummariseFollowers counts followers and those who started following in now's calendar month.
func SummariseFollowers(views []models.FollowerView, now time.Time) models.FollowerStats {
	stats := models.FollowerStats{Total: len(views)}
	for _, v := range views {
		created := v.CreatedAt.In(now.Location())
		if created.Year() == now.Year() && created.Month() == now.Month() {
			stats.NewThisMonth++
		}
	}
	return stats
}
