// Package repositories is the dashboard's data-access layer. Every repository
// reads the static record set through a simulator, so each call has a fixed
// latency and a small chance of failing with ErrTransient.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/minerahub/dashboard/backend/internal/simulator"
	"github.com/minerahub/dashboard/backend/internal/store"
)

var (
	// ErrNotFound is returned by id lookups with no matching row. It is not retryable.
	ErrNotFound = errors.New("not found")
	// ErrTransient is a simulated network failure. It is retryable.
	ErrTransient = simulator.ErrTransient
)

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}

// Repositories bundles the access layer for wiring.
type Repositories struct {
	Users            UserRepository
	Posts            PostRepository
	Follows          FollowRepository
	Feedback         FeedbackRepository
	Messages         MessageRepository
	SocialCases      SocialCaseRepository
	CommunityReports CommunityReportRepository
}

// NewMockRepositories creates the simulated access layer over snap.
func NewMockRepositories(sim *simulator.Simulator, snap *store.Snapshot) *Repositories {
	base := mockBase{sim: sim, snap: snap}
	return &Repositories{
		Users:            &MockUserRepository{base},
		Posts:            &MockPostRepository{base},
		Follows:          &MockFollowRepository{base},
		Feedback:         &MockFeedbackRepository{base},
		Messages:         &MockMessageRepository{base},
		SocialCases:      &MockSocialCaseRepository{base},
		CommunityReports: &MockCommunityReportRepository{base},
	}
}

type mockBase struct {
	sim  *simulator.Simulator
	snap *store.Snapshot
}

func (b mockBase) call(ctx context.Context, name string, key any, delay time.Duration) error {
	return b.sim.Call(ctx, simulator.Op{Name: name, Key: key, Delay: delay})
}

func notFound(kind string, id uint) error {
	return fmt.Errorf("%s with id %d: %w", kind, id, ErrNotFound)
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func find[T any](rows []T, match func(T) bool) (T, bool) {
	i := slices.IndexFunc(rows, match)
	if i < 0 {
		var zero T
		return zero, false
	}
	return rows[i], true
}
