package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
)

// FollowerService builds a company's follower list.
type FollowerService struct {
	follows repositories.FollowRepository
	now     func() time.Time
}

// NewFollowerService creates a new FollowerService. now is the clock durations are measured against.
func NewFollowerService(follows repositories.FollowRepository, now func() time.Time) *FollowerService {
	if now == nil {
		now = time.Now
	}
	return &FollowerService{follows: follows, now: now}
}

// Followers lists companyID's followers with a "following since" label.
// Stats cover every follower; search only narrows the list.
func (s *FollowerService) Followers(ctx context.Context, companyID uint, search string) (models.CompanyFollowers, error) {
	views, err := s.views(ctx, companyID)
	if err != nil {
		return models.CompanyFollowers{}, err
	}
	return models.CompanyFollowers{
		CompanyID: companyID,
		Followers: aggregate.SearchFollowers(views, search),
		Stats:     aggregate.SummariseFollowers(views, s.now()),
	}, nil
}

// Stats returns the follower totals of companyID.
func (s *FollowerService) Stats(ctx context.Context, companyID uint) (models.FollowerStats, error) {
	views, err := s.views(ctx, companyID)
	if err != nil {
		return models.FollowerStats{}, err
	}
	return aggregate.SummariseFollowers(views, s.now()), nil
}

// Companies lists the companies followerID follows.
func (s *FollowerService) Companies(ctx context.Context, followerID uint) ([]models.UserCompact, error) {
	companies, err := s.follows.GetCompaniesByFollower(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("load companies followed by %d: %w", followerID, err)
	}
	out := make([]models.UserCompact, len(companies))
	for i := range companies {
		out[i] = companies[i].ToCompact()
	}
	return out, nil
}

func (s *FollowerService) views(ctx context.Context, companyID uint) ([]models.FollowerView, error) {
	var (
		followers []models.User
		follows   []models.Follow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followers, err = s.follows.GetFollowersByCompany(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		follows, err = s.follows.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load followers of company %d: %w", companyID, err)
	}
	return aggregate.FollowerViews(followers, follows, companyID, s.now()), nil
}
