package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	GetAll(ctx context.Context) ([]models.Follow, error)
	GetFollowersByCompany(ctx context.Context, companyID uint) ([]models.User, error)
	GetCompaniesByFollower(ctx context.Context, followerID uint) ([]models.User, error)
}

// MockFollowRepository implements FollowRepository over the static record set
type MockFollowRepository struct {
	mockBase
}

// GetAll retrieves every follow relationship
func (r *MockFollowRepository) GetAll(ctx context.Context) ([]models.Follow, error) {
	if err := r.call(ctx, "follows.getAll", nil, delayFollowsGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.Follows), nil
}

// GetFollowersByCompany retrieves the users following a company
func (r *MockFollowRepository) GetFollowersByCompany(ctx context.Context, companyID uint) ([]models.User, error) {
	if err := r.call(ctx, "follows.getFollowersByCompany", companyID, delayFollowsGetFollowers); err != nil {
		return nil, err
	}
	ids := make(map[uint]bool)
	for _, f := range r.snap.Follows {
		if f.CompanyID == companyID {
			ids[f.FollowerID] = true
		}
	}
	return filter(r.snap.Users, func(u models.User) bool { return ids[u.ID] }), nil
}

// GetCompaniesByFollower retrieves the companies a user follows
func (r *MockFollowRepository) GetCompaniesByFollower(ctx context.Context, followerID uint) ([]models.User, error) {
	if err := r.call(ctx, "follows.getCompaniesByFollower", followerID, delayFollowsGetCompanies); err != nil {
		return nil, err
	}
	ids := make(map[uint]bool)
	for _, f := range r.snap.Follows {
		if f.FollowerID == followerID {
			ids[f.CompanyID] = true
		}
	}
	return filter(r.snap.Users, func(u models.User) bool {
		return ids[u.ID] && u.Role == models.RoleCompany
	}), nil
}
