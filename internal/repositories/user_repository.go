package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByRole(ctx context.Context, role string) ([]models.User, error)
}

// MockUserRepository implements UserRepository over the static record set
type MockUserRepository struct {
	mockBase
}

// GetAll retrieves every user
func (r *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if err := r.call(ctx, "users.getAll", nil, delayUsersGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.Users), nil
}

// GetByID retrieves a user by ID
func (r *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if err := r.call(ctx, "users.getById", id, delayUsersGetByID); err != nil {
		return nil, err
	}
	user, ok := find(r.snap.Users, func(u models.User) bool { return u.ID == id })
	if !ok {
		return nil, notFound("user", id)
	}
	return &user, nil
}

// GetByRole retrieves users with the given role
func (r *MockUserRepository) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	if err := r.call(ctx, "users.getByRole", role, delayUsersGetByRole); err != nil {
		return nil, err
	}
	return filter(r.snap.Users, func(u models.User) bool { return u.Role == role }), nil
}
