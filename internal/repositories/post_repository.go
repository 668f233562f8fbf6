package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
)

// PostRepository defines the interface for post and reply data operations
type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Post, error)
	GetByType(ctx context.Context, postType string) ([]models.Post, error)
	GetReplies(ctx context.Context, postID uint) ([]models.Reply, error)
}

// MockPostRepository implements PostRepository over the static record set
type MockPostRepository struct {
	mockBase
}

// GetAll retrieves every post
func (r *MockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	if err := r.call(ctx, "posts.getAll", nil, delayPostsGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.Posts), nil
}

// GetByID retrieves a post by ID
func (r *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if err := r.call(ctx, "posts.getById", id, delayPostsGetByID); err != nil {
		return nil, err
	}
	post, ok := find(r.snap.Posts, func(p models.Post) bool { return p.ID == id })
	if !ok {
		return nil, notFound("post", id)
	}
	return &post, nil
}

// GetByUserID retrieves posts by a specific user
func (r *MockPostRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	if err := r.call(ctx, "posts.getByUserId", userID, delayPostsGetByUserID); err != nil {
		return nil, err
	}
	return filter(r.snap.Posts, func(p models.Post) bool { return p.UserID == userID }), nil
}

// GetByType retrieves posts of a specific type
func (r *MockPostRepository) GetByType(ctx context.Context, postType string) ([]models.Post, error) {
	if err := r.call(ctx, "posts.getByType", postType, delayPostsGetByType); err != nil {
		return nil, err
	}
	return filter(r.snap.Posts, func(p models.Post) bool { return p.Type == postType }), nil
}

// GetReplies retrieves the replies to a post, oldest first
func (r *MockPostRepository) GetReplies(ctx context.Context, postID uint) ([]models.Reply, error) {
	if err := r.call(ctx, "posts.getReplies", postID, delayPostsGetReplies); err != nil {
		return nil, err
	}
	replies := aggregate.RepliesOf(r.snap.Replies, postID)
	if replies == nil {
		replies = []models.Reply{}
	}
	return replies, nil
}
