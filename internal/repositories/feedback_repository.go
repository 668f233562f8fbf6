package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// FeedbackRepository defines the interface for like/dislike data operations
type FeedbackRepository interface {
	GetAll(ctx context.Context) ([]models.Feedback, error)
	GetByPostID(ctx context.Context, postID uint) ([]models.Feedback, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Feedback, error)
}

// MockFeedbackRepository implements FeedbackRepository over the static record set
type MockFeedbackRepository struct {
	mockBase
}

// GetAll retrieves every feedback row
func (r *MockFeedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	if err := r.call(ctx, "feedback.getAll", nil, delayFeedbackGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.Feedback), nil
}

// GetByPostID retrieves the feedback on a post
func (r *MockFeedbackRepository) GetByPostID(ctx context.Context, postID uint) ([]models.Feedback, error) {
	if err := r.call(ctx, "feedback.getByPostId", postID, delayFeedbackGetByPostID); err != nil {
		return nil, err
	}
	return filter(r.snap.Feedback, func(f models.Feedback) bool { return f.PostID == postID }), nil
}

// GetByUserID retrieves the feedback given by a user
func (r *MockFeedbackRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Feedback, error) {
	if err := r.call(ctx, "feedback.getByUserId", userID, delayFeedbackGetByUserID); err != nil {
		return nil, err
	}
	return filter(r.snap.Feedback, func(f models.Feedback) bool { return f.UserID == userID }), nil
}
