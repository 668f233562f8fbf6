package repositories

import (
	"context"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
)

// MessageRepository defines the interface for direct message data operations
type MessageRepository interface {
	GetAll(ctx context.Context) ([]models.Message, error)
	GetConversation(ctx context.Context, user1ID, user2ID uint) ([]models.Message, error)
	GetInbox(ctx context.Context, userID uint) ([]models.InboxEntry, error)
}

// MockMessageRepository implements MessageRepository over the static record set
type MockMessageRepository struct {
	mockBase
}

// GetAll retrieves every message
func (r *MockMessageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	if err := r.call(ctx, "messages.getAll", nil, delayMessagesGetAll); err != nil {
		return nil, err
	}
	return slices.Clone(r.snap.Messages), nil
}

// GetConversation retrieves the messages between two users, oldest first
func (r *MockMessageRepository) GetConversation(ctx context.Context, user1ID, user2ID uint) ([]models.Message, error) {
	if err := r.call(ctx, "messages.getConversation", aggregate.PairKey(user1ID, user2ID), delayMessagesGetConversation); err != nil {
		return nil, err
	}
	thread := aggregate.ConversationMessages(r.snap.Messages, user1ID, user2ID)
	if thread == nil {
		thread = []models.Message{}
	}
	return thread, nil
}

// GetInbox retrieves one row per conversation partner of a user, most recent first
func (r *MockMessageRepository) GetInbox(ctx context.Context, userID uint) ([]models.InboxEntry, error) {
	if err := r.call(ctx, "messages.getInbox", userID, delayMessagesGetInbox); err != nil {
		return nil, err
	}
	return aggregate.Inbox(r.snap.Messages, r.snap.Users, userID), nil
}
