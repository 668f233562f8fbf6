package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/store"
)

// InboxService builds a user's conversations.
type InboxService struct {
	messages repositories.MessageRepository
	users    repositories.UserRepository
	overlay  *store.Overlay
}

// NewInboxService creates a new InboxService
func NewInboxService(messages repositories.MessageRepository, users repositories.UserRepository, overlay *store.Overlay) *InboxService {
	return &InboxService{messages: messages, users: users, overlay: overlay}
}

// Conversations lists userID's conversations, most recent first.
// Both the message and the user load are required.
func (s *InboxService) Conversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var (
		messages []models.Message
		users    []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		messages, err = s.messages.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load conversations for user %d: %w", userID, err)
	}

	messages = append(messages, s.overlay.Messages()...)
	read := func(partner uint) (time.Time, bool) { return s.overlay.ReadAt(userID, partner) }
	return aggregate.GroupConversations(messages, users, userID, read), nil
}

// Open returns the full thread between userID and partnerID, oldest first, and
// marks it read for userID.
func (s *InboxService) Open(ctx context.Context, userID, partnerID uint) (models.Conversation, error) {
	var (
		thread  []models.Message
		partner models.UserCompact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		thread, err = s.messages.GetConversation(gctx, userID, partnerID)
		return err
	})
	g.Go(func() error {
		u, err := s.users.GetByID(gctx, partnerID)
		if errors.Is(err, repositories.ErrNotFound) {
			partner = models.UnknownCompact(partnerID)
			return nil
		}
		if err != nil {
			return err
		}
		partner = u.ToCompact()
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Conversation{}, fmt.Errorf("open conversation %s: %w", aggregate.PairKey(userID, partnerID), err)
	}

	thread = append(thread, aggregate.ConversationMessages(s.overlay.Messages(), userID, partnerID)...)
	aggregate.SortChronological(thread)
	for i := range thread {
		if thread[i].ToUserID == userID {
			thread[i].IsRead = true
		}
	}
	s.overlay.MarkRead(userID, partnerID)

	conv := models.Conversation{
		ID:          aggregate.PairKey(userID, partnerID),
		Participant: partner,
		Messages:    thread,
	}
	if n := len(thread); n > 0 {
		last := thread[n-1]
		conv.LastMessage = models.LastMessage{
			Content:   last.Content,
			CreatedAt: last.CreatedAt,
			SenderID:  last.FromUserID,
			IsRead:    true,
		}
	}
	return conv, nil
}

// Send records a local message. The recipient must exist.
func (s *InboxService) Send(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	if req.FromUserID == req.ToUserID {
		return models.Message{}, fmt.Errorf("sender and recipient are the same user: %w", ErrInvalidInput)
	}
	if _, err := s.users.GetByID(ctx, req.ToUserID); err != nil {
		return models.Message{}, fmt.Errorf("resolve recipient: %w", err)
	}
	return s.overlay.AddMessage(models.Message{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Content:    req.Content,
	}), nil
}
