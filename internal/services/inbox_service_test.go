package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
)

func TestInboxConversations(t *testing.T) {
	f := newFixture(t, nil)

	convs, err := f.svc.Inbox.Conversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, convs, 4)

	var partners []uint
	for _, c := range convs {
		partners = append(partners, c.Participant.ID)
	}
	assert.Equal(t, []uint{2, 5, 6, 12}, partners)

	assert.Equal(t, "1-2", convs[0].ID)
	assert.Equal(t, 2, convs[0].UnreadCount)
	assert.Equal(t, "Posso te dar carona.", convs[0].LastMessage.Content)
	assert.Equal(t, 1, convs[1].UnreadCount)
	assert.Equal(t, models.RoleCompany, convs[1].Participant.Role)
	assert.Zero(t, convs[2].UnreadCount)
	assert.Equal(t, models.UnknownUsername, convs[3].Participant.Username)
}

func TestInboxConversations_EveryLoadIsRequired(t *testing.T) {
	f := newFixture(t, failOn("users.getAll", nil))

	_, err := f.svc.Inbox.Conversations(context.Background(), 1)
	assert.ErrorIs(t, err, repositories.ErrTransient)
}

func TestInboxOpenMarksRead(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	conv, err := f.svc.Inbox.Open(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "joao_santos", conv.Participant.Username)
	assert.Zero(t, conv.UnreadCount)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, uint(4), conv.Messages[0].ID)
	for _, m := range conv.Messages {
		assert.True(t, m.IsRead)
	}

	convs, err := f.svc.Inbox.Conversations(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, convs[0].UnreadCount)
	assert.True(t, convs[0].LastMessage.IsRead)
	assert.Equal(t, 1, convs[1].UnreadCount)

	_, err = f.svc.Inbox.Send(ctx, models.SendMessageRequest{FromUserID: 1, ToUserID: 2, Content: "Vou sim."})
	require.NoError(t, err)
	other, err := f.svc.Inbox.Conversations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 1, other[0].UnreadCount)
}

func TestInboxOpen_UnknownPartner(t *testing.T) {
	f := newFixture(t, nil)

	conv, err := f.svc.Inbox.Open(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownUsername, conv.Participant.Username)
	assert.Len(t, conv.Messages, 1)
}

func TestInboxSend(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	msg, err := f.svc.Inbox.Send(ctx, models.SendMessageRequest{FromUserID: 1, ToUserID: 5, Content: "Obrigada!"})
	require.NoError(t, err)
	assert.Equal(t, uint(11), msg.ID)
	assert.False(t, msg.IsRead)

	convs, err := f.svc.Inbox.Conversations(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(5), convs[0].Participant.ID)
	assert.Equal(t, "Obrigada!", convs[0].LastMessage.Content)
	assert.Equal(t, uint(1), convs[0].LastMessage.SenderID)

	recipient, err := f.svc.Inbox.Conversations(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(1), recipient[0].Participant.ID)
	assert.Equal(t, 1, recipient[0].UnreadCount)

	_, err = f.svc.Inbox.Send(ctx, models.SendMessageRequest{FromUserID: 1, ToUserID: 99, Content: "?"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = f.svc.Inbox.Send(ctx, models.SendMessageRequest{FromUserID: 1, ToUserID: 1, Content: "?"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInboxOpen_LaterMessagesAreUnread(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	clock := testNow
	f.overlay.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})

	_, err := f.svc.Inbox.Open(ctx, 1, 5)
	require.NoError(t, err)
	_, err = f.svc.Inbox.Send(ctx, models.SendMessageRequest{FromUserID: 5, ToUserID: 1, Content: "Mais uma coisa."})
	require.NoError(t, err)

	convs, err := f.svc.Inbox.Conversations(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(5), convs[0].Participant.ID)
	assert.Equal(t, 1, convs[0].UnreadCount)
	assert.False(t, convs[0].LastMessage.IsRead)
}
