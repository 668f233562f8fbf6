// Package aggregate joins flat record collections into the views the dashboard shows.
// Every function here is pure: inputs are never modified and randomness comes from
// a caller-supplied *rand.Rand or seed.
package aggregate

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// PairKey returns the key shared by both directions of a conversation.
func PairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// ReadFunc returns when the current user last opened the conversation with partner.
type ReadFunc func(partner uint) (readAt time.Time, ok bool)

// GroupConversations partitions the messages involving userID by counterpart.
// Unread counts only messages addressed to userID with is_read=false that were
// sent after the conversation was last opened. The result is sorted by last
// message, newest first. Conversation.Messages is left empty.
func GroupConversations(messages []models.Message, users []models.User, userID uint, read ReadFunc) []models.Conversation {
	convs, _ := group(messages, users, userID, read)
	return convs
}

func group(messages []models.Message, users []models.User, userID uint, read ReadFunc) ([]models.Conversation, map[string]models.Message) {
	index := IndexUsers(users)
	byKey := make(map[string]*models.Conversation)
	opened := make(map[string]func(time.Time) bool)
	last := make(map[string]models.Message)
	var order []string

	for _, m := range messages {
		if !m.Involves(userID) {
			continue
		}
		partnerID := m.Counterpart(userID)
		key := PairKey(userID, partnerID)
		conv, ok := byKey[key]
		if !ok {
			conv = &models.Conversation{ID: key, Participant: Participant(index, partnerID)}
			byKey[key] = conv
			opened[key] = seenBefore(read, partnerID)
			order = append(order, key)
		}
		if m.ToUserID == userID && !m.IsRead && !opened[key](m.CreatedAt) {
			conv.UnreadCount++
		}
		if prev, seen := last[key]; !seen || newer(m, prev) {
			last[key] = m
		}
	}

	out := make([]models.Conversation, 0, len(order))
	for _, key := range order {
		conv := byKey[key]
		lm := last[key]
		conv.LastMessage = models.LastMessage{
			Content:   lm.Content,
			CreatedAt: lm.CreatedAt,
			SenderID:  lm.FromUserID,
			IsRead:    lm.IsRead || opened[key](lm.CreatedAt),
		}
		out = append(out, *conv)
	}
	slices.SortStableFunc(out, func(a, b models.Conversation) int {
		if c := b.LastMessage.CreatedAt.Compare(a.LastMessage.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Participant.ID, b.Participant.ID)
	})
	return out, last
}

// seenBefore reports whether a message sent at t was already visible when the
// conversation with partner was last opened.
func seenBefore(read ReadFunc, partner uint) func(time.Time) bool {
	if read == nil {
		return func(time.Time) bool { return false }
	}
	readAt, ok := read(partner)
	if !ok {
		return func(time.Time) bool { return false }
	}
	return func(t time.Time) bool { return !t.After(readAt) }
}

// ConversationMessages returns the messages exchanged between a and b, oldest first.
func ConversationMessages(messages []models.Message, a, b uint) []models.Message {
	var out []models.Message
	for _, m := range messages {
		if (m.FromUserID == a && m.ToUserID == b) || (m.FromUserID == b && m.ToUserID == a) {
			out = append(out, m)
		}
	}
	SortChronological(out)
	return out
}

// SortChronological sorts messages oldest first, breaking ties by id.
func SortChronological(messages []models.Message) {
	slices.SortStableFunc(messages, func(a, b models.Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Inbox converts grouped conversations into the access layer's inbox rows.
func Inbox(messages []models.Message, users []models.User, userID uint) []models.InboxEntry {
	convs, last := group(messages, users, userID, nil)
	out := make([]models.InboxEntry, len(convs))
	for i, c := range convs {
		out[i] = models.InboxEntry{
			Partner:     c.Participant,
			LastMessage: last[c.ID],
			UnreadCount: c.UnreadCount,
		}
	}
	return out
}

func newer(a, b models.Message) bool {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c > 0
	}
	return a.ID > b.ID
}
