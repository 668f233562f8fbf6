package models

import (
	"encoding/json"
	"time"
)

// Message is a direct message between two users.
type Message struct {
	ID         uint      `json:"id" bson:"id" gorm:"primaryKey"`
	FromUserID uint      `json:"from_user_id" bson:"from_user_id" gorm:"index"`
	ToUserID   uint      `json:"to_user_id" bson:"to_user_id" gorm:"index"`
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" gorm:"index"`
	IsRead     bool      `json:"is_read" bson:"is_read"`
}

// UnmarshalJSON accepts sender_id/receiver_id as aliases for the endpoint fields.
func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	var aux struct {
		plain
		SenderID   *uint `json:"sender_id"`
		ReceiverID *uint `json:"receiver_id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Message(aux.plain)
	if m.FromUserID == 0 && aux.SenderID != nil {
		m.FromUserID = *aux.SenderID
	}
	if m.ToUserID == 0 && aux.ReceiverID != nil {
		m.ToUserID = *aux.ReceiverID
	}
	return nil
}

// Involves reports whether userID is either endpoint of the message.
func (m *Message) Involves(userID uint) bool {
	return m.FromUserID == userID || m.ToUserID == userID
}

// Counterpart returns the endpoint that is not userID.
func (m *Message) Counterpart(userID uint) uint {
	if m.FromUserID == userID {
		return m.ToUserID
	}
	return m.FromUserID
}

// LastMessage is the conversation preview shown in the inbox.
type LastMessage struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	SenderID  uint      `json:"sender_id"`
	IsRead    bool      `json:"is_read"`
}

// Conversation groups all messages exchanged between the current user and one partner.
type Conversation struct {
	ID          string      `json:"id"`
	Participant UserCompact `json:"participant"`
	LastMessage LastMessage `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
	Messages    []Message   `json:"messages,omitempty"`
}

// InboxEntry is the access layer's inbox row.
type InboxEntry struct {
	Partner     UserCompact `json:"partner"`
	LastMessage Message     `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
}

// SendMessageRequest defines the request body for sending a direct message
type SendMessageRequest struct {
	FromUserID uint   `json:"from_user_id" validate:"required"`
	ToUserID   uint   `json:"to_user_id" validate:"required,nefield=FromUserID"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}
