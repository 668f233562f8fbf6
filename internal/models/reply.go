package models

import "time"

// Reply is a response to a post.
type Reply struct {
	ID        uint      `json:"id" bson:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" bson:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" bson:"user_id" gorm:"index"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName keeps the table aligned with the post_replies data set.
func (Reply) TableName() string { return "post_replies" }

// EnrichedReply carries the reply author's display fields.
type EnrichedReply struct {
	Reply
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateReplyRequest defines the request body for replying to a post
type CreateReplyRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
