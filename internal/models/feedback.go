package models

import "time"

// Feedback types.
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// Feedback is a like or dislike on a post.
type Feedback struct {
	ID        uint      `json:"id" bson:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" bson:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" bson:"user_id" gorm:"index"`
	Type      string    `json:"type" bson:"type" gorm:"size:10"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName keeps gorm from pluralising an uncountable noun.
func (Feedback) TableName() string { return "feedback" }
