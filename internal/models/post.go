package models

import "time"

// Post types.
const (
	PostTypeOpinion    = "opinion"
	PostTypeSuggestion = "suggestion"
	PostTypeReport     = "report"
)

// Post statuses.
const (
	PostStatusPending   = "pending"
	PostStatusReviewed  = "reviewed"
	PostStatusResponded = "responded"
)

// Post is a forum thread opened by a user.
type Post struct {
	ID        uint      `json:"id" bson:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" bson:"user_id" gorm:"index"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Type      string    `json:"type" bson:"type" gorm:"size:20;index"`
	Status    string    `json:"status" bson:"status" gorm:"size:20"`
	Zipcode   string    `json:"zipcode,omitempty" bson:"zipcode,omitempty" gorm:"size:10"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// EnrichedPost is a post joined with its author and reply/feedback counts.
type EnrichedPost struct {
	Post
	Username     string `json:"username"`
	RepliesCount int    `json:"replies_count"`
	Likes        int    `json:"likes"`
	Dislikes     int    `json:"dislikes"`
}

// PostDetail is a single post with its enriched replies in chronological order.
type PostDetail struct {
	EnrichedPost
	Replies []EnrichedReply `json:"replies"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required,min=3,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=5000"`
	Type    string `json:"type" validate:"required,oneof=opinion suggestion report"`
	Zipcode string `json:"zipcode,omitempty" validate:"omitempty,max=10"`
}
