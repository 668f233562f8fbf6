// Package store holds the static record set the dashboard reads from.
//
// The record set is loaded once at startup from a Source (the embedded JSON
// bundle by default, or a seeded PostgreSQL / MongoDB database) and is never
// mutated afterwards. Local additions live in an Overlay.
package store

import (
	"context"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// Entity names a collection of the record set.
type Entity string

const (
	EntityUsers            Entity = "users"
	EntityPosts            Entity = "posts"
	EntityReplies          Entity = "post_replies"
	EntityFollows          Entity = "follows"
	EntityFeedback         Entity = "feedback"
	EntityMessages         Entity = "messages"
	EntitySocialCases      Entity = "social_cases"
	EntityCommunityReports Entity = "community_reports"
)

// Entities lists every collection in load order.
var Entities = []Entity{
	EntityUsers, EntityPosts, EntityReplies, EntityFollows,
	EntityFeedback, EntityMessages, EntitySocialCases, EntityCommunityReports,
}

// Snapshot is the complete, read-only record set.
type Snapshot struct {
	Users            []models.User
	Posts            []models.Post
	Replies          []models.Reply
	Follows          []models.Follow
	Feedback         []models.Feedback
	Messages         []models.Message
	SocialCases      []models.SocialCase
	CommunityReports []models.CommunityReport
}

// Source loads a Snapshot.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Counts returns the number of rows per collection.
func (s *Snapshot) Counts() map[Entity]int {
	return map[Entity]int{
		EntityUsers:            len(s.Users),
		EntityPosts:            len(s.Posts),
		EntityReplies:          len(s.Replies),
		EntityFollows:          len(s.Follows),
		EntityFeedback:         len(s.Feedback),
		EntityMessages:         len(s.Messages),
		EntitySocialCases:      len(s.SocialCases),
		EntityCommunityReports: len(s.CommunityReports),
	}
}
