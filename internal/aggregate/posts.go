package aggregate

import (
	"cmp"
	"slices"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// FilterAll is the filter value that disables type/status filtering.
const FilterAll = "all"

// FeedbackCounts is the like/dislike tally of one post.
type FeedbackCounts struct {
	Likes    int
	Dislikes int
}

// CountFeedback tallies feedback per post. Types other than like and dislike are ignored.
func CountFeedback(feedback []models.Feedback) map[uint]FeedbackCounts {
	counts := make(map[uint]FeedbackCounts)
	for _, f := range feedback {
		c := counts[f.PostID]
		switch f.Type {
		case models.FeedbackLike:
			c.Likes++
		case models.FeedbackDislike:
			c.Dislikes++
		default:
			continue
		}
		counts[f.PostID] = c
	}
	return counts
}

// EnrichPost joins a post with its author name and counts.
func EnrichPost(p models.Post, users map[uint]models.User, replies int, fb FeedbackCounts) models.EnrichedPost {
	return models.EnrichedPost{
		Post:         p,
		Username:     Username(users, p.UserID),
		RepliesCount: replies,
		Likes:        fb.Likes,
		Dislikes:     fb.Dislikes,
	}
}

// SortNewestFirst orders posts by creation time descending, ties by id descending.
func SortNewestFirst(posts []models.EnrichedPost) {
	slices.SortStableFunc(posts, func(a, b models.EnrichedPost) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// FilterPostsByType keeps posts of the given type. Empty or FilterAll keeps everything.
func FilterPostsByType(posts []models.EnrichedPost, postType string) []models.EnrichedPost {
	if postType == "" || postType == FilterAll {
		return posts
	}
	out := make([]models.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		if p.Type == postType {
			out = append(out, p)
		}
	}
	return out
}

// EnrichReplies attaches author name and role to replies and sorts them oldest first.
func EnrichReplies(replies []models.Reply, users map[uint]models.User) []models.EnrichedReply {
	out := make([]models.EnrichedReply, len(replies))
	for i, r := range replies {
		author := Participant(users, r.UserID)
		out[i] = models.EnrichedReply{Reply: r, Username: author.Username, Role: author.Role}
	}
	slices.SortStableFunc(out, func(a, b models.EnrichedReply) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// RepliesOf returns the replies to postID, oldest first.
func RepliesOf(replies []models.Reply, postID uint) []models.Reply {
	var out []models.Reply
	for _, r := range replies {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Reply) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
