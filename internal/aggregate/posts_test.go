package aggregate

import (
	"testing"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFeedback_PartitionsLikesAndDislikes(t *testing.T) {
	feedback := []models.Feedback{
		{PostID: 1, Type: models.FeedbackLike},
		{PostID: 1, Type: models.FeedbackLike},
		{PostID: 1, Type: models.FeedbackDislike},
		{PostID: 2, Type: models.FeedbackDislike},
		{PostID: 2, Type: "meh"},
	}
	counts := CountFeedback(feedback)

	assert.Equal(t, FeedbackCounts{Likes: 2, Dislikes: 1}, counts[1])
	assert.Equal(t, FeedbackCounts{Likes: 0, Dislikes: 1}, counts[2])
	assert.Equal(t, FeedbackCounts{}, counts[3])
}

func TestEnrichPost(t *testing.T) {
	users := IndexUsers([]models.User{{ID: 1, Username: "maria"}})

	known := EnrichPost(models.Post{ID: 1, UserID: 1}, users, 3, FeedbackCounts{Likes: 2, Dislikes: 1})
	assert.Equal(t, "maria", known.Username)
	assert.Equal(t, 3, known.RepliesCount)
	assert.Equal(t, 2, known.Likes)
	assert.Equal(t, 1, known.Dislikes)

	orphan := EnrichPost(models.Post{ID: 2, UserID: 99}, users, 0, FeedbackCounts{})
	assert.Equal(t, models.UnknownUsername, orphan.Username)
}

func TestSortNewestFirstAndFilter(t *testing.T) {
	posts := []models.EnrichedPost{
		{Post: models.Post{ID: 1, Type: models.PostTypeReport, CreatedAt: at(1)}},
		{Post: models.Post{ID: 2, Type: models.PostTypeOpinion, CreatedAt: at(3)}},
		{Post: models.Post{ID: 3, Type: models.PostTypeReport, CreatedAt: at(2)}},
	}
	SortNewestFirst(posts)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, uint(3), posts[1].ID)
	assert.Equal(t, uint(1), posts[2].ID)

	reports := FilterPostsByType(posts, models.PostTypeReport)
	require.Len(t, reports, 2)
	for _, p := range reports {
		assert.Equal(t, models.PostTypeReport, p.Type)
	}
	assert.Len(t, FilterPostsByType(posts, FilterAll), 3)
	assert.Len(t, FilterPostsByType(posts, ""), 3)
}

func TestRepliesOfAndEnrichReplies(t *testing.T) {
	replies := []models.Reply{
		{ID: 1, PostID: 1, UserID: 5, CreatedAt: at(5)},
		{ID: 2, PostID: 1, UserID: 2, CreatedAt: at(1)},
		{ID: 3, PostID: 2, UserID: 2, CreatedAt: at(0)},
	}
	own := RepliesOf(replies, 1)
	require.Len(t, own, 2)
	assert.Equal(t, uint(2), own[0].ID)

	users := IndexUsers([]models.User{{ID: 5, Username: "eco_miner", Type: models.RoleCompany}})
	enriched := EnrichReplies([]models.Reply{replies[0], replies[1]}, users)
	assert.Equal(t, uint(2), enriched[0].ID)
	assert.Equal(t, models.UnknownUsername, enriched[0].Username)
	assert.Equal(t, "eco_miner", enriched[1].Username)
	assert.Equal(t, models.RoleCompany, enriched[1].Role)
}
