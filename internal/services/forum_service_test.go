package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/simulator"
)

func postByID(t *testing.T, posts []models.EnrichedPost, id uint) models.EnrichedPost {
	t.Helper()
	for _, p := range posts {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("post %d not in result", id)
	return models.EnrichedPost{}
}

func TestForumList(t *testing.T) {
	f := newFixture(t, nil)

	posts, err := f.svc.Forum.List(context.Background(), "", Degrade)
	require.NoError(t, err)
	require.Len(t, posts, 10)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
	assert.Equal(t, uint(10), posts[0].ID)
	assert.Equal(t, models.UnknownUsername, posts[0].Username)

	first := postByID(t, posts, 1)
	assert.Equal(t, "maria_silva", first.Username)
	assert.Equal(t, 2, first.RepliesCount)
	assert.Equal(t, 2, first.Likes)
	assert.Equal(t, 1, first.Dislikes)

	assert.Equal(t, 3, postByID(t, posts, 6).RepliesCount)
	assert.Zero(t, postByID(t, posts, 7).RepliesCount)
}

func TestForumList_TypeFilter(t *testing.T) {
	f := newFixture(t, nil)

	posts, err := f.svc.Forum.List(context.Background(), models.PostTypeSuggestion, Degrade)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, models.PostTypeSuggestion, p.Type)
	}
}

func TestForumList_PostLoadFailureIsFatalAndRetryable(t *testing.T) {
	var calls atomic.Int32
	f := newFixture(t, func(op simulator.Op) bool {
		return op.Name == "posts.getAll" && calls.Add(1) == 1
	})

	_, err := f.svc.Forum.List(context.Background(), "", Degrade)
	require.Error(t, err)
	assert.True(t, repositories.IsRetryable(err))

	posts, err := f.svc.Forum.List(context.Background(), "", Degrade)
	require.NoError(t, err)
	assert.Len(t, posts, 10)
}

func TestForumList_ReplyFailureDegradesOnePost(t *testing.T) {
	f := newFixture(t, failOn("posts.getReplies", uint(6)))

	posts, err := f.svc.Forum.List(context.Background(), "", Degrade)
	require.NoError(t, err)
	require.Len(t, posts, 10)

	assert.Zero(t, postByID(t, posts, 6).RepliesCount)
	assert.Equal(t, 3, postByID(t, posts, 6).Likes)
	assert.Equal(t, 2, postByID(t, posts, 1).RepliesCount)
	assert.Equal(t, 2, postByID(t, posts, 4).RepliesCount)
}

func TestForumList_UserFailureDegradesToUnknown(t *testing.T) {
	f := newFixture(t, failOn("users.getAll", nil))

	posts, err := f.svc.Forum.List(context.Background(), "", Degrade)
	require.NoError(t, err)
	for _, p := range posts {
		assert.Equal(t, models.UnknownUsername, p.Username)
	}
	assert.Equal(t, 2, postByID(t, posts, 1).Likes)
}

func TestForumList_StrictPolicyFails(t *testing.T) {
	f := newFixture(t, failOn("feedback.getAll", nil))

	_, err := f.svc.Forum.List(context.Background(), "", Strict)
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrTransient)
}

func TestForumList_Cancelled(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	posts, err := f.svc.Forum.List(ctx, "", Degrade)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, posts)
}

func TestForumDetail(t *testing.T) {
	f := newFixture(t, nil)

	detail, err := f.svc.Forum.Detail(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "lucia_ferreira", detail.Username)
	assert.Equal(t, 3, detail.RepliesCount)
	assert.Equal(t, 3, detail.Likes)
	require.Len(t, detail.Replies, 3)
	assert.Equal(t, []uint{9, 7, 8}, []uint{detail.Replies[0].ID, detail.Replies[1].ID, detail.Replies[2].ID})
	assert.Equal(t, "prefeitura_bh", detail.Replies[1].Username)
	assert.Equal(t, models.RolePublicAgency, detail.Replies[1].Role)

	_, err = f.svc.Forum.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestForumDetail_EnrichmentFailureIsFatal(t *testing.T) {
	f := newFixture(t, failOn("posts.getReplies", uint(6)))

	_, err := f.svc.Forum.Detail(context.Background(), 6)
	assert.ErrorIs(t, err, repositories.ErrTransient)
}

func TestForumCreatePostAndReply(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	post, err := f.svc.Forum.CreatePost(ctx, models.CreatePostRequest{
		UserID: 3,
		Title:  "Coleta seletiva",
		Body:   "Precisamos de mais pontos de coleta.",
		Type:   models.PostTypeSuggestion,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), post.ID)
	assert.Equal(t, models.PostStatusPending, post.Status)
	assert.Equal(t, "ana_oliveira", post.Username)
	assert.Zero(t, post.RepliesCount)

	reply, err := f.svc.Forum.CreateReply(ctx, post.ID, models.CreateReplyRequest{UserID: 5, Content: "Vamos avaliar."})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCompany, reply.Role)

	posts, err := f.svc.Forum.List(ctx, "", Degrade)
	require.NoError(t, err)
	require.Len(t, posts, 11)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, 1, posts[0].RepliesCount)

	replies, err := f.svc.Forum.Replies(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "eco_miner", replies[0].Username)

	_, err = f.svc.Forum.CreateReply(ctx, 999, models.CreateReplyRequest{UserID: 5, Content: "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = f.svc.Forum.CreatePost(ctx, models.CreatePostRequest{UserID: 99, Title: "abc", Body: "b", Type: models.PostTypeOpinion})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestForumReplyToStoredPostExtendsDetail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Forum.CreateReply(ctx, 1, models.CreateReplyRequest{UserID: 7, Content: "Concordo."})
	require.NoError(t, err)

	detail, err := f.svc.Forum.Detail(ctx, 1)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 3)
	assert.Equal(t, 3, detail.RepliesCount)
	assert.WithinDuration(t, testNow, detail.Replies[2].CreatedAt, time.Second)
}

func TestParseEnrichmentPolicy(t *testing.T) {
	p, err := ParseEnrichmentPolicy("")
	require.NoError(t, err)
	assert.Equal(t, Degrade, p)

	p, err = ParseEnrichmentPolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, Strict, p)

	_, err = ParseEnrichmentPolicy("lenient")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
