package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minerahub/dashboard/backend/internal/aggregate"
	"github.com/minerahub/dashboard/backend/internal/models"
	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/store"
)

// ForumService builds the forum list and post detail views.
type ForumService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	feedback repositories.FeedbackRepository
	overlay  *store.Overlay
	logger   *zap.Logger
	fanout   int
}

// NewForumService creates a new ForumService
func NewForumService(
	posts repositories.PostRepository,
	users repositories.UserRepository,
	feedback repositories.FeedbackRepository,
	overlay *store.Overlay,
	logger *zap.Logger,
	fanout int,
) *ForumService {
	return &ForumService{
		posts:    posts,
		users:    users,
		feedback: feedback,
		overlay:  overlay,
		logger:   logger,
		fanout:   fanout,
	}
}

// List returns enriched posts, newest first, optionally limited to postType.
// Only the post load is fatal; users, feedback and replies follow policy.
func (s *ForumService) List(ctx context.Context, postType string, policy EnrichmentPolicy) ([]models.EnrichedPost, error) {
	posts, err := s.posts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	posts = append(posts, s.overlay.Posts()...)

	var (
		users    []models.User
		feedback []models.Feedback
		replies  = make([]int, len(posts))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	g.Go(func() error {
		u, err := s.users.GetAll(gctx)
		if err != nil {
			return s.enrichmentFailed(ctx, policy, "users.getAll", err)
		}
		users = u
		return nil
	})
	g.Go(func() error {
		f, err := s.feedback.GetAll(gctx)
		if err != nil {
			return s.enrichmentFailed(ctx, policy, "feedback.getAll", err)
		}
		feedback = f
		return nil
	})
	for i, p := range posts {
		g.Go(func() error {
			local := len(s.overlay.Replies(p.ID))
			r, err := s.posts.GetReplies(gctx, p.ID)
			if err != nil {
				replies[i] = local
				return s.enrichmentFailed(ctx, policy, "posts.getReplies", err, zap.Uint("post_id", p.ID))
			}
			replies[i] = len(r) + local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("enrich posts: %w", err)
	}

	index := aggregate.IndexUsers(users)
	counts := aggregate.CountFeedback(feedback)
	out := make([]models.EnrichedPost, len(posts))
	for i, p := range posts {
		out[i] = aggregate.EnrichPost(p, index, replies[i], counts[p.ID])
	}
	aggregate.SortNewestFirst(out)
	return aggregate.FilterPostsByType(out, postType), nil
}

// enrichmentFailed returns nil when the failure may be degraded and logs it.
// Cancellation of the request is never degraded.
func (s *ForumService) enrichmentFailed(ctx context.Context, policy EnrichmentPolicy, op string, err error, fields ...zap.Field) error {
	if policy == Strict || ctx.Err() != nil || isCancellation(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Warn("Enrichment failed, using fallback",
		append(fields, zap.String("op", op), zap.Error(err))...)
	return nil
}

// Detail returns one post with its replies. Every call is required here.
func (s *ForumService) Detail(ctx context.Context, postID uint) (models.PostDetail, error) {
	post, err := s.post(ctx, postID)
	if err != nil {
		return models.PostDetail{}, err
	}

	var (
		users    []models.User
		feedback []models.Feedback
		replies  []models.Reply
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		feedback, err = s.feedback.GetByPostID(gctx, postID)
		return err
	})
	g.Go(func() error {
		var err error
		replies, err = s.posts.GetReplies(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PostDetail{}, fmt.Errorf("load post %d detail: %w", postID, err)
	}

	replies = append(replies, s.overlay.Replies(postID)...)
	index := aggregate.IndexUsers(users)
	return models.PostDetail{
		EnrichedPost: aggregate.EnrichPost(post, index, len(replies), aggregate.CountFeedback(feedback)[postID]),
		Replies:      aggregate.EnrichReplies(replies, index),
	}, nil
}

// Replies returns the replies to a post with author details, oldest first.
func (s *ForumService) Replies(ctx context.Context, postID uint) ([]models.EnrichedReply, error) {
	if _, err := s.post(ctx, postID); err != nil {
		return nil, err
	}

	var (
		users   []models.User
		replies []models.Reply
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		replies, err = s.posts.GetReplies(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load replies of post %d: %w", postID, err)
	}
	replies = append(replies, s.overlay.Replies(postID)...)
	return aggregate.EnrichReplies(replies, aggregate.IndexUsers(users)), nil
}

// CreatePost records a local post. It starts pending with zero counts.
func (s *ForumService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.EnrichedPost, error) {
	author, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return models.EnrichedPost{}, fmt.Errorf("resolve author: %w", err)
	}
	post := s.overlay.AddPost(models.Post{
		UserID:  req.UserID,
		Title:   req.Title,
		Body:    req.Body,
		Type:    req.Type,
		Status:  models.PostStatusPending,
		Zipcode: req.Zipcode,
	})
	return models.EnrichedPost{Post: post, Username: author.Username}, nil
}

// CreateReply records a local reply to an existing post.
func (s *ForumService) CreateReply(ctx context.Context, postID uint, req models.CreateReplyRequest) (models.EnrichedReply, error) {
	if _, err := s.post(ctx, postID); err != nil {
		return models.EnrichedReply{}, err
	}
	author, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return models.EnrichedReply{}, fmt.Errorf("resolve author: %w", err)
	}
	reply := s.overlay.AddReply(models.Reply{
		PostID:  postID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	compact := author.ToCompact()
	return models.EnrichedReply{Reply: reply, Username: compact.Username, Role: compact.Role}, nil
}

// post resolves a post from the overlay first, then the access layer.
func (s *ForumService) post(ctx context.Context, postID uint) (models.Post, error) {
	if p, ok := s.overlay.Post(postID); ok {
		return p, nil
	}
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("load post: %w", err)
	}
	return *p, nil
}
