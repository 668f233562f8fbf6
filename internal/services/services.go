// Package services assembles dashboard views from the access layer. Calls that
// produce the primary records are fatal; calls that only decorate them follow
// an EnrichmentPolicy.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/store"
)

// ErrInvalidInput marks a request the services refuse regardless of data availability.
var ErrInvalidInput = errors.New("invalid input")

// DefaultFanoutLimit bounds concurrent per-item access calls.
const DefaultFanoutLimit = 8

// EnrichmentPolicy decides what happens when a decorating call fails.
type EnrichmentPolicy int

const (
	// Degrade logs the failure and substitutes zero counts or Unknown User.
	Degrade EnrichmentPolicy = iota
	// Strict fails the whole view.
	Strict
)

func (p EnrichmentPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "degrade"
}

// ParseEnrichmentPolicy maps "degrade" and "strict" to a policy. Empty means Degrade.
func ParseEnrichmentPolicy(s string) (EnrichmentPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "degrade":
		return Degrade, nil
	case "strict":
		return Strict, nil
	default:
		return Degrade, fmt.Errorf("unknown enrichment policy %q: %w", s, ErrInvalidInput)
	}
}

// Options tunes the services.
type Options struct {
	FanoutLimit int
	Now         func() time.Time
}

// Services bundles every dashboard service.
type Services struct {
	Inbox            *InboxService
	Forum            *ForumService
	Followers        *FollowerService
	SocialCases      *SocialCaseService
	CommunityReports *CommunityReportService
}

// New creates the service bundle over the access layer and the local overlay.
func New(repos *repositories.Repositories, overlay *store.Overlay, logger *zap.Logger, opts Options) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.FanoutLimit <= 0 {
		opts.FanoutLimit = DefaultFanoutLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Services{
		Inbox:            NewInboxService(repos.Messages, repos.Users, overlay),
		Forum:            NewForumService(repos.Posts, repos.Users, repos.Feedback, overlay, logger, opts.FanoutLimit),
		Followers:        NewFollowerService(repos.Follows, opts.Now),
		SocialCases:      NewSocialCaseService(repos.SocialCases, repos.Users, overlay),
		CommunityReports: NewCommunityReportService(repos.CommunityReports, overlay),
	}
}

// isCancellation reports whether err comes from the caller giving up rather than the data layer.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
