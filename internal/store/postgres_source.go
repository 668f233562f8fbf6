package store

import (
	"context"
	"fmt"

	"github.com/minerahub/dashboard/backend/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresSource loads the record set from a PostgreSQL database seeded by SeedPostgres.
type PostgresSource struct {
	db *gorm.DB
}

// NewPostgresSource creates a new PostgresSource
func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// AutoMigrate creates or updates the record set tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Reply{},
		&models.Follow{},
		&models.Feedback{},
		&models.Message{},
		&models.SocialCase{},
		&models.CommunityReport{},
	)
}

// Load reads every table in parallel, ordered by primary key.
func (s *PostgresSource) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	find := func(entity Entity, dest any) {
		g.Go(func() error {
			if err := s.db.WithContext(gctx).Order("id").Find(dest).Error; err != nil {
				return fmt.Errorf("load %s: %w", entity, err)
			}
			return nil
		})
	}
	find(EntityUsers, &snap.Users)
	find(EntityPosts, &snap.Posts)
	find(EntityReplies, &snap.Replies)
	find(EntityFollows, &snap.Follows)
	find(EntityFeedback, &snap.Feedback)
	find(EntityMessages, &snap.Messages)
	find(EntitySocialCases, &snap.SocialCases)
	find(EntityCommunityReports, &snap.CommunityReports)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// SeedPostgres migrates the schema and inserts the snapshot, skipping rows whose id already exists.
func SeedPostgres(ctx context.Context, db *gorm.DB, snap *Snapshot) error {
	if err := AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
		batches := []struct {
			entity Entity
			rows   any
			n      int
		}{
			{EntityUsers, &snap.Users, len(snap.Users)},
			{EntityPosts, &snap.Posts, len(snap.Posts)},
			{EntityReplies, &snap.Replies, len(snap.Replies)},
			{EntityFollows, &snap.Follows, len(snap.Follows)},
			{EntityFeedback, &snap.Feedback, len(snap.Feedback)},
			{EntityMessages, &snap.Messages, len(snap.Messages)},
			{EntitySocialCases, &snap.SocialCases, len(snap.SocialCases)},
			{EntityCommunityReports, &snap.CommunityReports, len(snap.CommunityReports)},
		}
		for _, b := range batches {
			if b.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(b.rows, 100).Error; err != nil {
				return fmt.Errorf("seed %s: %w", b.entity, err)
			}
		}
		return nil
	})
}
