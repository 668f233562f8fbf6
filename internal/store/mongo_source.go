package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// MongoSource loads the record set from one MongoDB collection per entity.
type MongoSource struct {
	db *mongo.Database
}

// NewMongoSource creates a new MongoSource
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

// Load reads every collection in parallel, sorted by the numeric id field.
func (s *MongoSource) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	find := func(entity Entity, dest any) {
		g.Go(func() error {
			findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
			cursor, err := s.db.Collection(string(entity)).Find(gctx, bson.D{}, findOptions)
			if err != nil {
				return fmt.Errorf("load %s: %w", entity, err)
			}
			defer cursor.Close(gctx)
			if err := cursor.All(gctx, dest); err != nil {
				return fmt.Errorf("decode %s: %w", entity, err)
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

// SeedMongo replaces every collection with the snapshot rows and indexes the id field.
func SeedMongo(ctx context.Context, db *mongo.Database, snap *Snapshot) error {
	docs := map[Entity][]any{
		EntityUsers:            toDocs(snap.Users),
		EntityPosts:            toDocs(snap.Posts),
		EntityReplies:          toDocs(snap.Replies),
		EntityFollows:          toDocs(snap.Follows),
		EntityFeedback:         toDocs(snap.Feedback),
		EntityMessages:         toDocs(snap.Messages),
		EntitySocialCases:      toDocs(snap.SocialCases),
		EntityCommunityReports: toDocs(snap.CommunityReports),
	}
	for _, entity := range Entities {
		coll := db.Collection(string(entity))
		if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("clear %s: %w", entity, err)
		}
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("index %s: %w", entity, err)
		}
		if len(docs[entity]) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs[entity]); err != nil {
			return fmt.Errorf("seed %s: %w", entity, err)
		}
	}
	return nil
}

func toDocs[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}
