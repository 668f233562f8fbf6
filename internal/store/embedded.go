package store

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
)

//go:embed data/*.json
var bundle embed.FS

// EmbeddedSource reads the JSON bundle compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a new EmbeddedSource
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load decodes every collection of the bundle.
func (EmbeddedSource) Load(_ context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	targets := map[Entity]any{
		EntityUsers:            &snap.Users,
		EntityPosts:            &snap.Posts,
		EntityReplies:          &snap.Replies,
		EntityFollows:          &snap.Follows,
		EntityFeedback:         &snap.Feedback,
		EntityMessages:         &snap.Messages,
		EntitySocialCases:      &snap.SocialCases,
		EntityCommunityReports: &snap.CommunityReports,
	}
	for _, entity := range Entities {
		raw, err := bundle.ReadFile(path.Join("data", string(entity)+".json"))
		if err != nil {
			return nil, fmt.Errorf("read %s bundle: %w", entity, err)
		}
		if err := json.Unmarshal(raw, targets[entity]); err != nil {
			return nil, fmt.Errorf("decode %s bundle: %w", entity, err)
		}
	}
	return snap, nil
}

// MustLoadEmbedded returns the embedded snapshot and panics if the bundle is malformed.
// The bundle is fixed at build time, so a failure here is a build defect.
func MustLoadEmbedded() *Snapshot {
	snap, err := EmbeddedSource{}.Load(context.Background())
	if err != nil {
		panic(err)
	}
	return snap
}
