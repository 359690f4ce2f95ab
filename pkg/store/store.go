// Package store persists generated manifests for later retrieval and
// diffing. The engine itself never persists anything; this is the host
// surface the HTTP API saves through.
package store

import (
	"context"
	"time"

	"github.com/seatforge/seatforge/pkg/manifest"
)

// Summary is a manifest listing entry without the identifier payload.
type Summary struct {
	EventID    string    `json:"event_id" bson:"event_id"`
	UpdateHash string    `json:"update_hash" bson:"update_hash"`
	UpdateTime time.Time `json:"update_time" bson:"update_time"`
}

// Store persists manifests keyed by event id. Saving an event that already
// exists replaces its manifest.
type Store interface {
	// Save upserts the manifest under its event id.
	Save(ctx context.Context, m *manifest.Manifest) error

	// Load returns the manifest for the event, or a MANIFEST_NOT_FOUND
	// error.
	Load(ctx context.Context, eventID string) (*manifest.Manifest, error)

	// List returns up to limit summaries, most recently updated first.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
