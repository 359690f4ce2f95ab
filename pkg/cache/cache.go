// Package cache provides content-addressed caching for generation results.
//
// The pipeline caches serialized manifests keyed by a hash of the venue
// configuration, so regenerating an unchanged venue is a cache read instead
// of a full layout pass. Backends: file (CLI), redis (server), null
// (disabled).
package cache

import (
	"context"
	"time"
)

// Cache is the minimal interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss is
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the generation parameters that participate in a layout
// cache key. Two runs differing in any field must never share an entry.
type LayoutKeyOpts struct {
	Strategy string `json:"strategy"`
	Capacity int    `json:"capacity"`
	EventID  string `json:"event_id,omitempty"`
}

// Keyer derives cache keys from domain values.
type Keyer interface {
	// LayoutKey keys a full generation result by the venue-config hash and
	// the generation parameters.
	LayoutKey(venueHash string, opts LayoutKeyOpts) string

	// ManifestKey keys a stored manifest by event.
	ManifestKey(eventID string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a cached generation result.
func (k *DefaultKeyer) LayoutKey(venueHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", venueHash, opts)
}

// ManifestKey generates a key for a cached manifest.
func (k *DefaultKeyer) ManifestKey(eventID string) string {
	return "manifest:" + eventID
}
