// Package manifest wraps positioned places into versioned, content-addressed
// manifest records and computes deltas between them.
//
// The update hash is a digest over the lexicographically sorted identifier
// set, so two manifests carrying the same identifiers hash identically
// regardless of generation order. The timestamp is metadata, never part of
// the hash.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/place"
)

// Manifest is the versioned, hashed set of places for one event. Either
// PlaceIDs or Places is populated depending on how much the producer knew;
// IDs always answers from whichever is present.
type Manifest struct {
	EventID    string        `json:"event_id" bson:"event_id"`
	UpdateHash string        `json:"update_hash" bson:"update_hash"`
	UpdateTime time.Time     `json:"update_time" bson:"update_time"`
	PlaceIDs   []string      `json:"place_ids,omitempty" bson:"place_ids,omitempty"`
	Places     []place.Place `json:"places,omitempty" bson:"places,omitempty"`
}

// IDs returns the manifest's identifier set, derived from Places when no
// flat identifier list was recorded.
func (m *Manifest) IDs() []string {
	if len(m.PlaceIDs) > 0 {
		return m.PlaceIDs
	}
	ids := make([]string, len(m.Places))
	for i, p := range m.Places {
		ids[i] = p.PlaceID
	}
	return ids
}

// Generate builds a manifest for the given identifiers, stamped with the
// current time. An empty eventID is replaced with a fresh UUID.
func Generate(eventID string, ids []string) (*Manifest, error) {
	return GenerateAt(eventID, ids, time.Now().UTC())
}

// GenerateAt is Generate with a caller-supplied timestamp.
func GenerateAt(eventID string, ids []string, at time.Time) (*Manifest, error) {
	if len(ids) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest requires at least one place identifier")
	}
	if eventID == "" {
		eventID = uuid.NewString()
	}
	return &Manifest{
		EventID:    eventID,
		UpdateHash: Hash(ids),
		UpdateTime: at,
		PlaceIDs:   append([]string(nil), ids...),
	}, nil
}

// FromPlaces builds a manifest around fully positioned places, keeping both
// the place records and their flat identifier list.
func FromPlaces(eventID string, places []place.Place) (*Manifest, error) {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.PlaceID
	}
	m, err := GenerateAt(eventID, ids, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	m.Places = append([]place.Place(nil), places...)
	return m, nil
}

// Hash computes the content-addressed digest of an identifier set: the
// sha256 of the sorted list serialized as JSON. Input order is irrelevant.
func Hash(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	data, err := json.Marshal(sorted)
	if err != nil {
		// A string slice cannot fail to marshal.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
