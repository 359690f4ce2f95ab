package store

import (
	"context"
	"sort"
	"sync"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/manifest"
	"github.com/seatforge/seatforge/pkg/place"
)

// MemoryStore keeps manifests in a map. It backs tests and single-process
// servers that have no MongoDB.
type MemoryStore struct {
	mu        sync.RWMutex
	manifests map[string]manifest.Manifest
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{manifests: make(map[string]manifest.Manifest)}
}

// Save upserts the manifest under its event id.
func (s *MemoryStore) Save(ctx context.Context, m *manifest.Manifest) error {
	if m == nil || m.EventID == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest requires an event id to be saved")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[m.EventID] = *m
	return nil
}

// Load returns a copy of the manifest for the event. The copy is deep
// enough that callers cannot mutate stored state through it.
func (s *MemoryStore) Load(ctx context.Context, eventID string) (*manifest.Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.manifests[eventID]
	if !ok {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "no manifest for event %s", eventID)
	}
	out := m
	out.PlaceIDs = append([]string(nil), m.PlaceIDs...)
	out.Places = append([]place.Place(nil), m.Places...)
	return &out, nil
}

// List returns up to limit summaries, most recently updated first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.manifests))
	for _, m := range s.manifests {
		out = append(out, Summary{
			EventID:    m.EventID,
			UpdateHash: m.UpdateHash,
			UpdateTime: m.UpdateTime,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdateTime.Equal(out[j].UpdateTime) {
			return out[i].UpdateTime.After(out[j].UpdateTime)
		}
		return out[i].EventID < out[j].EventID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
