package events

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/seatforge/seatforge/pkg/manifest"
)

func TestChangedEventPayload(t *testing.T) {
	at := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	d := &manifest.Diff{
		EventID:    "evt-1",
		Changed:    true,
		Added:      []string{"c", "d"},
		Removed:    []string{"a"},
		UpdateHash: "abc123",
		UpdateTime: at,
	}

	body, err := json.Marshal(changedEvent(d))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got ChangedEvent
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if got.EventID != "evt-1" || got.UpdateHash != "abc123" {
		t.Errorf("identity = %+v", got)
	}
	if !reflect.DeepEqual(got.Added, d.Added) || !reflect.DeepEqual(got.Removed, d.Removed) {
		t.Errorf("deltas = +%v -%v", got.Added, got.Removed)
	}
	if !got.UpdateTime.Equal(at) {
		t.Errorf("update time = %v", got.UpdateTime)
	}
}

func TestNopPublisher(t *testing.T) {
	p := NopPublisher{}
	if err := p.PublishChanged(context.Background(), &manifest.Diff{Changed: true}); err != nil {
		t.Errorf("PublishChanged error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}
