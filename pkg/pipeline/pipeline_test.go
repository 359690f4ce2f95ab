package pipeline

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/seatforge/seatforge/pkg/cache"
	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/geometry"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/venue"
)

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.New(io.Discard))
}

func gridVenue() *venue.Venue {
	return &venue.Venue{
		Name:     "Arena",
		EventID:  "evt-arena",
		Strategy: venue.StrategyGrid,
		Capacity: 40,
		Identifiers: venue.IdentifierConfig{
			Prefix: "SEAT",
		},
		Grid: layout.GridOptions{
			Sections:    2,
			SeatsPerRow: 10,
		},
	}
}

func TestExecuteGrid(t *testing.T) {
	r := quietRunner(nil)
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{Venue: gridVenue()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(res.Places) != 40 {
		t.Errorf("got %d places, want 40", len(res.Places))
	}
	if res.Manifest == nil || res.Manifest.EventID != "evt-arena" {
		t.Fatalf("manifest = %+v", res.Manifest)
	}
	if len(res.Manifest.UpdateHash) != 64 {
		t.Errorf("update hash = %q", res.Manifest.UpdateHash)
	}
	if res.Stats.IdentifierCount != 40 || res.Stats.PlaceCount != 40 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.CacheInfo.Hit {
		t.Error("first run should miss the cache")
	}
	if res.VenueHash == "" {
		t.Error("venue hash missing")
	}
}

func TestExecuteDeterminism(t *testing.T) {
	a, err := quietRunner(nil).Execute(context.Background(), Options{Venue: gridVenue()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	b, err := quietRunner(nil).Execute(context.Background(), Options{Venue: gridVenue()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if a.Manifest.UpdateHash != b.Manifest.UpdateHash {
		t.Error("identical venues must produce identical hashes")
	}
	if !reflect.DeepEqual(a.Places, b.Places) {
		t.Error("identical venues must produce identical places")
	}
}

func TestExecuteCacheRoundtrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	r := quietRunner(c)
	defer r.Close()
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Venue: gridVenue()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.Hit {
		t.Fatal("first run should miss")
	}

	second, err := r.Execute(ctx, Options{Venue: gridVenue()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.Hit {
		t.Fatal("second run should hit")
	}
	if second.Manifest.UpdateHash != first.Manifest.UpdateHash {
		t.Error("cached manifest hash differs")
	}
	if !reflect.DeepEqual(second.Places, first.Places) {
		t.Error("cached places differ")
	}

	refreshed, err := r.Execute(ctx, Options{Venue: gridVenue(), Refresh: true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if refreshed.CacheInfo.Hit {
		t.Error("refresh should bypass the cache read")
	}
}

func TestExecuteGeneralAdmission(t *testing.T) {
	v := &venue.Venue{
		Name:     "Festival",
		Strategy: venue.StrategyGA,
		Capacity: 1000,
		GeneralAdmission: layout.GAOptions{
			Zones: []layout.ZoneConfig{
				{Name: "Pit", Capacity: 300, Bounds: geometry.NewRect(geometry.Point{}, geometry.Point{X: 100, Y: 50})},
				{Name: "Lawn"},
			},
		},
	}

	res, err := quietRunner(nil).Execute(context.Background(), Options{Venue: v})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if res.Manifest != nil {
		t.Error("general admission should not produce a manifest")
	}
	if len(res.Places) != 0 {
		t.Error("general admission should not produce places")
	}
	if len(res.Zones) != 2 || res.Zones[1].Capacity != 700 {
		t.Errorf("zones = %+v", res.Zones)
	}
}

func TestExecuteManualWithWarnings(t *testing.T) {
	v := &venue.Venue{
		Name:     "Hall",
		Strategy: venue.StrategyManual,
		Sections: []layout.Section{{
			Name:        "Floor",
			Shape:       layout.ShapeRect,
			Bounds:      geometry.NewRect(geometry.Point{}, geometry.Point{X: 120, Y: 120}),
			Rows:        5,
			SeatsPerRow: 5,
			Obstructions: []layout.Obstruction{{
				Shape:  layout.ShapeRect,
				Bounds: geometry.NewRect(geometry.Point{X: 0, Y: 55}, geometry.Point{X: 120, Y: 65}),
			}},
		}},
	}

	res, err := quietRunner(nil).Execute(context.Background(), Options{Venue: v})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(res.Places) > 20 {
		t.Errorf("got %d places, want at most 20 with the middle row obstructed", len(res.Places))
	}
	if res.Stats.WarningCount == 0 || len(res.Warnings) == 0 {
		t.Error("obstruction shortfall should surface warnings")
	}
	if res.Manifest == nil {
		t.Error("manual generation should still produce a manifest")
	}
}

func TestExecuteEventIDOverride(t *testing.T) {
	res, err := quietRunner(nil).Execute(context.Background(), Options{
		Venue:   gridVenue(),
		EventID: "evt-override",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Manifest.EventID != "evt-override" {
		t.Errorf("event id = %q, want evt-override", res.Manifest.EventID)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "nil venue", opts: Options{}},
		{
			name: "zero derived capacity",
			opts: Options{Venue: &venue.Venue{
				Strategy: venue.StrategyManual,
				Sections: []layout.Section{{Name: "Empty", Shape: layout.ShapeRect}},
			}},
		},
		{
			name: "bad event id override",
			opts: Options{Venue: gridVenue(), EventID: "../escape"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quietRunner(nil).Execute(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			code := errors.GetCode(err)
			if code != errors.ErrCodeInvalidConfig && code != errors.ErrCodeInvalidInput {
				t.Errorf("error code = %q", code)
			}
		})
	}
}
