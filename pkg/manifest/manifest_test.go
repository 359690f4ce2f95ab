package manifest

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/place"
)

func TestHashOrderIndependence(t *testing.T) {
	ids := []string{"SEAT01", "SEAT02", "SEAT03", "SEAT04", "SEAT05", "SEAT06"}
	want := Hash(ids)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), ids...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Hash(shuffled); got != want {
			t.Fatalf("permutation %d hashed to %s, want %s", i, got, want)
		}
	}

	if Hash([]string{"SEAT01"}) == want {
		t.Error("different identifier sets must not collide trivially")
	}
}

func TestGenerate(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m, err := GenerateAt("evt-1", []string{"b", "a"}, at)
	if err != nil {
		t.Fatalf("GenerateAt() error = %v", err)
	}

	if m.EventID != "evt-1" {
		t.Errorf("event ID = %q, want evt-1", m.EventID)
	}
	if !m.UpdateTime.Equal(at) {
		t.Errorf("update time = %v, want %v", m.UpdateTime, at)
	}
	if m.UpdateHash != Hash([]string{"a", "b"}) {
		t.Error("hash should match the sorted identifier set")
	}
	if !reflect.DeepEqual(m.PlaceIDs, []string{"b", "a"}) {
		t.Errorf("place IDs = %v, input order should be preserved", m.PlaceIDs)
	}
}

func TestGenerateAutoEventID(t *testing.T) {
	m, err := Generate("", []string{"a"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if m.EventID == "" {
		t.Error("empty event ID should be auto-generated")
	}
}

func TestGenerateRequiresIdentifiers(t *testing.T) {
	_, err := Generate("evt-1", nil)
	if err == nil {
		t.Fatal("empty identifier list should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error code = %q, want INVALID_MANIFEST", errors.GetCode(err))
	}
}

func TestCompareUnchanged(t *testing.T) {
	a, _ := Generate("evt-1", []string{"x", "y"})
	b, _ := Generate("evt-1", []string{"y", "x"})

	d := Compare(a, b)
	if d.Changed {
		t.Error("same identifier set in a different order should be unchanged")
	}
	if len(d.Added) != 0 || len(d.Removed) != 0 {
		t.Errorf("unchanged diff carries deltas: +%v -%v", d.Added, d.Removed)
	}
}

func TestCompareDeltas(t *testing.T) {
	old, _ := Generate("evt-1", []string{"a", "b", "c"})
	new_, _ := Generate("evt-1", []string{"b", "c", "d", "e"})

	d := Compare(old, new_)
	if !d.Changed {
		t.Fatal("differing sets should be flagged changed")
	}
	if !reflect.DeepEqual(d.Added, []string{"d", "e"}) {
		t.Errorf("added = %v, want [d e]", d.Added)
	}
	if !reflect.DeepEqual(d.Removed, []string{"a"}) {
		t.Errorf("removed = %v, want [a]", d.Removed)
	}
	if d.EventID != "evt-1" || d.UpdateHash != new_.UpdateHash {
		t.Error("diff should carry the new manifest's identity")
	}
}

// compare(A, B).added must mirror compare(B, A).removed.
func TestCompareSymmetry(t *testing.T) {
	a, _ := Generate("evt-1", []string{"a", "b", "c"})
	b, _ := Generate("evt-1", []string{"c", "d"})

	fwd := Compare(a, b)
	rev := Compare(b, a)
	if !reflect.DeepEqual(fwd.Added, rev.Removed) {
		t.Errorf("forward added %v != reverse removed %v", fwd.Added, rev.Removed)
	}
	if !reflect.DeepEqual(fwd.Removed, rev.Added) {
		t.Errorf("forward removed %v != reverse added %v", fwd.Removed, rev.Added)
	}
}

func TestFromPlacesKeepsRecords(t *testing.T) {
	places := []place.Place{
		{PlaceID: "SEAT01", X: 10, Y: 20, Row: "R1", Seat: "1", Section: "A"},
		{PlaceID: "SEAT02", X: 20, Y: 20, Row: "R1", Seat: "2", Section: "A"},
	}
	m, err := FromPlaces("evt-9", places)
	if err != nil {
		t.Fatalf("FromPlaces() error = %v", err)
	}

	if !reflect.DeepEqual(m.IDs(), []string{"SEAT01", "SEAT02"}) {
		t.Errorf("IDs() = %v", m.IDs())
	}
	if len(m.Places) != 2 || m.Places[0].X != 10 {
		t.Error("place records should survive wrapping")
	}
	if m.UpdateHash != Hash([]string{"SEAT01", "SEAT02"}) {
		t.Error("hash should cover the place identifiers")
	}
}

func TestNormalizedPlacesFromFlatIDs(t *testing.T) {
	m, err := Generate("evt-1", []string{"ORCH-A-12"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	places := m.NormalizedPlaces()
	if len(places) != 1 {
		t.Fatalf("got %d places, want 1", len(places))
	}
	p := places[0]
	if p.PlaceID != "ORCH-A-12" {
		t.Errorf("place ID = %q", p.PlaceID)
	}
	if p.Section == "" || p.Seat == "" {
		t.Errorf("parsed stubs missing: section %q seat %q", p.Section, p.Seat)
	}
	if !p.Available {
		t.Error("normalized places default to available")
	}
	if p.X != 0 || p.Y != 0 {
		t.Error("identifier-only places have no coordinates")
	}
}

func TestNormalizedPlacesPrefersRealRecords(t *testing.T) {
	m, err := FromPlaces("evt-1", []place.Place{{PlaceID: "a", X: 5, Y: 7, Section: "Pit"}})
	if err != nil {
		t.Fatalf("FromPlaces() error = %v", err)
	}
	places := m.NormalizedPlaces()
	if places[0].Section != "Pit" || places[0].X != 5 {
		t.Errorf("normalization should keep real records intact, got %+v", places[0])
	}
}
