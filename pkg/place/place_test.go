package place

import (
	"math"
	"testing"
)

func TestGroupBySection(t *testing.T) {
	places := []Place{
		{PlaceID: "a1", Section: "Balcony", Price: 40},
		{PlaceID: "a2", Section: "Floor", Price: 25},
		{PlaceID: "a3", Section: "Balcony", Price: 60},
		{PlaceID: "a4", Section: "Floor", Price: 25},
		{PlaceID: "a5", Section: "Floor"},
	}

	buckets := GroupBySection(places)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	// Sorted by section name: Balcony before Floor.
	balcony, floor := buckets[0], buckets[1]
	if balcony.Section != "Balcony" || floor.Section != "Floor" {
		t.Fatalf("bucket order = %q, %q; want Balcony, Floor", balcony.Section, floor.Section)
	}

	if balcony.Count != 2 || len(balcony.Places) != 2 {
		t.Errorf("Balcony count = %d, want 2", balcony.Count)
	}
	if balcony.MinPrice != 40 || balcony.MaxPrice != 60 {
		t.Errorf("Balcony price range = [%v, %v], want [40, 60]", balcony.MinPrice, balcony.MaxPrice)
	}

	if floor.Count != 3 {
		t.Errorf("Floor count = %d, want 3", floor.Count)
	}
	// Unpriced place must not drag the min down to zero.
	if floor.MinPrice != 25 || floor.MaxPrice != 25 {
		t.Errorf("Floor price range = [%v, %v], want [25, 25]", floor.MinPrice, floor.MaxPrice)
	}
}

func TestGroupBySectionEmpty(t *testing.T) {
	if buckets := GroupBySection(nil); len(buckets) != 0 {
		t.Errorf("got %d buckets for empty input, want 0", len(buckets))
	}
}

func TestNormalizeCoordinatesBounded(t *testing.T) {
	places := []Place{
		{PlaceID: "a", X: -50, Y: 10},
		{PlaceID: "b", X: 0, Y: 500},
		{PlaceID: "c", X: 325, Y: 240},
		{PlaceID: "d", X: 75, Y: 990},
	}

	out := NormalizeCoordinates(places)
	for _, p := range out {
		if p.X < 0 || p.X > NormalizedScale || p.Y < 0 || p.Y > NormalizedScale {
			t.Errorf("place %s at (%v, %v) outside [0, %v]", p.PlaceID, p.X, p.Y, NormalizedScale)
		}
	}

	// Extremes land exactly on the scale boundaries.
	if out[0].X != 0 {
		t.Errorf("min X normalized to %v, want 0", out[0].X)
	}
	if math.Abs(out[2].X-NormalizedScale) > 1e-9 {
		t.Errorf("max X normalized to %v, want %v", out[2].X, NormalizedScale)
	}
}

func TestNormalizeCoordinatesDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		places []Place
	}{
		{
			name: "all X identical",
			places: []Place{
				{PlaceID: "a", X: 5, Y: 10},
				{PlaceID: "b", X: 5, Y: 20},
			},
		},
		{
			name: "all Y identical",
			places: []Place{
				{PlaceID: "a", X: 1, Y: 7},
				{PlaceID: "b", X: 9, Y: 7},
			},
		},
		{
			name:   "single place",
			places: []Place{{PlaceID: "a", X: 3, Y: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeCoordinates(tt.places)
			for i := range out {
				if out[i].X != tt.places[i].X || out[i].Y != tt.places[i].Y {
					t.Errorf("place %d rescaled to (%v, %v), want unchanged (%v, %v)",
						i, out[i].X, out[i].Y, tt.places[i].X, tt.places[i].Y)
				}
			}
		})
	}
}

func TestNormalizeCoordinatesDoesNotMutateInput(t *testing.T) {
	places := []Place{
		{PlaceID: "a", X: 0, Y: 0},
		{PlaceID: "b", X: 10, Y: 10},
	}
	_ = NormalizeCoordinates(places)
	if places[1].X != 10 || places[1].Y != 10 {
		t.Error("NormalizeCoordinates mutated its input")
	}
}
