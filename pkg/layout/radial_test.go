package layout

import (
	"math"
	"testing"

	"github.com/seatforge/seatforge/pkg/geometry"
)

func TestRadialDropsRowsBeyondTotal(t *testing.T) {
	ids := gridIDs(t, 45)

	places := Radial(ids, RadialOptions{
		Center:      geometry.Point{X: 500, Y: 500},
		BaseRadius:  100,
		RowSpacing:  20,
		SeatsPerRow: 20,
		TotalRows:   2,
	})

	// 45 ids at 20 per row: rows 1 and 2 fill, the 5 seats of row 3 drop.
	if len(places) != 40 {
		t.Fatalf("got %d places, want 40", len(places))
	}
	for _, p := range places {
		if p.Row != "R1" && p.Row != "R2" {
			t.Errorf("row label %q beyond total rows", p.Row)
		}
		if p.Section != "Main" {
			t.Errorf("section = %q, want Main", p.Section)
		}
	}
}

func TestRadialRadiusGrowsPerRow(t *testing.T) {
	ids := gridIDs(t, 40)
	center := geometry.Point{X: 0, Y: 0}

	places := Radial(ids, RadialOptions{
		Center:      center,
		BaseRadius:  100,
		RowSpacing:  25,
		SeatsPerRow: 20,
		TotalRows:   2,
	})

	for _, p := range places {
		r := math.Hypot(p.X-center.X, p.Y-center.Y)
		want := 100.0
		if p.Row == "R2" {
			want = 125.0
		}
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("seat %s in %s at radius %v, want %v", p.Seat, p.Row, r, want)
		}
	}
}

func TestRadialAngleSpan(t *testing.T) {
	ids := gridIDs(t, 4)
	places := Radial(ids, RadialOptions{
		Center:      geometry.Point{},
		BaseRadius:  100,
		SeatsPerRow: 4,
		TotalRows:   1,
	})

	// Seat 1 sits at angle -π: (-100, 0). Seat 3 at angle 0: (100, 0).
	if math.Abs(places[0].X+100) > 1e-9 || math.Abs(places[0].Y) > 1e-9 {
		t.Errorf("first seat at (%v, %v), want (-100, 0)", places[0].X, places[0].Y)
	}
	if math.Abs(places[2].X-100) > 1e-9 || math.Abs(places[2].Y) > 1e-9 {
		t.Errorf("third seat at (%v, %v), want (100, 0)", places[2].X, places[2].Y)
	}
}

func TestRadialNoTotalRowsKeepsEverything(t *testing.T) {
	ids := gridIDs(t, 33)
	places := Radial(ids, RadialOptions{SeatsPerRow: 10})
	if len(places) != 33 {
		t.Errorf("got %d places, want all 33", len(places))
	}
}
