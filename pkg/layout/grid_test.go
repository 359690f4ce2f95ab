package layout

import (
	"strconv"
	"testing"

	"github.com/seatforge/seatforge/pkg/placeid"
)

func gridIDs(t *testing.T, n int) []string {
	t.Helper()
	ids, err := placeid.Generate(n, placeid.Options{Prefix: "G"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return ids
}

// The canonical arena scenario: 40 seats over 2 sections at 10 per row
// yields 2 sections of 2 rows × 10 seats.
func TestGridScenario(t *testing.T) {
	ids := gridIDs(t, 40)

	places, err := Grid(ids, GridOptions{
		Sections:     2,
		SeatsPerRow:  10,
		SectionWidth: 200,
		SeatSpacing:  10,
		RowSpacing:   12,
	})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if len(places) != 40 {
		t.Fatalf("got %d places, want 40", len(places))
	}

	perSection := map[string]int{}
	perRow := map[string]int{}
	for _, p := range places {
		perSection[p.Section]++
		perRow[p.Section+"/"+p.Row]++

		seat, err := strconv.Atoi(p.Seat)
		if err != nil || seat < 1 || seat > 10 {
			t.Errorf("seat label %q outside 1..10", p.Seat)
		}
		if p.Row != "R1" && p.Row != "R2" {
			t.Errorf("row label %q, want R1 or R2", p.Row)
		}
	}

	if len(perSection) != 2 || perSection["Section 1"] != 20 || perSection["Section 2"] != 20 {
		t.Errorf("section split = %v, want 20/20 across Section 1 and Section 2", perSection)
	}
	for key, n := range perRow {
		if n != 10 {
			t.Errorf("row %s has %d seats, want 10", key, n)
		}
	}
}

func TestGridCoordinates(t *testing.T) {
	ids := gridIDs(t, 40)
	places, err := Grid(ids, GridOptions{Sections: 2, SeatsPerRow: 10, SectionWidth: 200, SeatSpacing: 10, RowSpacing: 12})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// First seat of the second section starts at one section-width stride.
	if p := places[20]; p.X != 200 || p.Y != 0 {
		t.Errorf("section 2 origin at (%v, %v), want (200, 0)", p.X, p.Y)
	}
	// Second row of the first section.
	if p := places[10]; p.X != 0 || p.Y != 12 {
		t.Errorf("row 2 origin at (%v, %v), want (0, 12)", p.X, p.Y)
	}
}

func TestGridCustomNames(t *testing.T) {
	ids := gridIDs(t, 30)
	places, err := Grid(ids, GridOptions{
		Sections:     3,
		SeatsPerRow:  10,
		Naming:       NamingCustom,
		SectionNames: []string{"North", "South"},
	})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// Name list shorter than the section count cycles.
	want := map[string]bool{"North": true, "South": true}
	for _, p := range places {
		if !want[p.Section] {
			t.Errorf("unexpected section name %q", p.Section)
		}
	}
	if places[20].Section != "North" {
		t.Errorf("third section = %q, want cycled name North", places[20].Section)
	}
}

func TestGridEmptyInput(t *testing.T) {
	places, err := Grid(nil, GridOptions{Sections: 2})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if len(places) != 0 {
		t.Errorf("got %d places for no ids, want 0", len(places))
	}
}

func TestGridRejectsNegativeConfig(t *testing.T) {
	if _, err := Grid(gridIDs(t, 5), GridOptions{Sections: -1}); err == nil {
		t.Error("negative section count should fail")
	}
}
