package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seatforge/seatforge/pkg/place"
)

func testBuckets() []place.SectionBucket {
	return place.GroupBySection([]place.Place{
		{PlaceID: "a", Section: "Balcony", Row: "R1", Available: true},
		{PlaceID: "b", Section: "Balcony", Row: "R2", Available: false},
		{PlaceID: "c", Section: "Orchestra", Row: "R1", Available: true},
		{PlaceID: "d", Section: "Orchestra", Row: "R1", Available: true},
	})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSectionListNavigation(t *testing.T) {
	m := NewSectionListModel(testBuckets())

	next, _ := m.Update(keyMsg("j"))
	m = next.(SectionListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	// Down at the bottom stays put.
	next, _ = m.Update(keyMsg("j"))
	m = next.(SectionListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(SectionListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}
}

func TestSectionListSelect(t *testing.T) {
	m := NewSectionListModel(testBuckets())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SectionListModel)
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if m.Selected == nil || m.Selected.Section != "Balcony" {
		t.Errorf("selected = %+v, want Balcony", m.Selected)
	}
}

func TestSectionListView(t *testing.T) {
	m := NewSectionListModel(testBuckets())
	view := m.View()

	for _, want := range []string{"Select Section", "Balcony", "Orchestra"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSectionHelpers(t *testing.T) {
	buckets := testBuckets()

	// GroupBySection sorts alphabetically, so Balcony comes first.
	balcony := buckets[0]
	if got := sectionRowCount(balcony); got != 2 {
		t.Errorf("row count = %d, want 2", got)
	}
	if got := sectionAvailable(balcony); got != 1 {
		t.Errorf("available = %d, want 1", got)
	}

	orchestra := buckets[1]
	if got := sectionRowCount(orchestra); got != 1 {
		t.Errorf("row count = %d, want 1", got)
	}
	if got := sectionAvailable(orchestra); got != 2 {
		t.Errorf("available = %d, want 2", got)
	}
}
