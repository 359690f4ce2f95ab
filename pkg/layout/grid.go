package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/place"
)

// Default grid-strategy geometry, in venue units.
const (
	DefaultGridSeatSpacing  = 10.0
	DefaultGridRowSpacing   = 12.0
	DefaultGridSectionWidth = 200.0
)

// GridOptions configures the arena/stadium grid strategy.
type GridOptions struct {
	// Sections is the number of sections the seats are split across.
	Sections int `json:"sections,omitempty" toml:"sections"`

	// SeatsPerRow is the average row width (default 10).
	SeatsPerRow int `json:"seats_per_row,omitempty" toml:"seats_per_row"`

	// SectionWidth is the horizontal stride between section origins.
	SectionWidth float64 `json:"section_width,omitempty" toml:"section_width"`

	// SeatSpacing and RowSpacing are absolute strides in venue units.
	SeatSpacing float64 `json:"seat_spacing,omitempty" toml:"seat_spacing"`
	RowSpacing  float64 `json:"row_spacing,omitempty" toml:"row_spacing"`

	// Naming selects the section naming scheme; SectionNames feeds the
	// custom scheme and is cycled when shorter than Sections.
	Naming       NamingScheme `json:"naming,omitempty" toml:"naming"`
	SectionNames []string     `json:"section_names,omitempty" toml:"section_names"`
}

// Grid lays out the identifiers as uniform arena seating. The walk is
// purely positional: section, row, and seat indices are derived from the
// identifier's position in the flat list, and no obstruction or bounds
// checking is performed — arena seating is assumed uniform.
func Grid(ids []string, opts GridOptions) ([]place.Place, error) {
	if opts.Sections < 0 || opts.SeatsPerRow < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "grid sections and seats per row must be non-negative")
	}

	sections := opts.Sections
	if sections == 0 {
		sections = 1
	}
	seatsPerRow := opts.SeatsPerRow
	if seatsPerRow == 0 {
		seatsPerRow = DefaultSeatsPerRow
	}
	seatSpacing := opts.SeatSpacing
	if seatSpacing == 0 {
		seatSpacing = DefaultGridSeatSpacing
	}
	rowSpacing := opts.RowSpacing
	if rowSpacing == 0 {
		rowSpacing = DefaultGridRowSpacing
	}
	sectionWidth := opts.SectionWidth
	if sectionWidth == 0 {
		sectionWidth = DefaultGridSectionWidth
	}

	total := len(ids)
	if total == 0 {
		return []place.Place{}, nil
	}

	perSection := int(math.Ceil(float64(total) / float64(sections)))
	rowsPerSection := int(math.Ceil(float64(perSection) / float64(seatsPerRow)))
	if rowsPerSection < 1 {
		rowsPerSection = 1
	}
	seatsPerSection := rowsPerSection * seatsPerRow

	places := make([]place.Place, 0, total)
	for i, id := range ids {
		section := i / seatsPerSection
		within := i % seatsPerSection
		row := within / seatsPerRow
		seatInRow := within % seatsPerRow

		places = append(places, place.Place{
			PlaceID:   id,
			X:         float64(section)*sectionWidth + float64(seatInRow)*seatSpacing,
			Y:         float64(row) * rowSpacing,
			Row:       fmt.Sprintf("R%d", row+1),
			Seat:      strconv.Itoa(seatInRow + 1),
			Section:   SectionName(opts.Naming, section, opts.SectionNames),
			Available: true,
			InBounds:  true,
		})
	}
	return places, nil
}
