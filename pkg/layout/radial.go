package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/seatforge/seatforge/pkg/geometry"
	"github.com/seatforge/seatforge/pkg/place"
)

// Default radial-strategy geometry, in venue units.
const (
	DefaultRadialBaseRadius = 100.0
	DefaultRadialRowSpacing = 20.0
)

// RadialSectionName labels every radially placed seat.
const RadialSectionName = "Main"

// RadialOptions configures the theater-curve strategy.
type RadialOptions struct {
	// Center is the point the rows curve around.
	Center geometry.Point `json:"center" toml:"center"`

	// BaseRadius is the first row's distance from the center.
	BaseRadius float64 `json:"base_radius,omitempty" toml:"base_radius"`

	// RowSpacing is the radial growth per row.
	RowSpacing float64 `json:"row_spacing,omitempty" toml:"row_spacing"`

	// SeatsPerRow is the number of seats spread across each row's arc.
	SeatsPerRow int `json:"seats_per_row,omitempty" toml:"seats_per_row"`

	// TotalRows caps the layout; identifiers landing beyond it are
	// dropped. Zero means every identifier gets a row.
	TotalRows int `json:"total_rows,omitempty" toml:"total_rows"`
}

// Radial lays out the identifiers on concentric arcs around a center
// point. The angle spans the full [-π, π] range proportionally to the
// seat's position within its row, and the radius grows linearly with the
// row index. Seats whose row index reaches TotalRows are dropped.
func Radial(ids []string, opts RadialOptions) []place.Place {
	seatsPerRow := opts.SeatsPerRow
	if seatsPerRow <= 0 {
		seatsPerRow = DefaultSeatsPerRow
	}
	baseRadius := opts.BaseRadius
	if baseRadius == 0 {
		baseRadius = DefaultRadialBaseRadius
	}
	rowSpacing := opts.RowSpacing
	if rowSpacing == 0 {
		rowSpacing = DefaultRadialRowSpacing
	}

	places := make([]place.Place, 0, len(ids))
	for i, id := range ids {
		row := i / seatsPerRow
		if opts.TotalRows > 0 && row >= opts.TotalRows {
			continue
		}
		posInRow := i % seatsPerRow

		angle := -math.Pi + 2*math.Pi*float64(posInRow)/float64(seatsPerRow)
		radius := baseRadius + float64(row)*rowSpacing

		places = append(places, place.Place{
			PlaceID:   id,
			X:         opts.Center.X + radius*math.Cos(angle),
			Y:         opts.Center.Y + radius*math.Sin(angle),
			Row:       fmt.Sprintf("R%d", row+1),
			Seat:      strconv.Itoa(posInRow + 1),
			Section:   RadialSectionName,
			Available: true,
			InBounds:  true,
		})
	}
	return places
}
