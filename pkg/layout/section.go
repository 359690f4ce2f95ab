package layout

import "github.com/seatforge/seatforge/pkg/geometry"

// Shape discriminates a section's geometric form.
type Shape string

// Supported section shapes.
const (
	ShapeRect    Shape = "rect"
	ShapePolygon Shape = "polygon"
)

// Presentation selects how a manual section's rows are aligned and whether
// they curve.
type Presentation string

// Supported presentation styles.
const (
	// PresentationFlat centers every row individually on the section's
	// horizontal center; rows stay straight.
	PresentationFlat Presentation = "flat"

	// PresentationCone centers rows like flat but bends each row with a
	// parabolic offset toward the stage, producing a fan: narrower rows
	// taper against the widest one because all rows share one spacing.
	PresentationCone Presentation = "cone"

	// PresentationLeftFixed left-aligns rows to the section or row bound.
	PresentationLeftFixed Presentation = "left_fixed"

	// PresentationRightFixed right-aligns rows to the section or row bound.
	PresentationRightFixed Presentation = "right_fixed"
)

// Default spacing values applied when a field is left zero.
const (
	DefaultSeatsPerRow  = 10   // uniform fallback when nothing is configured
	DefaultCurveDepth   = 30.0 // venue units at a row's outermost seats
	DefaultMarginTop    = 20.0
	DefaultMarginBottom = 20.0

	// sideMargin is the fixed horizontal inset from a section's bounds.
	sideMargin = 20.0
)

// Spacing holds a section's tunable layout multipliers and paddings.
//
// SeatSpacing and RowSpacing are multipliers on the spacing computed from
// the section's bounds (1.0 keeps the computed value). CurveDepth is the
// vertical offset, in venue units, applied to a cone row's outermost seats;
// CurveDirection inverts the bend when negative (smile instead of frown).
// Rotation tilts the whole section in degrees about its centroid;
// AutoRotate estimates the angle from a polygon's edge lean instead.
type Spacing struct {
	SeatSpacing    float64 `json:"seat_spacing,omitempty" toml:"seat_spacing"`
	RowSpacing     float64 `json:"row_spacing,omitempty" toml:"row_spacing"`
	CurveDepth     float64 `json:"curve_depth,omitempty" toml:"curve_depth"`
	CurveDirection float64 `json:"curve_direction,omitempty" toml:"curve_direction"`
	Rotation       float64 `json:"rotation,omitempty" toml:"rotation"`
	AutoRotate     bool    `json:"auto_rotate,omitempty" toml:"auto_rotate"`
	MarginTop      float64 `json:"margin_top,omitempty" toml:"margin_top"`
	MarginBottom   float64 `json:"margin_bottom,omitempty" toml:"margin_bottom"`
}

// withDefaults fills zero fields with the documented defaults.
func (sp Spacing) withDefaults() Spacing {
	if sp.SeatSpacing == 0 {
		sp.SeatSpacing = 1
	}
	if sp.RowSpacing == 0 {
		sp.RowSpacing = 1
	}
	if sp.CurveDepth == 0 {
		sp.CurveDepth = DefaultCurveDepth
	}
	if sp.CurveDirection == 0 {
		sp.CurveDirection = 1
	}
	if sp.MarginTop == 0 {
		sp.MarginTop = DefaultMarginTop
	}
	if sp.MarginBottom == 0 {
		sp.MarginBottom = DefaultMarginBottom
	}
	return sp
}

// RowConfig describes one row of a manual section.
type RowConfig struct {
	// Row is the 1-based row number used for the default label.
	Row int `json:"row" toml:"row"`

	// Label overrides the display label (default "R<row>").
	Label string `json:"label,omitempty" toml:"label"`

	// Seats is the number of seats the row must place.
	Seats int `json:"seats" toml:"seats"`

	// StartSeat is the first seat number assigned (default 1).
	StartSeat int `json:"start_seat,omitempty" toml:"start_seat"`

	// AisleLeft and AisleRight are extra empty grid slots flanking the row.
	AisleLeft  int `json:"aisle_left,omitempty" toml:"aisle_left"`
	AisleRight int `json:"aisle_right,omitempty" toml:"aisle_right"`

	// OffsetX and OffsetY fine-tune the row's position. When any row of a
	// section declares a non-zero OffsetY, row heights switch from uniform
	// spacing to offset-chaining: each row sits at the previous row's Y
	// plus its own offset.
	OffsetX float64 `json:"offset_x,omitempty" toml:"offset_x"`
	OffsetY float64 `json:"offset_y,omitempty" toml:"offset_y"`

	// BlockedSeats lists 1-based grid positions within the row (aisle
	// slots included) where no seat may be placed. Blocked positions are
	// skipped without consuming an identifier; the scan continues at the
	// next grid position so the row still reaches its seat count.
	BlockedSeats []int `json:"blocked_seats,omitempty" toml:"blocked_seats"`
}

// slots returns the row's total grid width in slots.
func (rc RowConfig) slots() int {
	return rc.AisleLeft + rc.Seats + rc.AisleRight
}

// blocked reports whether the 0-based slot index is a blocked position.
func (rc RowConfig) isBlocked(slot int) bool {
	for _, b := range rc.BlockedSeats {
		if b == slot+1 {
			return true
		}
	}
	return false
}

// Obstruction is a sub-region of a section inside which no seat may be
// placed. Exactly one of Bounds or Polygon is meaningful, selected by Shape.
type Obstruction struct {
	Shape   Shape            `json:"shape" toml:"shape"`
	Bounds  geometry.Rect    `json:"bounds,omitempty" toml:"bounds"`
	Polygon geometry.Polygon `json:"polygon,omitempty" toml:"polygon"`
}

// Contains reports whether p falls inside the obstruction.
func (o Obstruction) Contains(p geometry.Point) bool {
	switch o.Shape {
	case ShapePolygon:
		return o.Polygon.Contains(p)
	default:
		return o.Bounds.Contains(p)
	}
}

// Section is a named geometric region of a venue containing rows of seats.
type Section struct {
	Name string `json:"name" toml:"name"`

	// Shape selects between Bounds (rect) and Polygon.
	Shape   Shape            `json:"shape" toml:"shape"`
	Bounds  geometry.Rect    `json:"bounds,omitempty" toml:"bounds"`
	Polygon geometry.Polygon `json:"polygon,omitempty" toml:"polygon"`

	// Uniform fallback grid, used when RowConfig is absent.
	Rows        int `json:"rows,omitempty" toml:"rows"`
	SeatsPerRow int `json:"seats_per_row,omitempty" toml:"seats_per_row"`

	// Capacity overrides the uniform grid's derived capacity.
	Capacity int `json:"capacity,omitempty" toml:"capacity"`

	// RowConfig enables the variable-row path; when present, its summed
	// seat counts are the section's exact capacity.
	RowConfig []RowConfig `json:"row_config,omitempty" toml:"row_config"`

	Obstructions []Obstruction `json:"obstructions,omitempty" toml:"obstructions"`

	Presentation Presentation `json:"presentation,omitempty" toml:"presentation"`
	Spacing      Spacing      `json:"spacing,omitempty" toml:"spacing"`

	// PriceTier is an opaque tag copied onto produced places as their zone.
	PriceTier string `json:"price_tier,omitempty" toml:"price_tier"`

	// RightToLeft reverses seat numbering within each row.
	RightToLeft bool `json:"right_to_left,omitempty" toml:"right_to_left"`
}

// EffectiveCapacity is the number of seats the section is expected to
// produce: the sum of its row configuration, or the explicit capacity, or
// rows × seatsPerRow as a last resort.
func (s *Section) EffectiveCapacity() int {
	if len(s.RowConfig) > 0 {
		total := 0
		for _, rc := range s.RowConfig {
			total += rc.Seats
		}
		return total
	}
	if s.Capacity > 0 {
		return s.Capacity
	}
	return s.Rows * s.SeatsPerRow
}

// frame returns the section's axis-aligned bounding box.
func (s *Section) frame() geometry.Rect {
	if s.Shape == ShapePolygon {
		return s.Polygon.Bounds()
	}
	return s.Bounds
}

// center returns the section's pivot: the polygon centroid, or the
// rectangle center.
func (s *Section) center() geometry.Point {
	if s.Shape == ShapePolygon {
		return s.Polygon.Centroid()
	}
	return s.Bounds.Center()
}

// contains reports whether p lies inside the declared geometry.
func (s *Section) contains(p geometry.Point) bool {
	if s.Shape == ShapePolygon {
		return s.Polygon.Contains(p)
	}
	return s.Bounds.Contains(p)
}

// obstructed reports whether p falls inside any obstruction.
func (s *Section) obstructed(p geometry.Point) bool {
	for _, o := range s.Obstructions {
		if o.Contains(p) {
			return true
		}
	}
	return false
}
