// Package place defines the engine's output unit: one addressable, sellable
// seat position with an identifier, coordinates, and display labels.
//
// Uniqueness within a manifest is carried solely by PlaceID. Row and Seat
// are display labels and may repeat across sections.
package place

// Place is a single positioned seat.
type Place struct {
	// PlaceID is the opaque unique identifier of the seat.
	PlaceID string `json:"place_id"`

	// X, Y are section-local Cartesian coordinates in venue units.
	// Callers normalize to their own scale; see NormalizeCoordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Row and Seat are display labels (e.g. "R3" / "12"), not keys.
	Row  string `json:"row,omitempty"`
	Seat string `json:"seat,omitempty"`

	// Section names the geometric region that produced the seat.
	Section string `json:"section,omitempty"`

	// Zone is the opaque price tier tag copied from the section.
	Zone string `json:"zone,omitempty"`

	// Price and Available are persistence stubs filled in by manifest
	// normalization for externally sourced identifiers.
	Price     float64 `json:"price,omitempty"`
	Available bool    `json:"available"`

	// InBounds records whether the final position sits inside the declared
	// section geometry. Manual sections may place seats out of bounds to
	// honor exact seat counts; stricter callers can filter on this flag.
	InBounds bool `json:"in_bounds"`
}
