package layout

import "fmt"

// WarningCode identifies a class of non-fatal geometry shortfall.
type WarningCode string

// Warning codes.
const (
	// WarnRowOutsideSection: a configured row's Y fell outside its
	// polygon's vertical range; the row was skipped in its entirety.
	WarnRowOutsideSection WarningCode = "ROW_OUTSIDE_SECTION"

	// WarnObstructedShortfall: obstructions left a uniform-grid section
	// with fewer placed seats than identifiers supplied.
	WarnObstructedShortfall WarningCode = "OBSTRUCTED_SHORTFALL"

	// WarnIdentifierExhausted: the identifier pool ran out mid-section;
	// the remaining rows were truncated.
	WarnIdentifierExhausted WarningCode = "IDENTIFIER_EXHAUSTED"

	// WarnInvalidPolygon: a polygon section had fewer than three vertices
	// and contributed zero places.
	WarnInvalidPolygon WarningCode = "INVALID_POLYGON"
)

// Warning is a structured, non-fatal geometry shortfall surfaced to the
// caller alongside a partial result. Warnings are data, not errors: the
// caller decides whether a partial manifest is acceptable.
type Warning struct {
	Code    WarningCode `json:"code"`
	Section string      `json:"section,omitempty"`
	Row     int         `json:"row,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("%s: section %q row %d: %s", w.Code, w.Section, w.Row, w.Message)
	}
	if w.Section != "" {
		return fmt.Sprintf("%s: section %q: %s", w.Code, w.Section, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
