// Package placeid generates and parses opaque place identifiers.
//
// Identifiers are unique within a manifest and are the only key a placed
// seat carries. Three generation patterns are supported:
//
//   - sequential: prefix + base36 index, zero-padded to at least two chars
//   - grid: prefix + base36 (section, row, seat) triplet derived from a
//     configured grid shape, expanding past the configured shape rather
//     than wrapping when the requested count overflows it
//   - custom: caller-supplied per-index encoder
//
// Uniqueness is guaranteed by construction for sequential and grid; a
// custom encoder is trusted to encode distinct indices distinctly.
package placeid

import (
	"strconv"
	"strings"

	"github.com/seatforge/seatforge/pkg/errors"
)

// Pattern selects an identifier encoding scheme.
type Pattern string

// Supported patterns.
const (
	PatternSequential Pattern = "sequential"
	PatternGrid       Pattern = "grid"
	PatternCustom     Pattern = "custom"
)

// Default grid shape used when a dimension is left unset.
const (
	DefaultGridRows  = 10 // rows per section
	DefaultGridSeats = 10 // seats per row
)

// GridConfig describes the nominal grid shape for the grid pattern.
// The shape only seeds the encoding; when count exceeds
// Sections × RowsPerSection × SeatsPerRow the generator advances the
// section index beyond Sections instead of wrapping, so identifiers never
// collide regardless of configuration.
type GridConfig struct {
	Sections       int `json:"sections,omitempty" toml:"sections"`
	RowsPerSection int `json:"rows_per_section,omitempty" toml:"rows_per_section"`
	SeatsPerRow    int `json:"seats_per_row,omitempty" toml:"seats_per_row"`
}

// Options configures a generation call.
type Options struct {
	// Prefix is prepended to every identifier.
	Prefix string

	// Pattern selects the encoding; empty means sequential.
	Pattern Pattern

	// Grid configures the grid pattern; ignored by other patterns.
	Grid GridConfig

	// Encode is the custom pattern's per-index encoder. It is invoked once
	// per position; uniqueness of its output is the caller's concern.
	Encode func(index int) string
}

// Generate produces exactly count unique identifiers.
//
// A count of zero yields an empty list, not an error. A negative count is
// rejected with an INVALID_INPUT error, as is a custom pattern without an
// encoder or an unknown pattern name.
func Generate(count int, opts Options) ([]string, error) {
	if count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "identifier count must be non-negative, got %d", count)
	}
	if count == 0 {
		return []string{}, nil
	}

	switch opts.Pattern {
	case PatternSequential, "":
		return generateSequential(count, opts.Prefix), nil
	case PatternGrid:
		return generateGrid(count, opts.Prefix, opts.Grid), nil
	case PatternCustom:
		if opts.Encode == nil {
			return nil, errors.New(errors.ErrCodeInvalidPattern, "custom pattern requires an encoder")
		}
		return generateCustom(count, opts.Prefix, opts.Encode), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidPattern, "unknown identifier pattern %q", opts.Pattern)
	}
}

// generateSequential encodes each index in base36. Indices are strictly
// increasing, so uniqueness holds by construction.
func generateSequential(count int, prefix string) []string {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = prefix + base36(i, 2)
	}
	return ids
}

// generateGrid walks (section, row, seat) positions in row-major order. Row
// and seat are padded to fixed widths derived from the configured shape, so
// the variable-width section component on the left can grow without ever
// producing an ambiguous (and therefore colliding) encoding.
func generateGrid(count int, prefix string, cfg GridConfig) []string {
	rows := cfg.RowsPerSection
	if rows <= 0 {
		rows = DefaultGridRows
	}
	seats := cfg.SeatsPerRow
	if seats <= 0 {
		seats = DefaultGridSeats
	}

	rowWidth := base36Width(rows - 1)
	seatWidth := base36Width(seats - 1)

	ids := make([]string, count)
	for i := 0; i < count; i++ {
		seat := i % seats
		globalRow := i / seats
		row := globalRow % rows
		section := globalRow / rows
		ids[i] = prefix + base36(section, 2) + base36(row, rowWidth) + base36(seat, seatWidth)
	}
	return ids
}

func generateCustom(count int, prefix string, encode func(int) string) []string {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = prefix + encode(i)
	}
	return ids
}

// base36 encodes n in uppercase base36, zero-padded to at least width chars.
func base36(n, width int) string {
	s := strings.ToUpper(strconv.FormatInt(int64(n), 36))
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// base36Width returns the number of base36 digits needed for max, with a
// floor of two to match the sequential pattern's padding.
func base36Width(max int) int {
	width := len(strconv.FormatInt(int64(max), 36))
	if width < 2 {
		width = 2
	}
	return width
}
