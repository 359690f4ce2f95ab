// Package venue loads and validates venue layout definitions.
//
// A venue is a TOML document naming one layout strategy and its parameters:
// grid and radial take flat option blocks, general admission takes zones,
// and manual takes a list of section tables with geometry, row
// configuration, obstructions, and presentation settings.
package venue

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/seatforge/seatforge/pkg/cache"
	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/placeid"
)

// Strategy selects a layout algorithm.
type Strategy string

// Supported strategies.
const (
	StrategyGrid   Strategy = "grid"
	StrategyRadial Strategy = "radial"
	StrategyGA     Strategy = "general_admission"
	StrategyManual Strategy = "manual"
)

// IdentifierConfig configures place identifier generation for the venue.
type IdentifierConfig struct {
	Prefix  string             `json:"prefix,omitempty" toml:"prefix"`
	Pattern placeid.Pattern    `json:"pattern,omitempty" toml:"pattern"`
	Grid    placeid.GridConfig `json:"grid,omitempty" toml:"grid"`
}

// Venue is a complete layout definition for one venue or event.
type Venue struct {
	Name    string `json:"name" toml:"name"`
	EventID string `json:"event_id,omitempty" toml:"event_id"`

	Strategy Strategy `json:"strategy" toml:"strategy"`

	// Capacity is the requested seat count for grid, radial, and general
	// admission. Manual venues derive capacity from their sections and may
	// leave it zero.
	Capacity int `json:"capacity,omitempty" toml:"capacity"`

	Identifiers IdentifierConfig `json:"identifiers,omitempty" toml:"identifiers"`

	Grid             layout.GridOptions   `json:"grid,omitempty" toml:"grid"`
	Radial           layout.RadialOptions `json:"radial,omitempty" toml:"radial"`
	GeneralAdmission layout.GAOptions     `json:"general_admission,omitempty" toml:"general_admission"`

	Sections []layout.Section `json:"sections,omitempty" toml:"sections"`
}

// Load reads and validates a venue definition from a TOML file.
func Load(path string) (*Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "venue file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "opening venue file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a venue definition from TOML.
func Parse(r io.Reader) (*Venue, error) {
	var v Venue
	if _, err := toml.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding venue TOML")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks the definition for fatal configuration errors: unknown
// strategy, missing sections or zones, zero capacity where seats are
// required, and polygon sections declared with fewer than three points.
// Geometry shortfalls discovered during layout are warnings, not caught
// here.
func (v *Venue) Validate() error {
	if v.EventID != "" {
		if err := errors.ValidateEventID(v.EventID); err != nil {
			return err
		}
	}

	switch v.Strategy {
	case StrategyGrid, StrategyRadial:
		if v.Capacity <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s strategy requires a positive capacity", v.Strategy)
		}
	case StrategyGA:
		if v.Capacity <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "general admission requires a positive capacity")
		}
		if len(v.GeneralAdmission.Zones) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "general admission requires at least one zone")
		}
	case StrategyManual:
		if len(v.Sections) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "manual strategy requires at least one section")
		}
		for i := range v.Sections {
			s := &v.Sections[i]
			if s.Shape == layout.ShapePolygon && !s.Polygon.Valid() {
				return errors.New(errors.ErrCodeInvalidConfig,
					"section %q polygon has %d points, need at least 3", s.Name, len(s.Polygon))
			}
			for _, rc := range s.RowConfig {
				if rc.Seats <= 0 {
					return errors.New(errors.ErrCodeInvalidConfig,
						"section %q row %d has no seats", s.Name, rc.Row)
				}
			}
		}
	case "":
		return errors.New(errors.ErrCodeInvalidConfig, "venue strategy is required")
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown strategy %q", v.Strategy)
	}
	return nil
}

// RequestedCapacity is the number of identifiers a generation run needs:
// the explicit capacity, or for manual venues the sum of section
// capacities.
func (v *Venue) RequestedCapacity() int {
	if v.Strategy == StrategyManual {
		total := 0
		for i := range v.Sections {
			total += v.Sections[i].EffectiveCapacity()
		}
		return total
	}
	return v.Capacity
}

// SectionPtrs returns the manual sections in the pointer form the layout
// strategy consumes.
func (v *Venue) SectionPtrs() []*layout.Section {
	out := make([]*layout.Section, len(v.Sections))
	for i := range v.Sections {
		out[i] = &v.Sections[i]
	}
	return out
}

// Hash is the venue's content address: a digest over its canonical JSON
// form. Two definitions that decode identically hash identically, whatever
// their TOML formatting.
func (v *Venue) Hash() string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err) // the venue model contains no unmarshalable types
	}
	return cache.Hash(data)
}
