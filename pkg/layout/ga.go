package layout

import (
	"fmt"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/geometry"
	"github.com/seatforge/seatforge/pkg/place"
)

// ZoneConfig describes one general-admission zone. Capacity zero means the
// zone takes an equal share of whatever total capacity the explicit zones
// leave over.
type ZoneConfig struct {
	Name     string        `json:"name" toml:"name"`
	Bounds   geometry.Rect `json:"bounds" toml:"bounds"`
	Capacity int           `json:"capacity,omitempty" toml:"capacity"`
}

// Zone is a produced general-admission zone descriptor. Zones are not
// seat-addressable: Places is always empty, and that is a design decision,
// not an omission — GA capacity is tracked per zone, never per seat.
type Zone struct {
	ZoneID   string        `json:"zone_id"`
	Name     string        `json:"name"`
	Bounds   geometry.Rect `json:"bounds"`
	Capacity int           `json:"capacity"`
	Places   []place.Place `json:"places"`
}

// GAOptions configures the general-admission strategy.
type GAOptions struct {
	TotalCapacity int          `json:"total_capacity" toml:"total_capacity"`
	Zones         []ZoneConfig `json:"zones" toml:"zones"`
}

// GeneralAdmission derives zone descriptors from the configuration.
// Explicitly capped zones keep their capacity; the remaining total is split
// evenly across uncapped zones, with the last uncapped zone absorbing the
// division remainder so the zone capacities always sum to the total
// (when the explicit caps leave anything to distribute).
func GeneralAdmission(opts GAOptions) ([]Zone, error) {
	if len(opts.Zones) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "general admission requires at least one zone")
	}
	if opts.TotalCapacity < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "total capacity must be non-negative, got %d", opts.TotalCapacity)
	}

	explicit := 0
	uncapped := 0
	for _, z := range opts.Zones {
		if z.Capacity > 0 {
			explicit += z.Capacity
		} else {
			uncapped++
		}
	}

	remaining := opts.TotalCapacity - explicit
	if remaining < 0 {
		remaining = 0
	}
	share := 0
	if uncapped > 0 {
		share = remaining / uncapped
	}

	zones := make([]Zone, 0, len(opts.Zones))
	assigned := 0
	seen := 0
	for i, z := range opts.Zones {
		capacity := z.Capacity
		if capacity == 0 {
			seen++
			if seen == uncapped {
				capacity = remaining - assigned // last uncapped zone absorbs the remainder
			} else {
				capacity = share
			}
			assigned += capacity
		}

		zones = append(zones, Zone{
			ZoneID:   fmt.Sprintf("zone-%d", i+1),
			Name:     z.Name,
			Bounds:   z.Bounds,
			Capacity: capacity,
			Places:   []place.Place{},
		})
	}
	return zones, nil
}
