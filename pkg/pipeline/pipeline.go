// Package pipeline runs the complete seat-manifest generation pipeline.
//
// The pipeline has three stages — identifier generation, layout, manifest
// building — shared by the CLI and the HTTP API so both entry points behave
// identically. A Runner caches serialized results keyed by the venue
// definition's content hash: regenerating an unchanged venue is a cache
// read, not a layout pass.
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Venue: v})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Manifest.UpdateHash)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/manifest"
	"github.com/seatforge/seatforge/pkg/place"
	"github.com/seatforge/seatforge/pkg/venue"
)

// Options configures one generation run. The struct serializes to JSON so
// the API can accept it as a request body.
type Options struct {
	// Venue is the layout definition to generate from.
	Venue *venue.Venue `json:"venue"`

	// EventID overrides the venue's event id; empty keeps the venue's
	// (which may itself be empty, yielding a generated UUID).
	EventID string `json:"event_id,omitempty"`

	// Capacity overrides the requested seat count; zero derives it from
	// the venue.
	Capacity int `json:"capacity,omitempty"`

	// Refresh bypasses the cache read (the result is still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Logger is used for stage progress; nil falls back to the runner's.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has run.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills derived values. It is
// idempotent; Execute calls it for callers that have not.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Venue == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "pipeline options require a venue")
	}
	if err := o.Venue.Validate(); err != nil {
		return err
	}

	if o.EventID == "" {
		o.EventID = o.Venue.EventID
	}
	if o.EventID != "" {
		if err := errors.ValidateEventID(o.EventID); err != nil {
			return err
		}
	}

	if o.Capacity == 0 {
		o.Capacity = o.Venue.RequestedCapacity()
	}
	if o.Capacity <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "requested capacity must be positive, got %d", o.Capacity)
	}

	o.validated = true
	return nil
}

// Result contains the outputs of a generation run.
type Result struct {
	// Manifest is the hashed manifest over the placed seats. Nil for
	// general-admission venues, which produce zones instead of seats.
	Manifest *manifest.Manifest `json:"manifest,omitempty"`

	// Places are the positioned seats (empty for general admission).
	Places []place.Place `json:"places,omitempty"`

	// Zones are the general-admission zone descriptors.
	Zones []layout.Zone `json:"zones,omitempty"`

	// Warnings are the geometry shortfalls collected during layout.
	Warnings []layout.Warning `json:"warnings,omitempty"`

	// VenueHash is the content hash of the venue definition.
	VenueHash string `json:"venue_hash"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains execution statistics for one run.
type Stats struct {
	IdentifierCount int           `json:"identifier_count"`
	PlaceCount      int           `json:"place_count"`
	ZoneCount       int           `json:"zone_count,omitempty"`
	WarningCount    int           `json:"warning_count,omitempty"`
	LayoutTime      time.Duration `json:"layout_time"`
	TotalTime       time.Duration `json:"total_time"`
}

// CacheInfo reports whether the run was served from cache.
type CacheInfo struct {
	Hit bool   `json:"hit"`
	Key string `json:"key,omitempty"`
}
