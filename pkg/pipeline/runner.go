package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seatforge/seatforge/pkg/cache"
	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/manifest"
	"github.com/seatforge/seatforge/pkg/observability"
	"github.com/seatforge/seatforge/pkg/place"
	"github.com/seatforge/seatforge/pkg/placeid"
	"github.com/seatforge/seatforge/pkg/venue"
)

// Runner executes the generation pipeline with caching. It is stateless
// beyond the cache and logger, so one Runner can serve concurrent calls
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching (NullCache), a
// nil keyer uses the default key scheme.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the identifier → layout → manifest pipeline, serving the
// result from cache when the venue definition is unchanged.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	start := time.Now()

	v := opts.Venue
	venueHash := v.Hash()
	key := r.Keyer.LayoutKey(venueHash, cache.LayoutKeyOpts{
		Strategy: string(v.Strategy),
		Capacity: opts.Capacity,
		EventID:  opts.EventID,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var res Result
			if err := json.Unmarshal(data, &res); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				res.CacheInfo = CacheInfo{Hit: true, Key: key}
				res.Stats.TotalTime = time.Since(start)
				logger.Debug("generation served from cache", "venue", v.Name, "key", key)
				return &res, nil
			}
			// Corrupt entry, drop it and regenerate.
			_ = r.Cache.Delete(ctx, key)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	observability.Pipeline().OnGenerateStart(ctx, v.Name, string(v.Strategy))
	res, err := r.generate(ctx, opts, venueHash, logger)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, v.Name, string(v.Strategy), 0, time.Since(start), err)
		return nil, err
	}
	res.Stats.TotalTime = time.Since(start)
	observability.Pipeline().OnGenerateComplete(ctx, v.Name, string(v.Strategy), res.Stats.PlaceCount, res.Stats.TotalTime, nil)

	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	res.CacheInfo = CacheInfo{Hit: false, Key: key}
	return res, nil
}

// generate runs the pipeline stages without touching the cache.
func (r *Runner) generate(ctx context.Context, opts Options, venueHash string, logger *log.Logger) (*Result, error) {
	v := opts.Venue
	res := &Result{VenueHash: venueHash}

	// General admission produces zones, not seats; no identifiers needed.
	if v.Strategy == venue.StrategyGA {
		ga := v.GeneralAdmission
		if ga.TotalCapacity == 0 {
			ga.TotalCapacity = opts.Capacity
		}
		zones, err := layout.GeneralAdmission(ga)
		if err != nil {
			return nil, err
		}
		res.Zones = zones
		res.Stats.ZoneCount = len(zones)
		logger.Info("derived admission zones", "venue", v.Name, "zones", len(zones))
		return res, nil
	}

	ids, err := placeid.Generate(opts.Capacity, placeid.Options{
		Prefix:  v.Identifiers.Prefix,
		Pattern: v.Identifiers.Pattern,
		Grid:    v.Identifiers.Grid,
	})
	if err != nil {
		return nil, err
	}
	res.Stats.IdentifierCount = len(ids)

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, string(v.Strategy), len(ids))
	var layoutErr error
	switch v.Strategy {
	case venue.StrategyGrid:
		var places []place.Place
		if places, layoutErr = layout.Grid(ids, v.Grid); layoutErr == nil {
			res.Places = places
		}
	case venue.StrategyRadial:
		res.Places = layout.Radial(ids, v.Radial)
	case venue.StrategyManual:
		var mres *layout.Result
		if mres, layoutErr = layout.Manual(ids, v.SectionPtrs()); layoutErr == nil {
			res.Places = mres.Places
			res.Warnings = mres.Warnings
		}
	default:
		layoutErr = errors.New(errors.ErrCodeUnsupported, "strategy %q has no layout", v.Strategy)
	}
	res.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, string(v.Strategy), len(res.Places), res.Stats.LayoutTime, layoutErr)
	if layoutErr != nil {
		return nil, layoutErr
	}
	res.Stats.PlaceCount = len(res.Places)
	res.Stats.WarningCount = len(res.Warnings)

	logger.Info("laid out seats",
		"venue", v.Name,
		"strategy", v.Strategy,
		"places", len(res.Places),
		"warnings", len(res.Warnings),
		"duration", res.Stats.LayoutTime)

	m, err := manifest.FromPlaces(opts.EventID, res.Places)
	if err != nil {
		return nil, err
	}
	res.Manifest = m

	logger.Info("built manifest",
		"event", m.EventID,
		"hash", m.UpdateHash[:12],
		"places", len(m.PlaceIDs))
	return res, nil
}

// Close releases resources held by the runner, primarily the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
