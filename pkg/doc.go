// Package pkg provides the core libraries for Seatforge manifest generation.
//
// # Overview
//
// Seatforge turns venue seating definitions into deterministic seat
// manifests: the complete, hashable inventory of sellable places for one
// event. The pkg directory is organized into four main areas:
//
//  1. Domain logic (identifiers, geometry, layout strategies, manifests)
//  2. Infrastructure (caching, persistence, event publishing)
//  3. Orchestration (the generation pipeline)
//  4. Observability (optional instrumentation hooks)
//
// # Architecture
//
// The typical data flow through Seatforge:
//
//	Venue Definition (TOML)
//	         ↓
//	    [placeid] package (generate identifiers)
//	         ↓
//	    [layout] package (place seats per strategy)
//	         ↓
//	    [manifest] package (hash + diff)
//	         ↓
//	    JSON output / MongoDB / RabbitMQ
//
// # Quick Start
//
// Generate a manifest for a venue:
//
//	import (
//	    "context"
//	    "github.com/seatforge/seatforge/pkg/pipeline"
//	    "github.com/seatforge/seatforge/pkg/venue"
//	)
//
//	// 1. Load the venue definition
//	v, _ := venue.Load("arena.toml")
//
//	// 2. Run the pipeline
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(context.Background(), pipeline.Options{Venue: v})
//
//	// 3. Use the manifest
//	fmt.Println(res.Manifest.UpdateHash, len(res.Manifest.PlaceIDs))
//
// # Main Packages
//
// ## Domain Logic
//
// [placeid] - Place identifier generation (sequential, pattern, and
// row/seat grid schemes) and the best-effort parser for externally sourced
// identifiers.
//
// [geometry] - Points, rectangles, and polygons in venue coordinates, with
// the span and containment math the manual layout builds on.
//
// [layout] - The four layout strategies: grid (arenas), radial
// (amphitheaters), general admission (capacity zones), and manual
// (hand-drawn floor plans with per-section geometry).
//
// [place] - The place record plus grouping and coordinate-normalization
// utilities shared by every strategy.
//
// [manifest] - Manifest construction, order-independent content hashing,
// and set-based diffing between manifest versions.
//
// [venue] - The TOML venue definition: decoding, validation, and the
// canonical content hash used as the cache key.
//
// ## Infrastructure
//
// [cache] - Content-addressed layout caching with file, Redis, and null
// backends, plus retry helpers for transient backend failures.
//
// [store] - Manifest persistence: MongoDB for deployments, in-memory for
// tests and cache-less serving.
//
// [events] - Manifest-changed notifications published to RabbitMQ so
// ticketing and pricing systems can react to deltas.
//
// ## Orchestration
//
// [pipeline] - The complete generation pipeline (identifiers → layout →
// manifest) with caching, used by both the CLI and the HTTP API. Ensures
// consistent behavior across all entry points.
//
// ## Observability
//
// [observability] - Optional hooks for metrics and tracing backends,
// registered at startup and called from the pipeline, cache, and publisher.
//
// [errors] - Structured error codes shared across every package, with
// user-facing message extraction for the CLI and HTTP layers.
//
// [buildinfo] - Build-time version information injected via ldflags.
package pkg
