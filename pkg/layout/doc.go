// Package layout turns venue geometry and a flat list of place identifiers
// into positioned seats.
//
// Four interchangeable strategies are provided:
//
//   - Grid: uniform arena/stadium seating walked purely positionally
//   - Radial: theater curve around a center point
//   - GeneralAdmission: capacity zones with no individual seat coordinates
//   - Manual: rectangle or polygon sections with per-row configuration,
//     aisles, obstructions, and curved presentation
//
// The manual strategy is the invariant-bearing core: a section with row
// configuration must consume exactly its configured seat count whenever
// enough identifiers are supplied. Bounds are advisory for manual sections;
// a seat that clears the obstruction check is placed even if it lands
// outside the declared geometry, and the overflow is recorded on the
// place's InBounds flag instead of being dropped.
//
// Geometry problems that reduce a section's output (a row whose Y misses
// its polygon, an obstructed uniform grid, identifier exhaustion) are
// returned as structured Warnings next to the partial result; they never
// abort a generation run. Only an empty section list is a hard error.
//
// Every strategy is a pure function of its inputs: no randomness, no
// retained state, byte-identical output for identical input. All functions
// are safe for concurrent use.
package layout
