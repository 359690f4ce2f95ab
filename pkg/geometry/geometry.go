// Package geometry provides the 2-D primitives used by the seat layout
// strategies: points, axis-aligned rectangles, and simple polygons.
//
// All coordinates are in venue units. The coordinate system follows screen
// convention: X grows to the right, Y grows downward, so "toward the stage"
// means toward smaller Y.
//
// Polygons are simple (non-self-intersecting) and given as an ordered list
// of vertices; they are implicitly closed. A polygon with fewer than three
// vertices is invalid and contributes no area.
package geometry

import "math"

// Point is a position in venue coordinate space.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Rect is an axis-aligned rectangle defined by its min and max corners.
// Use NewRect to build one from two arbitrary corner points.
type Rect struct {
	Min Point `json:"min" toml:"min"`
	Max Point `json:"max" toml:"max"`
}

// NewRect builds a rectangle from two corner points in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r.Min == (Point{}) && r.Max == (Point{})
}

// Polygon is an ordered list of vertices describing a closed simple polygon.
type Polygon []Point

// Valid reports whether the polygon has enough vertices to enclose area.
func (pg Polygon) Valid() bool { return len(pg) >= 3 }

// Bounds returns the axis-aligned bounding box of the polygon.
// The zero Rect is returned for an empty polygon.
func (pg Polygon) Bounds() Rect {
	if len(pg) == 0 {
		return Rect{}
	}
	r := Rect{Min: pg[0], Max: pg[0]}
	for _, p := range pg[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Contains reports whether p lies inside the polygon using the even-odd
// ray-casting rule. Points exactly on an edge may land on either side;
// layout code must not rely on edge behavior.
func (pg Polygon) Contains(p Point) bool {
	if !pg.Valid() {
		return false
	}
	inside := false
	n := len(pg)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg[i], pg[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// SpanAtY computes the horizontal extent of the polygon at the given Y by
// intersecting the scanline with every edge. This is the usable seat span
// for a row placed at that height, and correctly narrows for trapezoidal
// and other irregular shapes where the bounding box would overshoot.
//
// ok is false when the scanline misses the polygon entirely (the row's Y is
// outside the polygon's vertical range, or the polygon is degenerate).
func (pg Polygon) SpanAtY(y float64) (minX, maxX float64, ok bool) {
	if !pg.Valid() {
		return 0, 0, false
	}

	n := len(pg)
	var xs []float64
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg[i], pg[j]
		lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		if y < lo || y > hi {
			continue
		}
		if a.Y == b.Y {
			// Horizontal edge exactly on the scanline: the whole edge is in span.
			xs = append(xs, a.X, b.X)
			continue
		}
		xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
	}

	if len(xs) < 2 {
		return 0, 0, false
	}

	minX, maxX = xs[0], xs[0]
	for _, x := range xs[1:] {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	return minX, maxX, true
}

// Centroid returns the area-weighted centroid of the polygon. For degenerate
// polygons (zero area) it falls back to the vertex average so rotation still
// has a stable pivot.
func (pg Polygon) Centroid() Point {
	if len(pg) == 0 {
		return Point{}
	}

	var area, cx, cy float64
	n := len(pg)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		cross := pg[j].X*pg[i].Y - pg[i].X*pg[j].Y
		area += cross
		cx += (pg[j].X + pg[i].X) * cross
		cy += (pg[j].Y + pg[i].Y) * cross
	}

	if area == 0 {
		var sx, sy float64
		for _, p := range pg {
			sx += p.X
			sy += p.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}

	area /= 2
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Rotate rotates p by the given angle in degrees around the pivot point.
// Positive angles rotate counter-clockwise in standard orientation.
func Rotate(p, pivot Point, degrees float64) Point {
	if degrees == 0 {
		return p
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// EdgeSlopeDegrees estimates a rotation angle for the polygon from the
// average lean of its left and right edges. A section drawn as a leaning
// parallelogram gets its rows tilted to match without manual tuning.
//
// The estimate walks from the topmost vertex band to the bottommost on each
// side and measures the deviation from vertical. Zero is returned for
// degenerate polygons or when the sides have no vertical extent.
func (pg Polygon) EdgeSlopeDegrees() float64 {
	if !pg.Valid() {
		return 0
	}

	b := pg.Bounds()
	if b.Height() == 0 {
		return 0
	}

	topLeft, topRight := pg.extremesAtY(b.Min.Y)
	bottomLeft, bottomRight := pg.extremesAtY(b.Max.Y)

	left := sideLeanDegrees(topLeft, bottomLeft)
	right := sideLeanDegrees(topRight, bottomRight)
	return (left + right) / 2
}

// extremesAtY returns the leftmost and rightmost vertices lying on the
// horizontal band at y. The caller passes the polygon's top or bottom Y, so
// at least one vertex always qualifies.
func (pg Polygon) extremesAtY(y float64) (left, right Point) {
	first := true
	for _, p := range pg {
		if p.Y != y {
			continue
		}
		if first {
			left, right = p, p
			first = false
			continue
		}
		if p.X < left.X {
			left = p
		}
		if p.X > right.X {
			right = p
		}
	}
	return left, right
}

// sideLeanDegrees measures how far the edge from top to bottom deviates
// from vertical, in degrees. Positive values lean right going down.
func sideLeanDegrees(top, bottom Point) float64 {
	dy := bottom.Y - top.Y
	if dy == 0 {
		return 0
	}
	return math.Atan2(bottom.X-top.X, dy) * 180 / math.Pi
}
