package place

// NormalizedScale is the coordinate range places are rescaled into.
const NormalizedScale = 1000.0

// NormalizeCoordinates rescales all coordinates linearly so X and Y lie in
// [0, NormalizedScale]. The input is not modified; a new slice is returned.
//
// If all X values are identical, or all Y values are, the range is
// degenerate and the input coordinates are returned unscaled rather than
// dividing by zero. An empty input returns an empty slice.
func NormalizeCoordinates(places []Place) []Place {
	out := make([]Place, len(places))
	copy(out, places)
	if len(out) == 0 {
		return out
	}

	minX, maxX := out[0].X, out[0].X
	minY, maxY := out[0].Y, out[0].Y
	for _, p := range out[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Degenerate-range guard.
	if minX == maxX || minY == maxY {
		return out
	}

	sx := NormalizedScale / (maxX - minX)
	sy := NormalizedScale / (maxY - minY)
	for i := range out {
		out[i].X = (out[i].X - minX) * sx
		out[i].Y = (out[i].Y - minY) * sy
	}
	return out
}
