package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/geometry"
	"github.com/seatforge/seatforge/pkg/place"
)

// Result is the output of the manual-section strategy: the positioned
// places, the structured geometry warnings accumulated along the way, and
// the number of identifiers actually consumed.
type Result struct {
	Places   []place.Place `json:"places"`
	Warnings []Warning     `json:"warnings,omitempty"`
	Consumed int           `json:"consumed"`
}

// sectionResult is the outcome of laying out a single section.
type sectionResult struct {
	places   []place.Place
	warnings []Warning
	consumed int
	rowsUsed int
}

// Manual lays out identifiers across manually configured sections.
//
// Identifiers are distributed front to back: a section with row
// configuration consumes exactly its configured capacity (clamped only by
// identifier exhaustion, never by bounds), while a section without one
// receives a proportional share of the pool. Identifiers left over after
// every section has taken its share are appended to the last section with
// row numbering continuing past its nominal rows. Identifiers a section
// skipped over obstructed or out-of-polygon positions are dropped, not
// re-offered; the shortfall is already surfaced as a warning.
//
// An empty section list is the one hard error; everything else degrades to
// warnings on a partial result.
func Manual(ids []string, sections []*Section) (*Result, error) {
	if len(sections) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no sections configured")
	}

	totalCapacity := 0
	for _, s := range sections {
		totalCapacity += s.EffectiveCapacity()
	}

	res := &Result{Places: []place.Place{}}
	available := len(ids)
	offered := 0
	consumed := 0
	lastRowsUsed := 0

	for _, s := range sections {
		want := s.EffectiveCapacity()
		if len(s.RowConfig) == 0 && totalCapacity > 0 {
			// Proportional share of the pool for uniform sections.
			want = int(float64(want) / float64(totalCapacity) * float64(available))
		}
		if remaining := len(ids) - offered; want > remaining {
			want = remaining
		}

		sr := layoutSection(s, ids[offered:offered+want], 0)
		offered += want
		consumed += sr.consumed
		res.Places = append(res.Places, sr.places...)
		res.Warnings = append(res.Warnings, sr.warnings...)
		lastRowsUsed = sr.rowsUsed
	}

	// Never-offered identifiers go to the last section, offset so row
	// numbering continues where its main pass stopped.
	if offered < len(ids) {
		last := sections[len(sections)-1]
		sr := layoutSection(last, ids[offered:], lastRowsUsed)
		consumed += sr.consumed
		res.Places = append(res.Places, sr.places...)
		res.Warnings = append(res.Warnings, sr.warnings...)
	}

	res.Consumed = consumed
	return res, nil
}

// layoutSection dispatches a single section to the right path and applies
// the shared finishing steps (rotation, bounds flagging). A non-zero
// rowOffset forces the uniform path: it is only used for the leftover pass,
// where the row-config rows have already been filled.
func layoutSection(s *Section, ids []string, rowOffset int) sectionResult {
	if s.Shape == ShapePolygon && !s.Polygon.Valid() {
		return sectionResult{warnings: []Warning{{
			Code:    WarnInvalidPolygon,
			Section: s.Name,
			Message: fmt.Sprintf("polygon has %d points, need at least 3", len(s.Polygon)),
		}}}
	}

	var sr sectionResult
	if len(s.RowConfig) > 0 && rowOffset == 0 {
		sr = layoutRowConfig(s, ids)
	} else {
		sr = layoutUniform(s, ids, rowOffset)
	}

	finishSection(s, sr.places)
	return sr
}

// finishSection applies whole-section rotation and stamps the InBounds
// flag. Rotation happens last, about the section's centroid, so curves and
// offsets are computed in the section's own frame.
func finishSection(s *Section, places []place.Place) {
	sp := s.Spacing.withDefaults()

	angle := sp.Rotation
	if angle == 0 && sp.AutoRotate && s.Shape == ShapePolygon {
		angle = s.Polygon.EdgeSlopeDegrees()
	}

	pivot := s.center()
	for i := range places {
		if angle != 0 {
			p := geometry.Rotate(geometry.Point{X: places[i].X, Y: places[i].Y}, pivot, angle)
			places[i].X, places[i].Y = p.X, p.Y
		}
		places[i].InBounds = s.contains(geometry.Point{X: places[i].X, Y: places[i].Y})
	}
}

// layoutUniform places ids on a uniform grid spanning the section's bounds
// minus a fixed margin. Grid cells inside an obstruction are skipped
// without consuming an identifier, so a heavily obstructed section may
// place fewer seats than supplied; that shortfall is acceptable only on
// this path and is surfaced as a warning.
//
// rowOffset shifts the produced rows downward; the leftover pass uses it so
// positions and row labels continue below the section's nominal grid.
func layoutUniform(s *Section, ids []string, rowOffset int) sectionResult {
	count := len(ids)
	if count == 0 {
		return sectionResult{}
	}

	sp := s.Spacing.withDefaults()
	frame := s.frame()

	rows := s.Rows
	seatsPerRow := s.SeatsPerRow
	if rows <= 0 {
		base := seatsPerRow
		if base <= 0 {
			base = DefaultSeatsPerRow
		}
		rows = int(math.Ceil(math.Sqrt(float64(count) / float64(base))))
		if rows < 1 {
			rows = 1
		}
	}
	if seatsPerRow <= 0 {
		seatsPerRow = int(math.Ceil(float64(count) / float64(rows)))
	}

	seatSpacing := sp.SeatSpacing * spanStep(frame.Width()-2*sideMargin, seatsPerRow)
	rowSpacing := sp.RowSpacing * spanStep(frame.Height()-sp.MarginTop-sp.MarginBottom, rows)

	var sr sectionResult
	idx := 0
	for r := 0; r < rows && idx < count; r++ {
		actualRow := r + rowOffset
		y := frame.Min.Y + sp.MarginTop + float64(actualRow)*rowSpacing
		seatNum := 0
		for c := 0; c < seatsPerRow && idx < count; c++ {
			pos := geometry.Point{X: frame.Min.X + sideMargin + float64(c)*seatSpacing, Y: y}
			if s.obstructed(pos) {
				continue // cell skipped, identifier not consumed
			}
			seatNum++
			sr.places = append(sr.places, place.Place{
				PlaceID:   ids[idx],
				X:         pos.X,
				Y:         pos.Y,
				Row:       fmt.Sprintf("R%d", actualRow+1),
				Seat:      strconv.Itoa(seatNum),
				Section:   s.Name,
				Zone:      s.PriceTier,
				Available: true,
			})
			idx++
		}
		sr.rowsUsed = actualRow + 1
	}

	if idx < count {
		sr.warnings = append(sr.warnings, Warning{
			Code:    WarnObstructedShortfall,
			Section: s.Name,
			Message: fmt.Sprintf("placed %d of %d seats, grid exhausted by obstructions", idx, count),
		})
	}

	sr.consumed = idx
	return sr
}

// layoutRowConfig places ids according to the section's per-row
// configuration. This is the exact-capacity path: every row scans grid
// positions until its configured seat count is met, skipping blocked and
// obstructed positions without consuming identifiers, and accepting
// positions even outside the section bounds — the seat-count invariant
// takes precedence over geometric containment.
func layoutRowConfig(s *Section, ids []string) sectionResult {
	sp := s.Spacing.withDefaults()
	frame := s.frame()

	// Spacing is fixed once per section from the widest row so seats in
	// different rows stay vertically aligned.
	widest := 1
	for _, rc := range s.RowConfig {
		if slots := rc.slots(); slots > widest {
			widest = slots
		}
	}
	spacing := sp.SeatSpacing * spanStep(frame.Width()-2*sideMargin, widest)

	rowYs := rowBaselines(s.RowConfig, frame, sp)
	centerX := s.center().X
	topLimit := frame.Min.Y + sp.MarginTop

	var sr sectionResult
	idx := 0

rowLoop:
	for i, rc := range s.RowConfig {
		rowY := rowYs[i]

		// Usable span from the actual polygon boundary at this row's Y,
		// not the bounding box.
		spanMin, spanMax := frame.Min.X+sideMargin, frame.Max.X-sideMargin
		if s.Shape == ShapePolygon {
			var ok bool
			spanMin, spanMax, ok = s.Polygon.SpanAtY(rowY)
			if !ok {
				sr.warnings = append(sr.warnings, Warning{
					Code:    WarnRowOutsideSection,
					Section: s.Name,
					Row:     rowNumber(rc, i),
					Message: fmt.Sprintf("row Y %.1f outside polygon vertical range", rowY),
				})
				continue
			}
		}

		slots := rc.slots()
		rowWidth := float64(slots-1) * spacing

		var startX float64
		switch s.Presentation {
		case PresentationLeftFixed:
			startX = spanMin
		case PresentationRightFixed:
			startX = spanMax - rowWidth
		default: // flat and cone center on the section
			startX = centerX - rowWidth/2
		}
		startX += rc.OffsetX

		// Nominal seat extent, used to normalize curve distance.
		firstSeatX := startX + float64(rc.AisleLeft)*spacing
		lastSeatX := startX + float64(rc.AisleLeft+rc.Seats-1)*spacing
		seatCenterX := (firstSeatX + lastSeatX) / 2
		halfWidth := (lastSeatX - firstSeatX) / 2

		// A zero spacing (degenerate bounds) would otherwise scan the same
		// obstructed point forever; cap the scan and surface the shortfall.
		maxSlot := rc.AisleLeft + 4*slots + 64

		rowStart := len(sr.places)
		placed := 0
		for slot := rc.AisleLeft; placed < rc.Seats; slot++ {
			if slot > maxSlot {
				sr.warnings = append(sr.warnings, Warning{
					Code:    WarnObstructedShortfall,
					Section: s.Name,
					Row:     rowNumber(rc, i),
					Message: fmt.Sprintf("placed %d of %d seats, scan exhausted by obstructions", placed, rc.Seats),
				})
				break
			}
			if idx >= len(ids) {
				sr.warnings = append(sr.warnings, Warning{
					Code:    WarnIdentifierExhausted,
					Section: s.Name,
					Row:     rowNumber(rc, i),
					Message: fmt.Sprintf("ran out of identifiers after %d of %d seats", placed, rc.Seats),
				})
				numberRow(sr.places[rowStart:], rc, i, s.RightToLeft)
				break rowLoop
			}

			pos := geometry.Point{X: startX + float64(slot)*spacing, Y: rowY}
			if rc.isBlocked(slot) || s.obstructed(pos) {
				continue // position skipped, identifier not consumed
			}

			y := pos.Y
			if s.Presentation == PresentationCone && halfWidth > 0 {
				d := (pos.X - seatCenterX) / halfWidth
				y += -sp.CurveDepth * d * d * sp.CurveDirection
				if y < topLimit {
					y = topLimit // edge seats never cross the top margin
				}
			}

			sr.places = append(sr.places, place.Place{
				PlaceID:   ids[idx],
				X:         pos.X,
				Y:         y,
				Section:   s.Name,
				Zone:      s.PriceTier,
				Available: true,
			})
			placed++
			idx++
		}

		numberRow(sr.places[rowStart:], rc, i, s.RightToLeft)
		sr.rowsUsed = i + 1
	}

	sr.consumed = idx
	return sr
}

// rowBaselines computes every row's base Y. If any row declares a non-zero
// vertical offset, all rows chain: each row's Y is the previous row's Y
// plus its own offset. Otherwise rows spread uniformly across the
// section's usable height, each still allowing an additive fine-tune.
func rowBaselines(rows []RowConfig, frame geometry.Rect, sp Spacing) []float64 {
	chaining := false
	for _, rc := range rows {
		if rc.OffsetY != 0 {
			chaining = true
			break
		}
	}

	top := frame.Min.Y + sp.MarginTop
	ys := make([]float64, len(rows))

	if chaining {
		y := top
		for i, rc := range rows {
			y += rc.OffsetY
			ys[i] = y
		}
		return ys
	}

	step := sp.RowSpacing * spanStep(frame.Height()-sp.MarginTop-sp.MarginBottom, len(rows))
	for i, rc := range rows {
		ys[i] = top + float64(i)*step + rc.OffsetY
	}
	return ys
}

// numberRow sorts a row's places by X and assigns continuous seat numbers
// from the row's start seat, reversing first for right-to-left sections.
// Labels are assigned here so obstruction gaps never break numbering.
func numberRow(row []place.Place, rc RowConfig, index int, rightToLeft bool) {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	if rightToLeft {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}

	start := rc.StartSeat
	if start == 0 {
		start = 1
	}
	label := rc.Label
	if label == "" {
		label = fmt.Sprintf("R%d", rowNumber(rc, index))
	}

	for i := range row {
		row[i].Row = label
		row[i].Seat = strconv.Itoa(start + i)
	}
}

// rowNumber resolves a row's 1-based number from its config or position.
func rowNumber(rc RowConfig, index int) int {
	if rc.Row > 0 {
		return rc.Row
	}
	return index + 1
}

// spanStep divides a span into strides for n positions, guarding the
// single-position and negative-span cases.
func spanStep(span float64, n int) float64 {
	if n <= 1 || span <= 0 {
		return 0
	}
	return span / float64(n-1)
}
