package manifest

import (
	"github.com/seatforge/seatforge/pkg/place"
	"github.com/seatforge/seatforge/pkg/placeid"
)

// NormalizedPlaces returns the manifest's places as full records suitable
// for handoff to persistence. Manifests that carry only a flat identifier
// list get places reconstructed by heuristic identifier parsing, with
// default availability and pricing; such places have no coordinates.
func (m *Manifest) NormalizedPlaces() []place.Place {
	if len(m.Places) > 0 {
		return append([]place.Place(nil), m.Places...)
	}

	places := make([]place.Place, len(m.PlaceIDs))
	for i, id := range m.PlaceIDs {
		parsed := placeid.Parse(id)
		places[i] = place.Place{
			PlaceID:   id,
			Section:   parsed.Section,
			Seat:      parsed.Seat,
			Available: true,
			InBounds:  true,
		}
	}
	return places
}
