package place

import "sort"

// SectionBucket summarizes the places belonging to one section.
type SectionBucket struct {
	Section string  `json:"section"`
	Count   int     `json:"count"`
	Places  []Place `json:"places"`

	// MinPrice and MaxPrice span the prices seen in the bucket. Both are
	// zero when no place carries a price.
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

// GroupBySection partitions places into per-section buckets with count and
// price-range summaries. Buckets are sorted by section name so the output
// is deterministic regardless of input order. Places without a section land
// in a bucket with an empty name.
func GroupBySection(places []Place) []SectionBucket {
	byName := make(map[string]*SectionBucket)
	for _, p := range places {
		b, ok := byName[p.Section]
		if !ok {
			b = &SectionBucket{Section: p.Section}
			byName[p.Section] = b
		}
		b.Places = append(b.Places, p)
		b.Count++
		if p.Price > 0 {
			if b.MinPrice == 0 || p.Price < b.MinPrice {
				b.MinPrice = p.Price
			}
			if p.Price > b.MaxPrice {
				b.MaxPrice = p.Price
			}
		}
	}

	buckets := make([]SectionBucket, 0, len(byName))
	for _, b := range byName {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Section < buckets[j].Section })
	return buckets
}
