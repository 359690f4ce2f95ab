package manifest

import (
	"sort"
	"time"
)

// Diff is the delta between two manifests over their identifier sets.
type Diff struct {
	EventID    string    `json:"event_id,omitempty"`
	Changed    bool      `json:"changed"`
	Added      []string  `json:"added,omitempty"`
	Removed    []string  `json:"removed,omitempty"`
	UpdateHash string    `json:"update_hash,omitempty"`
	UpdateTime time.Time `json:"update_time,omitempty"`
}

// Compare computes the additions and removals going from old to new.
// Matching hashes short-circuit to an unchanged result without touching the
// identifier lists. Added and Removed come back sorted.
func Compare(old, new *Manifest) *Diff {
	d := &Diff{
		EventID:    new.EventID,
		UpdateHash: new.UpdateHash,
		UpdateTime: new.UpdateTime,
	}
	if old.UpdateHash != "" && old.UpdateHash == new.UpdateHash {
		return d
	}

	oldSet := idSet(old.IDs())
	newSet := idSet(new.IDs())

	for id := range newSet {
		if !oldSet[id] {
			d.Added = append(d.Added, id)
		}
	}
	for id := range oldSet {
		if !newSet[id] {
			d.Removed = append(d.Removed, id)
		}
	}
	sort.Strings(d.Added)
	sort.Strings(d.Removed)

	d.Changed = len(d.Added) > 0 || len(d.Removed) > 0
	return d
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
