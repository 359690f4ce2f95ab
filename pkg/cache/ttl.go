package cache

import "time"

// Standard TTLs per entry kind. Layout results are pure functions of the
// venue definition, so they can live long; stored manifests churn with
// sales and expire faster.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLManifest = 24 * time.Hour
)
