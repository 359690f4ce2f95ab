package cache

// ScopedKeyer wraps a Keyer with a prefix for tenant isolation: a server
// hosting several venues keeps their generation results in separate cache
// namespaces.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "venue:royal-albert:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer falls
// back to the default scheme.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for a cached generation result.
func (k *ScopedKeyer) LayoutKey(venueHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(venueHash, opts)
}

// ManifestKey generates a prefixed key for a cached manifest.
func (k *ScopedKeyer) ManifestKey(eventID string) string {
	return k.prefix + k.inner.ManifestKey(eventID)
}
