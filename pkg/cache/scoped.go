package cache

// ScopedKeyer wraps a Keyer with a namespace prefix. The pipeline scopes
// artifact keys by cache schema version, so artifacts written by an older
// binary with different rendering behavior never satisfy a newer one.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys. A nil inner keyer
// defaults to the standard scheme.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(specJSON []byte, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specJSON, opts)
}
