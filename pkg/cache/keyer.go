package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys for pipeline artifacts.
// Injecting a Keyer lets callers namespace or re-shape keys without
// touching the cache implementations.
type Keyer interface {
	// ArtifactKey keys one rendered artifact by the normalized spec
	// content and the export options that shaped it.
	ArtifactKey(specJSON []byte, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the export options that influence artifact bytes.
// Anything that changes the rendered output must appear here, or stale
// artifacts would be served across option changes.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	DPI     float64 `json:"dpi"`
	NoTight bool    `json:"no_tight"`
	Pad     float64 `json:"pad"`
}

// DefaultKeyer is the standard key scheme: a format prefix plus the
// SHA-256 of the spec content and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(specJSON []byte, opts ArtifactKeyOpts) string {
	return hashKey("artifact", Hash(specJSON), opts)
}

// hashKey builds a "prefix:hex" key from the JSON encoding of parts.
// The full 256-bit digest is kept; artifact identity rides on these
// keys, so truncating would only shrink the collision margin.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the SHA-256 of data as a 64-char hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
