// Package cache provides the storage abstraction behind compiled
// stylesheets and layout snapshots, with file, Redis, MongoDB, and no-op
// backends. Keys are derived from sheet hashes, so a changed sheet never
// serves stale artifacts.
package cache

import (
	"context"
	"time"
)

// Cache is the byte-oriented store shared by the CLI and the HTTP service.
// A zero ttl means the entry never expires.
type Cache interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with an optional expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the three cacheable artifact classes:
// validated sheets, per-width snapshots, and rendered outputs.
type Keyer interface {
	// SheetKey keys a validated sheet by its content hash.
	SheetKey(sheetHash string) string

	// SnapshotKey keys the resolved layout of one sheet at one width.
	SnapshotKey(sheetHash string, width int) string

	// ArtifactKey keys a rendered output (css, json, svg) of one sheet.
	ArtifactKey(sheetHash, format string) string
}

// DefaultKeyer derives keys by hashing the identifying components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SheetKey generates a key for a validated sheet.
func (k *DefaultKeyer) SheetKey(sheetHash string) string {
	return "sheet:" + sheetHash
}

// SnapshotKey generates a key for a resolved snapshot.
func (k *DefaultKeyer) SnapshotKey(sheetHash string, width int) string {
	return hashKey("snapshot", sheetHash, width)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(sheetHash, format string) string {
	return hashKey("artifact", sheetHash, format)
}
