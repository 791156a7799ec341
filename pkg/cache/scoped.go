package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, so
// several sheets (or several deployments sharing one Redis) do not collide.
//
// Example usage:
//
//	// Per-sheet namespace in a shared store
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "proximity:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SheetKey generates a prefixed sheet key.
func (k *ScopedKeyer) SheetKey(sheetHash string) string {
	return k.prefix + k.inner.SheetKey(sheetHash)
}

// SnapshotKey generates a prefixed snapshot key.
func (k *ScopedKeyer) SnapshotKey(sheetHash string, width int) string {
	return k.prefix + k.inner.SnapshotKey(sheetHash, width)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sheetHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(sheetHash, format)
}
