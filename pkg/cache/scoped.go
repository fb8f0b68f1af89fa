package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each open model in serve
// mode its own cache namespace.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "model:house:")
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

// ModelKey generates a prefixed key for a parsed model.
func (k *ScopedKeyer) ModelKey(contentHash string) string {
	return k.prefix + k.inner.ModelKey(contentHash)
}

// TreeKey generates a prefixed key for a built hierarchy.
func (k *ScopedKeyer) TreeKey(modelHash string) string {
	return k.prefix + k.inner.TreeKey(modelHash)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}
