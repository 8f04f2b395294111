package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This keeps unrelated projects from sharing cached solutions when they
// point the CLI at the same cache directory.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "project:billing:")
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

// SolutionsKey generates a prefixed key for cached solutions.
func (k *ScopedKeyer) SolutionsKey(systemHash string) string {
	return k.prefix + k.inner.SolutionsKey(systemHash)
}
