// Package options holds the render-option knobs consulted by the
// dispatcher and the collection handlers. An Options value is an
// immutable per-call snapshot: callers take it once at the start of a
// render and never re-read shared state mid-traversal.
package options

// DefaultInlineBinaryThreshold is the largest byte-slice length rendered
// as an inline hex literal; longer payloads use the compact encoding.
const DefaultInlineBinaryThreshold = 16

// DefaultMaxDepth bounds the recursive descent so reference cycles that
// slip past the identity guard fail instead of recursing forever.
const DefaultMaxDepth = 1000

// RenderOptions controls ordering and encoding policy of rendered
// expressions.
type RenderOptions struct {
	// SortMapKeys orders map entries by the lexicographic order of their
	// rendered key text. When false, entries are ordered by the key's
	// natural order (numeric or string); output stays deterministic
	// either way.
	SortMapKeys bool

	// DeterministicSetOrder orders set elements by the lexicographic
	// order of their rendered element text.
	DeterministicSetOrder bool

	// InlineBinaryThreshold is the maximum length of a byte slice that
	// still renders as an inline hex literal.
	InlineBinaryThreshold int

	// ForceEnumShorthand renders named scalar values through their
	// Stringer constant name when it forms a valid identifier, instead
	// of a raw-value conversion. Best effort: the constant is not
	// verified to exist.
	ForceEnumShorthand bool

	// MaxDepth is the recursion ceiling. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Default returns the built-in render options.
func Default() RenderOptions {
	return RenderOptions{
		SortMapKeys:           true,
		DeterministicSetOrder: true,
		InlineBinaryThreshold: DefaultInlineBinaryThreshold,
		ForceEnumShorthand:    false,
		MaxDepth:              DefaultMaxDepth,
	}
}
