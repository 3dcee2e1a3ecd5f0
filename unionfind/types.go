package unionfind

import "errors"

// ErrInvalidSize indicates a non-positive element count was requested.
var ErrInvalidSize = errors.New("unionfind: size must be positive")

// SkipFunc reports whether the union of p and q must be ignored.
// It is consulted before any root lookup, so it sees the original arguments.
type SkipFunc func(p, q int) bool

// Options holds construction parameters for a UnionFind.
type Options struct {
	// Skip, if non-nil, vetoes unions for which it returns true.
	Skip SkipFunc
}

// Option configures Options.
type Option func(*Options)

// WithSkip installs a skip predicate. A nil fn disables skipping.
func WithSkip(fn SkipFunc) Option {
	return func(o *Options) {
		o.Skip = fn
	}
}

// SkipElement returns a SkipFunc that rejects every union touching x.
func SkipElement(x int) SkipFunc {
	return func(p, q int) bool {
		return p == x || q == x
	}
}

// DefaultOptions returns Options with no skip predicate.
func DefaultOptions() Options {
	return Options{Skip: nil}
}
