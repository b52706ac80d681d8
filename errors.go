package segtree

import "errors"

var (
	// ErrInvalidConfig signals an incomplete algebra configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrInvalidLength signals a construction request for an empty tree.
	ErrInvalidLength = errors.New("segtree: length must be positive")
	// ErrIndexOutOfBounds signals an invalid leaf index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidRange signals inverted or out-of-bounds range boundaries.
	ErrInvalidRange = errors.New("segtree: invalid range")
	// ErrInvariant signals a violated structural invariant, as reported by Check.
	ErrInvariant = errors.New("segtree: invariant violated")
)
