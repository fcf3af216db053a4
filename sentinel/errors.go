package sentinel

import "errors"

var (
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("sentinel: invariant violated")
	// ErrNilTree signals an operation on a nil tree.
	ErrNilTree = errors.New("sentinel: nil tree")
)
