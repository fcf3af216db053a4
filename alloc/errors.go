package alloc

import "errors"

// ErrAllocationFailure signals that an allocator could not provide a node.
var ErrAllocationFailure = errors.New("alloc: allocation failure")
