package ordmap

import (
	"fmt"

	"github.com/npillmayer/ordmap/alloc"
	"github.com/npillmayer/ordmap/compare"
)

// Config configures a container.
type Config[K, P any] struct {
	// Less orders keys. It is required.
	Less compare.Less[K]
	// Allocator provides tree nodes. If nil, nodes are allocated from the heap.
	Allocator alloc.Allocator[P]
}

func (cfg Config[K, P]) normalized() Config[K, P] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.NewHeap[P]()
	}
	return cfg
}

func (cfg Config[K, P]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
