package alloc

import (
	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/npillmayer/ordmap/sentinel"
)

// DefaultFreeListSize is the number of released nodes a FreeList keeps for
// reuse if no size is given.
const DefaultFreeListSize = 32

// FreeList recycles released nodes.
//
// Up to a fixed number of deallocated nodes are kept for later allocations;
// surplus nodes are left to the garbage collector.
type FreeList[P any] struct {
	freelist []*sentinel.Node[P]
	live     int
}

var _ Allocator[int] = (*FreeList[int])(nil)

// NewFreeList creates an allocator keeping up to size released nodes.
// A size <= 0 selects DefaultFreeListSize.
func NewFreeList[P any](size int) *FreeList[P] {
	if size <= 0 {
		size = DefaultFreeListSize
	}
	return &FreeList[P]{freelist: make([]*sentinel.Node[P], 0, size)}
}

// Allocate returns a recycled node if one is available, a fresh one otherwise.
func (f *FreeList[P]) Allocate() (*sentinel.Node[P], error) {
	f.live++
	index := len(f.freelist) - 1
	if index < 0 {
		return &sentinel.Node[P]{}, nil
	}
	n := f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	return n, nil
}

// Deallocate keeps n for reuse if there is room on the free list.
func (f *FreeList[P]) Deallocate(n *sentinel.Node[P]) {
	panicif.True(!n.Detached())
	f.live--
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
	}
}

// Construct places payload into n.
func (f *FreeList[P]) Construct(n *sentinel.Node[P], payload P) {
	construct(n, payload)
}

// Destroy clears the payload of n.
func (f *FreeList[P]) Destroy(n *sentinel.Node[P]) {
	destroy(n)
}

// Live returns the number of nodes currently handed out.
func (f *FreeList[P]) Live() int {
	return f.live
}

// Free returns the number of nodes waiting for reuse.
func (f *FreeList[P]) Free() int {
	return len(f.freelist)
}
