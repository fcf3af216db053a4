package alloc

import (
	"fmt"

	"github.com/npillmayer/ordmap/sentinel"
)

// Limited wraps an allocator and refuses to hand out more than a fixed number
// of live nodes.
type Limited[P any] struct {
	inner Allocator[P]
	max   int
	live  int
}

var _ Allocator[int] = (*Limited[int])(nil)

// NewLimited creates an allocator which allows at most max live nodes, taking
// them from inner. A nil inner allocator selects a Heap.
func NewLimited[P any](inner Allocator[P], max int) *Limited[P] {
	if inner == nil {
		inner = NewHeap[P]()
	}
	return &Limited[P]{inner: inner, max: max}
}

// Allocate fails with ErrAllocationFailure once the budget is exhausted.
func (l *Limited[P]) Allocate() (*sentinel.Node[P], error) {
	if l.live >= l.max {
		tracer().Errorf("alloc: node budget of %d exhausted", l.max)
		return nil, fmt.Errorf("%w: node budget of %d exhausted", ErrAllocationFailure, l.max)
	}
	n, err := l.inner.Allocate()
	if err != nil {
		return nil, err
	}
	l.live++
	return n, nil
}

// Deallocate returns n to the wrapped allocator.
func (l *Limited[P]) Deallocate(n *sentinel.Node[P]) {
	l.inner.Deallocate(n)
	l.live--
}

// Construct delegates to the wrapped allocator.
func (l *Limited[P]) Construct(n *sentinel.Node[P], payload P) {
	l.inner.Construct(n, payload)
}

// Destroy delegates to the wrapped allocator.
func (l *Limited[P]) Destroy(n *sentinel.Node[P]) {
	l.inner.Destroy(n)
}

// Live returns the number of nodes currently handed out.
func (l *Limited[P]) Live() int {
	return l.live
}

// SetLimit changes the budget. Nodes already handed out are not affected.
func (l *Limited[P]) SetLimit(max int) {
	l.max = max
}
