package alloc

import (
	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/npillmayer/ordmap/sentinel"
)

// Allocator is the capability to obtain and release tree nodes carrying a
// payload of type P.
type Allocator[P any] interface {
	// Allocate returns a detached node with a zero payload.
	Allocate() (*sentinel.Node[P], error)
	// Deallocate takes back a node. The node must be detached and destroyed.
	Deallocate(n *sentinel.Node[P])
	// Construct places payload into an allocated node.
	Construct(n *sentinel.Node[P], payload P)
	// Destroy clears the payload of a node, dropping references it may hold.
	Destroy(n *sentinel.Node[P])
}

// Stats is implemented by allocators which count the nodes they hand out.
type Stats interface {
	// Live returns the number of nodes allocated and not yet deallocated.
	Live() int
}

// Heap allocates every node from the Go heap.
type Heap[P any] struct {
	live int
}

var _ Allocator[int] = (*Heap[int])(nil)

// NewHeap creates an allocator backed by the Go heap.
func NewHeap[P any]() *Heap[P] {
	return &Heap[P]{}
}

// Allocate returns a fresh node.
func (a *Heap[P]) Allocate() (*sentinel.Node[P], error) {
	a.live++
	return &sentinel.Node[P]{}, nil
}

// Deallocate forgets about n, leaving it to the garbage collector.
func (a *Heap[P]) Deallocate(n *sentinel.Node[P]) {
	panicif.True(!n.Detached())
	a.live--
}

// Construct places payload into n.
func (a *Heap[P]) Construct(n *sentinel.Node[P], payload P) {
	construct(n, payload)
}

// Destroy clears the payload of n.
func (a *Heap[P]) Destroy(n *sentinel.Node[P]) {
	destroy(n)
}

// Live returns the number of nodes currently handed out.
func (a *Heap[P]) Live() int {
	return a.live
}

func construct[P any](n *sentinel.Node[P], payload P) {
	n.Payload = payload
}

func destroy[P any](n *sentinel.Node[P]) {
	var zero P
	n.Payload = zero
}
