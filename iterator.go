package ordmap

import (
	"fmt"

	"github.com/npillmayer/ordmap/sentinel"
)

// Iterator denotes a position in a container: either an element or the end.
//
// Iterators are small values. Next and Prev return new iterators and leave the
// receiver unchanged. Stepping forward from the last element yields the end
// position, stepping forward from the end yields the first element; Prev
// mirrors this. Stepping from a position whose element has been erased yields
// the end position, as long as the erased node has not been handed out again by
// a recycling allocator. The zero Iterator belongs to no container.
type Iterator[P any] struct {
	tree *sentinel.Tree[P]
	node *sentinel.Node[P]
}

// IsEnd reports whether the iterator does not denote an element.
func (it Iterator[P]) IsEnd() bool {
	return it.tree == nil || it.tree.IsSentinel(it.node)
}

// Next returns the position following it.
func (it Iterator[P]) Next() Iterator[P] {
	if it.tree == nil {
		return it
	}
	if it.node.Detached() {
		return Iterator[P]{tree: it.tree, node: it.tree.End()}
	}
	return Iterator[P]{tree: it.tree, node: it.tree.Next(it.node)}
}

// Prev returns the position preceding it.
func (it Iterator[P]) Prev() Iterator[P] {
	if it.tree == nil {
		return it
	}
	if it.node.Detached() {
		return Iterator[P]{tree: it.tree, node: it.tree.End()}
	}
	return Iterator[P]{tree: it.tree, node: it.tree.Prev(it.node)}
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[P]) Equal(other Iterator[P]) bool {
	return it.tree == other.tree && it.node == other.node
}

// Item returns the element at the iterator's position.
func (it Iterator[P]) Item() (P, error) {
	if err := it.check(); err != nil {
		var zero P
		return zero, err
	}
	return it.node.Payload, nil
}

// Ref returns a pointer to the element at the iterator's position. Clients
// must not change the element's key through it.
func (it Iterator[P]) Ref() (*P, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	return &it.node.Payload, nil
}

// MustItem is like Item, but panics if the iterator does not denote an element.
func (it Iterator[P]) MustItem() P {
	p, err := it.Item()
	if err != nil {
		panic(err)
	}
	return p
}

func (it Iterator[P]) check() error {
	switch {
	case it.tree == nil:
		return fmt.Errorf("%w: iterator is not bound to a container", ErrOutOfRange)
	case it.tree.IsSentinel(it.node):
		return fmt.Errorf("%w: end position has no element", ErrOutOfRange)
	case it.node.Detached():
		return fmt.Errorf("%w: element has been erased", ErrOutOfRange)
	}
	return nil
}
