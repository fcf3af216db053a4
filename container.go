package ordmap

import (
	"fmt"
	"iter"
	"math"

	g "github.com/anacrolix/generics"
	"github.com/npillmayer/ordmap/alloc"
	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/search"
	"github.com/npillmayer/ordmap/sentinel"
)

// Container is the engine behind all container kinds. It owns a tree of
// payloads of type P, ordered by keys of type K.
//
// Clients usually do not use Container directly, but one of Map, MultiMap,
// Set or MultiSet, which embed it. A Container must be created by one of the
// constructors; the zero value is not usable.
type Container[K, P any] struct {
	tree   *sentinel.Tree[P]
	policy search.Policy[K, P]
	alloc  alloc.Allocator[P]
}

func (c *Container[K, P]) init(cfg Config[K, P], keyOf func(P) K, mode search.Mode) error {
	if err := cfg.validate(); err != nil {
		T().Errorf("ordmap: cannot create %s container: %v", mode, err)
		return err
	}
	cfg = cfg.normalized()
	c.tree = sentinel.New[P]()
	c.alloc = cfg.Allocator
	c.policy = search.Policy[K, P]{
		KeyOf: keyOf,
		Less:  cfg.Less,
		Mode:  mode,
	}
	return nil
}

func (c *Container[K, P]) at(n *sentinel.Node[P]) Iterator[P] {
	return Iterator[P]{tree: c.tree, node: n}
}

// --- Iteration -------------------------------------------------------------

// Begin returns the position of the smallest element, or End for an empty
// container.
func (c *Container[K, P]) Begin() Iterator[P] {
	return c.at(c.tree.Leftmost())
}

// End returns the position past the largest element.
func (c *Container[K, P]) End() Iterator[P] {
	return c.at(c.tree.End())
}

// RBegin returns the position of the largest element, or REnd for an empty
// container.
func (c *Container[K, P]) RBegin() Iterator[P] {
	return c.at(c.tree.Rightmost())
}

// REnd returns the position before the smallest element. It is the same
// position as End.
func (c *Container[K, P]) REnd() Iterator[P] {
	return c.End()
}

// First returns the smallest element, if any.
func (c *Container[K, P]) First() g.Option[P] {
	if c.tree.IsEmpty() {
		return g.None[P]()
	}
	return g.Some(c.tree.Leftmost().Payload)
}

// Last returns the largest element, if any.
func (c *Container[K, P]) Last() g.Option[P] {
	if c.tree.IsEmpty() {
		return g.None[P]()
	}
	return g.Some(c.tree.Rightmost().Payload)
}

// All iterates over the elements in ascending key order.
func (c *Container[K, P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		t := c.tree
		for n := t.Leftmost(); !t.IsSentinel(n); n = t.Next(n) {
			if !yield(n.Payload) {
				return
			}
		}
	}
}

// Backward iterates over the elements in descending key order.
func (c *Container[K, P]) Backward() iter.Seq[P] {
	return func(yield func(P) bool) {
		t := c.tree
		for n := t.Rightmost(); !t.IsSentinel(n); n = t.Prev(n) {
			if !yield(n.Payload) {
				return
			}
		}
	}
}

// --- Size ------------------------------------------------------------------

// IsEmpty reports whether the container holds no elements.
func (c *Container[K, P]) IsEmpty() bool {
	return c.tree.IsEmpty()
}

// Len returns the number of elements.
func (c *Container[K, P]) Len() int {
	return c.tree.Len()
}

// MaxSize returns the largest number of elements a container may hold.
func (c *Container[K, P]) MaxSize() int {
	return math.MaxInt
}

// --- Mutation --------------------------------------------------------------

// Insert adds payload to the container.
//
// For unique-key containers, if an element with an equivalent key is already
// present, the container is left unchanged and Insert returns the position of
// the present element and false. Otherwise it returns the position of the new
// element and true. Multi-key containers always insert.
//
// If the allocator fails to provide a node, Insert returns End and the
// allocator's error, and the container is left unchanged.
func (c *Container[K, P]) Insert(payload P) (Iterator[P], bool, error) {
	n, err := c.alloc.Allocate()
	if err != nil {
		T().Errorf("ordmap: insert failed: %v", err)
		return c.End(), false, err
	}
	c.alloc.Construct(n, payload)
	pl := c.policy.InsertPosition(c.tree, c.policy.KeyOf(payload))
	if pl.Duplicate() {
		c.release(n)
		return c.at(pl.Existing), false, nil
	}
	c.tree.Attach(n, pl.Parent, pl.Left)
	return c.at(n), true, nil
}

// InsertRange inserts every payload of seq, in sequence order, and returns the
// number of elements added. It stops at the first allocation failure, keeping
// the elements inserted so far.
func (c *Container[K, P]) InsertRange(seq iter.Seq[P]) (int, error) {
	added := 0
	for p := range seq {
		_, ok, err := c.Insert(p)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Erase removes the element at pos and returns the position following it.
// All other positions stay valid.
func (c *Container[K, P]) Erase(pos Iterator[P]) (Iterator[P], error) {
	if err := c.checkPosition(pos); err != nil {
		T().Errorf("ordmap: erase: %v", err)
		return c.End(), err
	}
	next := c.tree.Next(pos.node)
	c.tree.Remove(pos.node)
	c.release(pos.node)
	return c.at(next), nil
}

// EraseKey removes every element with a key equivalent to key and returns the
// number of elements removed.
func (c *Container[K, P]) EraseKey(key K) int {
	first, last := c.policy.EqualRange(c.tree, key)
	return c.eraseNodes(first, last)
}

// EraseRange removes the elements from first up to, not including, last, and
// returns last. Both positions must belong to c and first must not come after
// last; otherwise nothing is removed and an error is returned.
func (c *Container[K, P]) EraseRange(first, last Iterator[P]) (Iterator[P], error) {
	if !c.owns(first) || !c.owns(last) {
		err := fmt.Errorf("%w: range does not belong to this container", ErrOutOfRange)
		T().Errorf("ordmap: erase range: %v", err)
		return c.End(), err
	}
	for _, pos := range [2]Iterator[P]{first, last} {
		if !pos.IsEnd() && pos.node.Detached() {
			err := fmt.Errorf("%w: range bound refers to an erased element", ErrOutOfRange)
			T().Errorf("ordmap: erase range: %v", err)
			return c.End(), err
		}
	}
	for n := first.node; n != last.node; n = c.tree.Next(n) {
		if c.tree.IsSentinel(n) {
			err := fmt.Errorf("%w: range end precedes range start", ErrOutOfRange)
			T().Errorf("ordmap: erase range: %v", err)
			return c.End(), err
		}
	}
	c.eraseNodes(first.node, last.node)
	return last, nil
}

func (c *Container[K, P]) eraseNodes(first, last *sentinel.Node[P]) int {
	erased := 0
	for n := first; n != last; {
		next := c.tree.Next(n)
		c.tree.Remove(n)
		c.release(n)
		n = next
		erased++
	}
	return erased
}

// Clear removes all elements. Every position of c, including End, becomes
// invalid.
func (c *Container[K, P]) Clear() {
	size := c.tree.Len()
	c.tree.Drain(c.release)
	c.tree = sentinel.New[P]()
	T().Debugf("ordmap: cleared %d elements", size)
}

// Swap exchanges the contents of c and other in constant time. Positions
// into either container, including End, are invalid afterwards.
func (c *Container[K, P]) Swap(other *Container[K, P]) {
	if other == nil || other == c {
		return
	}
	c.tree, other.tree = other.tree, c.tree
	T().Debugf("ordmap: swapped contents (%d <-> %d elements)", c.tree.Len(), other.tree.Len())
}

func (c *Container[K, P]) release(n *sentinel.Node[P]) {
	c.alloc.Destroy(n)
	c.alloc.Deallocate(n)
}

func (c *Container[K, P]) owns(pos Iterator[P]) bool {
	return pos.tree != nil && pos.tree == c.tree
}

func (c *Container[K, P]) checkPosition(pos Iterator[P]) error {
	if pos.tree != nil && !c.owns(pos) {
		return fmt.Errorf("%w: position belongs to another container", ErrOutOfRange)
	}
	return pos.check()
}

// --- Lookup ----------------------------------------------------------------

// Find returns the position of an element with a key equivalent to key, or
// End if there is none. For multi-key containers it is unspecified which of
// several equivalent elements is found.
func (c *Container[K, P]) Find(key K) Iterator[P] {
	return c.at(c.policy.Find(c.tree, key))
}

// Contains reports whether an element with a key equivalent to key is present.
func (c *Container[K, P]) Contains(key K) bool {
	return !c.tree.IsSentinel(c.policy.Find(c.tree, key))
}

// Count returns the number of elements with a key equivalent to key.
func (c *Container[K, P]) Count(key K) int {
	return c.policy.Count(c.tree, key)
}

// LowerBound returns the position of the first element whose key is not less
// than key, or End.
func (c *Container[K, P]) LowerBound(key K) Iterator[P] {
	return c.at(c.policy.LowerBound(c.tree, key))
}

// UpperBound returns the position of the first element whose key is greater
// than key, or End.
func (c *Container[K, P]) UpperBound(key K) Iterator[P] {
	return c.at(c.policy.UpperBound(c.tree, key))
}

// EqualRange returns the range [first, last) of elements with keys equivalent
// to key. The range is empty if first equals last.
func (c *Container[K, P]) EqualRange(key K) (first, last Iterator[P]) {
	f, l := c.policy.EqualRange(c.tree, key)
	return c.at(f), c.at(l)
}

// KeyComp returns the key ordering of the container.
func (c *Container[K, P]) KeyComp() compare.Less[K] {
	return c.policy.Less
}

// ValueComp returns an ordering of elements by their keys.
func (c *Container[K, P]) ValueComp() func(a, b P) bool {
	less, keyOf := c.policy.Less, c.policy.KeyOf
	return func(a, b P) bool {
		return less(keyOf(a), keyOf(b))
	}
}

// --- Diagnostics -----------------------------------------------------------

// Check validates the container's structure and element order. It walks the
// whole tree and is meant for tests and debugging.
func (c *Container[K, P]) Check() error {
	if err := c.tree.Check(); err != nil {
		return err
	}
	return c.policy.CheckOrder(c.tree)
}

// Height returns the number of nodes on the longest path from the root down.
func (c *Container[K, P]) Height() int {
	return c.tree.Height()
}
