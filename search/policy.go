package search

import (
	"fmt"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/sentinel"
)

// Mode selects how a policy treats duplicate keys.
type Mode int

const (
	// Unique rejects a key which is already present.
	Unique Mode = iota
	// Multi accepts duplicate keys. Equivalent keys are kept contiguous, in
	// insertion order.
	Multi
)

func (m Mode) String() string {
	switch m {
	case Unique:
		return "unique"
	case Multi:
		return "multi"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Policy locates keys of type K in a tree with payloads of type P.
type Policy[K, P any] struct {
	// KeyOf extracts the key from a payload.
	KeyOf func(P) K
	// Less orders keys.
	Less compare.Less[K]
	// Mode decides about duplicate keys.
	Mode Mode
}

// Placement is the outcome of InsertPosition.
//
// If Existing is non-nil, the key is already present in a Unique tree and
// nothing must be attached. Otherwise a new node is to be attached below Parent,
// as its left child if Left is set. For an empty tree Parent is the header.
type Placement[P any] struct {
	Parent   *sentinel.Node[P]
	Left     bool
	Existing *sentinel.Node[P]
}

// Duplicate reports whether the placement found an existing node.
func (pl Placement[P]) Duplicate() bool {
	return pl.Existing != nil
}

func (p Policy[K, P]) key(n *sentinel.Node[P]) K {
	return p.KeyOf(n.Payload)
}

// Find descends from the root and returns the first node whose key is
// equivalent to key, or the header if there is none.
//
// For a Multi tree the node returned may be any member of the run of
// equivalent keys; use LowerBound for the first one.
func (p Policy[K, P]) Find(t *sentinel.Tree[P], key K) *sentinel.Node[P] {
	if t.IsEmpty() {
		return t.End()
	}
	for x := t.Root(); x != nil; {
		switch k := p.key(x); {
		case p.Less(key, k):
			x = t.Left(x)
		case p.Less(k, key):
			x = t.Right(x)
		default:
			return x
		}
	}
	return t.End()
}

// InsertPosition computes where a node with key would be attached.
//
// In Unique mode an equivalent key met during the descent ends the search and is
// reported as Existing. In Multi mode equivalent keys send the descent to the
// right, so that a new node lands behind all nodes with an equivalent key.
func (p Policy[K, P]) InsertPosition(t *sentinel.Tree[P], key K) Placement[P] {
	pl := Placement[P]{Parent: t.End()}
	for x := t.Root(); x != nil && !t.IsSentinel(x); {
		pl.Parent = x
		k := p.key(x)
		if p.Less(key, k) {
			pl.Left = true
			x = t.Left(x)
			continue
		}
		if p.Mode == Unique && !p.Less(k, key) {
			return Placement[P]{Existing: x}
		}
		pl.Left = false
		x = t.Right(x)
	}
	return pl
}

// LowerBound returns the first node whose key is not less than key, or the
// header if there is none.
func (p Policy[K, P]) LowerBound(t *sentinel.Tree[P], key K) *sentinel.Node[P] {
	bound := t.End()
	if t.IsEmpty() {
		return bound
	}
	for x := t.Root(); x != nil; {
		if !p.Less(p.key(x), key) {
			bound = x
			x = t.Left(x)
		} else {
			x = t.Right(x)
		}
	}
	return bound
}

// UpperBound returns the first node whose key is greater than key, or the
// header if there is none.
func (p Policy[K, P]) UpperBound(t *sentinel.Tree[P], key K) *sentinel.Node[P] {
	bound := t.End()
	if t.IsEmpty() {
		return bound
	}
	for x := t.Root(); x != nil; {
		if p.Less(key, p.key(x)) {
			bound = x
			x = t.Left(x)
		} else {
			x = t.Right(x)
		}
	}
	return bound
}

// EqualRange returns the half-open range [first, last) of nodes with keys
// equivalent to key. For a missing key first == last.
func (p Policy[K, P]) EqualRange(t *sentinel.Tree[P], key K) (first, last *sentinel.Node[P]) {
	first = p.LowerBound(t, key)
	last = first
	for last != t.End() && !p.Less(key, p.key(last)) {
		last = t.Next(last)
	}
	return first, last
}

// Count returns the number of nodes with keys equivalent to key.
func (p Policy[K, P]) Count(t *sentinel.Tree[P], key K) int {
	first, last := p.EqualRange(t, key)
	count := 0
	for n := first; n != last; n = t.Next(n) {
		count++
	}
	return count
}

// CheckOrder verifies that an in-order walk yields non-decreasing keys, and
// strictly increasing keys for a Unique policy.
func (p Policy[K, P]) CheckOrder(t *sentinel.Tree[P]) error {
	var prev *sentinel.Node[P]
	var err error
	seen := 0
	t.ForEach(func(n *sentinel.Node[P]) bool {
		seen++
		if prev != nil {
			pk, k := p.key(prev), p.key(n)
			if p.Less(k, pk) {
				err = fmt.Errorf("%w: keys out of order at position %d", sentinel.ErrInvariant, seen-1)
				return false
			}
			if p.Mode == Unique && !p.Less(pk, k) {
				err = fmt.Errorf("%w: duplicate key in unique tree at position %d", sentinel.ErrInvariant, seen-1)
				return false
			}
		}
		prev = n
		return true
	})
	if err == nil && seen != t.Len() {
		err = fmt.Errorf("%w: in-order walk saw %d of %d nodes", sentinel.ErrInvariant, seen, t.Len())
	}
	return err
}
