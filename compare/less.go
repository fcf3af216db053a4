package compare

import (
	"cmp"

	"github.com/anacrolix/multiless"
)

// Less reports whether a is ordered before b. Implementations must be a strict
// weak ordering.
type Less[K any] func(a, b K) bool

// Ordered returns the natural ordering of an ordered type.
func Ordered[K cmp.Ordered]() Less[K] {
	return cmp.Less[K]
}

// FromCompare adapts a three-way comparison function, returning a negative
// number, zero or a positive number, to a Less function.
func FromCompare[K any](compare func(a, b K) int) Less[K] {
	return func(a, b K) bool {
		return compare(a, b) < 0
	}
}

// Reverse returns the inverse ordering of less.
func Reverse[K any](less Less[K]) Less[K] {
	return func(a, b K) bool {
		return less(b, a)
	}
}

// Chain orders keys lexicographically by a sequence of three-way comparisons:
// the first comparison which differentiates two keys decides.
func Chain[K any](compares ...func(a, b K) int) Less[K] {
	return func(a, b K) bool {
		ml := multiless.New()
		for _, c := range compares {
			ml = ml.Cmp(c(a, b))
			if _, ok := ml.LessOk(); ok {
				break
			}
		}
		return ml.Less()
	}
}

// Equivalent reports whether neither a nor b is ordered before the other.
func (less Less[K]) Equivalent(a, b K) bool {
	return !less(a, b) && !less(b, a)
}

// Compare returns -1 if a is ordered before b, +1 if b is ordered before a,
// and 0 for equivalent keys.
func (less Less[K]) Compare(a, b K) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	}
	return 0
}
