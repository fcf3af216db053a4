package ordmap

import (
	"cmp"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/search"
)

// Set is an ordered set of keys.
type Set[K any] struct {
	Container[K, K]
}

// NewSet creates an empty set. cfg.Less is required.
func NewSet[K any](cfg Config[K, K]) (*Set[K], error) {
	s := &Set[K]{}
	if err := s.init(cfg, identity[K], search.Unique); err != nil {
		return nil, err
	}
	return s, nil
}

// SetOf creates a set for a naturally ordered key type, holding keys.
func SetOf[K cmp.Ordered](keys ...K) *Set[K] {
	s, err := NewSet(Config[K, K]{Less: compare.Ordered[K]()})
	if err != nil {
		panic(err)
	}
	for _, k := range keys {
		if _, _, err := s.Add(k); err != nil {
			panic(err)
		}
	}
	return s
}

// Add inserts key unless it is present. It returns the position of key in the
// set and whether it has been inserted.
func (s *Set[K]) Add(key K) (Iterator[K], bool, error) {
	return s.Insert(key)
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.EraseKey(key) > 0
}

// Swap exchanges the contents of s and other.
func (s *Set[K]) Swap(other *Set[K]) {
	s.Container.Swap(&other.Container)
}
