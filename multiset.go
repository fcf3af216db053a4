package ordmap

import (
	"cmp"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/search"
)

// MultiSet is an ordered collection of keys which may contain a key more than
// once.
type MultiSet[K any] struct {
	Container[K, K]
}

// NewMultiSet creates an empty multiset. cfg.Less is required.
func NewMultiSet[K any](cfg Config[K, K]) (*MultiSet[K], error) {
	s := &MultiSet[K]{}
	if err := s.init(cfg, identity[K], search.Multi); err != nil {
		return nil, err
	}
	return s, nil
}

// MultiSetOf creates a multiset for a naturally ordered key type, holding keys.
func MultiSetOf[K cmp.Ordered](keys ...K) *MultiSet[K] {
	s, err := NewMultiSet(Config[K, K]{Less: compare.Ordered[K]()})
	if err != nil {
		panic(err)
	}
	for _, k := range keys {
		if _, err := s.Add(k); err != nil {
			panic(err)
		}
	}
	return s
}

// Add inserts key and returns its position.
func (s *MultiSet[K]) Add(key K) (Iterator[K], error) {
	pos, _, err := s.Insert(key)
	return pos, err
}

// Remove deletes all occurrences of key and returns how many there were.
func (s *MultiSet[K]) Remove(key K) int {
	return s.EraseKey(key)
}

// Swap exchanges the contents of s and other.
func (s *MultiSet[K]) Swap(other *MultiSet[K]) {
	s.Container.Swap(&other.Container)
}
