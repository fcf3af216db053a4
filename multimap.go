package ordmap

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/search"
)

// MultiMap is an ordered map which may hold several entries per key. Entries
// with equivalent keys are kept in insertion order.
type MultiMap[K, V any] struct {
	Container[K, Entry[K, V]]
}

// NewMultiMap creates an empty multimap. cfg.Less is required.
func NewMultiMap[K, V any](cfg Config[K, Entry[K, V]]) (*MultiMap[K, V], error) {
	m := &MultiMap[K, V]{}
	if err := m.init(cfg, entryKey[K, V], search.Multi); err != nil {
		return nil, err
	}
	return m, nil
}

// MultiMapOf creates an empty multimap for a naturally ordered key type.
func MultiMapOf[K cmp.Ordered, V any]() *MultiMap[K, V] {
	m, err := NewMultiMap[K, V](Config[K, Entry[K, V]]{Less: compare.Ordered[K]()})
	if err != nil {
		panic(err)
	}
	return m
}

// Put adds an entry and returns its position.
func (m *MultiMap[K, V]) Put(key K, value V) (Iterator[Entry[K, V]], error) {
	pos, _, err := m.Insert(Entry[K, V]{Key: key, Value: value})
	return pos, err
}

// ValuesOf iterates over the values stored for key, in insertion order.
func (m *MultiMap[K, V]) ValuesOf(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		first, last := m.EqualRange(key)
		for pos := first; !pos.Equal(last); pos = pos.Next() {
			if !yield(pos.node.Payload.Value) {
				return
			}
		}
	}
}

// Delete removes all entries for key and returns how many there were.
func (m *MultiMap[K, V]) Delete(key K) int {
	return m.EraseKey(key)
}

// Swap exchanges the contents of m and other.
func (m *MultiMap[K, V]) Swap(other *MultiMap[K, V]) {
	m.Container.Swap(&other.Container)
}
