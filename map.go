package ordmap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/search"
)

// Map is an ordered map with unique keys.
type Map[K, V any] struct {
	Container[K, Entry[K, V]]
}

// NewMap creates an empty map. cfg.Less is required.
func NewMap[K, V any](cfg Config[K, Entry[K, V]]) (*Map[K, V], error) {
	m := &Map[K, V]{}
	if err := m.init(cfg, entryKey[K, V], search.Unique); err != nil {
		return nil, err
	}
	return m, nil
}

// MapOf creates an empty map for a naturally ordered key type.
func MapOf[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMap[K, V](Config[K, Entry[K, V]]{Less: compare.Ordered[K]()})
	if err != nil {
		panic(err)
	}
	return m
}

// Put inserts key with value unless key is already present. It returns the
// position of the entry for key and whether it has been inserted. A present
// entry keeps its value.
func (m *Map[K, V]) Put(key K, value V) (Iterator[Entry[K, V]], bool, error) {
	return m.Insert(Entry[K, V]{Key: key, Value: value})
}

// Set associates value with key, replacing a present value.
func (m *Map[K, V]) Set(key K, value V) error {
	if pos := m.Find(key); !pos.IsEnd() {
		pos.node.Payload.Value = value
		return nil
	}
	_, _, err := m.Put(key, value)
	return err
}

// Get returns the value for key and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	pos := m.Find(key)
	if pos.IsEnd() {
		var zero V
		return zero, false
	}
	return pos.node.Payload.Value, true
}

// At returns the value for key, or an error matching ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Delete removes the entry for key and reports whether there was one.
func (m *Map[K, V]) Delete(key K) bool {
	return m.EraseKey(key) > 0
}

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates over the values in ascending order of their keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Entries iterates over keys and values in ascending key order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Swap exchanges the contents of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.Container.Swap(&other.Container)
}
