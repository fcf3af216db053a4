package ordmap

import "fmt"

// Entry is a key/value pair, the element type of maps and multimaps.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

func entryKey[K, V any](e Entry[K, V]) K {
	return e.Key
}

func identity[K any](k K) K {
	return k
}
