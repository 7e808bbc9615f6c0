package mapx

import (
	"iter"
	"slices"
)

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Updating an existing key keeps its position, unless the map
// was built with [NewLastUpdated], in which case every update moves the
// key to the end — the iteration order then runs from least to most
// recently written.
//
// The zero value is not usable; construct with [NewOrderedMap] or
// [NewLastUpdated]. Not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys         []K
	items        map[K]V
	trackUpdates bool
}

// NewOrderedMap returns an empty insertion-ordered map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{items: make(map[K]V)}
}

// NewLastUpdated returns an empty ordered map with most-recently-updated-
// last semantics: writes to an existing key move it to the end.
func NewLastUpdated[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{items: make(map[K]V), trackUpdates: true}
}

// Set stores value under key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	_, exists := m.items[key]
	m.items[key] = value
	if !exists {
		m.keys = append(m.keys, key)
		return
	}
	if m.trackUpdates {
		if i := slices.Index(m.keys, key); i >= 0 {
			m.keys = append(slices.Delete(m.keys, i, i+1), key)
		}
	}
}

// Get returns the value stored under key and whether the key is present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Delete removes key, reporting whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.items)
}

// Keys returns the keys in map order as a new slice.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in map order as a new slice.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.items[k]
	}
	return out
}

// All returns the entries as an ordered, restartable item stream, the
// natural feeder for the order-sensitive inversion functions.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}
