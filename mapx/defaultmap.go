package mapx

import "iter"

// DefaultMap is an insertion-ordered map that manufactures a value on
// first access to a missing key, stores it, and returns it — so the key
// takes its place in the order at the moment it is first touched.
//
// Not safe for concurrent use.
type DefaultMap[K comparable, V any] struct {
	inner   *OrderedMap[K, V]
	factory func() V
}

// NewDefaultMap returns an empty DefaultMap whose missing keys are filled
// by factory. A nil factory panics on the first missing-key access.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{inner: NewOrderedMap[K, V](), factory: factory}
}

// Get returns the value under key, creating and storing factory() when
// the key is absent.
func (m *DefaultMap[K, V]) Get(key K) V {
	if v, ok := m.inner.Get(key); ok {
		return v
	}
	v := m.factory()
	m.inner.Set(key, v)
	return v
}

// Peek returns the value under key without vivifying it; the second
// result is false when the key is absent.
func (m *DefaultMap[K, V]) Peek(key K) (V, bool) {
	return m.inner.Get(key)
}

// Set stores value under key.
func (m *DefaultMap[K, V]) Set(key K, value V) {
	m.inner.Set(key, value)
}

// Delete removes key, reporting whether it was present.
func (m *DefaultMap[K, V]) Delete(key K) bool {
	return m.inner.Delete(key)
}

// Len returns the number of entries.
func (m *DefaultMap[K, V]) Len() int {
	return m.inner.Len()
}

// Keys returns the keys in insertion order as a new slice.
func (m *DefaultMap[K, V]) Keys() []K {
	return m.inner.Keys()
}

// All returns the entries as an ordered, restartable item stream.
func (m *DefaultMap[K, V]) All() iter.Seq2[K, V] {
	return m.inner.All()
}
