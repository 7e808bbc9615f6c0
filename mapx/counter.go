package mapx

import (
	"cmp"
	"iter"
	"slices"
)

// Counter is an insertion-ordered counting map: keys keep the position of
// their first occurrence regardless of how often they are counted again.
//
// Not safe for concurrent use.
type Counter[K comparable] struct {
	inner *OrderedMap[K, int]
}

// Count pairs a counted key with its tally; element type of [Counter.MostCommon]
// and [Counter.LeastCommon].
type Count[K comparable] struct {
	Key K
	N   int
}

// NewCounter returns a Counter primed with the given items, each counted
// once in order.
func NewCounter[K comparable](items ...K) *Counter[K] {
	c := &Counter[K]{inner: NewOrderedMap[K, int]()}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add counts key once.
func (c *Counter[K]) Add(key K) {
	c.AddN(key, 1)
}

// AddN counts key n times; n may be negative.
func (c *Counter[K]) AddN(key K, n int) {
	cur, _ := c.inner.Get(key)
	c.inner.Set(key, cur+n)
}

// Get returns the tally for key; zero when the key was never counted.
func (c *Counter[K]) Get(key K) int {
	n, _ := c.inner.Get(key)
	return n
}

// Len returns the number of distinct keys counted.
func (c *Counter[K]) Len() int {
	return c.inner.Len()
}

// Total returns the sum of all tallies.
func (c *Counter[K]) Total() int {
	total := 0
	for _, n := range c.inner.Values() {
		total += n
	}
	return total
}

// All returns the entries in first-seen order as a restartable stream.
func (c *Counter[K]) All() iter.Seq2[K, int] {
	return c.inner.All()
}

// MostCommon returns the n highest-tallied entries, descending; ties keep
// first-seen order. n <= 0 or n beyond the distinct-key count returns all
// entries.
func (c *Counter[K]) MostCommon(n int) []Count[K] {
	return c.ranked(n, func(a, b Count[K]) int { return cmp.Compare(b.N, a.N) })
}

// LeastCommon returns the n lowest-tallied entries, ascending; ties keep
// first-seen order.
func (c *Counter[K]) LeastCommon(n int) []Count[K] {
	return c.ranked(n, func(a, b Count[K]) int { return cmp.Compare(a.N, b.N) })
}

func (c *Counter[K]) ranked(n int, compare func(Count[K], Count[K]) int) []Count[K] {
	entries := make([]Count[K], 0, c.inner.Len())
	for k, tally := range c.inner.All() {
		entries = append(entries, Count[K]{Key: k, N: tally})
	}
	slices.SortStableFunc(entries, compare)
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
