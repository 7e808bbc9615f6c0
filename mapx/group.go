package mapx

import (
	"cmp"
	"iter"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping and item streams
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key extracted by fn, preserving the input
// order within each group.
//
//	byDept := mapx.GroupBy(employees, func(e Employee) string { return e.Dept })
func GroupBy[T any, K comparable](items []T, by func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := by(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy builds a map keyed by the value extracted by fn. When multiple
// items share a key, the last one in input order wins.
func KeyBy[T any, K comparable](items []T, by func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[by(item)] = item
	}
	return out
}

// CountBy counts items per key extracted by fn.
func CountBy[T any, K comparable](items []T, by func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[by(item)]++
	}
	return out
}

// SortedItems returns the entries of m as a stream ordered by ascending
// key. It is the deterministic feeder for the order-sensitive inversion
// functions when no [OrderedMap] is at hand. The stream is restartable.
func SortedItems[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
