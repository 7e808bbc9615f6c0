package mapx

import (
	"cmp"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional queries over mapping values
//
// The mapping counterparts of the index-returning slice functions in
// package seqs: these operate over a map's values and answer with keys.
// ─────────────────────────────────────────────────────────────────────────────

// ArgMin returns the key whose value is smallest. The second result is
// false when m is empty. When several keys share the minimum value, which
// one is returned is unspecified.
func ArgMin[K comparable, V cmp.Ordered](m map[K]V) (K, bool) {
	return ArgMinFunc(m, cmp.Compare[V])
}

// ArgMinFunc is [ArgMin] with a caller-supplied comparison over values.
func ArgMinFunc[K comparable, V any](m map[K]V, compare func(V, V) int) (K, bool) {
	var bestKey K
	var bestVal V
	found := false
	for k, v := range m {
		if !found || compare(v, bestVal) < 0 {
			bestKey, bestVal = k, v
			found = true
		}
	}
	return bestKey, found
}

// ArgMax returns the key whose value is largest. The second result is
// false when m is empty. Ties are unspecified, as in [ArgMin].
func ArgMax[K comparable, V cmp.Ordered](m map[K]V) (K, bool) {
	return ArgMaxFunc(m, cmp.Compare[V])
}

// ArgMaxFunc is [ArgMax] with a caller-supplied comparison over values.
func ArgMaxFunc[K comparable, V any](m map[K]V, compare func(V, V) int) (K, bool) {
	var bestKey K
	var bestVal V
	found := false
	for k, v := range m {
		if !found || compare(v, bestVal) > 0 {
			bestKey, bestVal = k, v
			found = true
		}
	}
	return bestKey, found
}

// ArgSort returns the keys of m ordered by ascending value:
//
//	weights := map[string]int{"a": 3, "b": 1, "c": 2}
//	mapx.ArgSort(weights) // ["b", "c", "a"]
//
// The relative order of keys with equal values is unspecified.
func ArgSort[K comparable, V cmp.Ordered](m map[K]V) []K {
	return ArgSortFunc(m, cmp.Compare[V])
}

// ArgSortFunc is [ArgSort] with a caller-supplied comparison over values.
func ArgSortFunc[K comparable, V any](m map[K]V, compare func(V, V) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return compare(m[a], m[b])
	})
	return keys
}
