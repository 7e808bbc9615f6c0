package seqs

import (
	"cmp"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional queries
//
// These operate on slices because they answer "where", not "what" — the
// answer is an index, which only makes sense with random access. The
// key-returning forms for maps live in package mapx.
// ─────────────────────────────────────────────────────────────────────────────

// ArgMin returns the index of the smallest element. The second result is
// false when items is empty. Ties resolve to the earliest index.
func ArgMin[E cmp.Ordered](items []E) (int, bool) {
	return ArgMinFunc(items, cmp.Compare[E])
}

// ArgMinFunc is [ArgMin] with a caller-supplied comparison.
func ArgMinFunc[E any](items []E, compare func(E, E) int) (int, bool) {
	if len(items) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[best]) < 0 {
			best = i
		}
	}
	return best, true
}

// ArgMax returns the index of the largest element. The second result is
// false when items is empty. Ties resolve to the earliest index.
func ArgMax[E cmp.Ordered](items []E) (int, bool) {
	return ArgMaxFunc(items, cmp.Compare[E])
}

// ArgMaxFunc is [ArgMax] with a caller-supplied comparison.
func ArgMaxFunc[E any](items []E, compare func(E, E) int) (int, bool) {
	if len(items) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[best]) > 0 {
			best = i
		}
	}
	return best, true
}

// ArgSort returns the indices of items in ascending sorted order, so that
// indexing items by the result reproduces a sort:
//
//	order := seqs.ArgSort(items)
//	for _, i := range order {
//	    fmt.Println(items[i]) // sorted
//	}
//
// items itself is not modified.
func ArgSort[E cmp.Ordered](items []E) []int {
	return ArgSortFunc(items, cmp.Compare[E])
}

// ArgSortFunc is [ArgSort] with a caller-supplied comparison. The sort is
// stable: equal elements keep their original relative order.
func ArgSortFunc[E any](items []E, compare func(E, E) int) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return compare(items[a], items[b])
	})
	return order
}
