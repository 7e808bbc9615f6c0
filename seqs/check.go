package seqs

import (
	"cmp"
	"iter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ordering predicates
//
// All four are pairwise-consecutive checks: true for sequences of length
// zero or one, and they short-circuit on the first violating pair. Each
// consumes its input up to the violation (fully, when the answer is true).
// ─────────────────────────────────────────────────────────────────────────────

func consecutivePairs[T any](seq iter.Seq[T], ok func(prev, cur T) bool) bool {
	first := true
	var prev T
	for v := range seq {
		if !first && !ok(prev, v) {
			return false
		}
		prev = v
		first = false
	}
	return true
}

// Increasing reports whether seq is strictly increasing.
func Increasing[T cmp.Ordered](seq iter.Seq[T]) bool {
	return consecutivePairs(seq, func(a, b T) bool { return a < b })
}

// Decreasing reports whether seq is strictly decreasing.
func Decreasing[T cmp.Ordered](seq iter.Seq[T]) bool {
	return consecutivePairs(seq, func(a, b T) bool { return a > b })
}

// NonDecreasing reports whether seq never decreases (equal neighbors allowed).
func NonDecreasing[T cmp.Ordered](seq iter.Seq[T]) bool {
	return consecutivePairs(seq, func(a, b T) bool { return a <= b })
}

// NonIncreasing reports whether seq never increases (equal neighbors allowed).
func NonIncreasing[T cmp.Ordered](seq iter.Seq[T]) bool {
	return consecutivePairs(seq, func(a, b T) bool { return a >= b })
}

// IncreasingFunc is [Increasing] with a caller-supplied comparison
// reporting negative, zero, or positive as in cmp.Compare.
func IncreasingFunc[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return consecutivePairs(seq, func(a, b T) bool { return compare(a, b) < 0 })
}

// DecreasingFunc is [Decreasing] with a caller-supplied comparison.
func DecreasingFunc[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return consecutivePairs(seq, func(a, b T) bool { return compare(a, b) > 0 })
}

// NonDecreasingFunc is [NonDecreasing] with a caller-supplied comparison.
func NonDecreasingFunc[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return consecutivePairs(seq, func(a, b T) bool { return compare(a, b) <= 0 })
}

// NonIncreasingFunc is [NonIncreasing] with a caller-supplied comparison.
func NonIncreasingFunc[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return consecutivePairs(seq, func(a, b T) bool { return compare(a, b) >= 0 })
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality predicates
// ─────────────────────────────────────────────────────────────────────────────

// AllEqual reports whether every element of seq equals the first one.
// True for an empty sequence.
func AllEqual[T comparable](seq iter.Seq[T]) bool {
	return AllEqualFunc(seq, func(a, b T) bool { return a == b })
}

// AllEqualFunc is [AllEqual] under a caller-supplied equality function.
// Each element is compared against the first; eq is never called for an
// empty or single-element sequence.
func AllEqualFunc[T any](seq iter.Seq[T], eq func(T, T) bool) bool {
	first := true
	var ref T
	for v := range seq {
		if first {
			ref = v
			first = false
			continue
		}
		if !eq(ref, v) {
			return false
		}
	}
	return true
}

// AllEqualSlice reports whether every element of items equals the first
// one, using a count-based scan over the random-access input. True for an
// empty slice.
func AllEqualSlice[T comparable](items []T) bool {
	if len(items) == 0 {
		return true
	}
	matching := 0
	for _, v := range items {
		if v == items[0] {
			matching++
		}
	}
	return matching == len(items)
}

// AllEqualSorted reports whether every element of seq has the same key,
// for input already grouped (e.g. sorted) by that key.
//
// Precondition: elements with equal keys must be adjacent in seq — pass the
// same key function that was used to sort it. The precondition is not
// verified; violating it silently produces a wrong answer, not an error.
// True for an empty sequence.
func AllEqualSorted[T any, K comparable](seq iter.Seq[T], key func(T) K) bool {
	first := true
	var ref K
	for v := range seq {
		k := key(v)
		if first {
			ref = k
			first = false
			continue
		}
		if k != ref {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Distinctness
// ─────────────────────────────────────────────────────────────────────────────

// AllDistinct reports whether no element of seq occurs twice, tracking
// seen elements incrementally in a set. O(n) time and space; true for an
// empty sequence. Consumes seq up to the first duplicate.
func AllDistinct[T comparable](seq iter.Seq[T]) bool {
	seen := make(map[T]struct{})
	for v := range seq {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// AllDistinctSlice is [AllDistinct] for random-access input: the known
// length sizes the set up front, avoiding rehashing on large inputs.
func AllDistinctSlice[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, v := range items {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// AllDistinctFunc is the fallback for element types without a hash
// contract (non-comparable types, or comparisons the == operator cannot
// express): seen elements are kept in a list and each new element is
// checked by linear scan, so the cost is O(n²) in the worst case.
// Correctness is preserved; only performance degrades.
func AllDistinctFunc[T any](seq iter.Seq[T], eq func(T, T) bool) bool {
	var seen []T
	for v := range seq {
		for _, s := range seen {
			if eq(s, v) {
				return false
			}
		}
		seen = append(seen, v)
	}
	return true
}
