package seqs

import (
	"cmp"
	"fmt"
	"iter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregate queries
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in seq, consuming it fully. O(n).
//
// Will not return when given an infinite sequence. For slices and other
// random-access inputs, use the built-in len instead.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// MinMax returns both the minimum and maximum element of seq in a single
// pass, using a pairwise tournament: elements are taken two at a time,
// ordered against each other first, and only then against the running
// extremes — three comparisons per two elements instead of four.
//
// Returns [ErrEmptyInput] for an empty sequence. Consumes seq fully; will
// not return on infinite input.
func MinMax[T cmp.Ordered](seq iter.Seq[T]) (T, T, error) {
	return MinMaxFunc(seq, cmp.Compare[T])
}

// MinMaxFunc is [MinMax] with a caller-supplied comparison reporting
// negative, zero, or positive as in cmp.Compare. Use it when the element
// ordering is expensive enough that the single pass matters.
func MinMaxFunc[T any](seq iter.Seq[T], compare func(T, T) int) (T, T, error) {
	next, stop := iter.Pull(seq)
	defer stop()

	lo, ok := next()
	if !ok {
		var zero T
		return zero, zero, fmt.Errorf("minmax: %w", ErrEmptyInput)
	}
	hi := lo
	for {
		x, okX := next()
		if !okX {
			return lo, hi, nil
		}
		y, okY := next()
		if !okY {
			y = x
		}
		if compare(x, y) > 0 {
			x, y = y, x
		}
		if compare(x, lo) < 0 {
			lo = x
		}
		if compare(y, hi) > 0 {
			hi = y
		}
		if !okY {
			return lo, hi, nil
		}
	}
}

// CountTrue returns the number of elements satisfying pred. Consumes seq
// fully; will not return on infinite input.
func CountTrue[T any](seq iter.Seq[T], pred func(T) bool) int {
	n := 0
	for v := range seq {
		if pred(v) {
			n++
		}
	}
	return n
}
