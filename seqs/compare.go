package seqs

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Multi-sequence comparison
//
// All three comparisons require at least two input sequences and consume
// any lazily-evaluated input as far as needed to decide (fully, when the
// answer is true). None of them terminates on infinite input.
// ─────────────────────────────────────────────────────────────────────────────

// SameItems reports whether all sequences contain the same elements with
// the same multiplicities, ignoring order. Multiset comparison by counting.
//
// Returns [ErrTooFewSequences] given fewer than two sequences.
//
//	seqs.SameItems(of(1, 2, 2, 3), of(3, 2, 1, 2)) // true
//	seqs.SameItems(of(1, 2), of(1, 2, 3))          // false
func SameItems[T comparable](sequences ...iter.Seq[T]) (bool, error) {
	if len(sequences) < 2 {
		return false, fmt.Errorf("same items: got %d sequences: %w", len(sequences), ErrTooFewSequences)
	}
	reference := multiset(sequences[0])
	for _, seq := range sequences[1:] {
		if !maps.Equal(reference, multiset(seq)) {
			return false, nil
		}
	}
	return true, nil
}

func multiset[T comparable](seq iter.Seq[T]) map[T]int {
	counts := make(map[T]int)
	for v := range seq {
		counts[v]++
	}
	return counts
}

// SameItemsFunc is [SameItems] for elements without a hash contract,
// under a caller-supplied equality function. Each sequence is matched
// against the first by pairwise removal, which is O(n·m) per sequence —
// use [SameItems] whenever the elements are comparable.
func SameItemsFunc[T any](eq func(T, T) bool, sequences ...iter.Seq[T]) (bool, error) {
	if len(sequences) < 2 {
		return false, fmt.Errorf("same items: got %d sequences: %w", len(sequences), ErrTooFewSequences)
	}
	reference := slices.Collect(sequences[0])
	for _, seq := range sequences[1:] {
		unmatched := slices.Clone(reference)
		for v := range seq {
			i := slices.IndexFunc(unmatched, func(u T) bool { return eq(u, v) })
			if i < 0 {
				return false, nil
			}
			unmatched = slices.Delete(unmatched, i, i+1)
		}
		if len(unmatched) > 0 {
			return false, nil
		}
	}
	return true, nil
}

// SameOrderedItems reports whether all sequences contain equal elements at
// every position. Any length mismatch — detected through the pull-cursor
// presence flags, so a missing position can never be mistaken for a value —
// makes the result false. The per-position check reuses [AllEqualSlice].
//
// Returns [ErrTooFewSequences] given fewer than two sequences.
func SameOrderedItems[T comparable](sequences ...iter.Seq[T]) (bool, error) {
	if len(sequences) < 2 {
		return false, fmt.Errorf("same ordered items: got %d sequences: %w", len(sequences), ErrTooFewSequences)
	}
	next := make([]func() (T, bool), len(sequences))
	for i, seq := range sequences {
		pull, stop := iter.Pull(seq)
		defer stop()
		next[i] = pull
	}
	for {
		row := make([]T, 0, len(next))
		present := 0
		for _, pull := range next {
			v, ok := pull()
			if !ok {
				continue
			}
			present++
			row = append(row, v)
		}
		if present == 0 {
			return true, nil
		}
		if present < len(next) || !AllEqualSlice(row) {
			return false, nil
		}
	}
}
