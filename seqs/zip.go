package seqs

import (
	"fmt"
	"iter"
)

// ─────────────────────────────────────────────────────────────────────────────
// Strict zipping
// ─────────────────────────────────────────────────────────────────────────────

// ZipStrict zips an arbitrary number of sequences into aligned rows, one
// []T per position, requiring every input to have the same length.
//
// The mismatch check is eager: as soon as any input is exhausted while
// another still has elements, the sequence yields (nil, [ErrUnequalLengths])
// and stops. Every row yielded before that point is fully valid — a partial
// row is never produced.
//
// Zero input sequences produce an empty result. Lazy; safe to stop early.
//
//	for row, err := range seqs.ZipStrict(a, b, c) {
//	    if err != nil {
//	        // a, b, c differ in length
//	    }
//	    // row[0], row[1], row[2] are aligned
//	}
func ZipStrict[T any](sequences ...iter.Seq[T]) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		if len(sequences) == 0 {
			return
		}
		next := make([]func() (T, bool), len(sequences))
		for i, seq := range sequences {
			pull, stop := iter.Pull(seq)
			defer stop()
			next[i] = pull
		}
		for {
			row := make([]T, len(next))
			exhausted := 0
			for i, pull := range next {
				v, ok := pull()
				if !ok {
					exhausted++
					continue
				}
				row[i] = v
			}
			if exhausted == len(next) {
				return
			}
			if exhausted > 0 {
				yield(nil, fmt.Errorf("zip strict: %w", ErrUnequalLengths))
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// ZipStrict2 is the typed two-sequence form of [ZipStrict]: it yields one
// [Pair] per aligned position and yields a zero Pair with
// [ErrUnequalLengths] the moment one input runs dry before the other.
func ZipStrict2[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[Pair[A, B], error] {
	return func(yield func(Pair[A, B], error) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for {
			va, okA := nextA()
			vb, okB := nextB()
			if !okA && !okB {
				return
			}
			if okA != okB {
				var zero Pair[A, B]
				yield(zero, fmt.Errorf("zip strict: %w", ErrUnequalLengths))
				return
			}
			if !yield(Pair[A, B]{First: va, Second: vb}, nil) {
				return
			}
		}
	}
}
