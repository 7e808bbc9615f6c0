package seqs

import "iter"

// Peek returns the first element of seq without losing it: the returned
// remainder re-yields the peeked element followed by everything after it.
// The third result is false when seq is empty (the remainder is then an
// empty sequence).
//
// The remainder shares a cursor with the original sequence and is
// single-pass; do not consume seq directly after peeking it.
func Peek[T any](seq iter.Seq[T]) (T, iter.Seq[T], bool) {
	next, stop := iter.Pull(seq)
	first, ok := next()
	if !ok {
		stop()
		var zero T
		return zero, func(func(T) bool) {}, false
	}
	rest := func(yield func(T) bool) {
		defer stop()
		if !yield(first) {
			return
		}
		for {
			v, ok := next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
	return first, rest, true
}

// Drain consumes seq fully, discarding every element. Used to run a lazy
// pipeline purely for its traversal. Will not return on infinite input.
func Drain[T any](seq iter.Seq[T]) {
	for range seq {
	}
}
