package seqs

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Fan-out unzipping
//
// Unzip splits one sequence of rows into independently consumable column
// sequences. All columns share a single pull cursor over the input; each
// column keeps a FIFO buffer of the values it has not yet yielded, so one
// consumer can run ahead of another without data loss. When consumers
// advance at very different rates the laggard's buffer grows without bound
// — a memory hazard, not a correctness one.
// ─────────────────────────────────────────────────────────────────────────────

// Unzip is the inverse of zip: given a sequence of n-element rows it
// returns n lazy column sequences, the i-th yielding the i-th element of
// every row. The column count is taken from the first row; later rows are
// assumed to have the same width.
//
// The input may be infinite — each column is driven lazily on demand. An
// empty input yields a nil column slice. Each returned column is
// single-pass. The returned stop function releases the shared cursor and
// should be called once the columns are no longer needed.
//
//	cols, stop := seqs.Unzip(rows)
//	defer stop()
//	letters, numbers := cols[0], cols[1]
func Unzip[T any](rows iter.Seq[[]T]) ([]iter.Seq[T], func()) {
	next, stop := iter.Pull(rows)
	first, ok := next()
	if !ok {
		stop()
		return nil, func() {}
	}
	n := len(first)
	buffers := make([][]T, n)
	for i := 0; i < n && i < len(first); i++ {
		buffers[i] = append(buffers[i], first[i])
	}
	columns := make([]iter.Seq[T], n)
	for i := range columns {
		col := i
		columns[col] = func(yield func(T) bool) {
			for {
				for len(buffers[col]) > 0 {
					head := buffers[col][0]
					buffers[col] = buffers[col][1:]
					if !yield(head) {
						return
					}
				}
				row, ok := next()
				if !ok {
					return
				}
				for j := 0; j < n && j < len(row); j++ {
					buffers[j] = append(buffers[j], row[j])
				}
			}
		}
	}
	return columns, stop
}

// Unzip2 is the typed two-column form of [Unzip], splitting a sequence of
// [Pair] values into a First-sequence and a Second-sequence. The same
// shared-cursor buffering and single-pass contract apply.
func Unzip2[A, B any](seq iter.Seq[Pair[A, B]]) (iter.Seq[A], iter.Seq[B], func()) {
	next, stop := iter.Pull(seq)
	var firsts []A
	var seconds []B
	columnA := func(yield func(A) bool) {
		for {
			for len(firsts) > 0 {
				head := firsts[0]
				firsts = firsts[1:]
				if !yield(head) {
					return
				}
			}
			p, ok := next()
			if !ok {
				return
			}
			seconds = append(seconds, p.Second)
			if !yield(p.First) {
				return
			}
		}
	}
	columnB := func(yield func(B) bool) {
		for {
			for len(seconds) > 0 {
				head := seconds[0]
				seconds = seconds[1:]
				if !yield(head) {
					return
				}
			}
			p, ok := next()
			if !ok {
				return
			}
			firsts = append(firsts, p.First)
			if !yield(p.Second) {
				return
			}
		}
	}
	return columnA, columnB, stop
}

// UnzipFinite eagerly unzips a finite sequence of rows into column slices.
// The column count is the width of the narrowest row, mirroring a strict
// transposition. Returns nil for an empty input.
//
// Simpler and faster than [Unzip] when the input is known to be finite and
// the columns are wanted whole.
func UnzipFinite[T any](rows iter.Seq[[]T]) [][]T {
	var collected [][]T
	width := -1
	for row := range rows {
		if width < 0 || len(row) < width {
			width = len(row)
		}
		collected = append(collected, row)
	}
	if len(collected) == 0 || width <= 0 {
		return nil
	}
	columns := make([][]T, width)
	for i := range columns {
		column := make([]T, len(collected))
		for j, row := range collected {
			column[j] = row[i]
		}
		columns[i] = column
	}
	return columns
}

// UnzipLongestFinite eagerly unzips a finite sequence of rows produced by a
// longest-wins zip: the column count is the width of the widest row, and
// trailing fill values — the padding a longest-zip appends once a shorter
// input is exhausted — are stripped from the end of each column. Fill
// values occurring before genuine data are kept.
//
// Returns nil for an empty input.
func UnzipLongestFinite[T comparable](rows iter.Seq[[]T], fill T) [][]T {
	var collected [][]T
	width := 0
	for row := range rows {
		if len(row) > width {
			width = len(row)
		}
		collected = append(collected, row)
	}
	if len(collected) == 0 || width == 0 {
		return nil
	}
	columns := make([][]T, width)
	for i := range columns {
		column := make([]T, 0, len(collected))
		for _, row := range collected {
			if i < len(row) {
				column = append(column, row[i])
			}
		}
		for len(column) > 0 && column[len(column)-1] == fill {
			column = column[:len(column)-1]
		}
		columns[i] = column
	}
	return columns
}
