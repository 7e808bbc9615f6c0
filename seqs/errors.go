package seqs

import "errors"

// Sentinel errors returned by seqs operations.
var (
	// ErrUnequalLengths is returned (or yielded, by lazy functions) when
	// an operation requires equal-length sequences and the inputs differ.
	ErrUnequalLengths = errors.New("seqs: sequences have unequal lengths")

	// ErrEmptyInput is returned when an operation requires at least one
	// element but the sequence is empty.
	ErrEmptyInput = errors.New("seqs: empty sequence")

	// ErrTooFewSequences is returned by multi-sequence comparisons given
	// fewer than two input sequences.
	ErrTooFewSequences = errors.New("seqs: at least two sequences required")
)
