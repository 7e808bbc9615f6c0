// Package seqs provides generic, stateless algorithms over lazy sequences
// built on Go 1.23 iterators (iter.Seq), plus slice entry points for the
// operations that need random access.
//
// # Laziness
//
// Sequence-returning functions are lazy: the caller drives consumption and
// nothing is computed ahead of demand, so infinite sequences are supported
// wherever a function documents it. Aggregating functions ([Len], [MinMax],
// [SameItems], ...) consume their input fully and will not return when
// given an infinite sequence — each such function documents the hazard.
//
// Unless stated otherwise, a sequence produced by this package is
// single-pass: once consumed, it is exhausted.
//
// # Strict zipping and fan-out
//
//	letters := slices.Values([]string{"a", "b", "c"})
//	numbers := slices.Values([]int{1, 2, 3})
//	for p, err := range seqs.ZipStrict2(letters, numbers) {
//	    if err != nil {
//	        // the inputs had different lengths
//	    }
//	    fmt.Println(p.First, p.Second)
//	}
//
// [ZipStrict] and [ZipStrict2] report a length mismatch in-band, as the
// error half of an iter.Seq2 pair, the moment one input runs dry — the
// caller only ever sees fully valid rows before the error. [Unzip] is the
// inverse: it fans a sequence of rows out into independently consumable
// column sequences backed by a shared cursor, which works for infinite
// input at the cost of buffering when consumers advance at different rates.
//
// # Errors
//
// Contract violations are reported through the package sentinel errors
// ([ErrUnequalLengths], [ErrEmptyInput], [ErrTooFewSequences]); test for
// them with errors.Is. Failures raised by caller-supplied comparison or
// equality functions are never wrapped — they propagate untouched.
//
// # Ordering requirements
//
// Functions constrained on cmp.Ordered are compile-time safe: there is no
// runtime "incomparable elements" failure mode. The ...Func variants accept
// a custom comparison and inherit whatever contract that function has.
package seqs
