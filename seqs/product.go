package seqs

import (
	"fmt"
	"iter"
)

// Numeric covers the element types [InnerProduct] can multiply and sum.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// InnerProduct returns the dot product of two equal-length sequences:
// elements are combined pairwise by multiplication and the results summed.
//
//	seqs.InnerProduct(of(1, 2, 3, 4), of(1, 2, 3, 4)) // 30, nil
//
// Returns [ErrUnequalLengths] when the inputs differ in length. Two empty
// sequences produce the zero value. Consumes both inputs fully.
func InnerProduct[T Numeric](left, right iter.Seq[T]) (T, error) {
	return InnerProductFunc(left, right,
		func(a, b T) T { return a * b },
		func(acc, v T) T { return acc + v })
}

// InnerProductFunc generalizes [InnerProduct] to arbitrary element types
// and combining/reducing operations: op combines one element from each
// sequence, and reduce folds the combined values left to right, seeded
// with the first combined value.
//
// Counting the pairs of words that start with the same letter:
//
//	sameFirst := func(a, b string) int {
//	    if a != "" && b != "" && a[0] == b[0] {
//	        return 1
//	    }
//	    return 0
//	}
//	n, err := seqs.InnerProductFunc(animals, foods, sameFirst,
//	    func(acc, v int) int { return acc + v })
//
// Returns [ErrUnequalLengths] when the inputs differ in length; the zero
// value of R when both are empty.
func InnerProductFunc[A, B, R any](
	left iter.Seq[A],
	right iter.Seq[B],
	op func(A, B) R,
	reduce func(R, R) R,
) (R, error) {
	next, stop := iter.Pull(right)
	defer stop()

	var acc R
	first := true
	for a := range left {
		b, ok := next()
		if !ok {
			var zero R
			return zero, fmt.Errorf("inner product: %w", ErrUnequalLengths)
		}
		combined := op(a, b)
		if first {
			acc = combined
			first = false
			continue
		}
		acc = reduce(acc, combined)
	}
	if _, ok := next(); ok {
		var zero R
		return zero, fmt.Errorf("inner product: %w", ErrUnequalLengths)
	}
	return acc, nil
}
