package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iter-utils/seqs"
)

func TestSameItems(t *testing.T) {
	t.Run("same multiset in different orders", func(t *testing.T) {
		ok, err := seqs.SameItems(of(1, 2, 2, 3), of(3, 2, 1, 2))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("multiplicity matters", func(t *testing.T) {
		ok, err := seqs.SameItems(of(1, 2, 2), of(1, 1, 2))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("different lengths", func(t *testing.T) {
		ok, err := seqs.SameItems(of(1, 2), of(1, 2, 3))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("three sequences", func(t *testing.T) {
		ok, err := seqs.SameItems(of("a", "b"), of("b", "a"), of("a", "b"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("both empty", func(t *testing.T) {
		ok, err := seqs.SameItems(of[int](), of[int]())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("too few sequences", func(t *testing.T) {
		_, err := seqs.SameItems(of(1, 2))
		assert.ErrorIs(t, err, seqs.ErrTooFewSequences)
	})
}

func TestSameItemsFunc(t *testing.T) {
	sameLen := func(a, b []int) bool { return len(a) == len(b) }

	t.Run("matches by equality function", func(t *testing.T) {
		ok, err := seqs.SameItemsFunc(sameLen,
			of([]int{1}, []int{2, 3}),
			of([]int{8, 9}, []int{5}))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("leftover unmatched element", func(t *testing.T) {
		ok, err := seqs.SameItemsFunc(sameLen,
			of([]int{1}, []int{2, 3}),
			of([]int{8, 9}))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("too few sequences", func(t *testing.T) {
		_, err := seqs.SameItemsFunc(sameLen, of([]int{1}))
		assert.ErrorIs(t, err, seqs.ErrTooFewSequences)
	})
}

func TestSameOrderedItems(t *testing.T) {
	t.Run("equal element for element", func(t *testing.T) {
		ok, err := seqs.SameOrderedItems(of(1, 2, 3), of(1, 2, 3))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("order sensitive", func(t *testing.T) {
		ok, err := seqs.SameOrderedItems(of(1, 2, 3), of(3, 2, 1))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("length mismatch", func(t *testing.T) {
		ok, err := seqs.SameOrderedItems(of(1, 2, 3), of(1, 2))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("all empty", func(t *testing.T) {
		ok, err := seqs.SameOrderedItems(of[string](), of[string](), of[string]())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("too few sequences", func(t *testing.T) {
		_, err := seqs.SameOrderedItems(of(1))
		assert.ErrorIs(t, err, seqs.ErrTooFewSequences)
	})
}
