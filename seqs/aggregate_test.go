package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iter-utils/seqs"
)

func TestLen(t *testing.T) {
	assert.Equal(t, 0, seqs.Len(of[int]()))
	assert.Equal(t, 4, seqs.Len(of("a", "b", "c", "d")))
	assert.Equal(t, 100, seqs.Len(upto(100)))
}

func TestMinMax(t *testing.T) {
	t.Run("single pass over odd count", func(t *testing.T) {
		lo, hi, err := seqs.MinMax(of(3, 1, 4, 1, 5, 9, 2))
		require.NoError(t, err)
		assert.Equal(t, 1, lo)
		assert.Equal(t, 9, hi)
	})

	t.Run("even count", func(t *testing.T) {
		lo, hi, err := seqs.MinMax(of(7, 2, 8, 4))
		require.NoError(t, err)
		assert.Equal(t, 2, lo)
		assert.Equal(t, 8, hi)
	})

	t.Run("single element is both extremes", func(t *testing.T) {
		lo, hi, err := seqs.MinMax(of("a"))
		require.NoError(t, err)
		assert.Equal(t, "a", lo)
		assert.Equal(t, "a", hi)
	})

	t.Run("strings", func(t *testing.T) {
		lo, hi, err := seqs.MinMax(of("the", "quick", "brown", "fox", "jumped"))
		require.NoError(t, err)
		assert.Equal(t, "brown", lo)
		assert.Equal(t, "the", hi)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := seqs.MinMax(of[int]())
		assert.ErrorIs(t, err, seqs.ErrEmptyInput)
	})
}

func TestMinMaxFunc(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }

	lo, hi, err := seqs.MinMaxFunc(of("the", "quick", "brown", "fox", "jumped"), byLen)
	require.NoError(t, err)
	assert.Equal(t, "the", lo)
	assert.Equal(t, "jumped", hi)
}

func TestCountTrue(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, 5, seqs.CountTrue(upto(10), even))
	assert.Equal(t, 0, seqs.CountTrue(of[int](), even))
	assert.Equal(t, 2, seqs.CountTrue(of("", "x", "", "y"), func(s string) bool { return s != "" }))
}
