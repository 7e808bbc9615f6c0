package mapx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iter-utils/mapx"
)

func TestOrderedMap(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("c", 3)
		m.Set("a", 1)
		m.Set("b", 2)

		assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
		assert.Equal(t, []int{3, 1, 2}, m.Values())
	})

	t.Run("update keeps position", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)

		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("get missing", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		_, ok := m.Get("nope")
		assert.False(t, ok)
	})

	t.Run("delete removes from order", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)

		assert.True(t, m.Delete("b"))
		assert.False(t, m.Delete("b"))
		assert.Equal(t, []string{"a", "c"}, m.Keys())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("reinserted key goes to the end", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Delete("a")
		m.Set("a", 3)

		assert.Equal(t, []string{"b", "a"}, m.Keys())
	})

	t.Run("all is ordered and restartable", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("x", 1)
		m.Set("y", 2)

		items := m.All()
		for range 2 {
			var keys []string
			for k := range items {
				keys = append(keys, k)
			}
			assert.Equal(t, []string{"x", "y"}, keys)
		}
	})

	t.Run("feeds order-sensitive inversion", func(t *testing.T) {
		m := mapx.NewOrderedMap[string, int]()
		m.Set("first", 1)
		m.Set("second", 1)

		assert.Equal(t, map[int]string{1: "first"}, mapx.InvertFirstSeen(m.All()))
		assert.Equal(t, map[int]string{1: "second"}, mapx.InvertLastSeen(m.All()))
	})
}

func TestNewLastUpdated(t *testing.T) {
	m := mapx.NewLastUpdated[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("a", 10)

	assert.Equal(t, []string{"b", "c", "a"}, m.Keys())
	assert.Equal(t, []int{2, 3, 10}, m.Values())
}
