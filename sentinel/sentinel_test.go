package sentinel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-iter-utils/sentinel"
)

func TestNewIsUnique(t *testing.T) {
	a := sentinel.New("same")
	b := sentinel.New("same")
	assert.NotSame(t, a, b)
	assert.False(t, a == b)
}

func TestIdentityInAnyTypedData(t *testing.T) {
	missing := sentinel.New("missing")
	data := []any{nil, 0, "", missing}

	var hits int
	for _, v := range data {
		if v == missing {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}

func TestString(t *testing.T) {
	assert.Equal(t, "<sentinel(missing)>", sentinel.Missing.String())
	assert.Equal(t, "<sentinel(<unnamed>)>", sentinel.New("").String())
}
