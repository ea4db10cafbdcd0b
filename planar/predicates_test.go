package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(1e-10))
	assert.True(t, IsZero(-1e-10))
	assert.False(t, IsZero(1e-8))
	assert.False(t, IsZero(-1e-8))
}

func TestEq(t *testing.T) {
	assert.True(t, Eq(1.0, 1.0))
	assert.True(t, Eq(1.0, 1.0+1e-12))
	assert.True(t, Eq(-3.5, -3.5-1e-10))
	assert.False(t, Eq(1.0, 1.0001))
	assert.False(t, Eq(0, 1e-8))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(1.0, 2.0))
	assert.Equal(t, 1, Compare(2.0, 1.0))
	assert.Equal(t, 0, Compare(2.0, 2.0))
	assert.Equal(t, 0, Compare(2.0, 2.0+1e-12))

	// Compare and Eq must agree on what "equal" means
	pairs := [][2]float64{{0, 0}, {1, 1 + 1e-12}, {1, 1.1}, {-5, 5}, {1e-10, -1e-10}}
	for _, pair := range pairs {
		assert.Equal(t, Eq(pair[0], pair[1]), Compare(pair[0], pair[1]) == 0,
			"Eq and Compare disagree on %v", pair)
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(0.5))
	assert.Equal(t, -1, Sign(-0.5))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 0, Sign(1e-10))
	assert.Equal(t, 0, Sign(-1e-10))
}
