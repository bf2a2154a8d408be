package space

import (
	"testing"

	"github.com/lox/rpsls/internal/randutil"
	"github.com/stretchr/testify/assert"
)

func TestDiscreteContains(t *testing.T) {
	d := Discrete{N: 5}
	for x := range 5 {
		assert.True(t, d.Contains(x))
	}
	assert.False(t, d.Contains(-1))
	assert.False(t, d.Contains(5))
	assert.Equal(t, "Discrete(5)", d.String())
}

func TestDiscreteSampleStaysInRange(t *testing.T) {
	d := Discrete{N: 5}
	rng := randutil.New(3)
	counts := make([]int, d.N)
	for range 5000 {
		x := d.Sample(rng)
		assert.True(t, d.Contains(x))
		counts[x]++
	}
	for x, c := range counts {
		assert.Greater(t, c, 800, "value %d undersampled", x)
	}
}
