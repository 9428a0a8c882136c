package sa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandSourceSeeded(t *testing.T) {
	a := NewRandSource(123)
	b := NewRandSource(123)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRandSourceRange(t *testing.T) {
	r := NewRandSource(0)

	for i := 0; i < 1000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)

		u := r.UniformFloat64(-2, 2)
		assert.GreaterOrEqual(t, u, -2.0)
		assert.Less(t, u, 2.0)
	}
}

func TestUniformFloat32(t *testing.T) {
	r := NewRandSource(5)

	for i := 0; i < 1000; i++ {
		v := r.UniformFloat32(-1, 1)
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}

	// Both instantiations consume one draw and agree up to precision.
	a := Uniform(NewRandSource(9), 0.0, 10.0)
	b := Uniform(NewRandSource(9), float32(0), float32(10))
	assert.InDelta(t, a, float64(b), 1e-5)
}

func TestMathRandIsRandomSource(t *testing.T) {
	config := DefaultConfig()
	config.RandomSource = rand.New(rand.NewSource(1))

	annealer, err := New(config)
	assert.NoError(t, err)
	assert.True(t, config.Bounds.Contains(annealer.Current()))
}

func TestScale(t *testing.T) {
	assert.Equal(t, -2.0, scale(-2.0, 2.0, 0))
	assert.Equal(t, 0.0, scale(-2.0, 2.0, 0.5))
	assert.Equal(t, float32(1.5), scale(float32(1), float32(2), 0.5))

	assert.Equal(t, 3.0, evenlySpaced(1.0, 3.0, 4, 4))
	assert.Equal(t, 2.0, evenlySpaced(1.0, 3.0, 2, 4))
}
