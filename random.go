package sa

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// RandSource is a seedable uniform generator implementing RandomSource.
// It is not safe for concurrent use.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed. A zero seed
// means the source is seeded from the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return Uniform(r, min, max)
}

// UniformFloat32 returns a uniformly distributed float32 in [min, max]. The
// upper bound can be hit when the float64 draw rounds up.
func (r *RandSource) UniformFloat32(min, max float32) float32 {
	return Uniform(r, min, max)
}

// Uniform consumes one draw from source and maps it onto [min, max).
//
// Parameters:
// - source: Any RandomSource
// - min, max: Interval to sample from
//
// Usage example:
//
//	x := Uniform(NewRandSource(42), -2.0, 2.0)
//	y := Uniform(NewRandSource(42), float32(0), float32(1))
func Uniform[T constraints.Float](source RandomSource, min, max T) T {
	return scale(min, max, source.Float64())
}
