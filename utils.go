package sa

import (
	"golang.org/x/exp/constraints"
)

//////
// Helper functions.
//////

// scale maps a uniform draw u in [0, 1) onto [min, max).
//
// Parameters:
// - min, max: Interval to map onto
// - u: Uniform variate in [0, 1)
//
// Returns:
// - min + (max-min)*u, converted back to T
//
// Important notes:
// - No clamping is done: a draw outside [0, 1) maps outside the interval
// - Works for float32 as well as float64 ranges.
func scale[T constraints.Float](min, max T, u float64) T {
	return min + T(float64(max-min)*u)
}

// evenlySpaced returns the i-th of steps+1 evenly spaced points on
// [min, max]. The last point is max exactly.
func evenlySpaced[T constraints.Float](min, max T, i, steps int) T {
	if i >= steps {
		return max
	}

	return scale(min, max, float64(i)/float64(steps))
}
