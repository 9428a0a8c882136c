package sa

import "math"

// DefaultObjective is f(x) = (x - 0.3)^3 - 5x + x^2 - 2.
//
// On [-2, 2] it has a single interior maximum near x ≈ -1.2894 where
// f ≈ 2.0944.
func DefaultObjective(x float64) float64 {
	d := x - 0.3

	return d*d*d - 5*x + x*x - 2
}

// GridSearch evaluates objective on steps+1 evenly spaced points of bounds,
// endpoints included, and returns the highest scoring point. Ties keep the
// lower coordinate.
//
// It is a deterministic, exhaustive baseline for checking annealing results
// on cheap objectives.
//
// Parameters:
// - objective: Function to maximize (DefaultObjective if nil)
// - bounds: Interval to scan
// - steps: Number of sub-intervals, must be at least 1
//
// Returns:
// - x: Best grid point
// - fx: objective(x)
// - error: ErrInvalidConfiguration for invalid bounds or steps
//
// Example:
//
//	x, fx, err := GridSearch(DefaultObjective, SearchBounds{Min: -2, Max: 2}, 400000)
func GridSearch(objective Objective, bounds SearchBounds, steps int) (x, fx float64, err error) {
	if err = bounds.Validate(); err != nil {
		return 0, 0, err
	}

	if steps < 1 {
		return 0, 0, invalidf("grid steps (%d) must be at least 1", steps)
	}

	if objective == nil {
		objective = DefaultObjective
	}

	fx = math.Inf(-1)

	for i := 0; i <= steps; i++ {
		p := evenlySpaced(bounds.Min, bounds.Max, i, steps)

		if e := objective(p); e > fx || i == 0 {
			x, fx = p, e
		}
	}

	return x, fx, nil
}
