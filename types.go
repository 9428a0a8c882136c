package sa

import (
	"fmt"
	"math"
)

// ProgressUpdate represents the state of the annealer after one iteration of
// the cooling loop.
type ProgressUpdate struct {
	// Iteration is the 1-based iteration number
	Iteration int

	// TotalIterations is the number of iterations the schedule will run
	TotalIterations int

	// Temperature is the temperature the iteration ran at (before cooling)
	Temperature float64

	// Candidate is the freshly sampled position
	Candidate float64

	// CandidateEnergy is the objective value of Candidate
	CandidateEnergy float64

	// AcceptanceProbability is the probability the candidate was accepted with
	AcceptanceProbability float64

	// Accepted reports whether Candidate replaced the current position
	Accepted bool

	// Current holds the current position after the acceptance step
	Current float64

	// CurrentEnergy is the objective value of Current
	CurrentEnergy float64

	// Best holds the best position found so far
	Best float64

	// BestEnergy is the objective value of Best
	BestEnergy float64
}

// SearchBounds defines the closed interval the annealer samples candidates
// from. It is immutable for the lifetime of an Annealer.
//
// Fields:
// - Min: The lower bound (inclusive) of the search interval
// - Max: The upper bound of the search interval
//
// Usage:
//
//	bounds := SearchBounds{
//	    Min: -2,
//	    Max: 2,
//	}
//
// Validation:
// - Min must be strictly less than Max
// - Neither bound may be NaN or infinite
type SearchBounds struct {
	// Min defines the lowest coordinate a candidate can take.
	Min float64 `yaml:"min_coordinate"`

	// Max defines the highest coordinate a candidate can take.
	Max float64 `yaml:"max_coordinate"`
}

// Validate reports whether the bounds describe a non-empty finite interval.
func (b SearchBounds) Validate() error {
	if math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return invalidf("search bounds must be finite, got [%v, %v]", b.Min, b.Max)
	}

	// Negated so that NaN fails too.
	if !(b.Min < b.Max) {
		return invalidf("min_coordinate (%v) must be less than max_coordinate (%v)", b.Min, b.Max)
	}

	return nil
}

// Contains reports whether x lies within [Min, Max].
func (b SearchBounds) Contains(x float64) bool {
	return x >= b.Min && x <= b.Max
}

// Width returns Max - Min.
func (b SearchBounds) Width() float64 {
	return b.Max - b.Min
}

// TemperatureSchedule defines the geometric cooling of the annealer. Starting
// at MaxTemp, the temperature is multiplied by (1 - CoolingRate) after every
// iteration until it is no longer above MinTemp.
//
// Fields:
// - MaxTemp: Starting temperature
// - MinTemp: Stopping temperature (exclusive), must be positive
// - CoolingRate: Fractional decay per iteration, in (0, 1)
//
// Usage:
//
//	schedule := TemperatureSchedule{
//	    MaxTemp:     100,
//	    MinTemp:     1e-5,
//	    CoolingRate: 0.02,
//	}
//
// Warning:
//   - A very small CoolingRate makes the run long: the number of iterations
//     grows as log(MinTemp/MaxTemp) / log(1-CoolingRate).
type TemperatureSchedule struct {
	// MaxTemp is the temperature of the first iteration.
	MaxTemp float64 `yaml:"max_temp"`

	// MinTemp is the temperature at or below which the loop stops.
	MinTemp float64 `yaml:"min_temp"`

	// CoolingRate is the fraction of the temperature removed per iteration.
	CoolingRate float64 `yaml:"cooling_rate"`
}

// Validate checks min_temp > 0, max_temp > min_temp and
// 0 < cooling_rate < 1.
func (s TemperatureSchedule) Validate() error {
	if !(s.MinTemp > 0) {
		return invalidf("min_temp (%v) must be positive", s.MinTemp)
	}

	if !(s.MaxTemp > s.MinTemp) {
		return invalidf("max_temp (%v) must be greater than min_temp (%v)", s.MaxTemp, s.MinTemp)
	}

	if math.IsInf(s.MaxTemp, 1) {
		return invalidf("max_temp must be finite")
	}

	if !(s.CoolingRate > 0 && s.CoolingRate < 1) {
		return invalidf("cooling_rate (%v) must be in the open interval (0, 1)", s.CoolingRate)
	}

	// Below float64 resolution the temperature would never drop.
	if !(1-s.CoolingRate < 1) {
		return invalidf("cooling_rate (%v) is too small to lower the temperature", s.CoolingRate)
	}

	return nil
}

// Iterations returns the number of iterations the cooling loop runs for this
// schedule: ceil(log(MinTemp/MaxTemp) / log(1-CoolingRate)). The count is
// independent of the objective and of the random source.
//
// Returns 0 for an invalid schedule. Counts beyond math.MaxInt saturate.
func (s TemperatureSchedule) Iterations() int {
	if s.Validate() != nil {
		return 0
	}

	// Difference of logs so that a tiny MinTemp/MaxTemp cannot underflow.
	n := math.Ceil((math.Log(s.MinTemp) - math.Log(s.MaxTemp)) / math.Log(1-s.CoolingRate))
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	if n >= math.MaxInt {
		return math.MaxInt
	}

	return int(n)
}

// Objective maps a candidate to its energy. Higher is better: the annealer
// maximizes it.
//
// Implementation notes for custom objectives:
// - Must be deterministic and side-effect free
// - Should be total over the search bounds
// - Is evaluated several times per iteration, keep it cheap
type Objective func(x float64) float64

// RandomSource supplies uniform variates in [0, 1). The annealer draws once
// at construction and twice per iteration: one draw to place the candidate
// and one for the acceptance coin-flip.
//
// *math/rand.Rand and *RandSource both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Result is the outcome of a run.
type Result struct {
	// X is the best candidate found.
	X float64

	// Energy is Objective(X).
	Energy float64

	// Iterations is the number of loop iterations executed.
	Iterations int
}

// String renders the human-readable report, with the candidate and its score
// to 5 decimal places.
func (r Result) String() string {
	return fmt.Sprintf("Best state: x = %.5f, f(x) = %.5f", r.X, r.Energy)
}
