package sa

import (
	"context"
	"log/slog"
)

//////
// Const, vars, types.
//////

// Annealer maximizes an Objective over SearchBounds with simulated annealing.
//
// It owns the search state: the current candidate, the best candidate and
// the temperature. The state is created by New and mutated only by Run and
// RunContext.
//
// Thread safety:
// - An Annealer is not safe for concurrent use
// - Independent Annealers can run in parallel as long as they do not share
//   a RandomSource
type Annealer struct {
	bounds    SearchBounds
	schedule  TemperatureSchedule
	objective Objective
	rng       RandomSource
	logger    *slog.Logger
	progress  chan<- ProgressUpdate

	// current is the position the chain sits on.
	current float64

	// best is the highest scoring position current has ever held.
	best float64

	// temperature is zero until a run starts.
	temperature float64
}

//////
// Factory.
//////

// New validates config and creates an Annealer positioned on a single
// uniformly sampled candidate, which is both the current and the best
// candidate.
//
// Parameters:
// - config: Bounds, schedule and collaborators, see Config
//
// Returns:
// - *Annealer: Ready to Run
// - error: Wraps ErrInvalidConfiguration when bounds or schedule are invalid
//
// Usage example:
//
//	config := DefaultConfig()
//	config.Seed = 42
//
//	annealer, err := New(config)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(annealer.Run())
func New(config Config) (*Annealer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	a := &Annealer{
		bounds:    config.Bounds,
		schedule:  config.Schedule,
		objective: config.Objective,
		rng:       config.RandomSource,
		logger:    config.Logger,
		progress:  config.ProgressChan,
	}

	if a.objective == nil {
		a.objective = DefaultObjective
	}

	if a.rng == nil {
		a.rng = NewRandSource(config.Seed)
	}

	if a.logger == nil {
		a.logger = NoopLogger()
	}

	a.current = a.sampleCandidate()
	a.best = a.current

	return a, nil
}

//////
// Methods.
//////

// Current returns the current candidate.
func (a *Annealer) Current() float64 { return a.current }

// Best returns the best candidate found so far.
func (a *Annealer) Best() float64 { return a.best }

// Temperature returns the temperature the next iteration would run at, or
// zero before the first run.
func (a *Annealer) Temperature() float64 { return a.temperature }

// Bounds returns the search interval.
func (a *Annealer) Bounds() SearchBounds { return a.bounds }

// Schedule returns the cooling schedule.
func (a *Annealer) Schedule() TemperatureSchedule { return a.schedule }

// sampleCandidate consumes one draw and maps it onto the search bounds.
func (a *Annealer) sampleCandidate() float64 {
	return Uniform(a.rng, a.bounds.Min, a.bounds.Max)
}

// Run executes the annealing loop to completion and returns the best
// candidate with its objective value.
//
// How it works:
// 1. The temperature starts at MaxTemp
// 2. While the temperature is above MinTemp:
//   - A candidate is sampled uniformly from the bounds
//   - It replaces the current candidate with AcceptanceProbability
//   - The best candidate is updated if the current one now scores higher
//   - The temperature is multiplied by (1 - CoolingRate)
//
// 3. The best candidate is returned
//
// The number of iterations depends only on the schedule, see
// TemperatureSchedule.Iterations.
func (a *Annealer) Run() Result {
	// Background is never cancelled.
	res, _ := a.RunContext(context.Background())

	return res
}

// RunContext is Run with cancellation. The context is checked at the top of
// each iteration; once it is done the loop stops and the best candidate so
// far is returned together with ctx.Err(). The state stays consistent, a
// later call resumes the search from the current candidate with a fresh
// schedule.
func (a *Annealer) RunContext(ctx context.Context) (Result, error) {
	total := a.schedule.Iterations()

	a.logger.Info("annealing started",
		"min_coordinate", a.bounds.Min,
		"max_coordinate", a.bounds.Max,
		"max_temp", a.schedule.MaxTemp,
		"min_temp", a.schedule.MinTemp,
		"cooling_rate", a.schedule.CoolingRate,
		"iterations", total,
	)

	a.temperature = a.schedule.MaxTemp
	iterations := 0

	for a.temperature > a.schedule.MinTemp {
		if err := ctx.Err(); err != nil {
			res := a.result(iterations)

			a.logger.Warn("annealing cancelled",
				"iteration", iterations,
				"best", res.X,
				"best_energy", res.Energy,
				"error", err,
			)

			return res, err
		}

		a.step(iterations+1, total)

		a.temperature *= 1 - a.schedule.CoolingRate
		iterations++
	}

	res := a.result(iterations)

	a.logger.Info("annealing finished",
		"iterations", iterations,
		"best", res.X,
		"best_energy", res.Energy,
	)

	return res, nil
}

// step runs one iteration at the current temperature.
func (a *Annealer) step(iteration, total int) {
	candidate := a.sampleCandidate()

	currentEnergy := a.objective(a.current)
	candidateEnergy := a.objective(candidate)

	p := AcceptanceProbability(currentEnergy, candidateEnergy, a.temperature)

	accepted := p > a.rng.Float64()
	if accepted {
		a.current = candidate
		currentEnergy = candidateEnergy
	}

	// Compared against the current candidate after acceptance, never
	// against the raw sample.
	bestEnergy := a.objective(a.best)
	if currentEnergy > bestEnergy {
		a.best = a.current
		bestEnergy = currentEnergy
	}

	a.logger.Debug("annealing iteration",
		"iteration", iteration,
		"temperature", a.temperature,
		"candidate", candidate,
		"candidate_energy", candidateEnergy,
		"acceptance_probability", p,
		"accepted", accepted,
		"current", a.current,
		"best", a.best,
		"best_energy", bestEnergy,
	)

	a.sendProgress(ProgressUpdate{
		Iteration:             iteration,
		TotalIterations:       total,
		Temperature:           a.temperature,
		Candidate:             candidate,
		CandidateEnergy:       candidateEnergy,
		AcceptanceProbability: p,
		Accepted:              accepted,
		Current:               a.current,
		CurrentEnergy:         currentEnergy,
		Best:                  a.best,
		BestEnergy:            bestEnergy,
	})
}

func (a *Annealer) sendProgress(update ProgressUpdate) {
	if a.progress == nil {
		return
	}

	select {
	case a.progress <- update:
	default:
		// Skip update if channel is full.
	}
}

func (a *Annealer) result(iterations int) Result {
	return Result{
		X:          a.best,
		Energy:     a.objective(a.best),
		Iterations: iterations,
	}
}
