// Package sa provides a single-variable optimizer based on simulated
// annealing. It approximately maximizes a scalar objective over a closed
// interval using temperature-scheduled stochastic search that accepts
// worsening moves with a probability that shrinks as the search cools.
//
// # Features
//
// The package includes the following key features:
//
//   - Geometric cooling: temperature decays by a fixed fraction per iteration
//   - Maximization: higher objective values are better
//   - Pluggable randomness: any RandomSource, seedable for reproducible runs
//   - Cancellation: RunContext stops early and returns the best so far
//   - Progress Monitoring: per-iteration updates via channels
//   - YAML configuration: LoadConfig and ParseConfigYAML
//   - Structured logging: log/slog
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/sa
//
// # Usage
//
//	config := DefaultConfig()
//	config.Seed = 42
//
//	annealer, err := New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := annealer.Run()
//	fmt.Println(result) // Best state: x = ..., f(x) = ...
//
// # Acceptance rule
//
// A candidate scoring higher than the current position is always accepted.
// Otherwise it is accepted with probability
//
//	exp((candidateEnergy - currentEnergy) / temperature)
//
// The objective is called "energy" but it is maximized, so the rule is the
// mirror image of the physical, energy-minimizing one. Ties never replace the
// incumbent.
//
// # Configuration
//
// The Config struct allows customization of the run:
//
//	type Config struct {
//	    Bounds       SearchBounds          // Search interval
//	    Schedule     TemperatureSchedule   // MaxTemp, MinTemp, CoolingRate
//	    Seed         int64                 // Seed for the default RandomSource
//	    LogLevel     string                // debug, info, warn, error
//	    Objective    Objective             // Function to maximize
//	    RandomSource RandomSource          // Uniform generator
//	    Logger       *slog.Logger          // Structured logger
//	    ProgressChan chan<- ProgressUpdate // For progress monitoring
//	}
//
// The loop runs exactly ceil(log(MinTemp/MaxTemp) / log(1-CoolingRate))
// iterations, whatever the objective.
//
// # Thread Safety
//
// An Annealer is single-threaded and must not be shared between goroutines.
// Separate Annealers with separate RandomSources can run concurrently.
package sa
