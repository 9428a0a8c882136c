package sa

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//////
// Const, vars, types.
//////

// DefaultCoolingRate is the cooling rate used when none is configured.
const DefaultCoolingRate = 0.02

// validLogLevels lists the accepted values of Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds everything needed to build an Annealer.
//
// Fields explanation:
// - Bounds: Interval candidates are sampled from
// - Schedule: Geometric cooling schedule
// - Seed: Seed for the default RandomSource (0 = time-based)
// - LogLevel: Level for the logger built by the CLI
// - Objective: Function to maximize (DefaultObjective if nil)
// - RandomSource: Uniform generator (NewRandSource(Seed) if nil)
// - Logger: Structured logger (NoopLogger if nil)
// - ProgressChan: Optional per-iteration updates
//
// Only the first four fields are read from YAML:
//
//	search:
//	  min_coordinate: -2
//	  max_coordinate: 2
//	schedule:
//	  min_temp: 0.00001
//	  max_temp: 100
//	  cooling_rate: 0.02
//	seed: 42
//	log_level: info
type Config struct {
	// Bounds is the search interval.
	Bounds SearchBounds `yaml:"search"`

	// Schedule is the cooling schedule.
	Schedule TemperatureSchedule `yaml:"schedule"`

	// Seed seeds the default RandomSource. Ignored when RandomSource is set.
	Seed int64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Objective is the function to maximize.
	Objective Objective `yaml:"-"`

	// RandomSource supplies the uniform draws.
	RandomSource RandomSource `yaml:"-"`

	// Logger receives run events.
	Logger *slog.Logger `yaml:"-"`

	// ProgressChan is used to send progress updates during the run.
	// If nil, no updates will be sent. Sends never block: updates are
	// dropped while the channel is full.
	ProgressChan chan<- ProgressUpdate `yaml:"-"`
}

//////
// Exported functionalities.
//////

// DefaultConfig returns a default configuration: the default objective over
// [-2, 2], cooling from 100 down to 1e-5 at 2% per iteration.
func DefaultConfig() Config {
	return Config{
		Bounds: SearchBounds{
			Min: -2,
			Max: 2,
		},
		Schedule: TemperatureSchedule{
			MaxTemp:     100,
			MinTemp:     1e-5,
			CoolingRate: DefaultCoolingRate,
		},
		LogLevel:     "info",
		Objective:    DefaultObjective,
		ProgressChan: nil, // Default to no progress updates.
	}
}

// Validate checks the bounds, the schedule and the log level. Every failure
// wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}

	if err := c.Schedule.Validate(); err != nil {
		return err
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return invalidf("log_level %q must be debug, info, warn, or error", c.LogLevel)
	}

	return nil
}

// DecodeConfigYAML parses YAML on top of DefaultConfig without validating
// it. Callers that patch the result, such as a CLI applying flag overrides,
// validate afterwards (New always does).
func DecodeConfigYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// ParseConfigYAML parses YAML on top of DefaultConfig and validates the
// result. Keys missing from data keep their default values.
func ParseConfigYAML(data []byte) (Config, error) {
	cfg, err := DecodeConfigYAML(data)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ReadConfig reads and decodes a configuration file without validating it.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := DecodeConfigYAML(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfig loads, parses and validates a configuration file.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}
