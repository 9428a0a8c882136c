package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thalesfsp/sa"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, anneals and prints the report to stdout. It returns the
// process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		configPath  string
		seed        int64
		minCoord    float64
		maxCoord    float64
		minTemp     float64
		maxTemp     float64
		coolingRate float64
		logLevel    string
		timeout     time.Duration
	)

	defaults := sa.DefaultConfig()

	fs := flag.NewFlagSet("sa", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	fs.Float64Var(&minCoord, "min", defaults.Bounds.Min, "lower bound of the search interval")
	fs.Float64Var(&maxCoord, "max", defaults.Bounds.Max, "upper bound of the search interval")
	fs.Float64Var(&minTemp, "min-temp", defaults.Schedule.MinTemp, "stopping temperature")
	fs.Float64Var(&maxTemp, "max-temp", defaults.Schedule.MaxTemp, "starting temperature")
	fs.Float64Var(&coolingRate, "cooling-rate", defaults.Schedule.CoolingRate, "fractional temperature decay per iteration")
	fs.StringVar(&logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&timeout, "timeout", 0, "stop early after this duration (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := defaults
	if configPath != "" {
		// Validated by sa.New once the flags are applied.
		loaded, err := sa.ReadConfig(configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		cfg = loaded
	}

	// Explicitly set flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "min":
			cfg.Bounds.Min = minCoord
		case "max":
			cfg.Bounds.Max = maxCoord
		case "min-temp":
			cfg.Schedule.MinTemp = minTemp
		case "max-temp":
			cfg.Schedule.MaxTemp = maxTemp
		case "cooling-rate":
			cfg.Schedule.CoolingRate = coolingRate
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})

	cfg.Logger = sa.NewTextLogger(cfg.LogLevel, stderr)

	annealer, err := sa.New(cfg)
	if err != nil {
		cfg.Logger.Error("invalid configuration", "error", err)
		return 1
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := annealer.RunContext(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		cfg.Logger.Warn("timeout reached, reporting best so far", "timeout", timeout)
	}

	fmt.Fprintln(stdout, result)

	return 0
}
