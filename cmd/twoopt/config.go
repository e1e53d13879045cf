package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/twoopt/tsp"
)

// Environment variables that provide flag defaults.
const (
	envSeed     = "TWOOPT_SEED"
	envRestarts = "TWOOPT_RESTARTS"
	envPolicy   = "TWOOPT_POLICY"
	envStart    = "TWOOPT_START"
	envParallel = "TWOOPT_PARALLEL"
	envLogLevel = "TWOOPT_LOG_LEVEL"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

type config struct {
	input       string
	format      string
	tour        bool
	metricsFile string
	logLevel    string
	logJSON     bool

	seed    int64
	options tsp.Options
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var (
		cfg                  config
		policy, start        string
		restarts, parallel   int
		iterations, neighbor int
		err                  error
	)
	fs := flag.NewFlagSet("twoopt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defSeed, err := getEnvInt64(envSeed, 0)
	if err != nil {
		return cfg, err
	}
	defRestarts, err := getEnvInt(envRestarts, 0)
	if err != nil {
		return cfg, err
	}
	defParallel, err := getEnvInt(envParallel, 0)
	if err != nil {
		return cfg, err
	}

	fs.StringVar(&cfg.input, "input", "-", "point file (id x y per record); .zst and .lz4 are decompressed; - reads stdin")
	fs.StringVar(&policy, "policy", getEnv(envPolicy, tsp.Exhaustive.String()), "move selection: exhaustive or sampled")
	fs.StringVar(&start, "start", getEnv(envStart, tsp.StartRotate.String()), "start tours: rotate, shuffle or mst")
	fs.IntVar(&restarts, "restarts", defRestarts, "restarts; 0 runs ceil(sqrt(n))")
	fs.IntVar(&iterations, "iterations", tsp.DefaultSampledIterations, "sampled policy: iterations per restart")
	fs.IntVar(&neighbor, "neighbors", tsp.DefaultSampledNeighbors, "sampled policy: candidates per iteration")
	fs.IntVar(&parallel, "parallel", defParallel, "restarts run at once; 0 or 1 is sequential")
	fs.Int64Var(&cfg.seed, "seed", defSeed, "random seed; 0 draws one at startup")
	fs.StringVar(&cfg.format, "format", formatText, "report format: text or json")
	fs.BoolVar(&cfg.tour, "tour", false, "include the best tour in the report")
	fs.StringVar(&cfg.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	fs.StringVar(&cfg.logLevel, "log-level", getEnv(envLogLevel, "info"), "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON")

	if err = fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	p, err := tsp.ParsePolicy(policy)
	if err != nil {
		return cfg, fmt.Errorf("-policy %q: %w", policy, err)
	}
	s, err := tsp.ParseStartMode(start)
	if err != nil {
		return cfg, fmt.Errorf("-start %q: %w", start, err)
	}
	if cfg.format != formatText && cfg.format != formatJSON {
		return cfg, fmt.Errorf("-format %q: want %s or %s", cfg.format, formatText, formatJSON)
	}

	cfg.options = tsp.NewOptions(
		tsp.WithPolicy(p),
		tsp.WithStart(s),
		tsp.WithRestarts(restarts),
		tsp.WithSampling(iterations, neighbor),
		tsp.WithParallel(parallel),
	)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}

	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}

	return n, nil
}
