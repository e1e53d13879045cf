// Command twoopt reads a 2-D point set, reports its MST weight, and runs
// multi-start 2-opt local search over it.
//
//	twoopt -input points.txt.zst -restarts 20 -tour
//
// Flags default from TWOOPT_* environment variables; see -help.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/metrics"
	"github.com/katalvlaran/twoopt/pointio"
	"github.com/katalvlaran/twoopt/prim_kruskal"
	"github.com/katalvlaran/twoopt/report"
	"github.com/katalvlaran/twoopt/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		log.Fatalf("twoopt: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	level, err := ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("-log-level %q: %w", cfg.logLevel, err)
	}
	logger := NewLogger(stderr, level, cfg.logJSON)

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("drew random seed", "seed", seed)
	}

	ps, err := loadPoints(cfg.input, stdin)
	if err != nil {
		return fmt.Errorf("failed to load points: %w", err)
	}
	logger.Info("loaded points", "input", cfg.input, "points", ps.Len())

	began := time.Now()
	_, mstWeight, err := prim_kruskal.Compute(ps.Points)
	if err != nil {
		return fmt.Errorf("failed to build MST: %w", err)
	}
	logger.Debug("built MST", "weight", mstWeight, "elapsed", time.Since(began))

	opts := cfg.options
	opts.Seed = seed
	var reg *prometheus.Registry
	obs := restartLogger{logger: logger}
	if cfg.metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts.Observer = multiObserver{metrics.New(reg), obs}
	} else {
		opts.Observer = obs
	}

	began = time.Now()
	st, err := tsp.MultiStart(ctx, ps.Points, tsp.NewStream(seed), opts)
	if err != nil {
		return fmt.Errorf("local search failed: %w", err)
	}
	logger.Info("local search finished",
		"policy", opts.Policy.String(),
		"restarts", st.Restarts,
		"min_cost", st.MinCost,
		"elapsed", time.Since(began),
	)

	ropts := []report.Option{report.WithRun(opts, seed)}
	if cfg.tour {
		ropts = append(ropts, report.WithTour(ps, st.Best.Tour))
	}
	rep := report.New(ps.Len(), mstWeight, st, ropts...)
	if cfg.format == formatJSON {
		err = rep.WriteJSON(stdout)
	} else {
		err = rep.WriteText(stdout)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if reg != nil {
		if err = metrics.WriteTextfile(cfg.metricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("wrote metrics", "path", cfg.metricsFile)
	}

	return nil
}

func loadPoints(input string, stdin io.Reader) (geom.PointSet, error) {
	if input == "" || input == "-" {
		return pointio.Read(stdin)
	}

	return pointio.Load(input)
}

// restartLogger logs each finished restart at debug level.
type restartLogger struct {
	tsp.NopObserver
	logger *Logger
}

func (r restartLogger) OnRestart(restart int, res tsp.SearchResult) {
	r.logger.WithRestart(restart).Debug("restart finished",
		"cost", res.Cost,
		"steps", res.Steps,
		"moves", res.Moves,
	)
}

// multiObserver fans events out to every member.
type multiObserver []tsp.Observer

func (m multiObserver) OnMove(restart int, tour tsp.Tour, delta, cost int64) {
	for _, o := range m {
		o.OnMove(restart, tour, delta, cost)
	}
}

func (m multiObserver) OnRestart(restart int, res tsp.SearchResult) {
	for _, o := range m {
		o.OnRestart(restart, res)
	}
}
