// Package tsp - multi-start driver.
//
// MultiStart runs the local-search engine from several starting tours and
// aggregates the outcomes:
//
//   - Restarts: opts.Restarts, or ⌈√n⌉ when it is 0.
//   - Start tours derive from the input order 0..n−1 (see StartMode):
//     rotate by a random offset, shuffle every position but the anchor at 0,
//     or rotate the MST preorder walk by a random offset.
//   - Sequential (Parallel ≤ 1): every restart draws its start tour and its
//     tie-breaks from the one shared Stream, in restart order.
//   - Parallel (Parallel > 1): one child Stream per restart is derived from the
//     shared Stream up front, in restart order; restarts then run on an
//     errgroup limited to Parallel goroutines. The outcome depends only on
//     the seed, not on scheduling, but differs from the sequential outcome
//     for the same seed.
//
// No restart sees another restart's tour. ctx is checked before each restart;
// a running restart is not interrupted.
package tsp

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/twoopt/geom"
)

// DefaultRestarts returns ⌈√n⌉, the restart count used when Options.Restarts is 0.
func DefaultRestarts(n int) int {
	if n <= 0 {
		return 0
	}

	return int(math.Ceil(math.Sqrt(float64(n))))
}

// MultiStart runs Search from opts.Restarts (or ⌈√n⌉) starting tours over
// points and returns the aggregated statistics. A nil rng is replaced by
// NewStream(opts.Seed).
//
// Errors: ErrEmptyInput for no points, geom.ErrNonFinite for a NaN or ±Inf
// coordinate, option sentinels from validateOptions,
// MSTTour errors for StartMST, and ctx.Err() on cancellation.
func MultiStart(ctx context.Context, points []geom.Point, rng Stream, opts Options) (RunStatistics, error) {
	n := len(points)
	if n == 0 {
		return RunStatistics{}, ErrEmptyInput
	}
	if err := geom.CheckFinite(points); err != nil {
		return RunStatistics{}, err
	}
	if err := validateOptions(opts); err != nil {
		return RunStatistics{}, err
	}
	if rng == nil {
		rng = NewStream(opts.Seed)
	}

	restarts := opts.Restarts
	if restarts == 0 {
		restarts = DefaultRestarts(n)
	}

	var base Tour
	if opts.Start == StartMST {
		var err error
		if base, _, err = MSTTour(points, 0); err != nil {
			return RunStatistics{}, err
		}
	} else {
		base = Identity(n)
	}

	r := runner{
		metric: geom.NewMetric(points, opts.PrefetchLimit),
		base:   base,
		opts:   opts,
		obs:    observerOrNop(opts.Observer),
	}

	var (
		results []SearchResult
		err     error
	)
	if opts.Parallel > 1 {
		results, err = r.parallel(ctx, restarts, rng)
	} else {
		results, err = r.sequential(ctx, restarts, rng)
	}
	if err != nil {
		return RunStatistics{}, err
	}

	return Summarize(results), nil
}

// runner holds what every restart shares read-only.
type runner struct {
	metric geom.Metric
	base   Tour
	opts   Options
	obs    Observer
}

func (r runner) sequential(ctx context.Context, restarts int, rng Stream) ([]SearchResult, error) {
	results := make([]SearchResult, 0, restarts)
	for i := 0; i < restarts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, r.run(i, rng))
	}

	return results, nil
}

func (r runner) parallel(ctx context.Context, restarts int, rng Stream) ([]SearchResult, error) {
	streams := make([]Stream, restarts)
	for i := range streams {
		streams[i] = deriveStream(rng, uint64(i))
	}

	results := make([]SearchResult, restarts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Parallel)
	for i := 0; i < restarts; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.run(i, streams[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// run performs one restart; rng supplies the start offset or shuffle first,
// then the engine's draws.
func (r runner) run(restart int, rng Stream) SearchResult {
	res := search(r.metric, r.startTour(rng), rng, r.opts, restart, r.obs)
	r.obs.OnRestart(restart, res)

	return res
}

// startTour derives a fresh starting tour from the base order.
func (r runner) startTour(rng Stream) Tour {
	n := len(r.base)
	switch r.opts.Start {
	case StartShuffle:
		t := r.base.Clone()
		if n > 1 {
			shuffleInPlace(t[1:], rng)
		}

		return t
	default: // StartRotate, StartMST
		return r.base.Rotate(rng.Intn(n))
	}
}

// Summarize aggregates per-restart results. Best is the first result with
// the minimum cost. An empty slice yields MinCost == math.MaxInt64 and zero
// means.
func Summarize(results []SearchResult) RunStatistics {
	st := RunStatistics{
		Restarts: len(results),
		MinCost:  noCost,
		Results:  results,
	}
	if len(results) == 0 {
		return st
	}

	costs := make([]float64, len(results))
	steps := make([]float64, len(results))
	for i, res := range results {
		costs[i] = float64(res.Cost)
		steps[i] = float64(res.Steps)
		if res.Cost < st.MinCost {
			st.MinCost = res.Cost
			st.Best = res
		}
	}
	st.MeanCost = stat.Mean(costs, nil)
	st.MeanSteps = stat.Mean(steps, nil)
	if len(costs) > 1 {
		st.StdDevCost = stat.StdDev(costs, nil)
	}

	return st
}
