package tsp

import (
	"errors"
	"math"
)

// Sentinel errors returned by the tsp package.
var (
	// ErrEmptyInput indicates a point set with no points.
	ErrEmptyInput = errors.New("tsp: empty point set")

	// ErrDimensionMismatch indicates a tour that is not a permutation of the
	// metric's points, or ids that do not align with the points.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrIndexOutOfRange indicates a tour position outside [0..n-1].
	ErrIndexOutOfRange = errors.New("tsp: tour position out of range")

	// ErrNilStream indicates that a randomized operation received no Stream.
	ErrNilStream = errors.New("tsp: nil random stream")

	// ErrUnknownPolicy indicates an Options.Policy value with no engine.
	ErrUnknownPolicy = errors.New("tsp: unknown move-selection policy")

	// ErrUnknownStartMode indicates an Options.Start value with no generator.
	ErrUnknownStartMode = errors.New("tsp: unknown start mode")

	// ErrBadRestarts indicates a negative restart count.
	ErrBadRestarts = errors.New("tsp: restarts must be non-negative")

	// ErrBadIterations indicates a non-positive sampled iteration budget.
	ErrBadIterations = errors.New("tsp: sampled iterations must be positive")

	// ErrBadNeighbors indicates a non-positive sampled neighbour count.
	ErrBadNeighbors = errors.New("tsp: sampled neighbors must be positive")

	// ErrBadParallel indicates a negative worker count.
	ErrBadParallel = errors.New("tsp: parallel must be non-negative")
)

// Policy selects how the local-search engine explores the neighbourhood.
type Policy int

const (
	// Exhaustive scans every valid 2-opt pair per iteration and applies the
	// best strictly improving reversal until none exists.
	Exhaustive Policy = iota

	// Sampled draws Neighbors random index swaps per iteration, keeps the
	// best, and runs for a fixed Iterations budget.
	Sampled
)

// String returns the policy name used by flags and reports.
func (p Policy) String() string {
	switch p {
	case Exhaustive:
		return "exhaustive"
	case Sampled:
		return "sampled"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a name produced by Policy.String back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "exhaustive":
		return Exhaustive, nil
	case "sampled":
		return Sampled, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// StartMode selects how each restart derives its starting tour from the input order.
type StartMode int

const (
	// StartRotate cyclically rotates the input order by a random offset.
	StartRotate StartMode = iota

	// StartShuffle shuffles every position except the anchor at index 0.
	StartShuffle

	// StartMST walks the MST in preorder from point 0, then rotates the walk
	// by a random offset.
	StartMST
)

// String returns the start-mode name used by flags and reports.
func (s StartMode) String() string {
	switch s {
	case StartRotate:
		return "rotate"
	case StartShuffle:
		return "shuffle"
	case StartMST:
		return "mst"
	default:
		return "unknown"
	}
}

// ParseStartMode maps a name produced by StartMode.String back to a StartMode.
func ParseStartMode(s string) (StartMode, error) {
	switch s {
	case "rotate":
		return StartRotate, nil
	case "shuffle":
		return StartShuffle, nil
	case "mst":
		return StartMST, nil
	default:
		return 0, ErrUnknownStartMode
	}
}

// Defaults for the sampled policy.
const (
	DefaultSampledIterations = 10000
	DefaultSampledNeighbors  = 5
)

// Options configures Search and MultiStart.
// Use DefaultOptions or NewOptions to start from the defaults.
type Options struct {
	// Policy selects the move rule: Exhaustive (default) or Sampled.
	Policy Policy

	// Restarts is the number of restarts; 0 selects ⌈√n⌉.
	Restarts int

	// Start selects how each restart derives its starting tour.
	Start StartMode

	// Iterations is the sampled policy's fixed iteration budget (> 0).
	Iterations int

	// Neighbors is the number of candidates the sampled policy draws per
	// iteration (> 0).
	Neighbors int

	// Parallel runs restarts sequentially on the shared stream when 0 or 1.
	// k > 1 runs up to k restarts at once, each on its own derived stream.
	Parallel int

	// Seed feeds NewStream when MultiStart is given a nil stream.
	Seed int64

	// PrefetchLimit is the largest point count for which MultiStart builds a
	// prefetched distance matrix; above it the metric is lazy. 0 selects
	// geom.DefaultPrefetchLimit.
	PrefetchLimit int

	// Observer optionally receives per-move and per-restart events.
	Observer Observer
}

// Option represents a functional option for configuring Options.
type Option func(*Options)

// WithPolicy sets the move-selection policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithRestarts sets the restart count; 0 restores the ⌈√n⌉ default.
func WithRestarts(k int) Option {
	return func(o *Options) { o.Restarts = k }
}

// WithStart sets how starting tours are derived.
func WithStart(s StartMode) Option {
	return func(o *Options) { o.Start = s }
}

// WithSampling sets the sampled policy's iteration budget and neighbour count.
func WithSampling(iterations, neighbors int) Option {
	return func(o *Options) {
		o.Iterations = iterations
		o.Neighbors = neighbors
	}
}

// WithParallel sets the number of restarts that may run at once.
func WithParallel(k int) Option {
	return func(o *Options) { o.Parallel = k }
}

// WithSeed sets the seed used when no stream is supplied.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPrefetchLimit sets the largest point count that gets a prefetched matrix.
func WithPrefetchLimit(n int) Option {
	return func(o *Options) { o.PrefetchLimit = n }
}

// WithObserver installs an event hook.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns Options with:
//   - Policy:     Exhaustive
//   - Restarts:   0 (⌈√n⌉)
//   - Start:      StartRotate
//   - Iterations: DefaultSampledIterations
//   - Neighbors:  DefaultSampledNeighbors
//   - Parallel:   0 (sequential)
//   - Seed:       0 (defaultStreamSeed)
func DefaultOptions() Options {
	return Options{
		Policy:     Exhaustive,
		Restarts:   0,
		Start:      StartRotate,
		Iterations: DefaultSampledIterations,
		Neighbors:  DefaultSampledNeighbors,
		Parallel:   0,
		Seed:       0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// SearchResult is the outcome of one local-search run.
//
// Tour  – the final tour (exhaustive) or the best tour seen (sampled).
// Cost  – closed-cycle cost of Tour.
// Steps – neighbourhood evaluations performed. Exhaustive: applied moves plus
//
//	the final non-improving scan. Sampled: the iteration budget. Zero when
//	the tour is too short to have any move.
//
// Moves – applied moves (strict improvements of the current tour).
// MeanBestCost – sampled only: mean of the best-so-far cost over iterations.
type SearchResult struct {
	Tour         Tour
	Cost         int64
	Steps        int
	Moves        int
	MeanBestCost float64
}

// RunStatistics aggregates the per-restart results of MultiStart.
// Every field is derived from Results.
type RunStatistics struct {
	Restarts   int
	MinCost    int64
	MeanCost   float64
	StdDevCost float64
	MeanSteps  float64
	Best       SearchResult
	Results    []SearchResult
}

// noCost is the MinCost of statistics over zero results.
const noCost = math.MaxInt64
