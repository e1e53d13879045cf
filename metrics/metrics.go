// Package metrics exposes local-search progress as Prometheus metrics.
//
// Collector implements tsp.Observer. Install it with tsp.WithObserver; it is
// safe for concurrent use, so parallel restarts may share one Collector.
package metrics

import (
	"math"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/twoopt/tsp"
)

// Namespace prefixes every metric name.
const Namespace = "twoopt"

// Collector records moves and restarts.
type Collector struct {
	restarts     prometheus.Counter
	moves        prometheus.Counter
	moveGain     prometheus.Histogram
	restartSteps prometheus.Histogram
	restartCost  prometheus.Histogram
	bestCost     prometheus.Gauge

	mu   sync.Mutex
	best int64
}

var _ tsp.Observer = (*Collector)(nil)

// New creates a Collector whose metrics are registered with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		restarts: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "restarts_total",
			Help:      "Completed local-search restarts",
		}),
		moves: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "moves_total",
			Help:      "Applied improving moves",
		}),
		moveGain: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "move_gain",
			Help:      "Cost reduction of each applied move",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		restartSteps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "restart_steps",
			Help:      "Neighbourhood evaluations per restart",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		restartCost: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "restart_cost",
			Help:      "Final tour cost per restart",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 20),
		}),
		bestCost: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "best_cost",
			Help:      "Lowest tour cost over finished restarts",
		}),
		best: math.MaxInt64,
	}
}

// OnMove counts the move and records its gain.
func (c *Collector) OnMove(_ int, _ tsp.Tour, delta, _ int64) {
	c.moves.Inc()
	c.moveGain.Observe(float64(-delta))
}

// OnRestart records the restart outcome and lowers the best-cost gauge.
func (c *Collector) OnRestart(_ int, res tsp.SearchResult) {
	c.restarts.Inc()
	c.restartSteps.Observe(float64(res.Steps))
	c.restartCost.Observe(float64(res.Cost))

	c.mu.Lock()
	if res.Cost < c.best {
		c.best = res.Cost
		c.bestCost.Set(float64(res.Cost))
	}
	c.mu.Unlock()
}

// Best returns the lowest cost seen, or math.MaxInt64 before any restart.
func (c *Collector) Best() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.best
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
