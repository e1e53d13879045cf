// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/tsp"
)

const (
	// seedDet is the fixed seed used by determinism tests.
	seedDet = int64(42)

	// squarePerimeter is the optimal tour cost of square().
	squarePerimeter = int64(40)
)

// square returns the corners of a 10×10 square in input order
// (0,0),(0,10),(10,10),(10,0): the identity tour is already optimal.
func square() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
}

// crossedSquare lists the same corners so the identity tour crosses itself.
func crossedSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 10, Y: 0}}
}

// circle places n points on a rippled circle of radius r; the ripple breaks
// the symmetry so that most 2-opt deltas are distinct.
func circle(n int, r float64) []geom.Point {
	pts := make([]geom.Point, n)
	var (
		th, rr float64
		i      int
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		rr = r * (1 + 0.05*float64(i%3))
		pts[i] = geom.Point{X: rr * math.Cos(th), Y: rr * math.Sin(th)}
	}

	return pts
}

// scattered returns n reproducible uniform points in [0, side)².
func scattered(n int, side float64, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Float64() * side, Y: r.Float64() * side}
	}

	return pts
}

// grid returns a w×h lattice with the given spacing. Many 2-opt deltas tie on
// a lattice, which exercises the tie-break path.
func grid(w, h int, spacing float64) []geom.Point {
	pts := make([]geom.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pts = append(pts, geom.Point{X: float64(x) * spacing, Y: float64(y) * spacing})
		}
	}

	return pts
}

// stacked returns n points drawn from a cells×cells lattice with the given
// spacing, so most lattice sites hold several coincident points.
func stacked(n, cells int, spacing float64, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: float64(r.Intn(cells)) * spacing, Y: float64(r.Intn(cells)) * spacing}
	}

	return pts
}

// shuffled returns a random permutation of 0..n-1 drawn from seed.
func shuffled(n int, seed int64) tsp.Tour {
	t := tsp.Identity(n)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) { t[i], t[j] = t[j], t[i] })

	return t
}

// scriptStream replays a fixed sequence of Intn answers, then answers
// fallback forever. It counts every draw.
type scriptStream struct {
	answers  []int
	fallback int
	draws    int
}

func (s *scriptStream) Intn(n int) int {
	v := s.fallback
	if s.draws < len(s.answers) {
		v = s.answers[s.draws]
	}
	s.draws++

	return v % n
}

func (s *scriptStream) Int63() int64 {
	return int64(s.Intn(math.MaxInt32))
}

// constStream answers every Intn with the same value (mod n) and counts draws.
type constStream struct {
	v     int
	draws int
}

func (s *constStream) Intn(n int) int {
	s.draws++

	return s.v % n
}

func (s *constStream) Int63() int64 {
	s.draws++

	return int64(s.v)
}

// moveRecorder checks every OnMove call against the engine's invariants.
type moveRecorder struct {
	t        *testing.T
	metric   geom.Metric
	moves    int
	lastCost int64
	deltas   []int64
}

func (r *moveRecorder) OnMove(_ int, tour tsp.Tour, delta, cost int64) {
	r.t.Helper()
	require.NoError(r.t, tour.Validate(r.metric.Len()), "tour must stay a permutation after move %d", r.moves)
	require.Negative(r.t, delta, "applied move must strictly improve")
	require.Equal(r.t, tour.Cost(r.metric), cost, "reported cost must match the tour")
	if r.moves > 0 {
		require.Less(r.t, cost, r.lastCost)
	}
	r.lastCost = cost
	r.deltas = append(r.deltas, delta)
	r.moves++
}

func (r *moveRecorder) OnRestart(int, tsp.SearchResult) {}
