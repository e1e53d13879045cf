package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/tsp"
)

func sampledOptions(iterations, neighbors int, obs tsp.Observer) tsp.Options {
	return tsp.NewOptions(
		tsp.WithPolicy(tsp.Sampled),
		tsp.WithSampling(iterations, neighbors),
		tsp.WithObserver(obs),
	)
}

func TestSampled_RunsFullBudget(t *testing.T) {
	pts := scattered(40, 1000, 5)
	m := geom.NewMatrix(pts)
	start := shuffled(len(pts), 3)
	startCost := start.Cost(m)

	rec := &moveRecorder{t: t, metric: m}
	res, err := tsp.Search(m, start, tsp.NewStream(seedDet), sampledOptions(2000, 5, rec))
	require.NoError(t, err)

	require.NoError(t, res.Tour.Validate(len(pts)))
	assert.Equal(t, 2000, res.Steps)
	assert.Equal(t, rec.moves, res.Moves)
	assert.Positive(t, res.Moves)
	assert.Equal(t, res.Tour.Cost(m), res.Cost)
	assert.Less(t, res.Cost, startCost)
	// The best-so-far cost never rises, so its mean lies between the final and
	// the starting cost.
	assert.GreaterOrEqual(t, res.MeanBestCost, float64(res.Cost))
	assert.LessOrEqual(t, res.MeanBestCost, float64(startCost))
}

func TestSampled_DrawsPerIteration(t *testing.T) {
	m := geom.NewMatrix(circle(10, 50))
	rng := &constStream{v: 0}

	res, err := tsp.Search(m, tsp.Identity(10), rng, sampledOptions(7, 3, nil))
	require.NoError(t, err)
	// Two positions per candidate; a constant stream always picks i == j.
	assert.Equal(t, 7*3*2, rng.draws)
	assert.Zero(t, res.Moves)
	assert.Equal(t, tsp.Identity(10), res.Tour)
	assert.Equal(t, float64(res.Cost), res.MeanBestCost)
}

func TestSampled_FixesCrossedSquare(t *testing.T) {
	m := geom.NewMatrix(crossedSquare())
	// One candidate per iteration: swap positions 1 and 2.
	rng := &scriptStream{answers: []int{1, 2}, fallback: 0}

	res, err := tsp.Search(m, tsp.Identity(4), rng, sampledOptions(4, 1, nil))
	require.NoError(t, err)
	assert.Equal(t, squarePerimeter, res.Cost)
	assert.Equal(t, tsp.Tour{0, 2, 1, 3}, res.Tour)
	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, 4, res.Steps)
	assert.InDelta(t, 40.0, res.MeanBestCost, 1e-9)
}

func TestSampled_SeedDeterminism(t *testing.T) {
	pts := scattered(30, 500, 9)
	m := geom.NewMatrix(pts)
	start := shuffled(len(pts), 1)

	a, err := tsp.Search(m, start, tsp.NewStream(seedDet), sampledOptions(500, 4, nil))
	require.NoError(t, err)
	b, err := tsp.Search(m, start, tsp.NewStream(seedDet), sampledOptions(500, 4, nil))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampled_BadOptions(t *testing.T) {
	m := geom.NewMatrix(square())
	rng := tsp.NewStream(seedDet)

	_, err := tsp.Search(m, tsp.Identity(4), rng, sampledOptions(0, 5, nil))
	assert.ErrorIs(t, err, tsp.ErrBadIterations)

	_, err = tsp.Search(m, tsp.Identity(4), rng, sampledOptions(10, 0, nil))
	assert.ErrorIs(t, err, tsp.ErrBadNeighbors)

	// Sampling knobs do not bind the exhaustive engine.
	opts := tsp.NewOptions(tsp.WithSampling(0, 0))
	_, err = tsp.Search(m, tsp.Identity(4), rng, opts)
	assert.NoError(t, err)
}

func TestSampled_SinglePoint(t *testing.T) {
	m := geom.NewMatrix([]geom.Point{{X: 2, Y: 2}})
	rng := &constStream{}

	res, err := tsp.Search(m, tsp.Identity(1), rng, sampledOptions(10, 2, nil))
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Steps)
	assert.Zero(t, rng.draws)
}
