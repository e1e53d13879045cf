package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/prim_kruskal"
	"github.com/katalvlaran/twoopt/tsp"
)

func TestMSTTour_Square(t *testing.T) {
	// Kruskal keeps 0-1, 0-3, 1-2; the walk from 0 visits the smaller neighbour first.
	tour, weight, err := tsp.MSTTour(square(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), weight)
	assert.Equal(t, tsp.Tour{0, 1, 2, 3}, tour)

	tour, _, err = tsp.MSTTour(square(), 2)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{2, 1, 0, 3}, tour)
}

func TestMSTTour_WithinTwiceMST(t *testing.T) {
	for _, pts := range [][]geom.Point{circle(25, 100), scattered(60, 1000, 12), grid(4, 7, 5)} {
		tour, weight, err := tsp.MSTTour(pts, 0)
		require.NoError(t, err)
		require.NoError(t, tour.Validate(len(pts)))

		_, want, err := prim_kruskal.Prim(pts, 0)
		require.NoError(t, err)
		assert.Equal(t, want, weight)

		// Rounding costs at most 1/2 per edge against the exact 2·MST bound.
		cost := tour.Cost(geom.NewMatrix(pts))
		assert.LessOrEqual(t, cost, 2*weight+2*int64(len(pts)))
		assert.GreaterOrEqual(t, cost, weight)
	}
}

func TestMSTTour_Edges(t *testing.T) {
	_, _, err := tsp.MSTTour(nil, 0)
	assert.ErrorIs(t, err, tsp.ErrEmptyInput)

	_, _, err = tsp.MSTTour(square(), 4)
	assert.ErrorIs(t, err, tsp.ErrIndexOutOfRange)

	_, _, err = tsp.MSTTour([]geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}, 0)
	assert.ErrorIs(t, err, geom.ErrNonFinite)

	tour, weight, err := tsp.MSTTour([]geom.Point{{X: 1, Y: 2}}, 0)
	require.NoError(t, err)
	assert.Equal(t, tsp.Tour{0}, tour)
	assert.Zero(t, weight)
}
