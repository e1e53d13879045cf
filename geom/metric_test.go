package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Rounding(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Point
		want int64
	}{
		{"same point", geom.Point{X: 3, Y: 4}, geom.Point{X: 3, Y: 4}, 0},
		{"3-4-5", geom.Point{}, geom.Point{X: 3, Y: 4}, 5},
		{"diagonal rounds down", geom.Point{}, geom.Point{X: 10, Y: 10}, 14}, // 14.142
		{"rounds up", geom.Point{}, geom.Point{X: 1, Y: 1.2}, 2},             // 1.562
		{"half rounds away from zero", geom.Point{}, geom.Point{X: 0.5, Y: 0}, 1},
		{"symmetric", geom.Point{X: 7, Y: -2}, geom.Point{X: -1, Y: 4}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Distance(tc.a, tc.b))
			assert.Equal(t, tc.want, geom.Distance(tc.b, tc.a))
		})
	}
}

func TestMatrixAndLazyAgree(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 3, Y: 7}}
	m := geom.NewMatrix(pts)
	l := geom.NewLazy(pts)

	require.Equal(t, len(pts), m.Len())
	require.Equal(t, len(pts), l.Len())
	for u := range pts {
		assert.Zero(t, m.Dist(u, u))
		for v := range pts {
			assert.Equal(t, l.Dist(u, v), m.Dist(u, v), "d(%d,%d)", u, v)
			assert.Equal(t, m.Dist(u, v), m.Dist(v, u))
		}
	}
}

func TestNewMetric_PicksByLimit(t *testing.T) {
	pts := make([]geom.Point, 10)

	_, isMatrix := geom.NewMetric(pts, 10).(*geom.Matrix)
	assert.True(t, isMatrix)

	_, isLazy := geom.NewMetric(pts, 9).(*geom.Lazy)
	assert.True(t, isLazy)

	_, isMatrix = geom.NewMetric(pts, 0).(*geom.Matrix)
	assert.True(t, isMatrix, "limit<=0 falls back to the default limit")
}

func TestPointSet_ID(t *testing.T) {
	ps := geom.PointSet{Points: make([]geom.Point, 3)}
	assert.Equal(t, int64(1), ps.ID(0))
	assert.NoError(t, ps.Validate())

	ps.IDs = []int64{10, 20, 30}
	assert.Equal(t, int64(30), ps.ID(2))
	assert.NoError(t, ps.Validate())

	ps.IDs = []int64{10}
	assert.ErrorIs(t, ps.Validate(), geom.ErrDimensionMismatch)
}

func TestCheckFinite(t *testing.T) {
	require.NoError(t, geom.CheckFinite(nil))
	require.NoError(t, geom.CheckFinite([]geom.Point{{X: -1e300, Y: 1e300}, {X: 0, Y: 0}}))

	cases := []struct {
		name string
		p    geom.Point
	}{
		{"NaN x", geom.Point{X: math.NaN(), Y: 5}},
		{"NaN y", geom.Point{X: 5, Y: math.NaN()}},
		{"+Inf x", geom.Point{X: math.Inf(1), Y: 0}},
		{"-Inf y", geom.Point{X: 0, Y: math.Inf(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := []geom.Point{{X: 0, Y: 0}, tc.p, {X: 3, Y: 4}}
			err := geom.CheckFinite(pts)
			require.ErrorIs(t, err, geom.ErrNonFinite)
			assert.Contains(t, err.Error(), "point 1")

			ps := geom.PointSet{IDs: []int64{1, 2, 3}, Points: pts}
			assert.ErrorIs(t, ps.Validate(), geom.ErrNonFinite)
		})
	}
}
