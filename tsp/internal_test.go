package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoopt/geom"
)

func TestSwapDelta_MatchesFullRecompute(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{2, 3, 4, 5, 9} {
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
		}
		m := geom.NewMatrix(pts)
		tour := Identity(n)
		r.Shuffle(n, func(i, j int) { tour[i], tour[j] = tour[j], tour[i] })
		base := tour.Cost(m)
		orig := tour.Clone()

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				moved := tour.Clone()
				require.NoError(t, moved.Swap(i, j))
				assert.Equal(t, moved.Cost(m)-base, swapDelta(m, tour, i, j), "n=%d swap(%d,%d)", n, i, j)
				require.Equal(t, orig, tour, "swapDelta must restore the tour")
			}
		}
	}
}

func TestCoinFlip(t *testing.T) {
	var heads int
	s := NewStream(5)
	for i := 0; i < 10000; i++ {
		if coinFlip(s) {
			heads++
		}
	}
	assert.InDelta(t, 5000, heads, 300)
}

func TestDeriveStream_IndependentAndReproducible(t *testing.T) {
	a := deriveStream(NewStream(9), 0)
	b := deriveStream(NewStream(9), 0)
	c := deriveStream(NewStream(9), 1)
	for i := 0; i < 8; i++ {
		va, vb, vc := a.Int63(), b.Int63(), c.Int63()
		assert.Equal(t, va, vb)
		assert.NotEqual(t, va, vc)
	}
	assert.NotNil(t, deriveStream(nil, 0))
}

func TestDeriveSeed_Spreads(t *testing.T) {
	seen := make(map[int64]struct{})
	for id := uint64(0); id < 1000; id++ {
		seen[deriveSeed(1, id)] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestShuffleInPlace_Permutes(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	shuffleInPlace(a, NewStream(2))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, a)

	empty := []int{}
	shuffleInPlace(empty, NewStream(2))
	assert.Empty(t, empty)
}

func TestPreorder_SortsNeighboursAndCoversForest(t *testing.T) {
	// Tree 0-3, 0-1, 1-2 plus an isolated vertex 4.
	adj := [][]int{{3, 1}, {2, 0}, {1}, {0}, {}}
	assert.Equal(t, Tour{0, 1, 2, 3, 4}, preorder(adj, 0))
	assert.Equal(t, Tour{2, 1, 0, 3, 4}, preorder(adj, 2))
}

func TestValidateOptions(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Options)
		want error
	}{
		{"defaults", func(*Options) {}, nil},
		{"unknown policy", func(o *Options) { o.Policy = Policy(5) }, ErrUnknownPolicy},
		{"unknown start", func(o *Options) { o.Start = StartMode(-1) }, ErrUnknownStartMode},
		{"negative restarts", func(o *Options) { o.Restarts = -1 }, ErrBadRestarts},
		{"negative parallel", func(o *Options) { o.Parallel = -2 }, ErrBadParallel},
		{"sampled zero iterations", func(o *Options) { o.Policy, o.Iterations = Sampled, 0 }, ErrBadIterations},
		{"sampled zero neighbors", func(o *Options) { o.Policy, o.Neighbors = Sampled, 0 }, ErrBadNeighbors},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.mod(&o)
			assert.ErrorIs(t, validateOptions(o), tc.want)
		})
	}
}
