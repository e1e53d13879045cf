// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// on the complete graph induced by a point set and the rounded Euclidean distance.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/twoopt/dsu"
	"github.com/katalvlaran/twoopt/geom"
)

// Kruskal computes the Minimum Spanning Tree of the complete graph over points.
//
// Steps:
//  1. Non-finite coordinates → geom.ErrNonFinite. n < 2 → empty MST, weight 0
//     (no error; an empty input has an empty tree).
//  2. Generate all n·(n−1)/2 edges (i<j) in input order with geom.Distance weights.
//  3. Sort ascending by Weight with sort.SliceStable, so ties keep input order.
//  4. Scan every edge: if Find(u) != Find(v), record it and Union the two roots.
//     Scanning continues after the tree is complete; the remaining edges all
//     close cycles and are skipped.
//
// Complexity: O(n² log n) time (sorting n² edges), O(n²) memory.
func Kruskal(points []geom.Point) ([]Edge, int64, error) {
	if err := geom.CheckFinite(points); err != nil {
		return nil, 0, err
	}
	n := len(points)
	if n < 2 {
		return []Edge{}, 0, nil
	}

	// 2. Enumerate the complete graph.
	edges := make([]Edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Weight: geom.Distance(points[i], points[j])})
		}
	}

	// 3. Stable sort keeps generation order for equal weights.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Scan with a fresh forest; it is discarded on return.
	forest := dsu.New(n)
	var (
		mst         = make([]Edge, 0, n-1)
		totalWeight int64
		ru, rv      int
		err         error
	)
	for _, e := range edges {
		if ru, err = forest.Find(e.U); err != nil {
			return nil, 0, ErrInvalidInput
		}
		if rv, err = forest.Find(e.V); err != nil {
			return nil, 0, ErrInvalidInput
		}
		if ru == rv {
			continue
		}
		if err = forest.Union(ru, rv); err != nil {
			return nil, 0, ErrInvalidInput
		}
		mst = append(mst, e)
		totalWeight += e.Weight
	}

	return mst, totalWeight, nil
}
