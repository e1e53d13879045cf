// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree algorithm.
// On a complete graph the dense O(n²) variant beats a heap-based one, so the
// frontier is a plain best-cost array scanned once per added vertex.
package prim_kruskal

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/twoopt/geom"
)

// Prim computes the Minimum Spanning Tree of the complete graph over points,
// growing from root.
//
// Steps:
//  1. n == 0 → empty MST; root must otherwise lie in [0..n-1] and every
//     coordinate must be finite (geom.ErrNonFinite).
//  2. bestCost[v] = d(root, v), parent[v] = root; root joins the tree.
//  3. Repeat n−1 times: pick the cheapest outside vertex u (smallest index on
//     ties), emit edge (parent[u], u), then relax bestCost through u.
//
// Edges are normalized so that U < V.
//
// Complexity: O(n²) time, O(n) memory.
func Prim(points []geom.Point, root int) ([]Edge, int64, error) {
	n := len(points)
	if n == 0 {
		return []Edge{}, 0, nil
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	if err := geom.CheckFinite(points); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	var (
		inTree   = bitset.New(uint(n))
		bestCost = make([]int64, n)
		parent   = make([]int, n)
		mst      = make([]Edge, 0, n-1)
		total    int64
		v, u     int
		minW     int64
		d        int64
	)
	inTree.Set(uint(root))
	for v = 0; v < n; v++ {
		bestCost[v] = geom.Distance(points[root], points[v])
		parent[v] = root
	}

	for len(mst) < n-1 {
		u, minW = -1, math.MaxInt64
		for v = 0; v < n; v++ {
			if !inTree.Test(uint(v)) && bestCost[v] < minW {
				u, minW = v, bestCost[v]
			}
		}
		inTree.Set(uint(u))
		mst = append(mst, normalizedEdge(parent[u], u, minW))
		total += minW

		for v = 0; v < n; v++ {
			if inTree.Test(uint(v)) {
				continue
			}
			if d = geom.Distance(points[u], points[v]); d < bestCost[v] {
				bestCost[v] = d
				parent[v] = u
			}
		}
	}

	return mst, total, nil
}

func normalizedEdge(a, b int, w int64) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b, Weight: w}
}
