// Package tsp - MST preorder tour.
//
// MSTTour builds the minimum spanning tree of the points (Kruskal, see
// prim_kruskal) and walks it depth-first from root, emitting every point the
// first time it is reached. Closing the walk into a cycle shortcuts the
// repeated tree edges, so for the rounded Euclidean metric the tour costs at
// most about twice the MST weight.
//
// Neighbours are visited in ascending index order, which makes the walk a
// pure function of the point set and root. No Stream is consumed.
//
// Complexity: O(n² log n) for the MST over the complete graph, O(n) for the walk.
package tsp

import (
	"sort"

	"github.com/katalvlaran/twoopt/geom"
	"github.com/katalvlaran/twoopt/prim_kruskal"
)

// MSTTour returns the preorder walk of the points' MST from root together
// with the MST weight.
//
// Errors: ErrEmptyInput for no points; ErrIndexOutOfRange for a bad root;
// prim_kruskal errors are forwarded.
func MSTTour(points []geom.Point, root int) (Tour, int64, error) {
	n := len(points)
	if n == 0 {
		return nil, 0, ErrEmptyInput
	}
	if root < 0 || root >= n {
		return nil, 0, ErrIndexOutOfRange
	}

	edges, weight, err := prim_kruskal.Compute(points, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	if err != nil {
		return nil, 0, err
	}

	return preorder(prim_kruskal.Adjacency(n, edges), root), weight, nil
}

// preorder walks a tree adjacency depth-first from root.
// Vertices unreachable from root are appended in index order.
func preorder(adj [][]int, root int) Tour {
	n := len(adj)
	for _, nb := range adj {
		sort.Ints(nb)
	}

	var (
		tour    = make(Tour, 0, n)
		visited = make([]bool, n)
		stack   = make([]int, 0, n)
		u, j    int
	)
	visit := func(start int) {
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[u] {
				continue
			}
			visited[u] = true
			tour = append(tour, u)
			// Push in reverse so the smallest neighbour is popped first.
			for j = len(adj[u]) - 1; j >= 0; j-- {
				if !visited[adj[u][j]] {
					stack = append(stack, adj[u][j])
				}
			}
		}
	}

	visit(root)
	for v := 0; v < n; v++ {
		if !visited[v] {
			visit(v)
		}
	}

	return tour
}
