// Package prim_kruskal defines configuration options, the Edge type and
// sentinel errors for MST computation over a planar point set.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/twoopt/geom"
)

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrRootOutOfRange indicates that the Prim root is not a valid point index.
var ErrRootOutOfRange = errors.New("prim_kruskal: root index out of range")

// ErrInvalidInput indicates an internal inconsistency while building the forest
// (an index the disjoint-set forest rejected). It is not expected on valid input.
var ErrInvalidInput = errors.New("prim_kruskal: invalid input")

// MethodPrim selects Prim's algorithm (dense O(n²) growth from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected pair of point indices with its rounded Euclidean weight.
// U < V for edges produced by this package.
type Edge struct {
	U      int
	V      int
	Weight int64
}

// MSTOptions configures which MST algorithm to run, and for Prim, which root to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start index for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting point index for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the Prim root; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
// Returns:
//
//	[]Edge - MST edges (empty for fewer than two points).
//	int64  - total weight.
//	error  - ErrUnknownMethod, ErrRootOutOfRange, geom.ErrNonFinite.
func Compute(points []geom.Point, opts ...Option) ([]Edge, int64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(points)
	case MethodPrim:
		return Prim(points, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}

// Adjacency returns, for each of n vertices, its neighbours in edges.
// Neighbour lists preserve the order in which edges are given.
//
// Complexity: O(n + len(edges)).
func Adjacency(n int, edges []Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}
