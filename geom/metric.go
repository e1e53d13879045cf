package geom

import "math"

// DefaultPrefetchLimit is the largest n for which NewMetric builds a dense
// Matrix (n² int64 values, 128 MiB at the limit).
const DefaultPrefetchLimit = 4096

// Distance returns the rounded Euclidean distance between a and b.
// Coincident points are at distance zero.
//
// Complexity: O(1).
func Distance(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// Metric is a symmetric, non-negative integer cost over point indices 0..Len()-1.
type Metric interface {
	Len() int
	Dist(u, v int) int64
}

// Matrix is a dense, prefetched Metric. Row-major: w[u*n+v] = d(u, v).
type Matrix struct {
	n int
	w []int64
}

// NewMatrix prefetches all pairwise distances of points.
//
// Complexity: O(n²) time and space; only the upper triangle is computed.
func NewMatrix(points []Point) *Matrix {
	n := len(points)
	w := make([]int64, n*n)

	var (
		i, j int
		d    int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return &Matrix{n: n, w: w}
}

// Len returns the number of points.
func (m *Matrix) Len() int { return m.n }

// Dist returns the prefetched distance between u and v.
func (m *Matrix) Dist(u, v int) int64 { return m.w[u*m.n+v] }

// Lazy computes distances on demand.
type Lazy struct {
	points []Point
}

// NewLazy wraps points without copying them.
func NewLazy(points []Point) *Lazy { return &Lazy{points: points} }

// Len returns the number of points.
func (l *Lazy) Len() int { return len(l.points) }

// Dist returns Distance(points[u], points[v]).
func (l *Lazy) Dist(u, v int) int64 { return Distance(l.points[u], l.points[v]) }

// NewMetric returns a Matrix when len(points) <= limit, otherwise a Lazy.
// limit <= 0 selects DefaultPrefetchLimit.
func NewMetric(points []Point, limit int) Metric {
	if limit <= 0 {
		limit = DefaultPrefetchLimit
	}
	if len(points) <= limit {
		return NewMatrix(points)
	}

	return NewLazy(points)
}
