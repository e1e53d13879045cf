// Package geom defines planar points and the rounded Euclidean distance model
// shared by the MST builder and the local-search engine.
//
// Distance model:
//
//	d(a, b) = round( sqrt( (a.X-b.X)² + (a.Y-b.Y)² ) )
//
// The rounding is part of the contract: every cost in this module is an
// integer, so a 2-opt delta at a local optimum is exactly zero rather than a
// tiny floating-point residue. Coordinates may be integral or real; only the
// distance is rounded.
//
// Metric sources:
//
//   - Matrix: prefetches all n² distances into a dense buffer (w[u*n+v]).
//     O(n²) memory, O(1) lookups. The default for small and medium inputs.
//   - Lazy:   computes d(u, v) on every call from the point slice.
//     O(n) memory. Chosen by NewMetric when n exceeds the prefetch limit.
//
// Both satisfy Metric, which is the only view the solvers use.
package geom
