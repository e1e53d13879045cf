// Package tsp provides 2-opt local search for the Euclidean Travelling
// Salesman Problem.
//
// A Tour is a permutation of point indices read as a closed cycle; costs are
// sums of rounded Euclidean distances (see geom.Distance), so every cost is an
// int64 and every improving move lowers it by at least 1.
//
//   - Search: one local-search run from a given tour.
//
//   - Exhaustive: best 2-opt reversal per scan, randomized tie-break, runs to
//     a 2-opt local optimum.
//
//   - Sampled: best of Neighbors random index swaps per iteration, fixed
//     Iterations budget.
//
//   - MultiStart: ⌈√n⌉ (or Options.Restarts) runs from rotated, shuffled or
//     MST-derived starting tours with min/mean/stddev statistics.
//
//   - MSTTour: preorder walk of the minimum spanning tree.
//
// All randomness flows through an explicit Stream; the same seed reproduces
// every start tour and every tie-break.
//
// Use this package for instances of up to a few thousand points; the
// exhaustive scan is O(n²) per applied move.
package tsp
