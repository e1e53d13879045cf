// Package prim_kruskal computes Minimum Spanning Trees over a planar point set,
// where every pair of points is joined by an edge weighted with the rounded
// Euclidean distance (geom.Distance).
//
// What & Why
//
//   - The MST weight is a lower bound on the optimal TSP tour: deleting any
//     edge of a tour leaves a spanning path, which weighs at least the MST.
//     The tour solver reports it before optimization starts, so users can
//     judge how far a local optimum is from the bound.
//   - The MST also yields a cheap starting tour (preorder walk, see tsp.MSTTour).
//
// Algorithms Provided
//
//   - Kruskal(points) ([]Edge, int64, error)
//
//   - Strategy: build all n·(n−1)/2 edges, stable-sort by weight, scan them in
//     order and keep an edge when its endpoints have different roots in a
//     dsu.DisjointSet; then unite the two roots.
//
//   - Complexity: O(n² log n) time, O(n²) space.
//
//   - Determinism: edges are generated in (i, j) input order and sorted stably,
//     so equal weights are resolved by input order.
//
//   - Prim(points, root) ([]Edge, int64, error)
//
//   - Strategy: dense Prim growing from root; the frontier is an array of best
//     connection costs, scanned once per added vertex.
//
//   - Complexity: O(n²) time, O(n) space. Preferred for large n because it
//     never materializes the edge list.
//
// Error Conditions
//
//   - Fewer than two points is not an error: the MST is empty with weight 0.
//   - ErrRootOutOfRange (Prim only): root outside [0..n-1] on a non-empty input.
//   - ErrUnknownMethod (Compute only): MSTOptions.Method is neither constant.
//
// Both algorithms return n−1 edges for n ≥ 1 and the same total weight; the
// edge sets may differ when weights tie.
package prim_kruskal
