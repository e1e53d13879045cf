// Package twoopt computes approximate Euclidean TSP tours over 2-D points
// with multi-start 2-opt local search, and reports the MST weight as a
// lower bound.
//
// Under the hood, everything is organized in subpackages:
//
//	geom/         - Point, rounded Euclidean Distance, prefetched and lazy metrics
//	dsu/          - union-find with path compression
//	prim_kruskal/ - minimum spanning tree (Kruskal, Prim)
//	tsp/          - Tour, exhaustive and sampled local search, multi-start driver
//	pointio/      - "id x y" point files, plain or zstd/lz4 compressed
//	report/       - text and JSON run reports
//	metrics/      - Prometheus observer for moves and restarts
//	cmd/twoopt    - command-line front end
//
// Quick start:
//
//	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 10, Y: 0}}
//	st, _ := tsp.MultiStart(ctx, pts, tsp.NewStream(1), tsp.DefaultOptions())
//	fmt.Println(st.MinCost, st.Best.Tour) // 40 and a square tour
//
// Every random decision (start offsets, shuffles, tie-breaks, sampling) is
// drawn from an explicit tsp.Stream, so a fixed seed reproduces a run.
package twoopt
