// Package tsp - exhaustive 2-opt local search with randomized tie-breaking.
//
// Move space: for positions 0 ≤ i < k < n, reversing T[i..k] replaces the
// cycle edges (T[i−1],T[i]) and (T[k],T[k+1]) with (T[i−1],T[k]) and
// (T[i],T[k+1]); indices wrap, so i==0 uses T[n−1] and k==n−1 uses T[0].
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d),  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// Pairs with (k−i)+2 ≥ n are skipped: the segment plus both flanking edges
// would cover the whole cycle and the two "removed" edges would coincide.
//
// Selection per iteration (one full scan in increasing (i,k) order):
//   - Δ < best            → select (i,k), best = Δ.
//   - Δ == best           → coin flip; heads selects (i,k).
//   - after the scan, best ≥ 0 → local optimum, stop.
//   - otherwise reverse the selected segment and scan again.
//
// Every coin flip is drawn from the caller's Stream, so the same seed picks
// the same pair. The flip happens on every tie, which favours later pairs
// among a run of equal deltas; it is not a uniform choice among them.
//
// Termination: each applied move lowers the integer tour cost by at least 1
// and the cost is bounded below by 0.
//
// Complexity: O(n²) per iteration with O(1) deltas; O(k−i) per applied move.
package tsp

import (
	"math"

	"github.com/katalvlaran/twoopt/geom"
)

// minMovableTour is the smallest tour with a valid 2-opt pair under the
// (k−i)+2 < n exclusion.
const minMovableTour = 4

// Search runs the local-search engine selected by opts.Policy from start.
// start is not modified; the result owns a fresh tour.
//
// Contracts:
//   - m has n ≥ 1 points; start is a permutation of 0..n−1.
//   - rng is non-nil; it is consumed by tie-breaks (Exhaustive) or sampling (Sampled).
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrNilStream, and the option
// sentinels from validateOptions.
func Search(m geom.Metric, start Tour, rng Stream, opts Options) (SearchResult, error) {
	if err := validateSearch(m, start, rng, opts); err != nil {
		return SearchResult{}, err
	}

	return search(m, start.Clone(), rng, opts, 0, observerOrNop(opts.Observer)), nil
}

// search dispatches on a validated, owned tour.
func search(m geom.Metric, cur Tour, rng Stream, opts Options, restart int, obs Observer) SearchResult {
	if opts.Policy == Sampled {
		return sampledSwap(m, cur, rng, opts.Iterations, opts.Neighbors, restart, obs)
	}

	return twoOpt(m, cur, rng, restart, obs)
}

// twoOpt mutates cur in place until no strictly improving reversal exists.
func twoOpt(m geom.Metric, cur Tour, rng Stream, restart int, obs Observer) SearchResult {
	n := len(cur)
	cost := cur.Cost(m)
	if n < minMovableTour {
		return SearchResult{Tour: cur, Cost: cost}
	}

	var (
		steps, moves int
		best, delta  int64
		bi, bk       int
		i, k         int
		prev, next   int
	)
	for {
		steps++
		best = math.MaxInt64
		bi, bk = 0, 0

		for i = 0; i < n; i++ {
			prev = i - 1
			if i == 0 {
				prev = n - 1
			}
			for k = i + 1; k < n; k++ {
				if (k-i)+2 >= n {
					break // grows with k; no later k of this row is valid either
				}
				next = k + 1
				if next == n {
					next = 0
				}

				delta = m.Dist(cur[prev], cur[k]) + m.Dist(cur[i], cur[next]) -
					m.Dist(cur[prev], cur[i]) - m.Dist(cur[k], cur[next])

				if delta < best {
					best, bi, bk = delta, i, k
				} else if delta == best && coinFlip(rng) {
					bi, bk = i, k
				}
			}
		}

		if best >= 0 {
			break
		}

		// Indices come from the scan above and always satisfy 0 ≤ bi < bk < n.
		_ = cur.Reverse(bi, bk)
		cost += best
		moves++
		obs.OnMove(restart, cur, best, cost)
	}

	return SearchResult{Tour: cur, Cost: cost, Steps: steps, Moves: moves}
}

// ReversalDelta returns the cost change of reversing t[i..k].
// The pair must satisfy 0 ≤ i < k < n and (k−i)+2 < n.
//
// Complexity: O(1).
func ReversalDelta(m geom.Metric, t Tour, i, k int) (int64, error) {
	n := len(t)
	if i < 0 || i >= k || k >= n || (k-i)+2 >= n {
		return 0, ErrIndexOutOfRange
	}
	a := t[(i-1+n)%n]
	b := t[i]
	c := t[k]
	d := t[(k+1)%n]

	return m.Dist(a, c) + m.Dist(b, d) - m.Dist(a, b) - m.Dist(c, d), nil
}

// BestReversal scans every valid pair of t deterministically and returns the
// most negative delta with its first (i,k). ok is false when t has no valid pair.
//
// Complexity: O(n²).
func BestReversal(m geom.Metric, t Tour) (delta int64, i, k int, ok bool) {
	n := len(t)
	delta = math.MaxInt64
	var (
		a, b int
		d    int64
	)
	for a = 0; a < n; a++ {
		for b = a + 1; b < n && (b-a)+2 < n; b++ {
			d, _ = ReversalDelta(m, t, a, b)
			if d < delta {
				delta, i, k, ok = d, a, b, true
			}
		}
	}
	if !ok {
		return 0, 0, 0, false
	}

	return delta, i, k, true
}

// IsLocalOptimum reports whether no valid reversal strictly lowers the cost of t.
func IsLocalOptimum(m geom.Metric, t Tour) bool {
	d, _, _, ok := BestReversal(m, t)

	return !ok || d >= 0
}
