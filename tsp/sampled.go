// Package tsp - sampled swap search.
//
// Each iteration draws Neighbors random position pairs (i, j) from the Stream,
// scores the tour obtained by swapping T[i] and T[j], and keeps the cheapest
// candidate (first one wins on ties). The candidate replaces the current tour
// only when strictly cheaper. The run always spends the full Iterations budget.
//
// The best-so-far cost is averaged over the iterations and reported as
// SearchResult.MeanBestCost, a convergence measure for the run.
//
// Swap delta: exchanging T[i] and T[j] only touches the cycle edges starting at
// positions i−1, i, j−1 and j (mod n). Those positions are deduplicated, summed
// before and after the swap, and the swap is undone; O(1) per candidate.
package tsp

import "github.com/katalvlaran/twoopt/geom"

// sampledSwap mutates cur; the returned tour is a separate copy of the best seen.
func sampledSwap(m geom.Metric, cur Tour, rng Stream, iterations, neighbors, restart int, obs Observer) SearchResult {
	n := len(cur)
	curCost := cur.Cost(m)
	if n < 2 {
		return SearchResult{Tour: cur, Cost: curCost, MeanBestCost: float64(curCost)}
	}

	best := cur.Clone()
	bestCost := curCost

	var (
		moves            int
		sumBest          float64
		ci, cj, i, j     int
		candDelta, delta int64
	)
	for it := 0; it < iterations; it++ {
		ci, cj = rng.Intn(n), rng.Intn(n)
		candDelta = swapDelta(m, cur, ci, cj)
		for c := 1; c < neighbors; c++ {
			i, j = rng.Intn(n), rng.Intn(n)
			if delta = swapDelta(m, cur, i, j); delta < candDelta {
				ci, cj, candDelta = i, j, delta
			}
		}

		if candDelta < 0 {
			cur[ci], cur[cj] = cur[cj], cur[ci]
			curCost += candDelta
			moves++
			obs.OnMove(restart, cur, candDelta, curCost)
		}
		// bestCost ≤ curCost always holds, so only an accepted candidate can
		// improve the best.
		if curCost < bestCost {
			copy(best, cur)
			bestCost = curCost
		}
		sumBest += float64(bestCost)
	}

	mean := float64(bestCost)
	if iterations > 0 {
		mean = sumBest / float64(iterations)
	}

	return SearchResult{
		Tour:         best,
		Cost:         bestCost,
		Steps:        iterations,
		Moves:        moves,
		MeanBestCost: mean,
	}
}

// swapDelta returns Cost(t with positions i and j exchanged) − Cost(t).
// t is restored before returning.
func swapDelta(m geom.Metric, t Tour, i, j int) int64 {
	if i == j {
		return 0
	}
	n := len(t)

	var (
		pos [4]int
		cnt int
	)
	for _, p := range [4]int{(i - 1 + n) % n, i, (j - 1 + n) % n, j} {
		dup := false
		for q := 0; q < cnt; q++ {
			if pos[q] == p {
				dup = true
				break
			}
		}
		if !dup {
			pos[cnt] = p
			cnt++
		}
	}

	edges := func() int64 {
		var s int64
		for q := 0; q < cnt; q++ {
			s += m.Dist(t[pos[q]], t[(pos[q]+1)%n])
		}

		return s
	}

	before := edges()
	t[i], t[j] = t[j], t[i]
	after := edges()
	t[i], t[j] = t[j], t[i]

	return after - before
}
