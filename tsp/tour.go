// Package tsp - the Tour type and its structural operations.
//
// A Tour is an open slice of n point indices interpreted as a cycle: the last
// position connects back to position 0. It owns its backing array; every
// mutation (Reverse, Swap) keeps it a permutation, which Validate checks.
//
// Design:
//   - No closing vertex is stored, so rotations are plain cyclic shifts.
//   - Mutations are in place and O(segment); no hidden allocations.
//   - Sentinel errors only (ErrIndexOutOfRange, ErrDimensionMismatch).
package tsp

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/twoopt/geom"
)

// Tour is an ordered sequence of point indices forming a closed cycle.
type Tour []int

// Identity returns the tour 0, 1, …, n-1 (the input order).
func Identity(n int) Tour {
	t := make(Tour, n)
	for i := range t {
		t[i] = i
	}

	return t
}

// Len returns the number of positions.
func (t Tour) Len() int { return len(t) }

// Clone returns an independent copy.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Reverse reverses positions [i..k] in place by swapping inward from both
// ends until they meet or cross. Requires 0 ≤ i ≤ k < n.
//
// Complexity: O(k-i).
func (t Tour) Reverse(i, k int) error {
	if i < 0 || k >= len(t) || i > k {
		return ErrIndexOutOfRange
	}
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}

	return nil
}

// Swap exchanges the points at positions i and j.
func (t Tour) Swap(i, j int) error {
	if i < 0 || i >= len(t) || j < 0 || j >= len(t) {
		return ErrIndexOutOfRange
	}
	t[i], t[j] = t[j], t[i]

	return nil
}

// Validate checks that t is a permutation of {0..n-1}.
//
// Complexity: O(n) time, n bits of scratch space.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return ErrDimensionMismatch
	}
	seen := bitset.New(uint(n))
	for _, v := range t {
		if v < 0 || v >= n || seen.Test(uint(v)) {
			return ErrDimensionMismatch
		}
		seen.Set(uint(v))
	}

	return nil
}

// Rotate returns a fresh tour shifted left by offset: out[j] = t[(offset+j) mod n].
// The cycle is unchanged; only the position of the seam moves.
func (t Tour) Rotate(offset int) Tour {
	n := len(t)
	out := make(Tour, n)
	if n == 0 {
		return out
	}
	offset %= n
	if offset < 0 {
		offset += n
	}
	copy(out, t[offset:])
	copy(out[n-offset:], t[:offset])

	return out
}

// Cost returns the closed-cycle cost of t under m, including the edge from
// the last position back to the first. Tours with fewer than two points cost 0.
//
// Complexity: O(n).
func (t Tour) Cost(m geom.Metric) int64 {
	n := len(t)
	if n < 2 {
		return 0
	}
	var sum int64
	for i := 1; i < n; i++ {
		sum += m.Dist(t[i-1], t[i])
	}

	return sum + m.Dist(t[n-1], t[0])
}

// Equal reports whether t and other list the same indices in the same order.
func (t Tour) Equal(other Tour) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}

	return true
}

// SameCycle reports whether t and other describe the same cycle, allowing
// rotation and reversal.
func (t Tour) SameCycle(other Tour) bool {
	n := len(t)
	if n != len(other) {
		return false
	}
	if n == 0 {
		return true
	}
	p := -1
	for j, v := range other {
		if v == t[0] {
			p = j
			break
		}
	}
	if p < 0 {
		return false
	}
	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if t[i] != other[(p+i)%n] {
			forward = false
		}
		if t[i] != other[((p-i)%n+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// IDs maps positions to the advisory identifiers of ps.
func (t Tour) IDs(ps geom.PointSet) []int64 {
	out := make([]int64, len(t))
	for i, v := range t {
		out[i] = ps.ID(v)
	}

	return out
}
