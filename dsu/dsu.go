// Package dsu provides a disjoint-set forest over the integer range [0..n-1].
//
// Every element starts as its own root. A root is marked by the parent value
// -1 ("none"); Find follows parent links until it reaches such a node. Path
// compression is applied on the way back, which changes the shape of the
// forest but never which root an element resolves to.
//
// Union takes two distinct roots and attaches the first under the second.
// Callers (Kruskal) are expected to check Find(u) != Find(v) before calling.
//
// Complexity:
//   - Find:  amortized near-O(1) with compression, O(depth) worst case.
//   - Union: O(1).
//   - Memory: O(n).
package dsu

import "errors"

// none marks a root in the parent slice.
const none = -1

// Sentinel errors.
var (
	// ErrOutOfRange indicates an element outside [0..n-1].
	ErrOutOfRange = errors.New("dsu: element out of range")

	// ErrNotRoot indicates that Union received an element that is not a root.
	ErrNotRoot = errors.New("dsu: union argument is not a root")

	// ErrSameSet indicates that Union received the same root twice.
	ErrSameSet = errors.New("dsu: union of a set with itself")
)

// DisjointSet is a union-find forest. The zero value is an empty forest.
// It is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	sets   int
}

// New returns a forest of n singleton sets.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = none
	}

	return &DisjointSet{parent: parent, sets: n}
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets currently in the forest.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the root of the set containing x.
func (d *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, ErrOutOfRange
	}

	root := x
	for d.parent[root] != none {
		root = d.parent[root]
	}
	// Compress: point every node on the walked path straight at root.
	for d.parent[x] != none {
		x, d.parent[x] = d.parent[x], root
	}

	return root, nil
}

// Union attaches root rx under root ry. Both must be roots of different sets.
func (d *DisjointSet) Union(rx, ry int) error {
	if rx < 0 || rx >= len(d.parent) || ry < 0 || ry >= len(d.parent) {
		return ErrOutOfRange
	}
	if d.parent[rx] != none || d.parent[ry] != none {
		return ErrNotRoot
	}
	if rx == ry {
		return ErrSameSet
	}
	d.parent[rx] = ry
	d.sets--

	return nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}
