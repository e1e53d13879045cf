package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch is returned when a PointSet has misaligned ids and points.
	ErrDimensionMismatch = errors.New("geom: ids and points length mismatch")

	// ErrNonFinite is returned for a point with a NaN or infinite coordinate.
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)

// Point is an immutable coordinate pair. Points are addressed by their
// position in the input sequence, never by value. Coordinates must be
// finite; Distance is undefined for NaN or ±Inf.
type Point struct {
	X float64
	Y float64
}

// PointSet keeps the advisory input identifiers aligned with the points.
// IDs[i] is the identifier read together with Points[i].
type PointSet struct {
	IDs    []int64
	Points []Point
}

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps.Points) }

// Validate checks that IDs (if present) align with Points and that every
// coordinate is finite.
func (ps PointSet) Validate() error {
	if ps.IDs != nil && len(ps.IDs) != len(ps.Points) {
		return ErrDimensionMismatch
	}

	return CheckFinite(ps.Points)
}

// CheckFinite returns ErrNonFinite, wrapped with the offending index, for the
// first point with a NaN or ±Inf coordinate.
func CheckFinite(points []Point) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d (%v, %v)", ErrNonFinite, i, p.X, p.Y)
		}
	}

	return nil
}

// ID returns the advisory identifier of point i, or i+1 when the set
// carries no identifiers (1-based, matching the usual input files).
func (ps PointSet) ID(i int) int64 {
	if ps.IDs == nil {
		return int64(i) + 1
	}

	return ps.IDs[i]
}
