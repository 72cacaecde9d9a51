// Package point defines Point, the 2-D coordinate type shared by every
// package in this module.
//
// # Overview
//
// A Point carries its own tolerance alongside its coordinates. Two points
// compare equal if their coordinates differ by no more than the larger of
// the two points' tolerances. This lets callers that know a cluster of
// points came from an imprecise source (digitized drawings, floating-point
// accumulation) mark them as such without having to thread a tolerance
// through every call site.
//
// Points are also totally ordered by the lexicographic rule the sweep uses
// to decide event order: decreasing y, then increasing x. [Point.Less]
// implements that order directly.
package point

import (
	"fmt"
	"math"

	"github.com/geosweep/sweepline/numeric"
	"github.com/geosweep/sweepline/options"
)

// Point represents a point in the plane with an associated positional
// tolerance.
type Point struct {
	x, y float64
	tol  float64
}

// New creates a Point at (x, y) with zero tolerance, unless opts set one:
// the epsilon given by [options.WithEpsilon] becomes the point's tolerance.
// [NewWithTolerance] sets the tolerance directly.
func New(x, y float64, opts ...options.GeometryOptionsFunc) Point {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return Point{x: x, y: y, tol: o.Epsilon}
}

// NewWithTolerance creates a Point at (x, y) with an explicit tolerance.
func NewWithTolerance(x, y, tol float64) Point {
	if tol < 0 {
		tol = 0
	}
	return Point{x: x, y: y, tol: tol}
}

// X returns the x-coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the y-coordinate.
func (p Point) Y() float64 { return p.y }

// Tolerance returns the point's positional tolerance.
func (p Point) Tolerance() float64 { return p.tol }

// WithTolerance returns a copy of p with its tolerance replaced.
func (p Point) WithTolerance(tol float64) Point {
	if tol < 0 {
		tol = 0
	}
	p.tol = tol
	return p
}

// effectiveTolerance returns the larger of the two points' tolerances,
// which is the tolerance [Eq] and [Compare] use for a pairwise comparison.
func effectiveTolerance(p, q Point) float64 {
	if p.tol > q.tol {
		return p.tol
	}
	return q.tol
}

// Eq reports whether p and q coincide within their combined tolerance.
func (p Point) Eq(q Point) bool {
	tol := effectiveTolerance(p, q)
	return numeric.FloatEquals(p.x, q.x, tol) && numeric.FloatEquals(p.y, q.y, tol)
}

// Less implements the event-point order used throughout the sweep: p
// precedes q if p.y > q.y, or p.y == q.y and p.x < q.x. This is a strict
// weak order over the tolerance-collapsed coordinates, so points within
// tolerance of one another compare equal rather than Less in either
// direction.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Compare returns -1, 0, or 1 as p precedes, coincides with (within
// tolerance), or follows q in the point order.
func (p Point) Compare(q Point) int {
	tol := effectiveTolerance(p, q)
	if numeric.FloatEquals(p.y, q.y, tol) {
		if numeric.FloatEquals(p.x, q.x, tol) {
			return 0
		}
		if p.x < q.x {
			return -1
		}
		return 1
	}
	if p.y > q.y {
		return -1
	}
	return 1
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// CrossProduct returns the 2-D cross product (determinant) of p and q
// treated as vectors from the origin: p.x*q.y - p.y*q.x.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q treated as vectors.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance from p to q.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance from p to q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// String returns p in "(x, y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
