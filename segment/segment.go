// Package segment defines Segment, a finite straight line between two
// [point.Point] values, along with the ordering and intersection predicates
// the sweep needs: canonical endpoint ordering, the segment's X position at
// a horizontal sweep line, and the tagged segment-segment intersection
// classification used to drive the Bentley-Ottmann event queue.
package segment

import (
	"fmt"

	"github.com/geosweep/sweepline/numeric"
	"github.com/geosweep/sweepline/point"
)

// Segment is a straight line between two points, as originally given by the
// caller. Use [Segment.Ordered] to obtain the canonical lower/upper pair the
// sweep relies on.
type Segment struct {
	a, b point.Point
}

// New creates a Segment from two endpoints, in the order given.
func New(a, b point.Point) Segment {
	return Segment{a: a, b: b}
}

// Endpoints returns the segment's endpoints in the order they were given to
// [New].
func (s Segment) Endpoints() (a, b point.Point) {
	return s.a, s.b
}

// Ordered returns the segment's endpoints in the canonical lower/upper order
// used by the sweep: upper precedes lower under [point.Point.Less] (greater
// y first, then smaller x wins the "upper" position).
func (s Segment) Ordered() (lower, upper point.Point) {
	if s.a.Less(s.b) {
		return s.b, s.a
	}
	return s.a, s.b
}

// IsDegenerate reports whether the segment's endpoints coincide, i.e. it is
// really just a point.
func (s Segment) IsDegenerate() bool {
	return s.a.Eq(s.b)
}

// IsVertical reports whether the segment has a constant x (a vertical line
// in the plane the sweep moves down through).
func (s Segment) IsVertical() bool {
	return s.a.X() == s.b.X()
}

// IsHorizontal reports whether the segment has constant y.
func (s Segment) IsHorizontal() bool {
	return s.a.Y() == s.b.Y()
}

// Slope returns dy/dx for the segment. ok is false for a vertical segment,
// where slope is undefined.
func (s Segment) Slope() (slope float64, ok bool) {
	if s.IsVertical() {
		return 0, false
	}
	return (s.b.Y() - s.a.Y()) / (s.b.X() - s.a.X()), true
}

// InverseSlope returns dx/dy for the segment, the quantity the status tree
// uses to break X ties at a sweep point. ok is false for a horizontal
// segment, where the inverse slope is undefined.
func (s Segment) InverseSlope() (invSlope float64, ok bool) {
	if s.IsHorizontal() {
		return 0, false
	}
	return (s.b.X() - s.a.X()) / (s.b.Y() - s.a.Y()), true
}

// ErrOutsideSweep is returned by [Segment.XAtSweepY] when the sweep line
// does not cross the segment's y-range.
type ErrOutsideSweep struct {
	Segment Segment
	Y       float64
}

func (e *ErrOutsideSweep) Error() string {
	return fmt.Sprintf("segment %s does not cross sweep line y=%g", e.Segment, e.Y)
}

// XAtSweepY computes the segment's X position where it crosses the
// horizontal sweep line y = sweepY: vertical segments report their fixed x;
// horizontal segments report sweepX when it falls within their span, else
// their lexicographically-smaller endpoint's x; segments touched exactly at
// an endpoint report that endpoint's x; otherwise X is linearly
// interpolated.
func (s Segment) XAtSweepY(sweepX, sweepY float64) (float64, error) {
	lower, upper := s.Ordered()
	tol := lower.Tolerance()
	if upper.Tolerance() > tol {
		tol = upper.Tolerance()
	}
	ylo, yhi := upper.Y(), lower.Y()
	if ylo > yhi {
		ylo, yhi = yhi, ylo
	}
	if numeric.FloatLessThan(sweepY, ylo, tol) || numeric.FloatGreaterThan(sweepY, yhi, tol) {
		return 0, &ErrOutsideSweep{Segment: s, Y: sweepY}
	}
	if s.IsVertical() {
		return s.a.X(), nil
	}
	if s.IsHorizontal() {
		lo, hi := s.a.X(), s.b.X()
		if lo > hi {
			lo, hi = hi, lo
		}
		if numeric.FloatGreaterThanOrEqualTo(sweepX, lo, tol) && numeric.FloatLessThanOrEqualTo(sweepX, hi, tol) {
			return sweepX, nil
		}
		if lower.X() < upper.X() {
			return lower.X(), nil
		}
		return upper.X(), nil
	}
	if sweepY == s.a.Y() {
		return s.a.X(), nil
	}
	if sweepY == s.b.Y() {
		return s.b.X(), nil
	}
	x := s.a.X() + (sweepY-s.a.Y())*(s.b.X()-s.a.X())/(s.b.Y()-s.a.Y())
	return numeric.SnapToEpsilon(x, tol), nil
}

// ContainsPoint reports whether p lies on the segment (within the larger of
// p's and the segment endpoints' tolerances).
func (s Segment) ContainsPoint(p point.Point) bool {
	if s.IsDegenerate() {
		return s.a.Eq(p)
	}
	return point.Collinear(s.a, s.b, p) && point.Between(s.a, s.b, p)
}

// Eq reports whether s and other have the same endpoints, in either order.
func (s Segment) Eq(other Segment) bool {
	return (s.a.Eq(other.a) && s.b.Eq(other.b)) || (s.a.Eq(other.b) && s.b.Eq(other.a))
}

// String renders the segment as "(x1, y1)-(x2, y2)".
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.a, s.b)
}

