package point

import (
	"github.com/geosweep/sweepline/numeric"
	"github.com/geosweep/sweepline/types"
)

// Orientation determines whether p, q, r form a collinear, clockwise, or
// counterclockwise triple, using the cross product of (q-p) and (r-p). The
// collinearity threshold is the sum of the pairwise tolerances (p,q) and
// (p,r); when both are zero it is instead scaled by the distances involved,
// so long segments don't spuriously register as non-collinear.
func Orientation(p, q, r Point) types.PointOrientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))
	eps := effectiveTolerance(p, q) + effectiveTolerance(p, r)
	if eps == 0 {
		eps = (p.DistanceToPoint(q) + p.DistanceToPoint(r)) * 1e-9
	}
	if numeric.Abs(val) <= eps {
		return types.PointsCollinear
	}
	if val > 0 {
		return types.PointsCounterClockwise
	}
	return types.PointsClockwise
}

// Collinear reports whether a, b, and c lie on a single straight line,
// mirroring the original pointIsColinear predicate.
func Collinear(a, b, c Point) bool {
	return Orientation(a, b, c) == types.PointsCollinear
}

// Between reports whether c lies within the closed bounding rectangle of a
// and b, inclusive of the boundary and widened on every side by c's
// tolerance, mirroring the original pointIsBetween
// predicate. It does not by itself check collinearity; callers that need
// "c lies on segment ab" should combine Between with Collinear.
func Between(a, b, c Point) bool {
	lo, hi := a.x, b.x
	if lo > hi {
		lo, hi = hi, lo
	}
	if c.x < lo-c.tol || c.x > hi+c.tol {
		return false
	}
	lo, hi = a.y, b.y
	if lo > hi {
		lo, hi = hi, lo
	}
	if c.y < lo-c.tol || c.y > hi+c.tol {
		return false
	}
	return true
}
