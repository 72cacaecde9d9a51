package segment

import (
	"fmt"
	"math"

	"github.com/geosweep/sweepline/options"
	"github.com/geosweep/sweepline/point"
)

// Tag classifies the result of [Intersect].
type Tag uint8

const (
	// Disjoint means the segments do not meet.
	Disjoint Tag = iota
	// Vertex means the segments meet at a shared endpoint.
	Vertex
	// InteriorS1 means the intersection lies in the interior of s1 and at
	// an endpoint of s2.
	InteriorS1
	// InteriorS2 means the intersection lies at an endpoint of s1 and in
	// the interior of s2.
	InteriorS2
	// Interior means the intersection lies in the interior of both segments.
	Interior
	// Coincide means the segments are collinear and overlap on a sub-segment.
	Coincide
	// PointsVertex means both segments are degenerate (single points) and
	// those points coincide.
	PointsVertex
	// PointsOnS1 means s2 is degenerate and its point lies on s1.
	PointsOnS1
	// PointsOnS2 means s1 is degenerate and its point lies on s2.
	PointsOnS2
)

// String renders a Tag in lowercase, hyphenated form, e.g. "interior-s1" or
// "points-vertex".
func (t Tag) String() string {
	switch t {
	case Disjoint:
		return "disjoint"
	case Vertex:
		return "vertex"
	case InteriorS1:
		return "interior-s1"
	case InteriorS2:
		return "interior-s2"
	case Interior:
		return "interior"
	case Coincide:
		return "coincide"
	case PointsVertex:
		return "points-vertex"
	case PointsOnS1:
		return "points-on-s1"
	case PointsOnS2:
		return "points-on-s2"
	default:
		panic(fmt.Errorf("unsupported intersection tag: %d", t))
	}
}

// Result is the tagged outcome of [Intersect].
type Result struct {
	Tag Tag
	// Point is the intersection point, set for every Tag except Disjoint
	// and Coincide.
	Point point.Point
	// Overlap is the overlapping sub-segment, set only when Tag == Coincide.
	Overlap Segment
}

// Intersect classifies the intersection of s1 and s2 following the
// parametric form u(s) = a + s(b-a), v(t) = c + t(d-c): s and t are solved
// for, then classified by membership in {0}, (0,1), {1}. The returned
// point's tolerance is at least epsilon, and at least twice the distance
// between the two parametric evaluations when they disagree - this is what
// lets a tolerant queue lookup collapse near-coincident crossings into one
// event.
//
// Intersect(s1, s2) and Intersect(s2, s1) agree on point and tag, up to the
// InteriorS1/InteriorS2 tag swap implied by swapping which segment is "s1".
func Intersect(s1, s2 Segment, opts ...options.GeometryOptionsFunc) Result {
	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: options.DefaultEpsilon}, opts...)
	eps := o.Epsilon
	if eps <= 0 {
		eps = options.DefaultEpsilon
	}

	if s1.IsDegenerate() && s2.IsDegenerate() {
		a, _ := s1.Endpoints()
		c, _ := s2.Endpoints()
		if a.Eq(c) {
			return Result{Tag: PointsVertex, Point: a.WithTolerance(eps)}
		}
		return Result{Tag: Disjoint}
	}
	if s1.IsDegenerate() {
		a, _ := s1.Endpoints()
		if s2.ContainsPoint(a) {
			return Result{Tag: PointsOnS1, Point: a.WithTolerance(eps)}
		}
		return Result{Tag: Disjoint}
	}
	if s2.IsDegenerate() {
		c, _ := s2.Endpoints()
		if s1.ContainsPoint(c) {
			return Result{Tag: PointsOnS2, Point: c.WithTolerance(eps)}
		}
		return Result{Tag: Disjoint}
	}

	a, b := s1.Endpoints()
	c, d := s2.Endpoints()
	dir1 := b.Sub(a)
	dir2 := d.Sub(c)
	denom := dir1.CrossProduct(dir2)

	if denom == 0 {
		ac := c.Sub(a)
		if ac.CrossProduct(dir1) != 0 {
			return Result{Tag: Disjoint}
		}
		return intersectCollinear(s1, s2, a, b, c, d, dir1, eps)
	}

	ac := c.Sub(a)
	sParam := ac.CrossProduct(dir2) / denom
	tParam := ac.CrossProduct(dir1) / denom

	if sParam < 0 || sParam > 1 || tParam < 0 || tParam > 1 {
		return Result{Tag: Disjoint}
	}

	ps := point.New(a.X()+sParam*dir1.X(), a.Y()+sParam*dir1.Y())
	pt := point.New(c.X()+tParam*dir2.X(), c.Y()+tParam*dir2.Y())

	tol := eps
	if d2 := 2 * ps.DistanceToPoint(pt); d2 > tol {
		tol = d2
	}
	result := ps.WithTolerance(tol)

	sEnd := sParam == 0 || sParam == 1
	tEnd := tParam == 0 || tParam == 1

	switch {
	case sEnd && tEnd:
		return Result{Tag: Vertex, Point: result}
	case !sEnd && tEnd:
		return Result{Tag: InteriorS1, Point: result}
	case sEnd && !tEnd:
		return Result{Tag: InteriorS2, Point: result}
	default:
		return Result{Tag: Interior, Point: result}
	}
}

// intersectCollinear handles the denom == 0, collinear case by projecting
// c and d onto the line through a and b and intersecting the two resulting
// parameter ranges.
func intersectCollinear(s1, s2 Segment, a, b, c, d, dir1 point.Point, eps float64) Result {
	denomSq := dir1.DotProduct(dir1)
	tStart := c.Sub(a).DotProduct(dir1) / denomSq
	tEnd := d.Sub(a).DotProduct(dir1) / denomSq
	if tStart > tEnd {
		tStart, tEnd = tEnd, tStart
	}

	overlapStart := math.Max(0, tStart)
	overlapEnd := math.Min(1, tEnd)
	if overlapStart > overlapEnd {
		return Result{Tag: Disjoint}
	}

	start := point.New(a.X()+overlapStart*dir1.X(), a.Y()+overlapStart*dir1.Y()).WithTolerance(eps)
	end := point.New(a.X()+overlapEnd*dir1.X(), a.Y()+overlapEnd*dir1.Y()).WithTolerance(eps)

	if start.Eq(end) {
		sEnd := overlapStart == 0 || overlapStart == 1
		if sEnd {
			return Result{Tag: Vertex, Point: start}
		}
		return Result{Tag: InteriorS1, Point: start}
	}

	return Result{Tag: Coincide, Overlap: New(start, end)}
}
