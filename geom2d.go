// Planar computational geometry primitives for Go.
//
// This package is the friendly face of the library: type aliases for the core
// types and wrappers that report geometric degeneracies as errors. The
// underlying planar package communicates the same conditions through sentinel
// return values (booleans and intersection counts), which is the right shape
// for algorithmic code calling these routines in a tight loop; use it
// directly if that's you.
package geom2d

import (
	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/planar"
)

type Point = planar.Vec2
type Line = planar.Line
type Polygon = planar.Polygon

// Tolerance used by every comparison in the library. Fixed for the life of
// the process.
const Epsilon = planar.Epsilon

// Inf is a convenience sentinel for "unbounded" values in caller code.
const Inf = planar.Inf

// Containment classifications, shared by circle and polygon tests.
const (
	Inside     = planar.Inside
	OnBoundary = planar.OnBoundary
	Outside    = planar.Outside
)

var (
	// ErrParallel is reported when two lines don't meet in a single point.
	// This covers both truly parallel lines and two copies of the same line;
	// check planar.AreSameLine if you need to tell them apart.
	ErrParallel = errors.New("lines are parallel")

	// ErrCoincidentCircles is reported when two circles are the same circle,
	// so every point of either is an intersection.
	ErrCoincidentCircles = errors.New("circles are coincident")

	// ErrNoSuchCircle is reported when no circle of the requested radius
	// passes through both points.
	ErrNoSuchCircle = errors.New("no circle with that radius passes through both points")
)

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return planar.V(x, y)
}

// Intersection returns the point where the two lines cross, or ErrParallel.
func Intersection(l1, l2 Line) (Point, error) {
	p, ok := planar.IntersectLines(l1, l2)
	if !ok {
		return Point{}, errors.Wrapf(ErrParallel, "%s and %s", l1, l2)
	}
	return p, nil
}

// CircleCenter returns the center of a circle of radius r through both
// points, or ErrNoSuchCircle when r is too small for the gap between them.
// There are generally two such centers; this returns the one to the left of
// p1→p2, and swapping the arguments gives the other.
func CircleCenter(p1, p2 Point, r float64) (Point, error) {
	c, ok := planar.CircleCenter(p1, p2, r)
	if !ok {
		return Point{}, errors.Wrapf(ErrNoSuchCircle, "radius %g through %s and %s", r, p1, p2)
	}
	return c, nil
}

// LineCircleIntersections returns the 0, 1 (tangent) or 2 points where the
// line meets the circle of radius r centered at center.
func LineCircleIntersections(l Line, r float64, center Point) []Point {
	p1, p2, n := l.CircleIntersectAt(r, center)
	switch n {
	case 1:
		return []Point{p1}
	case 2:
		return []Point{p1, p2}
	}
	return nil
}

// CircleIntersections returns the points where the two circles meet: empty
// for none, one point for tangency, two otherwise. Coincident circles (same
// center and radius) have infinitely many intersections and report
// ErrCoincidentCircles.
func CircleIntersections(r1 float64, c1 Point, r2 float64, c2 Point) ([]Point, error) {
	p1, p2, n := planar.TwoCircleIntersectAt(r1, c1, r2, c2)
	switch n {
	case -1:
		return nil, errors.Wrapf(ErrCoincidentCircles, "radius %g at %s", r1, c1)
	case 1:
		return []Point{p1}, nil
	case 2:
		return []Point{p1, p2}, nil
	}
	return nil, nil
}

// ConvexHull returns the convex hull of the points in counterclockwise
// order. See planar.ConvexHull for the treatment of degenerate input.
func ConvexHull(points []Point) []Point {
	return planar.ConvexHull(points)
}

// Area returns the area enclosed by a simple polygon, whichever way it winds.
func Area(poly Polygon) float64 {
	return poly.Area()
}

// ContainsPoint classifies p against a simple polygon: Inside, OnBoundary or
// Outside.
func ContainsPoint(poly Polygon, p Point) int {
	return poly.ContainsPoint(p)
}
