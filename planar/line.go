package planar

import (
	"fmt"
	"math"
)

// Line is an infinite line in implicit form: the set of points satisfying
// A·x + B·y + C = 0. (A, B) is a normal direction of the line.
//
// The coefficients are NOT normalized to unit length. Each constructor
// produces its own scaling (LineFromPoints and LineFromPointSlope fix B = 1
// except in the vertical case, where A = 1), and the intersection routines
// assume exactly that scaling. In particular AreParallel compares raw
// coefficients, and the circle-intersection math is sensitive to the
// magnitude of (A, B). Mix construction paths, or rescale by hand, and those
// routines will happily give wrong answers. Normalize exists for callers that
// need unit normals, but its output is for their use, not for feeding back
// into this package's predicates alongside unnormalized lines.
type Line struct {
	A, B, C float64
}

func (l Line) String() string {
	return fmt.Sprintf("%g·x + %g·y + %g = 0", l.A, l.B, l.C)
}

// LineFromPoints builds the line through p1 and p2. Near-vertical input
// (|Δx| within tolerance) is special-cased to A=1, B=0, C=-x so the slope
// computation can't blow up.
func LineFromPoints(p1, p2 Vec2) Line {
	if math.Abs(p1.X-p2.X) < Epsilon {
		return Line{A: 1.0, B: 0.0, C: -p1.X}
	}
	a := -(p1.Y - p2.Y) / (p1.X - p2.X)
	return Line{A: a, B: 1.0, C: -(a * p1.X) - p1.Y}
}

// LineFromPointSlope builds the line of slope m through p.
func LineFromPointSlope(p Vec2, m float64) Line {
	l := Line{A: -m, B: 1.0}
	l.C = -((l.A * p.X) + (l.B * p.Y))
	return l
}

// AreParallel reports whether the two lines have the same normal direction,
// comparing coefficients directly. Both lines must come from the same
// construction path (see the Line doc); identical lines are parallel too.
func AreParallel(l1, l2 Line) bool {
	return Eq(l1.A, l2.A) && Eq(l1.B, l2.B)
}

// AreSameLine reports whether the two lines are the same line, with the same
// construction-path caveat as AreParallel.
func AreSameLine(l1, l2 Line) bool {
	return AreParallel(l1, l2) && Eq(l1.C, l2.C)
}

// IntersectLines solves for the point common to both lines. Reports false for
// parallel input, which covers both "no intersection" and "same line"; use
// AreSameLine first if that distinction matters.
func IntersectLines(l1, l2 Line) (Vec2, bool) {
	if AreParallel(l1, l2) {
		return Vec2{}, false
	}
	var p Vec2
	p.X = (l2.B*l1.C - l1.B*l2.C) / (l2.A*l1.B - l1.A*l2.B)
	// Recover y from whichever line isn't near-vertical.
	if math.Abs(l1.B) > Epsilon {
		p.Y = -(l1.A*p.X + l1.C)
	} else {
		p.Y = -(l2.A*p.X + l2.C)
	}
	return p, true
}

// Eval is the left-hand side of the line equation at p. Zero (within
// tolerance, scaled by the coefficient magnitudes) means p is on the line.
func (l Line) Eval(p Vec2) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Normal returns (A, B) as a vector. Not necessarily unit length.
func (l Line) Normal() Vec2 {
	return Vec2{l.A, l.B}
}

// Translate shifts the line by the displacement d, in place, and returns it.
// Only C changes; the normal is unaffected by translation.
func (l *Line) Translate(d Vec2) *Line {
	l.C -= l.A*d.X + l.B*d.Y
	return l
}

// Translated returns a copy of the line shifted by d.
func (l Line) Translated(d Vec2) Line {
	l.Translate(d)
	return l
}

// Normalize scales the coefficients so the normal has unit length, in place,
// and returns the line. This gives up the construction-path scaling the
// intersection routines rely on; see the Line doc.
func (l *Line) Normalize() *Line {
	n := math.Hypot(l.A, l.B)
	if n == 0 {
		return l
	}
	l.A /= n
	l.B /= n
	l.C /= n
	return l
}

// Normalized returns a copy of the line with a unit-length normal.
func (l Line) Normalized() Line {
	l.Normalize()
	return l
}

// CircleIntersect intersects the line with the circle of radius r centered at
// the origin. Returns the number of intersections (0, 1 for tangent, or 2)
// along with the points; p2 is meaningful only when n is 2, and neither point
// is meaningful when n is 0.
//
// The construction projects the origin onto the line to get the closest
// point, then walks along the line direction by the half-chord length. The
// tangency test compares squared distances scaled by (A² + B²) to avoid a
// square root.
func (l Line) CircleIntersect(r float64) (p1, p2 Vec2, n int) {
	ab2 := l.A*l.A + l.B*l.B
	x0 := -l.A * l.C / ab2
	y0 := -l.B * l.C / ab2
	if l.C*l.C > r*r*ab2+Epsilon {
		return Vec2{}, Vec2{}, 0
	}
	if math.Abs(l.C*l.C-r*r*ab2) < Epsilon {
		return Vec2{x0, y0}, Vec2{}, 1
	}
	d := r*r - l.C*l.C/ab2
	mult := math.Sqrt(d / ab2)
	p1 = Vec2{x0 + l.B*mult, y0 - l.A*mult}
	p2 = Vec2{x0 - l.B*mult, y0 + l.A*mult}
	return p1, p2, 2
}

// CircleIntersectAt intersects the line with the circle of radius r centered
// at center, by translating the problem to the origin and shifting the
// results back.
func (l Line) CircleIntersectAt(r float64, center Vec2) (p1, p2 Vec2, n int) {
	p1, p2, n = l.Translated(center.Neg()).CircleIntersect(r)
	p1.AddInPlace(center)
	p2.AddInPlace(center)
	return p1, p2, n
}
