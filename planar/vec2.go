package planar

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. It doubles as a point; the two interpretations are
// deliberately not separated into distinct types, because nearly every routine
// here needs to flip between them (a point is a displacement from the origin,
// an edge is the difference of two points, and so on).
//
// Vec2 is a plain value. Copying is cheap and the non-mutating methods always
// leave the receiver untouched. The few mutating methods (Set, Rotate,
// Normalize, and the *InPlace arithmetic) take a pointer receiver and return
// it, so they can be chained.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Less is the raw lexicographic order on (X, then Y). Note that unlike the
// geometric predicates, this is an exact comparison with no tolerance; it is
// used for sorting (see ConvexHull), where a tolerant comparator would not be
// a valid strict weak ordering.
func (v Vec2) Less(u Vec2) bool {
	return v.X < u.X || (v.X == u.X && v.Y < u.Y)
}

func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v.X + u.X, v.Y + u.Y}
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// AddScalar adds s to both components.
func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// SubScalar subtracts s from both components.
func (v Vec2) SubScalar(s float64) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

func (v *Vec2) AddInPlace(u Vec2) *Vec2 {
	v.X += u.X
	v.Y += u.Y
	return v
}

func (v *Vec2) SubInPlace(u Vec2) *Vec2 {
	v.X -= u.X
	v.Y -= u.Y
	return v
}

func (v *Vec2) MulInPlace(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

func (v *Vec2) DivInPlace(s float64) *Vec2 {
	v.X /= s
	v.Y /= s
	return v
}

// Dot is the dot product of v and u.
func Dot(v, u Vec2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Cross is the scalar cross product of v and u: the signed area of the
// parallelogram they span. Positive means u is a counterclockwise turn from v,
// negative clockwise, zero collinear.
func Cross(v, u Vec2) float64 {
	return v.X*u.Y - v.Y*u.X
}

// Equal compares two points componentwise within Epsilon.
func Equal(u, v Vec2) bool {
	return Eq(u.X, v.X) && Eq(u.Y, v.Y)
}

// FromPoints gives the displacement vector from p1 to p2.
func FromPoints(p1, p2 Vec2) Vec2 {
	return p2.Sub(p1)
}

// SquaredNorm is the squared length of v. Prefer it over Norm when only
// comparing lengths; it avoids the square root.
func (v Vec2) SquaredNorm() float64 {
	return Dot(v, v)
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Normalize scales v to unit length in place and returns it. A zero vector is
// left untouched (there is no direction to preserve), which is the one spot
// where an exact zero test is correct: any nonzero length, however tiny, can
// still be divided by.
func (v *Vec2) Normalize() *Vec2 {
	l := v.Norm()
	if l == 0 {
		return v
	}
	return v.MulInPlace(1.0 / l)
}

// Normalized returns a unit-length copy of v (or v itself if it is zero).
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Ortho is v rotated 90° clockwise.
func (v Vec2) Ortho() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Rotate rotates v counterclockwise by the given angle, in place.
func (v *Vec2) Rotate(radians float64) *Vec2 {
	c := math.Cos(radians)
	s := math.Sin(radians)
	tx := v.X*c - v.Y*s
	ty := v.X*s + v.Y*c
	v.X = tx
	v.Y = ty
	return v
}

// Rotated returns a copy of v rotated counterclockwise by the given angle.
func (v Vec2) Rotated(radians float64) Vec2 {
	v.Rotate(radians)
	return v
}

// ProjectedOnto is the vector projection of v onto u. If u is the zero vector
// the result is NaN in both components; it is the caller's job to exclude
// that.
func (v Vec2) ProjectedOnto(u Vec2) Vec2 {
	return u.Mul(Dot(v, u) / u.SquaredNorm())
}

// SignedParallelogramArea is the signed area of the parallelogram spanned by
// the edges p1→p2 and p2→p3. Positive when the three points make a
// counterclockwise turn.
func SignedParallelogramArea(p1, p2, p3 Vec2) float64 {
	return Cross(FromPoints(p1, p2), FromPoints(p2, p3))
}

func SignedTriangleArea(p1, p2, p3 Vec2) float64 {
	return SignedParallelogramArea(p1, p2, p3) / 2.0
}

func TriangleArea(p1, p2, p3 Vec2) float64 {
	return math.Abs(SignedTriangleArea(p1, p2, p3))
}

// CCW classifies the turn made by the three points: 1 for counterclockwise,
// -1 for clockwise, 0 for collinear (within tolerance).
//
// Every orientation decision in this package routes through CCW. That matters
// more than it looks: if the hull and the containment test made their turn
// decisions with different tolerances, a point that one considers on an edge
// could be strictly outside for the other.
func CCW(p1, p2, p3 Vec2) int {
	return Sign(Cross(FromPoints(p1, p2), FromPoints(p1, p3)))
}

func AreCollinear(p1, p2, p3 Vec2) bool {
	return CCW(p1, p2, p3) == 0
}

func Dist(p1, p2 Vec2) float64 {
	return FromPoints(p1, p2).Norm()
}

func SquaredDist(p1, p2 Vec2) float64 {
	return FromPoints(p1, p2).SquaredNorm()
}

// DistToLine returns the distance from p to the infinite line through a and b,
// along with the foot of the perpendicular. The segment a-b must have nonzero
// length; otherwise the projection divides by zero and the result is NaN.
func DistToLine(p, a, b Vec2) (float64, Vec2) {
	ap := FromPoints(a, p)
	ab := FromPoints(a, b)
	u := Dot(ap, ab) / ab.SquaredNorm()
	c := a.Add(ab.Mul(u))
	return Dist(p, c), c
}

// DistToSegment returns the distance from p to the segment a-b, along with the
// closest point on the segment. When the perpendicular foot falls outside the
// segment, the closest point snaps to the nearer endpoint. Same zero-length
// caveat as DistToLine.
func DistToSegment(p, a, b Vec2) (float64, Vec2) {
	ap := FromPoints(a, p)
	ab := FromPoints(a, b)
	u := Dot(ap, ab) / ab.SquaredNorm()
	if u < 0.0 {
		return Dist(a, p), a
	} else if u > 1.0 {
		return Dist(b, p), b
	}
	c := a.Add(ab.Mul(u))
	return Dist(p, c), c
}

func angleNormalized(u, v Vec2) float64 {
	return math.Acos(Dot(u, v))
}

// Angle is the unsigned angle between u and v, in [0, π]. Zero-length inputs
// produce NaN.
func Angle(u, v Vec2) float64 {
	return angleNormalized(u.Normalized(), v.Normalized())
}

// AngleAt is the angle at vertex o between the rays o→a and o→b.
func AngleAt(a, o, b Vec2) float64 {
	return Angle(a.Sub(o), b.Sub(o))
}

// InsideCircle classifies p against the circle centered at c with radius r:
// Inside (-1), OnBoundary (0, within tolerance on squared distances), or
// Outside (1).
func InsideCircle(p, c Vec2, r float64) int {
	sqLen := FromPoints(c, p).SquaredNorm()
	sqR := r * r
	if math.Abs(sqLen-sqR) < Epsilon {
		return OnBoundary
	} else if sqLen > sqR {
		return Outside
	}
	return Inside
}

// CircleCenter finds the center of a circle of radius r passing through both
// p1 and p2. There are generally two such centers, mirror images across the
// p1-p2 chord; this returns the one to the left of p1→p2. Swap the arguments
// for the other. Reports false when no such circle exists, i.e. when r is
// smaller than (or within tolerance of) half the distance between the points.
func CircleCenter(p1, p2 Vec2, r float64) (Vec2, bool) {
	d2 := SquaredDist(p1, p2)
	det := r*r/d2 - 0.25
	if det < Epsilon {
		return Vec2{}, false
	}
	h := math.Sqrt(det)
	return Vec2{
		X: (p1.X+p2.X)*0.5 + (p1.Y-p2.Y)*h,
		Y: (p1.Y+p2.Y)*0.5 + (p2.X-p1.X)*h,
	}, true
}
