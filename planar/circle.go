package planar

// TwoCircleIntersect intersects two circles: the first centered at the
// origin with radius r1, the second at c2 with radius r2. Returns the number
// of intersection points along with the points themselves, or -1 for
// infinitely many (the circles coincide). As with CircleIntersect, p2 is only
// meaningful when n is 2, and neither point when n is 0 or -1.
//
// Concentric circles with different radii report 0. Note this does not
// distinguish "disjoint" from "one strictly contains the other"; either way
// there is no intersection.
//
// The general case reduces to line-circle intersection: subtracting the two
// circle equations cancels the quadratic terms and leaves the radical line,
// which carries exactly the points of equal power with respect to both
// circles. Intersecting it with the second circle gives the answer. The
// radical line's coefficients must be used as built here; see the Line doc.
func TwoCircleIntersect(r1, r2 float64, c2 Vec2) (p1, p2 Vec2, n int) {
	if IsZero(c2.X) && IsZero(c2.Y) {
		if Eq(r1, r2) {
			return Vec2{}, Vec2{}, -1
		}
		return Vec2{}, Vec2{}, 0
	}
	l := Line{
		A: -2.0 * c2.X,
		B: -2.0 * c2.Y,
		C: c2.SquaredNorm() + r1*r1 - r2*r2,
	}
	return l.CircleIntersect(r2)
}

// TwoCircleIntersectAt is TwoCircleIntersect with both centers free: it
// translates the first circle to the origin, delegates, and shifts the
// results back.
func TwoCircleIntersectAt(r1 float64, c1 Vec2, r2 float64, c2 Vec2) (p1, p2 Vec2, n int) {
	p1, p2, n = TwoCircleIntersect(r1, r2, c2.Sub(c1))
	p1.AddInPlace(c1)
	p2.AddInPlace(c1)
	return p1, p2, n
}
