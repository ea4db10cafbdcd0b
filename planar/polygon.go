package planar

import "sort"

// Polygon is a simple (non-self-intersecting) closed loop of vertices, with
// vertex i joined to vertex (i+1) mod n. The first vertex is not repeated at
// the end. Nothing here validates simplicity; feed in a self-intersecting
// loop and the results are meaningless.
type Polygon []Vec2

// Classification of a point against a closed region (a circle or a polygon).
// The values are chosen so that comparisons against zero read naturally:
// negative is inside, positive is outside.
const (
	Inside     = -1
	OnBoundary = 0
	Outside    = 1
)

// SignedArea is the shoelace sum over the polygon's edges: positive when the
// vertices wind counterclockwise, negative clockwise.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, q := range poly {
		p := poly[(i+len(poly)-1)%len(poly)]
		area += (p.X - q.X) * (p.Y + q.Y)
	}
	return area / 2.0
}

// Area is the enclosed area of the polygon, independent of winding direction.
func (poly Polygon) Area() float64 {
	a := poly.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the polygon's vertices wind counterclockwise.
func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Reverse returns a copy of the polygon with the opposite winding direction.
func (poly Polygon) Reverse() Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// ContainsPoint classifies p against the polygon by winding number: Inside,
// OnBoundary, or Outside. Either winding direction works.
//
// Conceptually this casts a horizontal ray from p and accumulates signed
// crossings. The subtlety is edges with a vertex exactly at p's y level: a
// naive crossing test counts the shared vertex of two adjacent edges twice.
// Instead, only edges whose endpoints strictly straddle the ray contribute,
// and horizontal edges (which can never straddle) get their own on-segment
// check. Boundary hits on a straddling edge show up as a collinear CCW
// result.
func (poly Polygon) ContainsPoint(p Vec2) int {
	n := len(poly)
	w := 0
	for i, a := range poly {
		if Equal(p, a) {
			// The point is on a vertex
			return OnBoundary
		}
		b := poly[(i+1)%n]
		if Eq(p.Y, a.Y) && Eq(p.Y, b.Y) {
			// Horizontal edge; on it iff p.X is strictly between the endpoints
			lo, hi := a.X, b.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if Compare(lo, p.X) == -1 && Compare(p.X, hi) == -1 {
				return OnBoundary
			}
		} else {
			aBelow := a.Y < p.Y
			bBelow := b.Y < p.Y
			if aBelow != bBelow {
				// The edge straddles p's y level
				orientation := CCW(a, b, p)
				if orientation == 0 {
					return OnBoundary
				}
				if aBelow == (orientation == 1) {
					// p is on the crossing side of the edge
					if aBelow {
						w++
					} else {
						w--
					}
				}
			}
		}
	}
	if w == 0 {
		return Outside
	}
	return Inside
}

// ConvexHull computes the convex hull of the points by Andrew's monotone
// chain, returning the hull vertices in counterclockwise order starting from
// the lexicographically smallest point. The input slice is not modified.
//
// Three or fewer points are returned as-is, duplicates and all. Collinear
// points on the hull boundary are pruned; to keep them, the pop condition
// below would use CCW == -1 instead of CCW <= 0, in both chains.
func ConvexHull(points []Vec2) []Vec2 {
	ps := append([]Vec2(nil), points...)
	n := len(ps)
	if n <= 3 {
		return ps
	}

	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Less(ps[j])
	})

	hull := make([]Vec2, 0, 2*n)

	// Lower hull: sweep left to right, popping anything that stops being a
	// strict counterclockwise turn.
	for _, p := range ps {
		for len(hull) >= 2 && CCW(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper hull: same sweep right to left. The rightmost point is already in
	// place from the lower chain, so pops must never reach into it.
	floor := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		for len(hull) >= floor && CCW(hull[len(hull)-2], hull[len(hull)-1], ps[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, ps[i])
	}

	// The last point is the starting point again
	return hull[:len(hull)-1]
}
