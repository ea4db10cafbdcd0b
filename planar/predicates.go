package planar

import "math"

// All floating point comparison in this package is tolerance based. Geometric
// inputs are rarely exact, and chains of arithmetic (projections, rotations,
// intersection solves) accumulate rounding noise; without a tolerance we'd
// classify nearly-touching configurations essentially at random. Note that
// tolerant comparison is not transitive: a ≈ b and b ≈ c do not imply a ≈ c.
// That is the precision contract of this package, not a bug.
const Epsilon = 1e-9

// Inf is a convenience sentinel for callers that need an "unbounded" distance
// or coordinate. It is never produced or consumed by this package itself.
const Inf = 1e100

// IsZero reports whether x is within Epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Eq reports whether x and y are within Epsilon of each other.
func Eq(x, y float64) bool {
	return IsZero(x - y)
}

// Compare returns -1 if x < y, 0 if x ≈ y, and 1 if x > y.
func Compare(x, y float64) int {
	if math.Abs(x-y) < Epsilon {
		return 0
	}
	if x < y {
		return -1
	}
	return 1
}

// Sign returns -1, 0 or 1 for negative, (approximately) zero, or positive x.
func Sign(x float64) int {
	return Compare(x, 0)
}
