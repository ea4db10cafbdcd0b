package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoCircleIntersect(t *testing.T) {
	t.Run("externally tangent", func(t *testing.T) {
		p1, _, n := TwoCircleIntersect(1, 1, V(2, 0))
		require.Equal(t, 1, n)
		assertVec(t, V(1, 0), p1)
	})

	t.Run("overlapping", func(t *testing.T) {
		p1, p2, n := TwoCircleIntersect(5, 5, V(1, 0))
		require.Equal(t, 2, n)

		// Both points lie on both circles
		for _, p := range []Vec2{p1, p2} {
			assert.InDelta(t, 5.0, p.Norm(), Epsilon)
			assert.InDelta(t, 5.0, Dist(p, V(1, 0)), Epsilon)
		}
		// ... symmetric about the line joining the centers
		assert.InDelta(t, p1.X, p2.X, Epsilon)
		assert.InDelta(t, -p1.Y, p2.Y, Epsilon)
		assert.InDelta(t, 0.5, p1.X, Epsilon)
		assert.InDelta(t, math.Sqrt(25-0.25), math.Abs(p1.Y), Epsilon)
	})

	t.Run("disjoint", func(t *testing.T) {
		_, _, n := TwoCircleIntersect(1, 1, V(10, 0))
		assert.Equal(t, 0, n)
	})

	t.Run("concentric same radius", func(t *testing.T) {
		_, _, n := TwoCircleIntersect(2, 2, V(0, 0))
		assert.Equal(t, -1, n, "coincident circles intersect everywhere")
	})

	t.Run("concentric different radius", func(t *testing.T) {
		// One circle strictly inside the other; reported the same as disjoint
		_, _, n := TwoCircleIntersect(2, 5, V(0, 0))
		assert.Equal(t, 0, n)
		_, _, n = TwoCircleIntersect(5, 2, V(1e-11, -1e-11))
		assert.Equal(t, 0, n, "a center within tolerance of the origin is concentric")
	})
}

func TestTwoCircleIntersectAt(t *testing.T) {
	t.Run("translated tangency", func(t *testing.T) {
		p1, _, n := TwoCircleIntersectAt(1, V(5, 5), 1, V(7, 5))
		require.Equal(t, 1, n)
		assertVec(t, V(6, 5), p1)
	})

	t.Run("translated overlap", func(t *testing.T) {
		c1 := V(-3, 2)
		c2 := V(-2, 2)
		p1, p2, n := TwoCircleIntersectAt(5, c1, 5, c2)
		require.Equal(t, 2, n)
		for _, p := range []Vec2{p1, p2} {
			assert.InDelta(t, 5.0, Dist(p, c1), Epsilon)
			assert.InDelta(t, 5.0, Dist(p, c2), Epsilon)
		}
		// Symmetry is now about the horizontal line through the centers
		assert.InDelta(t, p1.X, p2.X, Epsilon)
		assert.InDelta(t, 2.0, (p1.Y+p2.Y)/2, Epsilon)
	})

	t.Run("coincident", func(t *testing.T) {
		_, _, n := TwoCircleIntersectAt(3, V(1, 1), 3, V(1, 1))
		assert.Equal(t, -1, n)
	})
}
