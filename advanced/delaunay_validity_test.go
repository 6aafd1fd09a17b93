package advanced

// This contains no actual tests. It is just a helper for checking the output
// of the triangulator.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Check that a triangulation is a valid Delaunay triangulation. The rules are:
// 1. Every vertex handle refers to the point it carries.
// 2. No triangle is degenerate.
// 3. Every triangle's cached circumcircle passes through its vertices.
// 4. No input point lies strictly inside any triangle's circumcircle.
// 5. No two triangles have the same vertex set.
func AssertValidDelaunay(t *testing.T, tri *Triangulation, tol Tolerance) {
	seen := make(map[[3]int]struct{})
	for _, triangle := range tri.Triangles {
		for _, v := range triangle.Vertices() {
			require.True(t, v.Handle >= 0 && v.Handle < len(tri.Points), "handle %d out of range", v.Handle)
			require.Same(t, tri.Points[v.Handle], v.Point, "handle %d does not match its point", v.Handle)
		}

		require.False(t, triangle.IsDegenerate(tol), "degenerate triangle: %s", triangle)

		// Scale the tolerance with the circle, since big circles lose precision
		scaled := Tolerance{Epsilon: tol.Epsilon * math.Max(1, triangle.Radius)}
		assert.True(t, triangle.circumcircleHolds(scaled), "circumcircle invariant broken: %s", triangle)

		for handle, p := range tri.Points {
			if handle == triangle.A.Handle || handle == triangle.B.Handle || handle == triangle.C.Handle {
				continue
			}
			distance := triangle.Center.DistanceTo(p)
			assert.False(t, distance < triangle.Radius-scaled.Epsilon,
				"point #%d (%g, %g) is inside the circumcircle of %s", handle, p.X, p.Y, triangle)
		}

		key := sortedHandles(triangle)
		_, duplicate := seen[key]
		assert.False(t, duplicate, "duplicate triangle: %s", triangle)
		seen[key] = struct{}{}
	}
}

// Total area of the triangles, for comparing against the convex hull.
func triangulatedArea(tri *Triangulation) float64 {
	var total float64
	for _, triangle := range tri.Triangles {
		total += Area(triangle)
	}
	return total
}

func sortedHandles(triangle *Triangle) [3]int {
	h := [3]int{triangle.A.Handle, triangle.B.Handle, triangle.C.Handle}
	if h[0] > h[1] {
		h[0], h[1] = h[1], h[0]
	}
	if h[1] > h[2] {
		h[1], h[2] = h[2], h[1]
	}
	if h[0] > h[1] {
		h[0], h[1] = h[1], h[0]
	}
	return h
}
