package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Count the polygon edge lines that the circle touches.
func touchingLines(polygon Polygon, circle *Circle) int {
	count := 0
	for _, l := range polygon.EdgeLines() {
		if math.Abs(l.DistanceTo(&circle.Center)-circle.Radius) < 1e-7 {
			count++
		}
	}
	return count
}

func TestMaxInscribedCircle_Square(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}}
	hull := ConvexHull(points, DefaultTolerance)
	result := MaxInscribedCircle(hull, DefaultTolerance)
	require.True(t, result.Found())
	assert.InDelta(t, 1, result.Circle.Center.X, 1e-9)
	assert.InDelta(t, 1, result.Circle.Center.Y, 1e-9)
	assert.InDelta(t, 1, result.Circle.Radius, 1e-9)
	assert.Equal(t, 4, touchingLines(hull, result.Circle))

	require.NotNil(t, result.Triangle)
	for _, v := range result.Triangle.Vertices() {
		assert.True(t, v.Handle >= 0 && v.Handle < 4, "contact handle %d is not an edge index", v.Handle)
		assert.InDelta(t, 1, result.Circle.Center.DistanceTo(v.Point), 1e-9)
	}
}

func TestMaxInscribedCircle_Triangle(t *testing.T) {
	// 3-4-5 right triangle, whose inradius is (3 + 4 - 5) / 2
	polygon := Polygon{Points: []*Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}}
	result := MaxInscribedCircle(polygon, DefaultTolerance)
	require.True(t, result.Found())
	assert.InDelta(t, 1, result.Circle.Center.X, 1e-9)
	assert.InDelta(t, 1, result.Circle.Center.Y, 1e-9)
	assert.InDelta(t, 1, result.Circle.Radius, 1e-9)
	assert.Equal(t, 3, touchingLines(polygon, result.Circle))
}

func TestMaxInscribedCircle_ClockwiseInput(t *testing.T) {
	polygon := Polygon{Points: []*Point{{X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}}}
	require.True(t, IsCW(polygon))
	result := MaxInscribedCircle(polygon, DefaultTolerance)
	require.True(t, result.Found())
	assert.InDelta(t, 1, result.Circle.Center.X, 1e-9)
	assert.InDelta(t, 1, result.Circle.Center.Y, 1e-9)
	assert.InDelta(t, 1, result.Circle.Radius, 1e-9)
}

func TestMaxInscribedCircle_Hexagon(t *testing.T) {
	polygon := Polygon{Points: RegularPolygon(6, 2)}
	result := MaxInscribedCircle(polygon, DefaultTolerance)
	require.True(t, result.Found())
	assert.InDelta(t, 0, result.Circle.Center.X, 1e-9)
	assert.InDelta(t, 0, result.Circle.Center.Y, 1e-9)
	// The apothem
	assert.InDelta(t, math.Sqrt(3), result.Circle.Radius, 1e-9)
	assert.Equal(t, 6, touchingLines(polygon, result.Circle))
}

func TestMaxInscribedCircle_Rectangle(t *testing.T) {
	// A 4×2 rectangle has a whole row of largest circles. Any of them will do.
	polygon := Polygon{Points: []*Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}}
	result := MaxInscribedCircle(polygon, DefaultTolerance)
	require.True(t, result.Found())
	assert.InDelta(t, 1, result.Circle.Radius, 1e-9)
	assert.InDelta(t, 1, result.Circle.Center.Y, 1e-9)
	assert.GreaterOrEqual(t, result.Circle.Center.X, 1-1e-9)
	assert.LessOrEqual(t, result.Circle.Center.X, 3+1e-9)
	assert.GreaterOrEqual(t, touchingLines(polygon, result.Circle), 3)
}

func TestMaxInscribedCircle_ScatterHull(t *testing.T) {
	hull := ConvexHull(Scatter(40, 8), DefaultTolerance)
	result := MaxInscribedCircle(hull, DefaultTolerance)
	require.True(t, result.Found())
	assert.True(t, hull.ContainsPointByEvenOdd(&result.Circle.Center))
	for _, l := range hull.EdgeLines() {
		assert.GreaterOrEqual(t, l.SegmentDistanceTo(&result.Circle.Center), result.Circle.Radius-1e-6)
	}
	assert.GreaterOrEqual(t, touchingLines(hull, result.Circle), 3)
}

func TestMaxInscribedCircle_NotFound(t *testing.T) {
	result := MaxInscribedCircle(Polygon{}, DefaultTolerance)
	assert.False(t, result.Found())
	assert.Nil(t, result.Circle)
	assert.Nil(t, result.Triangle)

	result = MaxInscribedCircle(Polygon{Points: UnitSquare()[:2]}, DefaultTolerance)
	assert.False(t, result.Found())
}

func TestInternalBisector(t *testing.T) {
	tol := DefaultTolerance
	bottom := Line{A: Point{0, 0}, B: Point{2, 0}}
	right := Line{A: Point{2, 0}, B: Point{2, 2}}
	top := Line{A: Point{2, 2}, B: Point{0, 2}}

	bisector, ok := internalBisector(bottom, right, tol)
	require.True(t, ok)
	assert.InDelta(t, 0, bisector.DistanceTo(&Point{1, 1}), 1e-12)

	// Facing each other, the mid-line
	bisector, ok = internalBisector(bottom, top, tol)
	require.True(t, ok)
	assert.InDelta(t, 0, bisector.DistanceTo(&Point{5, 1}), 1e-12)
	assert.True(t, bisector.IsParallel(bottom, tol))

	// Facing the same way, nothing
	_, ok = internalBisector(bottom, Line{A: Point{0, 1}, B: Point{2, 1}}, tol)
	assert.False(t, ok)
}
