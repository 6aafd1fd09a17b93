package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSymmetric(t *testing.T, marks *Matrix[EdgeMark]) {
	for i := 0; i < marks.Size(); i++ {
		for j := 0; j < marks.Size(); j++ {
			assert.Equal(t, marks.Get(i, j), marks.Get(j, i), "asymmetric marks at (%d, %d)", i, j)
		}
	}
}

func TestUrquhart_UnitSquare(t *testing.T) {
	tri := Triangulate(UnitSquare(), DefaultTolerance)
	marks := UrquhartMatrix(tri)
	assertSymmetric(t, marks)

	edges := Urquhart(tri)
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.InDelta(t, 1, e.Length(), 1e-12, "edge %s should be a side of the square", e)
		assert.Greater(t, e.A.Handle, e.B.Handle)
	}

	// The diagonal is dropped, whichever one the triangulation chose
	dropped := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			if marks.Get(i, j) == Drop {
				dropped++
				assert.InDelta(t, math.Sqrt2, tri.Points[i].DistanceTo(tri.Points[j]), 1e-12)
			}
		}
	}
	assert.Equal(t, 1, dropped)
}

func TestUrquhart_Scatter(t *testing.T) {
	points := Scatter(60, 9)
	tri := Triangulate(points, DefaultTolerance)
	marks := UrquhartMatrix(tri)
	assertSymmetric(t, marks)

	delaunayEdges := make(map[pairKey]struct{})
	for _, e := range tri.Edges() {
		delaunayEdges[e.key()] = struct{}{}
	}

	edges := Urquhart(tri)
	require.NotEmpty(t, edges)
	assert.Less(t, len(edges), len(delaunayEdges))
	for _, e := range edges {
		_, ok := delaunayEdges[e.key()]
		assert.True(t, ok, "urquhart edge %s is not a delaunay edge", e)
		assert.Equal(t, Keep, marks.Get(e.A.Handle, e.B.Handle))
	}

	// No kept edge is the longest edge of any triangle
	for _, triangle := range tri.Triangles {
		edges := triangle.Edges()
		longest := edges[0]
		for _, e := range edges[1:] {
			if e.Length() > longest.Length() {
				longest = e
			}
		}
		assert.Equal(t, Drop, marks.Get(longest.A.Handle, longest.B.Handle))
	}
}

// Every relative neighbourhood graph edge must survive the reduction. An edge
// pq is in the RNG when no third point is closer to both p and q than they
// are to each other.
func TestUrquhart_ContainsRelativeNeighbourhoodGraph(t *testing.T) {
	points := Scatter(40, 21)
	tri := Triangulate(points, DefaultTolerance)
	kept := make(map[pairKey]struct{})
	for _, e := range Urquhart(tri) {
		kept[e.key()] = struct{}{}
	}

	for _, e := range tri.Edges() {
		length := e.Length()
		isRNG := true
		for _, r := range points {
			if r == e.A.Point || r == e.B.Point {
				continue
			}
			if math.Max(r.DistanceTo(e.A.Point), r.DistanceTo(e.B.Point)) < length {
				isRNG = false
				break
			}
		}
		if isRNG {
			_, ok := kept[e.key()]
			assert.True(t, ok, "RNG edge %s was removed", e)
		}
	}
}

func TestUrquhart_DropDominatesKeep(t *testing.T) {
	tol := DefaultTolerance
	// Two triangles sharing edge 0-2. It is the shortest edge of the first
	// triangle but the longest of the second, which is processed later.
	points := []*Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 1}, {X: -0.2, Y: 0.5}}
	tri := &Triangulation{Points: points}
	tri.Triangles = []*Triangle{
		NewTriangle(tri.Vertex(0), tri.Vertex(1), tri.Vertex(2), tol),
		NewTriangle(tri.Vertex(0), tri.Vertex(2), tri.Vertex(3), tol),
	}
	marks := UrquhartMatrix(tri)
	assert.Equal(t, Drop, marks.Get(0, 2))
	assert.Equal(t, Drop, marks.Get(2, 0))

	// Reversing the order doesn't bring it back
	tri.Triangles[0], tri.Triangles[1] = tri.Triangles[1], tri.Triangles[0]
	marks = UrquhartMatrix(tri)
	assert.Equal(t, Drop, marks.Get(0, 2))
	assert.Equal(t, Untouched, marks.Get(1, 3))
}

func TestUrquhart_HandleOutOfRangePanics(t *testing.T) {
	tol := DefaultTolerance
	tri := &Triangulation{Points: UnitSquare()[:2]}
	v := vertices(&Point{0, 0}, &Point{1, 0}, &Point{0, 1})
	tri.Triangles = []*Triangle{NewTriangle(v[0], v[1], v[2], tol)}

	err := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		UrquhartMatrix(tri)
		return nil
	}()
	assert.EqualError(t, err, "matrix index (1, 2) out of range for size 2")
}
