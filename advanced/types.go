package advanced

// Points are always passed around by pointer. The algorithms never modify a
// point from the caller's input, and the pointers double as cheap identities
// when debugging. Identity for the algorithms themselves comes from the handle
// on Vertex, never from coordinate equality.
type Point struct {
	X float64
	Y float64
}

// A Vertex pairs a point with its handle, which is the point's index in the
// input slice it came from. Vertices of the super triangle used during
// triangulation have negative handles.
type Vertex struct {
	*Point
	Handle int
}

// An unordered pair of vertices.
type Edge struct {
	A, B Vertex
}

type Circle struct {
	Center Point
	Radius float64
}

// A line through two points. Depending on the operation it is treated as the
// segment between A and B, or as the infinite line through them.
type Line struct {
	A, B Point
}

// An ordered ring of points. Open polygons should be drawn as a path rather
// than a closed loop.
type Polygon struct {
	Points []*Point
	IsOpen bool
}

type PointStack []*Point

type PointSet map[*Point]struct{}
