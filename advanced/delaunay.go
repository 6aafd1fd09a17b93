package advanced

import "math"

// The super triangle is padded this many times the larger dimension of the
// input's bounding box, so that no input point can land on its boundary.
const superTrianglePadding = 10

// The input points along with their Delaunay triangles. Each vertex's handle
// is its point's index in Points.
type Triangulation struct {
	Points    []*Point
	Triangles []*Triangle
}

func (tri *Triangulation) Vertex(handle int) Vertex {
	return Vertex{Point: tri.Points[handle], Handle: handle}
}

// Every distinct edge of the triangulation, in first-seen order.
func (tri *Triangulation) Edges() []Edge {
	seen := make(map[pairKey]struct{})
	var edges []Edge
	for _, t := range tri.Triangles {
		for _, e := range t.Edges() {
			if _, ok := seen[e.key()]; ok {
				continue
			}
			seen[e.key()] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Incremental Bowyer-Watson. Each point, in input order, knocks out every
// triangle whose circumcircle contains it, and the hole left behind is
// re-triangulated as a fan around the point. This is O(n²), since there is no
// spatial index to find the affected triangles. That's fine for the hundreds
// of points this is meant for.
//
// Fewer than three points produce no triangles. Duplicate and collinear points
// are not rejected, they just participate in degenerate triangles.
func Triangulate(points []*Point, tol Tolerance) *Triangulation {
	result := &Triangulation{Points: points}
	if len(points) < 3 {
		return result
	}

	triangles := []*Triangle{superTriangle(points, tol)}
	for i, p := range points {
		vertex := Vertex{Point: p, Handle: i}
		var bag edgeBag
		kept := make([]*Triangle, 0, len(triangles)+2)
		for _, t := range triangles {
			if t.InCircumcircle(p) {
				for _, e := range t.Edges() {
					bag.add(e)
				}
			} else {
				kept = append(kept, t)
			}
		}
		// Edges shared by two removed triangles are inside the hole; only the
		// boundary of the hole gets connected to the new point.
		for _, e := range bag.unique() {
			kept = append(kept, NewTriangle(e.A, e.B, vertex, tol))
		}
		triangles = kept
	}

	for _, t := range triangles {
		if !t.HasSuperVertex() {
			result.Triangles = append(result.Triangles, t)
		}
	}
	Logger().Debug("triangulated points",
		"points", len(points),
		"triangles", len(result.Triangles),
	)
	return result
}

func superTriangle(points []*Point, tol Tolerance) *Triangle {
	bounds := BoundingRect(points...)
	size := bounds.Size()
	span := math.Max(size.X, size.Y)
	if span < tol.Epsilon {
		span = 1
	}
	pad := superTrianglePadding * span
	center := bounds.Center()

	a := &Point{X: center.X - 2*pad, Y: center.Y - pad}
	b := &Point{X: center.X + 2*pad, Y: center.Y - pad}
	c := &Point{X: center.X, Y: center.Y + 2*pad}
	return NewTriangle(
		Vertex{Point: a, Handle: -1},
		Vertex{Point: b, Handle: -2},
		Vertex{Point: c, Handle: -3},
		tol,
	)
}

// Collects edges while counting how many times each one was added, keeping
// the order edges were first seen so that output is deterministic.
type edgeBag struct {
	edges  []Edge
	counts map[pairKey]int
}

func (bag *edgeBag) add(e Edge) {
	if bag.counts == nil {
		bag.counts = make(map[pairKey]int)
	}
	key := e.key()
	if bag.counts[key] == 0 {
		bag.edges = append(bag.edges, e)
	}
	bag.counts[key]++
}

func (bag *edgeBag) unique() []Edge {
	var result []Edge
	for _, e := range bag.edges {
		if bag.counts[e.key()] == 1 {
			result = append(result, e)
		}
	}
	return result
}
