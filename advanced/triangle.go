package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planegraph/dbg"
	"github.com/pkg/errors"
)

// A triangle along with its circumcircle. Center, Radius and RadiusSquared
// are a cache derived from A, B and C. If you move the vertices, call
// Recompute before asking the triangle anything about its circumcircle.
type Triangle struct {
	A, B, C       Vertex
	Center        Point
	Radius        float64
	RadiusSquared float64
}

func NewTriangle(a, b, c Vertex, tol Tolerance) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	t.Recompute(tol)
	return t
}

// Build a triangle from the first three vertices of a slice. This is a usage
// helper, so a short slice is an error rather than a degenerate triangle.
func TriangleFromVertices(vertices []Vertex, tol Tolerance) (*Triangle, error) {
	if len(vertices) < 3 {
		return nil, errors.Errorf("a triangle needs at least 3 vertices, got %d", len(vertices))
	}
	return NewTriangle(vertices[0], vertices[1], vertices[2], tol), nil
}

// Recompute the circumcircle by intersecting perpendicular bisectors, using
// the determinant form. Nearly collinear triangles have no usable
// circumcircle, so they fall back to a circle around their bounding box.
func (t *Triangle) Recompute(tol Tolerance) {
	a, b, c := t.A.Point, t.B.Point, t.C.Point
	A := b.X - a.X
	B := b.Y - a.Y
	C := c.X - a.X
	D := c.Y - a.Y
	E := A*(a.X+b.X) + B*(a.Y+b.Y)
	F := C*(a.X+c.X) + D*(a.Y+c.Y)
	G := 2 * (A*(c.Y-b.Y) - B*(c.X-b.X))

	if tol.IsZero(G) {
		bounds := BoundingRect(a, b, c)
		t.Center = pointFromVec(bounds.Center())
		lo := pointFromVec(bounds.Lo())
		t.Radius = t.Center.DistanceTo(&lo)
	} else {
		t.Center = Point{X: (D*E - B*F) / G, Y: (A*F - C*E) / G}
		t.Radius = t.Center.DistanceTo(a)
	}
	t.RadiusSquared = t.Radius * t.Radius
}

// Whether the triangle's vertices are collinear, within tolerance.
func (t *Triangle) IsDegenerate(tol Tolerance) bool {
	return tol.IsZero(Cross(t.A.Point, t.B.Point, t.C.Point))
}

// Boundary inclusive.
func (t *Triangle) InCircumcircle(p *Point) bool {
	return t.Center.SquaredDistanceTo(p) <= t.RadiusSquared
}

func (t *Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t.A, t.B, t.C}
}

func (t *Triangle) Corners() []*Point {
	return []*Point{t.A.Point, t.B.Point, t.C.Point}
}

func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t *Triangle) HasVertex(p *Point, tol Tolerance) bool {
	return tol.SamePoint(t.A.Point, p) || tol.SamePoint(t.B.Point, p) || tol.SamePoint(t.C.Point, p)
}

// Whether any vertex belongs to the super triangle.
func (t *Triangle) HasSuperVertex() bool {
	return t.A.Handle < 0 || t.B.Handle < 0 || t.C.Handle < 0
}

func (t *Triangle) SharedVertexCount(other *Triangle, tol Tolerance) int {
	count := 0
	for _, v := range t.Vertices() {
		if other.HasVertex(v.Point, tol) {
			count++
		}
	}
	return count
}

// Two triangles are adjacent when they share an edge, meaning exactly two
// vertices.
func (t *Triangle) Adjacent(other *Triangle, tol Tolerance) bool {
	return t.SharedVertexCount(other, tol) == 2
}

func (t *Triangle) Circumcircle() Circle {
	return Circle{Center: t.Center, Radius: t.Radius}
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s <A: %s, B: %s, C: %s, center: (%g, %g), r: %g>",
		t.DbgName(),
		t.A.String(),
		t.B.String(),
		t.C.String(),
		t.Center.X,
		t.Center.Y,
		t.Radius,
	)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.HasSuperVertex() {
		name = aurora.Cyan(name).String()
	} else if t.IsDegenerate(DefaultTolerance) {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (v Vertex) String() string {
	if v.Point == nil {
		return fmt.Sprintf("#%d Ø", v.Handle)
	}
	return fmt.Sprintf("#%d (%g, %g)", v.Handle, v.X, v.Y)
}

// Order independent, by handle.
func (e Edge) SameHandles(other Edge) bool {
	return (e.A.Handle == other.A.Handle && e.B.Handle == other.B.Handle) ||
		(e.A.Handle == other.B.Handle && e.B.Handle == other.A.Handle)
}

// Order independent, by position.
func (e Edge) Equals(other Edge, tol Tolerance) bool {
	return (tol.SamePoint(e.A.Point, other.A.Point) && tol.SamePoint(e.B.Point, other.B.Point)) ||
		(tol.SamePoint(e.A.Point, other.B.Point) && tol.SamePoint(e.B.Point, other.A.Point))
}

func (e Edge) Length() float64 {
	return e.A.DistanceTo(e.B.Point)
}

func (e Edge) Line() Line {
	return Line{A: *e.A.Point, B: *e.B.Point}
}

// Key for the unordered handle pair.
func (e Edge) key() pairKey {
	return newPairKey(e.A.Handle, e.B.Handle)
}

func (e Edge) String() string {
	return fmt.Sprintf("%s–%s", e.A.String(), e.B.String())
}

// Float equality would be too strict for comparing circumcircles, so this is
// mostly useful for tests.
func (t *Triangle) circumcircleHolds(tol Tolerance) bool {
	ra := t.Center.DistanceTo(t.A.Point)
	rb := t.Center.DistanceTo(t.B.Point)
	rc := t.Center.DistanceTo(t.C.Point)
	return math.Abs(ra-rb) < tol.Epsilon && math.Abs(ra-rc) < tol.Epsilon
}
