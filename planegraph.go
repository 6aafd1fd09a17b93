// Geometric derivations over planar point and circle sets.
//
// From a set of points, this package derives the Delaunay triangulation, its
// Voronoi dual, the Urquhart graph (an approximation of the relative
// neighbourhood graph), the convex hull and the largest circle inscribed in
// that hull. From a set of circles, it derives the radical lines between
// crossing circles, which circles are nested inside others, and which arcs of
// each circle lie on the outline of their union.
//
// The functions here use DefaultTolerance and convert internal failures into
// errors. The advanced package exposes the same algorithms with an explicit
// tolerance, along with the lower level pieces.
package planegraph

import (
	"log/slog"

	"github.com/osuushi/planegraph/advanced"
)

type Point = advanced.Point
type Vertex = advanced.Vertex
type Edge = advanced.Edge
type Line = advanced.Line
type Circle = advanced.Circle
type Polygon = advanced.Polygon
type Triangle = advanced.Triangle
type Triangulation = advanced.Triangulation
type VoronoiCell = advanced.VoronoiCell
type VoronoiDiagram = advanced.VoronoiDiagram
type Incircle = advanced.Incircle
type CircularIntervalSet = advanced.CircularIntervalSet
type Interval = advanced.Interval
type Tolerance = advanced.Tolerance
type RadicalLineMatrix = advanced.Matrix[*advanced.Line]

var DefaultTolerance = advanced.DefaultTolerance

// Route debug output from the derivations to a logger. Pass nil to silence
// them again, which is the default.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

// Must be deferred directly, so that recover sees the panic.
func recoverDerivation(err *error) {
	if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
		*err = recovered
	}
}

// Delaunay triangulation of the points. Each vertex handle in the result is
// the index of its point in points.
func Triangulate(points []*Point) (result *Triangulation, err error) {
	defer recoverDerivation(&err)
	return advanced.Triangulate(points, DefaultTolerance), nil
}

// Voronoi cells for every point of a triangulation. Sites whose triangles
// couldn't be ordered are left out of the cells and reported in the
// diagram's FailedTriangleSets; that is not an error.
func Voronoi(tri *Triangulation) (result *VoronoiDiagram, err error) {
	defer recoverDerivation(&err)
	return advanced.Voronoi(tri, DefaultTolerance), nil
}

// Reduce a triangulation to its Urquhart graph.
func Urquhart(tri *Triangulation) (result []Edge, err error) {
	defer recoverDerivation(&err)
	return advanced.Urquhart(tri), nil
}

// Counterclockwise convex hull. Empty for fewer than three points, or points
// which are all collinear.
func ConvexHull(points []*Point) Polygon {
	return advanced.ConvexHull(points, DefaultTolerance)
}

// The largest circle inside a convex polygon. Check Found on the result.
func MaxInscribedCircle(hull Polygon) Incircle {
	return advanced.MaxInscribedCircle(hull, DefaultTolerance)
}

func RadicalLines(circles []Circle) (result *RadicalLineMatrix, err error) {
	defer recoverDerivation(&err)
	return advanced.RadicalLines(circles, DefaultTolerance), nil
}

func InnerCircles(circles []Circle) []int {
	return advanced.InnerCircles(circles, DefaultTolerance)
}

// The exposed arcs of each circle, computing the radical lines along the way.
func OuterIntervals(circles []Circle) (result []*CircularIntervalSet, err error) {
	defer recoverDerivation(&err)
	lines := advanced.RadicalLines(circles, DefaultTolerance)
	return advanced.OuterIntervals(circles, lines, DefaultTolerance), nil
}
