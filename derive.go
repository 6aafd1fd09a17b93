package planegraph

import "github.com/osuushi/planegraph/advanced"

// Everything this package knows how to derive, computed together. Point
// derived fields are empty when there are no points, and circle derived
// fields are empty when there are no circles.
type Derivation struct {
	Points        []*Point
	Triangulation *Triangulation
	Voronoi       *VoronoiDiagram
	Urquhart      []Edge
	Hull          Polygon
	Incircle      Incircle

	Circles      []Circle
	RadicalLines *RadicalLineMatrix
	InnerCircles []int
	// Exposed arcs, indexed like Circles
	Exposed []*CircularIntervalSet
}

// Run every derivation with the given tolerance.
func Derive(points []*Point, circles []Circle, tol Tolerance) (result *Derivation, err error) {
	defer recoverDerivation(&err)

	d := &Derivation{Points: points, Circles: circles}
	d.Triangulation = advanced.Triangulate(points, tol)
	d.Voronoi = advanced.Voronoi(d.Triangulation, tol)
	d.Urquhart = advanced.Urquhart(d.Triangulation)
	d.Hull = advanced.ConvexHull(points, tol)
	d.Incircle = advanced.MaxInscribedCircle(d.Hull, tol)

	d.RadicalLines = advanced.RadicalLines(circles, tol)
	d.InnerCircles = advanced.InnerCircles(circles, tol)
	d.Exposed = advanced.OuterIntervals(circles, d.RadicalLines, tol)

	advanced.Logger().Debug("derived",
		"points", len(points),
		"circles", len(circles),
		"voronoiFailures", len(d.Voronoi.FailedTriangleSets),
	)
	return d, nil
}
