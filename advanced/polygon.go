package advanced

import "math"

// Anything with an ordered ring of corners. Both polygons and triangles can
// be measured for area and winding.
type Shape interface {
	Corners() []*Point
}

func (poly Polygon) Corners() []*Point {
	return poly.Points
}

// Shoelace formula. Positive for counterclockwise rings.
func SignedArea(shape Shape) float64 {
	points := shape.Corners()
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func Area(shape Shape) float64 {
	return math.Abs(SignedArea(shape))
}

func IsCCW(shape Shape) bool {
	return SignedArea(shape) > 0
}

func IsCW(shape Shape) bool {
	return SignedArea(shape) < 0
}

// Even-odd point-in-polygon. The incircle search uses this to reject
// candidate centers that fall outside the hull.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// cast from p in the +X direction.
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// X coordinate where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{IsOpen: poly.IsOpen}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The edges of the polygon as lines, edge i running from point i to point
// i+1. Open polygons have no closing edge.
func (poly Polygon) EdgeLines() []Line {
	n := len(poly.Points)
	count := n
	if poly.IsOpen {
		count = n - 1
	}
	if count < 1 {
		return nil
	}
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		lines = append(lines, Line{A: *a, B: *b})
	}
	return lines
}
