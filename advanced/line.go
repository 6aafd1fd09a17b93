package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

func (l Line) Direction() r2.Point {
	return l.B.Vec().Sub(l.A.Vec())
}

func (l Line) Length() float64 {
	return l.Direction().Norm()
}

func (l Line) Reversed() Line {
	return Line{A: l.B, B: l.A}
}

func (l Line) Midpoint() Point {
	return Point{X: (l.A.X + l.B.X) / 2, Y: (l.A.Y + l.B.Y) / 2}
}

// Whether the lines run in the same or opposite directions.
func (l Line) IsParallel(other Line, tol Tolerance) bool {
	return tol.IsZero(l.Direction().Normalize().Cross(other.Direction().Normalize()))
}

// Intersection of the two infinite lines. Returns false for parallel lines.
func (l Line) Intersect(other Line, tol Tolerance) (Point, bool) {
	d1 := l.Direction()
	d2 := other.Direction()
	denominator := d1.Cross(d2)
	if tol.IsZero(denominator) {
		return Point{}, false
	}
	t := other.A.Vec().Sub(l.A.Vec()).Cross(d2) / denominator
	return pointFromVec(l.A.Vec().Add(d1.Mul(t))), true
}

// The point on the infinite line closest to p. A zero length line is just
// its start point.
func (l Line) ClosestPoint(p *Point) Point {
	d := l.Direction()
	lengthSquared := d.Dot(d)
	if lengthSquared == 0 {
		return l.A
	}
	t := p.Vec().Sub(l.A.Vec()).Dot(d) / lengthSquared
	return pointFromVec(l.A.Vec().Add(d.Mul(t)))
}

// Perpendicular distance from p to the infinite line.
func (l Line) DistanceTo(p *Point) float64 {
	closest := l.ClosestPoint(p)
	return closest.DistanceTo(p)
}

// Distance from p to the segment between A and B.
func (l Line) SegmentDistanceTo(p *Point) float64 {
	d := l.Direction()
	lengthSquared := d.Dot(d)
	if lengthSquared == 0 {
		return l.A.DistanceTo(p)
	}
	t := p.Vec().Sub(l.A.Vec()).Dot(d) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	closest := pointFromVec(l.A.Vec().Add(d.Mul(t)))
	return closest.DistanceTo(p)
}

// Divide the angle at vertex, swept counterclockwise from dirA to dirB, into
// n equal parts. The n-1 dividing rays are returned as lines starting at
// vertex with unit length. With n = 2 this is the angle bisector.
func NSectors(vertex Point, dirA, dirB r2.Point, n int) []Line {
	if n < 2 {
		return nil
	}
	start := math.Atan2(dirA.Y, dirA.X)
	sweep := math.Atan2(dirB.Y, dirB.X) - start
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	lines := make([]Line, 0, n-1)
	for i := 1; i < n; i++ {
		angle := start + sweep*float64(i)/float64(n)
		lines = append(lines, Line{
			A: vertex,
			B: Point{X: vertex.X + math.Cos(angle), Y: vertex.Y + math.Sin(angle)},
		})
	}
	return lines
}
