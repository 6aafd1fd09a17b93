package advanced

import (
	"math"
	"math/rand"
)

// Some ad hoc point sets shared by the tests.

func UnitSquare() []*Point {
	return []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

// Points scattered with a fixed seed, so failures are reproducible.
func Scatter(n int, seed int64) []*Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return points
}

func RegularPolygon(n int, radius float64) []*Point {
	points := make([]*Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// A regular polygon with its center point, which gives a wheel of triangles
// around the center.
func Wheel(n int, radius float64) []*Point {
	return append([]*Point{{X: 0, Y: 0}}, RegularPolygon(n, radius)...)
}

func Grid(columns, rows int, spacing float64) []*Point {
	var points []*Point
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			// Jitter slightly, so the grid isn't full of cocircular quads
			jitter := 0.01 * float64((x*7+y*13)%5)
			points = append(points, &Point{X: float64(x)*spacing + jitter, Y: float64(y)*spacing - jitter})
		}
	}
	return points
}
