package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Tolerance holds the single epsilon used for every geometric equality test.
// It is passed explicitly to each algorithm so that callers (and tests) can
// control boundary behavior deterministically.
type Tolerance struct {
	Epsilon float64
}

var DefaultTolerance = Tolerance{Epsilon: 1e-6}

// To compensate for imprecision in floats, equality is tolerance based.
func (tol Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) < tol.Epsilon
}

func (tol Tolerance) IsZero(a float64) bool {
	return math.Abs(a) < tol.Epsilon
}

func (tol Tolerance) SamePoint(p, q *Point) bool {
	return tol.Equal(p.X, q.X) && tol.Equal(p.Y, q.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Lexicographic ordering: by X, with ties broken by Y. This is the order the
// monotone chain hull sweeps in.
func (p *Point) LexLess(other *Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p *Point) DistanceTo(other *Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p *Point) SquaredDistanceTo(other *Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Vector math is delegated to r2.
func (p *Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Cross product of (b - a) and (c - a). Positive when a, b, c make a left
// (counterclockwise) turn.
func Cross(a, b, c *Point) float64 {
	return b.Vec().Sub(a.Vec()).Cross(c.Vec().Sub(a.Vec()))
}

// Smallest axis-aligned rectangle containing all the points.
func BoundingRect(points ...*Point) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.Vec())
	}
	return rect
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The point just below the top of the stack.
func (s *PointStack) PeekBelow() *Point {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}
