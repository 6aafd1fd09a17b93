package advanced

import (
	"fmt"
	"math"
)

// Negative radii are clamped to zero.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: math.Max(0, radius)}
}

func (c Circle) ContainsPoint(p *Point, tol Tolerance) bool {
	return c.Center.DistanceTo(p) <= c.Radius+tol.Epsilon
}

// Whether other lies entirely inside c. Touching from the inside counts.
func (c Circle) ContainsCircle(other Circle, tol Tolerance) bool {
	d := c.Center.DistanceTo(&other.Center)
	return d+other.Radius <= c.Radius+tol.Epsilon
}

// Angle of p around the circle's center, normalized to [0, 2π).
func (c Circle) AngleOf(p *Point) float64 {
	return normalizeAngle(math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X))
}

// The point on the circle at the given angle.
func (c Circle) PointAt(angle float64) Point {
	return Point{
		X: c.Center.X + c.Radius*math.Cos(angle),
		Y: c.Center.Y + c.Radius*math.Sin(angle),
	}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle <(%g, %g), r: %g>", c.Center.X, c.Center.Y, c.Radius)
}

func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle = 0
	}
	return angle
}
