package advanced

import "math"

// The chord along which two circles cross. The returned line runs from the
// crossing point to the right of the direction from ci to cj, to the one on
// its left. Seen from ci, the arc from A to B counterclockwise is the part of
// ci inside cj.
//
// There is no line when the circles are apart, when one is nested in the
// other, or when they are concentric. Tangent circles produce a zero length
// line at the point of contact.
func RadicalLine(ci, cj Circle, tol Tolerance) (*Line, bool) {
	delta := cj.Center.Vec().Sub(ci.Center.Vec())
	d := delta.Norm()
	if d < tol.Epsilon {
		return nil, false
	}
	if d > ci.Radius+cj.Radius || d < math.Abs(ci.Radius-cj.Radius) {
		return nil, false
	}

	// Distance from ci's center to the chord, along the center line
	a := (ci.Radius*ci.Radius - cj.Radius*cj.Radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ci.Radius*ci.Radius-a*a))
	unit := delta.Mul(1 / d)
	foot := ci.Center.Vec().Add(unit.Mul(a))
	// Ortho is a counterclockwise quarter turn
	offset := unit.Ortho().Mul(h)

	return &Line{
		A: pointFromVec(foot.Sub(offset)),
		B: pointFromVec(foot.Add(offset)),
	}, true
}

// The radical line of every pair of circles. Each pair is computed once; the
// (j, i) entry is the reverse of the (i, j) entry. Pairs without a line, and
// the diagonal, are nil.
func RadicalLines(circles []Circle, tol Tolerance) *Matrix[*Line] {
	lines := NewMatrix[*Line](len(circles))
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			line, ok := RadicalLine(circles[i], circles[j], tol)
			if !ok {
				continue
			}
			reversed := line.Reversed()
			lines.Set(i, j, line)
			lines.Set(j, i, &reversed)
		}
	}
	return lines
}

// Indices of circles that lie inside some other circle. A circle inside
// several others is listed once for each of them.
func InnerCircles(circles []Circle, tol Tolerance) []int {
	var inner []int
	for i, circle := range circles {
		for j, other := range circles {
			if i != j && other.ContainsCircle(circle, tol) {
				inner = append(inner, i)
			}
		}
	}
	return inner
}

// For every circle, the angular ranges of its boundary not covered by any
// other circle. Together these arcs trace the outline of the union of the
// circles. Each neighbor crossing circle i removes the arc between its radical
// line's endpoints; a neighbor that swallows circle i whole leaves it nothing.
//
// lines is expected to come from RadicalLines over the same circles.
func OuterIntervals(circles []Circle, lines *Matrix[*Line], tol Tolerance) []*CircularIntervalSet {
	sets := make([]*CircularIntervalSet, len(circles))
	for i, circle := range circles {
		set := NewCircularIntervalSet(0, 2*math.Pi)
		for j, other := range circles {
			if i == j {
				continue
			}
			// A zero length line means the circles only touch. That removes
			// nothing, unless they touch from the inside.
			line := lines.Get(i, j)
			if line != nil && line.Length() >= tol.Epsilon {
				// Keep the arc from B around to A, which faces away from j
				set.Intersect(circle.AngleOf(&line.B), circle.AngleOf(&line.A))
			} else if other.ContainsCircle(circle, tol) {
				set.Clear()
			}
		}
		sets[i] = set
	}
	return sets
}
