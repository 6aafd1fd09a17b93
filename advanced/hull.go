package advanced

import "sort"

// Andrew's monotone chain. Points are swept in lexicographic order to build
// the lower chain, then in reverse for the upper chain. At each step, points
// that don't make a strict left turn are popped off the chain. The result
// winds counterclockwise, starting from the lexicographically smallest point.
//
// Fewer than three points, or points that are all collinear, give an empty
// polygon.
func ConvexHull(points []*Point, tol Tolerance) Polygon {
	if len(points) < 3 {
		return Polygon{}
	}

	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LexLess(sorted[j])
	})

	lower := buildChain(sorted, tol)

	reversed := make([]*Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := buildChain(reversed, tol)

	// The last point of each chain is the first point of the other
	hull := make([]*Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return Polygon{}
	}
	return Polygon{Points: hull}
}

func buildChain(points []*Point, tol Tolerance) PointStack {
	chain := make(PointStack, 0, len(points))
	for _, p := range points {
		for len(chain) >= 2 && Cross(chain.PeekBelow(), chain.Peek(), p) <= tol.Epsilon {
			chain.Pop()
		}
		chain.Push(p)
	}
	return chain
}
