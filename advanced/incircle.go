package advanced

// The largest circle inscribed in a convex polygon, along with the triangle
// formed by its three points of contact. Both are nil if no inscribed circle
// was found. The contact triangle's vertex handles are the indices of the
// polygon edges they touch.
type Incircle struct {
	Circle   *Circle
	Triangle *Triangle
}

func (in Incircle) Found() bool {
	return in.Circle != nil
}

// Search every triple of polygon edges for a circle tangent to all three, and
// keep the largest one that fits inside the polygon. For each triple, the
// center is where the angle bisectors of the first two and last two edge
// lines meet. Projecting the center back onto the three lines gives the
// points of contact, whose circumcircle is the candidate.
//
// A candidate is accepted when its center is inside the polygon, no polygon
// edge cuts into it, and at least three edges touch it. Polygons with a
// circle tangent to more than three edges (squares, regular polygons) are
// therefore still found.
//
// There are O(n³) triples with an O(n) check each, so this is only suitable
// for small polygons, like the convex hull of a few dozen points.
func MaxInscribedCircle(polygon Polygon, tol Tolerance) Incircle {
	if len(polygon.Points) < 3 {
		return Incircle{}
	}
	polygon.IsOpen = false
	// Inward normals are derived assuming counterclockwise winding
	if IsCW(polygon) {
		polygon = polygon.Reverse()
	}
	lines := polygon.EdgeLines()
	n := len(lines)

	var best Incircle
	candidates := 0
	accepted := 0
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				contact, ok := tangentTriangle(lines, a, b, c, tol)
				if !ok {
					continue
				}
				candidates++
				if !fitsInside(polygon, lines, contact, tol) {
					continue
				}
				accepted++
				if best.Circle == nil || contact.Radius > best.Circle.Radius {
					circle := contact.Circumcircle()
					best = Incircle{Circle: &circle, Triangle: contact}
				}
			}
		}
	}

	Logger().Debug("searched for inscribed circle",
		"edges", n,
		"candidates", candidates,
		"accepted", accepted,
	)
	return best
}

// Build the contact triangle of the circle tangent to lines a, b and c.
func tangentTriangle(lines []Line, a, b, c int, tol Tolerance) (*Triangle, bool) {
	bisectorAB, ok := internalBisector(lines[a], lines[b], tol)
	if !ok {
		return nil, false
	}
	bisectorBC, ok := internalBisector(lines[b], lines[c], tol)
	if !ok {
		return nil, false
	}
	center, ok := bisectorAB.Intersect(bisectorBC, tol)
	if !ok {
		return nil, false
	}

	contactA := lines[a].ClosestPoint(&center)
	contactB := lines[b].ClosestPoint(&center)
	contactC := lines[c].ClosestPoint(&center)
	contact := NewTriangle(
		Vertex{Point: &contactA, Handle: a},
		Vertex{Point: &contactB, Handle: b},
		Vertex{Point: &contactC, Handle: c},
		tol,
	)
	if contact.IsDegenerate(tol) {
		return nil, false
	}
	return contact, true
}

// The bisector of two edge lines of a counterclockwise polygon, on the side
// facing the polygon's interior. Lines facing each other across the polygon
// are bisected by their mid-line. Parallel lines facing the same way have no
// interior bisector.
func internalBisector(l1, l2 Line, tol Tolerance) (Line, bool) {
	n1 := l1.Direction().Normalize().Ortho()
	n2 := l2.Direction().Normalize().Ortho()

	vertex, ok := l1.Intersect(l2, tol)
	if !ok {
		if n1.Dot(n2) > 0 {
			return Line{}, false
		}
		across := l2.ClosestPoint(&l1.A)
		mid := Line{A: l1.A, B: across}.Midpoint()
		return Line{A: mid, B: pointFromVec(mid.Vec().Add(l1.Direction()))}, true
	}
	// Points along n1 + n2 are equally far inside both lines. NSectors gives
	// that direction or its opposite, which is the same line.
	return NSectors(vertex, n1, n2, 2)[0], true
}

func fitsInside(polygon Polygon, lines []Line, contact *Triangle, tol Tolerance) bool {
	center := contact.Center
	if !polygon.ContainsPointByEvenOdd(&center) {
		return false
	}
	touching := 0
	for _, l := range lines {
		d := l.SegmentDistanceTo(&center)
		if d < contact.Radius-tol.Epsilon {
			return false
		}
		if d < contact.Radius+tol.Epsilon {
			touching++
		}
	}
	return touching >= 3
}
