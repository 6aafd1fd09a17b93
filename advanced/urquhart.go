package advanced

// The fate of an edge during Urquhart reduction. The zero value means the
// edge was never seen.
type EdgeMark uint8

const (
	Untouched EdgeMark = iota
	Keep
	Drop
)

// Mark every Delaunay edge of the triangulation. Each triangle's longest edge
// is dropped, and its other two edges are kept unless some other triangle
// already dropped them. Once dropped, an edge stays dropped.
//
// Triangles are expected to reference points by their handle in tri.Points.
// A handle that doesn't fit is a programmer error, and panics with a
// DerivationError.
func UrquhartMatrix(tri *Triangulation) *Matrix[EdgeMark] {
	marks := NewMatrix[EdgeMark](len(tri.Points))
	for _, t := range tri.Triangles {
		edges := t.Edges()
		longest := 0
		longestLength := edges[0].Length()
		for i := 1; i < len(edges); i++ {
			if length := edges[i].Length(); length > longestLength {
				longest = i
				longestLength = length
			}
		}

		for i, e := range edges {
			if i == longest {
				marks.SetSymmetric(e.A.Handle, e.B.Handle, Drop)
			} else if marks.Get(e.A.Handle, e.B.Handle) != Drop {
				marks.SetSymmetric(e.A.Handle, e.B.Handle, Keep)
			}
		}
	}
	return marks
}

// Reduce a Delaunay triangulation to its Urquhart graph. The Urquhart graph
// contains every edge of the relative neighbourhood graph, and possibly a few
// extra Delaunay edges, so it serves as a fast approximation of it.
//
// Edges come out ordered by their larger handle, then smaller handle, with A
// holding the larger one.
func Urquhart(tri *Triangulation) []Edge {
	marks := UrquhartMatrix(tri)
	var edges []Edge
	for i := 0; i < marks.Size(); i++ {
		for j := 0; j < i; j++ {
			if marks.Get(i, j) == Keep {
				edges = append(edges, Edge{A: tri.Vertex(i), B: tri.Vertex(j)})
			}
		}
	}
	return edges
}
