package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planegraph/dbg"
)

// The Voronoi cell of a site, expressed through its dual: the Delaunay
// triangles around the site, ordered so that consecutive triangles share an
// edge. The cell's corners are those triangles' circumcenters.
type VoronoiCell struct {
	Triangles []*Triangle
	Site      Vertex

	tol Tolerance
}

// A cell is open (unbounded) when its triangles don't wrap all the way around
// the site. Open cells are left truncated at the last circumcenter; they are
// not extended out to infinity.
func (cell *VoronoiCell) IsOpen() bool {
	n := len(cell.Triangles)
	if n < 3 {
		return true
	}
	return !cell.Triangles[0].Adjacent(cell.Triangles[n-1], cell.tol)
}

// The circumcenters of the cell's triangles, in walk order. A one triangle
// cell is a single point.
func (cell *VoronoiCell) ToPathArray() []Point {
	path := make([]Point, len(cell.Triangles))
	for i, t := range cell.Triangles {
		path[i] = t.Center
	}
	return path
}

func (cell *VoronoiCell) ToPolygon() Polygon {
	path := cell.ToPathArray()
	poly := Polygon{Points: make([]*Point, len(path)), IsOpen: cell.IsOpen()}
	for i := range path {
		poly.Points[i] = &path[i]
	}
	return poly
}

func (cell *VoronoiCell) String() string {
	name := dbg.Name(cell)
	if cell.IsOpen() {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("VoronoiCell %s <site: %s, triangles: %d>", name, cell.Site.String(), len(cell.Triangles))
}

type WalkOutcome int

const (
	// The triangles formed a single path, and the cell is usable.
	WalkOrdered WalkOutcome = iota
	// The triangles could not be put in a single adjacency path.
	WalkDegenerate
)

// Result of ordering the triangles around one site. Exactly one of Cell and
// Degenerate is set, depending on Outcome.
type CellWalk struct {
	Outcome    WalkOutcome
	Cell       *VoronoiCell
	Degenerate []*Triangle
}

type VoronoiDiagram struct {
	Cells []*VoronoiCell
	// Triangle subsets that could not be ordered into a path. Their sites
	// have no cell.
	FailedTriangleSets [][]*Triangle
}

func (d *VoronoiDiagram) HasErrors() bool {
	return len(d.FailedTriangleSets) > 0
}

// Build the Voronoi cells of every point from its Delaunay triangulation.
// Points without any triangle get no cell. Points whose triangles don't form
// a single path are recorded in FailedTriangleSets and skipped.
func Voronoi(tri *Triangulation, tol Tolerance) *VoronoiDiagram {
	diagram := &VoronoiDiagram{}
	for i, p := range tri.Points {
		var subset []*Triangle
		for _, t := range tri.Triangles {
			if t.HasVertex(p, tol) {
				subset = append(subset, t)
			}
		}
		if len(subset) == 0 {
			continue
		}

		walk := OrderCell(Vertex{Point: p, Handle: i}, subset, tol)
		switch walk.Outcome {
		case WalkOrdered:
			diagram.Cells = append(diagram.Cells, walk.Cell)
		case WalkDegenerate:
			Logger().Debug("voronoi cell triangles do not form a path",
				"site", i,
				"triangles", len(subset),
			)
			diagram.FailedTriangleSets = append(diagram.FailedTriangleSets, walk.Degenerate)
		}
	}
	return diagram
}

// How many times a stalled walk is restarted from the triangle it stalled
// on. If the triangles form a path, the stall point is one of its ends, so
// one restart from there is always enough.
const maxWalkRetries = 1

// Order the triangles around a site into a single walk where consecutive
// triangles are adjacent. The walk starts at the first triangle and greedily
// steps to any unvisited neighbor.
func OrderCell(site Vertex, triangles []*Triangle, tol Tolerance) CellWalk {
	start := 0
	for attempt := 0; attempt <= maxWalkRetries; attempt++ {
		ordered := walkTriangles(triangles, start, tol)
		if len(ordered) == len(triangles) {
			return CellWalk{
				Outcome: WalkOrdered,
				Cell:    &VoronoiCell{Triangles: ordered, Site: site, tol: tol},
			}
		}
		start = indexOfTriangle(triangles, ordered[len(ordered)-1])
	}
	return CellWalk{Outcome: WalkDegenerate, Degenerate: triangles}
}

func walkTriangles(triangles []*Triangle, start int, tol Tolerance) []*Triangle {
	visited := make([]bool, len(triangles))
	visited[start] = true
	current := triangles[start]
	ordered := []*Triangle{current}
	for {
		next := -1
		for i, candidate := range triangles {
			if !visited[i] && current.Adjacent(candidate, tol) {
				next = i
				break
			}
		}
		if next < 0 {
			return ordered
		}
		visited[next] = true
		current = triangles[next]
		ordered = append(ordered, current)
	}
}

func indexOfTriangle(triangles []*Triangle, t *Triangle) int {
	for i, candidate := range triangles {
		if candidate == t {
			return i
		}
	}
	return 0
}
