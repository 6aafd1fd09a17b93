// Package sketch rasterizes derivations for debugging. Output is a PNG, which
// can be previewed inline on terminals that speak the iTerm image protocol.
package sketch

import (
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planegraph"
	"github.com/osuushi/planegraph/advanced"
	"github.com/pkg/errors"
)

type Layer string

const (
	Points    Layer = "points"
	Triangles Layer = "triangles"
	Voronoi   Layer = "voronoi"
	Urquhart  Layer = "urquhart"
	Hull      Layer = "hull"
	Incircle  Layer = "incircle"
	Circles   Layer = "circles"
)

// Layers in drawing order, bottom first.
var AllLayers = []Layer{Triangles, Voronoi, Urquhart, Hull, Incircle, Circles, Points}

func ParseLayer(name string) (Layer, error) {
	for _, layer := range AllLayers {
		if string(layer) == strings.ToLower(name) {
			return layer, nil
		}
	}
	return "", errors.Errorf("unknown layer %q", name)
}

type Options struct {
	// Pixels per unit
	Scale float64
	// Pixels around the drawing
	Padding float64
	// Layers to draw. Empty means all of them.
	Layers []Layer
}

func (o Options) enabled(layer Layer) bool {
	if len(o.Layers) == 0 {
		return true
	}
	for _, l := range o.Layers {
		if l == layer {
			return true
		}
	}
	return false
}

// The region of the plane covered by the derivation's points and circles.
func Bounds(d *planegraph.Derivation) r2.Rect {
	rect := advanced.BoundingRect(d.Points...)
	for _, c := range d.Circles {
		rect = rect.AddRect(r2.RectFromCenterSize(c.Center.Vec(), r2.Point{X: 2 * c.Radius, Y: 2 * c.Radius}))
	}
	return rect
}

// Draw the derivation. The y axis points up, as in the plane.
func Render(d *planegraph.Derivation, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", opts.Scale)
	}
	bounds := Bounds(d)
	if bounds.IsEmpty() {
		return nil, errors.New("nothing to draw")
	}

	size := bounds.Size()
	width := int(math.Ceil(opts.Scale*size.X + 2*opts.Padding))
	height := int(math.Ceil(opts.Scale*size.Y + 2*opts.Padding))
	// Degenerate bounds, like a single point, still get a canvas
	width = max(width, 1)
	height = max(height, 1)

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	// Line widths are given in pixels, so undo the scale
	px := 1 / opts.Scale
	for _, layer := range AllLayers {
		if !opts.enabled(layer) {
			continue
		}
		switch layer {
		case Triangles:
			drawTriangles(c, d.Triangulation, px)
		case Voronoi:
			drawVoronoi(c, d.Voronoi, px)
		case Urquhart:
			drawUrquhart(c, d.Urquhart, px)
		case Hull:
			drawHull(c, d.Hull, px)
		case Incircle:
			drawIncircle(c, d.Incircle, px)
		case Circles:
			drawCircles(c, d.Circles, d.Exposed, px)
		case Points:
			drawPoints(c, d.Points, px)
		}
	}
	return c, nil
}

// Render and save to a PNG file.
func SavePNG(d *planegraph.Derivation, opts Options, path string) error {
	c, err := Render(d, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %q", path)
}

// Print a PNG file to the terminal. Only iTerm-compatible terminals will show
// anything.
func Preview(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "previewing %q", path)
}

func drawTriangles(c *gg.Context, tri *planegraph.Triangulation, px float64) {
	if tri == nil {
		return
	}
	c.SetLineWidth(px)
	for _, t := range tri.Triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		if t.IsDegenerate(advanced.DefaultTolerance) {
			c.SetRGBA(1, 0, 0, 0.4)
		} else {
			c.SetRGBA(0.3, 0.2, 1, 0.25)
		}
		c.FillPreserve()
		c.SetRGB(0.5, 0.5, 1)
		c.Stroke()
	}
}

func drawVoronoi(c *gg.Context, diagram *planegraph.VoronoiDiagram, px float64) {
	if diagram == nil {
		return
	}
	c.SetLineWidth(2 * px)
	c.SetRGB(1, 1, 0)
	for _, cell := range diagram.Cells {
		path := cell.ToPathArray()
		if len(path) < 2 {
			continue
		}
		c.MoveTo(path[0].X, path[0].Y)
		for _, p := range path[1:] {
			c.LineTo(p.X, p.Y)
		}
		if !cell.IsOpen() {
			c.ClosePath()
		}
		c.Stroke()
	}
}

func drawUrquhart(c *gg.Context, edges []planegraph.Edge, px float64) {
	c.SetLineWidth(3 * px)
	c.SetRGB(0, 1, 0)
	for _, e := range edges {
		c.DrawLine(e.A.X, e.A.Y, e.B.X, e.B.Y)
		c.Stroke()
	}
}

func drawHull(c *gg.Context, hull planegraph.Polygon, px float64) {
	if len(hull.Points) == 0 {
		return
	}
	c.SetLineWidth(2 * px)
	c.SetRGB(0, 1, 1)
	c.MoveTo(hull.Points[0].X, hull.Points[0].Y)
	for _, p := range hull.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()
}

func drawIncircle(c *gg.Context, in planegraph.Incircle, px float64) {
	if !in.Found() {
		return
	}
	c.SetLineWidth(2 * px)
	c.SetRGB(1, 0, 1)
	c.DrawCircle(in.Circle.Center.X, in.Circle.Center.Y, in.Circle.Radius)
	c.Stroke()
	for _, p := range in.Triangle.Corners() {
		c.DrawCircle(p.X, p.Y, 3*px)
		c.Fill()
	}
}

// Circles are drawn faintly, with their exposed arcs traced over the top.
func drawCircles(c *gg.Context, circles []planegraph.Circle, exposed []*planegraph.CircularIntervalSet, px float64) {
	c.SetLineWidth(px)
	c.SetRGBA(1, 1, 1, 0.3)
	for _, circle := range circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	c.SetLineWidth(3 * px)
	c.SetRGB(1, 0.5, 0)
	for i, set := range exposed {
		if i >= len(circles) {
			break
		}
		circle := circles[i]
		for _, arc := range set.Intervals() {
			c.NewSubPath()
			c.DrawArc(circle.Center.X, circle.Center.Y, circle.Radius, arc.Start, arc.End)
			c.Stroke()
		}
	}
}

func drawPoints(c *gg.Context, points []*planegraph.Point, px float64) {
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2*px)
		c.Fill()
	}
}
