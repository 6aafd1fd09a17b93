// Package svgin reads point and circle sets out of SVG files.
//
// This is not a full (or even correct) SVG reader. It only looks at
// <polygon>, <polyline> and <circle> elements, and ignores transforms, styles
// and everything else. Coordinates are taken as written, so y still points
// down.
package svgin

import (
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/planegraph/advanced"
	"github.com/pkg/errors"
)

type Input struct {
	// Polylines come out open, polygons closed
	Polygons []advanced.Polygon
	Circles  []advanced.Circle
}

// Every polygon and polyline point, in document order.
func (in *Input) Points() []*advanced.Point {
	var points []*advanced.Point
	for _, poly := range in.Polygons {
		points = append(points, poly.Points...)
	}
	return points
}

func Parse(r io.Reader) (*Input, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	if root == nil {
		return nil, errors.New("no svg element found")
	}

	in := &Input{}
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			points, err := ParsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "reading <%s>", name)
			}
			in.Polygons = append(in.Polygons, advanced.Polygon{Points: points, IsOpen: name == "polyline"})
		}
	}

	for _, el := range root.FindAll("circle") {
		circle, err := parseCircle(el.Attributes)
		if err != nil {
			return nil, errors.Wrap(err, "reading <circle>")
		}
		in.Circles = append(in.Circles, circle)
	}
	return in, nil
}

// Open and parse a file from fsys.
func Load(fsys fs.FS, name string) (*Input, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", name)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", name)
	}
	return in, nil
}

// Parse an SVG points attribute. Coordinates may be separated by commas,
// whitespace or both, so "1,2 3,4" and "1 2, 3 4" are the same.
func ParsePoints(attribute string) ([]*advanced.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}

	points := make([]*advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// Missing cx and cy default to zero, as in SVG. A missing radius is an error,
// since a circle without one can't take part in anything.
func parseCircle(attributes map[string]string) (advanced.Circle, error) {
	values := make(map[string]float64, 3)
	for _, key := range []string{"cx", "cy", "r"} {
		raw, ok := attributes[key]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return advanced.Circle{}, errors.Wrapf(err, "invalid %s value %q", key, raw)
		}
		values[key] = value
	}
	r, ok := values["r"]
	if !ok {
		return advanced.Circle{}, errors.New("missing radius")
	}
	return advanced.NewCircle(advanced.Point{X: values["cx"], Y: values["cy"]}, r), nil
}
