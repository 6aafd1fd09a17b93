package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/planegraph"
	"github.com/osuushi/planegraph/internal/config"
	"github.com/osuushi/planegraph/internal/sketch"
	"github.com/osuushi/planegraph/internal/svgin"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the derivations. Input on stdin should be newline separated points
// in the form "x y", or circles in the form "x y r". Blank lines and lines
// starting with # are skipped. Alternatively, points and circles can be read
// from the polygons, polylines and circles of an SVG file.
//
// A summary is printed, and the derivations are drawn to a PNG.
var (
	app        = kingpin.New("planegraph", "Derive triangulations, Voronoi cells and circle outlines from points and circles.")
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	svgPath    = app.Flag("svg", "Read input from an SVG file instead of stdin.").ExistingFile()
	outPath    = app.Flag("out", "Where to write the PNG.").Short('o').Default("planegraph.png").String()
	layers     = app.Flag("layer", "Layer to draw, repeatable. Overrides the config.").Short('l').Strings()
	preview    = app.Flag("preview", "Show the PNG in the terminal (iTerm only).").Bool()
	verbose    = app.Flag("verbose", "Log what the derivations are doing.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "planegraph: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	planegraph.SetLogger(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if len(*layers) > 0 {
		cfg.Layers = *layers
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	points, circles, err := readAnyInput()
	if err != nil {
		return err
	}
	logger.Info("read input", "points", len(points), "circles", len(circles))

	d, err := planegraph.Derive(points, circles, cfg.Tolerance())
	if err != nil {
		return errors.Wrap(err, "deriving")
	}
	printSummary(os.Stdout, d)

	opts, err := cfg.SketchOptions()
	if err != nil {
		return err
	}
	if err := sketch.SavePNG(d, opts, *outPath); err != nil {
		return err
	}
	logger.Info("wrote sketch", "path", *outPath)

	if *preview {
		return sketch.Preview(*outPath, os.Stdout)
	}
	return nil
}

func readAnyInput() ([]*planegraph.Point, []planegraph.Circle, error) {
	if *svgPath == "" {
		return readInput(os.Stdin)
	}
	f, err := os.Open(*svgPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	in, err := svgin.Parse(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %q", *svgPath)
	}
	return in.Points(), in.Circles, nil
}

func readInput(r io.Reader) ([]*planegraph.Point, []planegraph.Circle, error) {
	var points []*planegraph.Point
	var circles []planegraph.Circle
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		values, err := parseNumbers(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		switch len(values) {
		case 2:
			points = append(points, &planegraph.Point{X: values[0], Y: values[1]})
		case 3:
			circles = append(circles, planegraph.Circle{
				Center: planegraph.Point{X: values[0], Y: values[1]},
				Radius: values[2],
			})
		default:
			return nil, nil, errors.Errorf("line %d: expected \"x y\" or \"x y r\", got %q", lineNumber, line)
		}
	}
	return points, circles, errors.Wrap(scanner.Err(), "reading input")
}

func parseNumbers(line string) ([]float64, error) {
	fields := strings.Fields(line)
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", field)
		}
		values[i] = value
	}
	return values, nil
}

func printSummary(w io.Writer, d *planegraph.Derivation) {
	fmt.Fprintf(w, "Points:           %d\n", len(d.Points))
	fmt.Fprintf(w, "Triangles:        %d\n", len(d.Triangulation.Triangles))
	fmt.Fprintf(w, "Voronoi cells:    %d", len(d.Voronoi.Cells))
	if d.Voronoi.HasErrors() {
		fmt.Fprintf(w, " (%d degenerate)", len(d.Voronoi.FailedTriangleSets))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Urquhart edges:   %d\n", len(d.Urquhart))
	fmt.Fprintf(w, "Hull corners:     %d\n", len(d.Hull.Points))
	if d.Incircle.Found() {
		c := d.Incircle.Circle
		fmt.Fprintf(w, "Incircle:         (%.4g, %.4g) r %.4g\n", c.Center.X, c.Center.Y, c.Radius)
	}
	if len(d.Circles) > 0 {
		fmt.Fprintf(w, "Circles:          %d\n", len(d.Circles))
		fmt.Fprintf(w, "Nested:           %d\n", len(d.InnerCircles))
		exposed := 0
		for _, set := range d.Exposed {
			if !set.IsEmpty() {
				exposed++
			}
		}
		fmt.Fprintf(w, "On the outline:   %d\n", exposed)
	}
}
