// Package config loads the demo CLI's settings from YAML.
//
//	epsilon: 1e-6
//	scale: 4
//	padding: 40
//	layers: [triangles, voronoi, points]
//
// Missing keys keep their defaults.
package config

import (
	"io"
	"os"

	"github.com/osuushi/planegraph/advanced"
	"github.com/osuushi/planegraph/internal/sketch"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Tolerance for every geometric comparison
	Epsilon float64 `yaml:"epsilon"`
	// Pixels per unit in the sketch
	Scale float64 `yaml:"scale"`
	// Pixels around the sketch
	Padding float64 `yaml:"padding"`
	// Sketch layers to draw, empty for all
	Layers []string `yaml:"layers"`
}

func Default() Config {
	return Config{
		Epsilon: advanced.DefaultTolerance.Epsilon,
		Scale:   4,
		Padding: 40,
	}
}

func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	// An empty document is fine, and leaves the defaults alone
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Epsilon <= 0 {
		return errors.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Padding < 0 {
		return errors.Errorf("padding must not be negative, got %g", c.Padding)
	}
	if _, err := c.SketchLayers(); err != nil {
		return err
	}
	return nil
}

func (c Config) Tolerance() advanced.Tolerance {
	return advanced.Tolerance{Epsilon: c.Epsilon}
}

func (c Config) SketchLayers() ([]sketch.Layer, error) {
	layers := make([]sketch.Layer, 0, len(c.Layers))
	for _, name := range c.Layers {
		layer, err := sketch.ParseLayer(name)
		if err != nil {
			return nil, errors.Wrap(err, "config layers")
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

func (c Config) SketchOptions() (sketch.Options, error) {
	layers, err := c.SketchLayers()
	if err != nil {
		return sketch.Options{}, err
	}
	return sketch.Options{Scale: c.Scale, Padding: c.Padding, Layers: layers}, nil
}
