package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/planegraph/internal/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader("epsilon: 1e-9\nlayers: [hull, Points]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1e-9, cfg.Epsilon)
	assert.Equal(t, 1e-9, cfg.Tolerance().Epsilon)
	// Untouched keys keep their defaults
	assert.Equal(t, Default().Scale, cfg.Scale)
	assert.Equal(t, Default().Padding, cfg.Padding)

	opts, err := cfg.SketchOptions()
	require.NoError(t, err)
	assert.Equal(t, []sketch.Layer{sketch.Hull, sketch.Points}, opts.Layers)
	assert.Equal(t, cfg.Scale, opts.Scale)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	for _, tc := range []struct {
		document string
		message  string
	}{
		{"epsilon: 0", "epsilon must be positive, got 0"},
		{"scale: -1", "scale must be positive, got -1"},
		{"padding: -3", "padding must not be negative, got -3"},
		{"layers: [hull, sparkles]", `config layers: unknown layer "sparkles"`},
	} {
		_, err := Parse(strings.NewReader(tc.document))
		assert.EqualError(t, err, tc.message, tc.document)
	}

	_, err := Parse(strings.NewReader("colour: blue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: 12\npadding: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.Scale)
	assert.Zero(t, cfg.Padding)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")
}
