package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanro2/edgeslide/pkg/slide"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edgeslide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDistance, cfg.Distance)
	assert.True(t, cfg.UseClamp)
	assert.False(t, cfg.UseEven)
	assert.Equal(t, "average", cfg.Method)
	assert.Equal(t, slide.DefaultNonQuadScale, cfg.NonQuadScale)
	assert.True(t, cfg.MirrorMissingOpposite)
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, "distance: 0.25\nmethod: minimum\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Distance)
	assert.Equal(t, "minimum", cfg.Method)
	assert.True(t, cfg.UseClamp)
	assert.Equal(t, slide.DefaultNonQuadScale, cfg.NonQuadScale)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `distance: -0.5
use_even: true
use_clamp: false
flipped: true
method: maximum
unit: mm
non_quad_scale: 0.6
mirror_missing_opposite: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -0.5, cfg.Distance)
	assert.True(t, cfg.UseEven)
	assert.False(t, cfg.UseClamp)
	assert.True(t, cfg.Flipped)
	assert.Equal(t, "mm", cfg.Unit)
	assert.Equal(t, 0.6, cfg.NonQuadScale)
	assert.False(t, cfg.MirrorMissingOpposite)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"scale too large": "non_quad_scale: 1.5\n",
		"scale zero":      "non_quad_scale: 0\n",
		"unknown method":  "method: median\n",
		"bad yaml":        "distance: [\n",
	}

	for name, data := range cases {
		path := writeConfig(t, data)
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestSlideOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "first"
	cfg.NonQuadScale = 0.9
	cfg.MirrorMissingOpposite = false

	opts, err := cfg.SlideOptions()
	require.NoError(t, err)

	assert.Equal(t, slide.First, opts.Method)
	assert.Equal(t, 0.9, opts.NonQuadScale)
	assert.False(t, opts.MirrorMissingOpposite)
}
