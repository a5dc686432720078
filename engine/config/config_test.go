package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stenodyon/FlipFlop/engine/colors"
)

func TestLoadFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flipflop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("view:\n  tile_pixels: 32\n"), 0o644))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.InDelta(t, 32, cfg.View.TilePixels, 1e-6)
		assert.Equal(t, Default().Window, cfg.Window)
		assert.Equal(t, colors.WireOn, cfg.Wire.OnColor)
	})

	t.Run("invalid yaml reports an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flipflop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("nonsense values are sanitized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flipflop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("view:\n  tile_pixels: -4\n  min_zoom: 0\n"), 0o644))

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, Default().View, cfg.View)
	})
}

func TestSaveTo(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg", "flipflop.yaml")

		want := Default()
		want.Window.Width = 1920
		want.View.TilePixels = 24
		want.Wire.OnColor = colors.Green

		require.NoError(t, SaveTo(path, want))
		got, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
