package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Stenodyon/FlipFlop/engine/colors"
)

// Path is the config file location, relative to the working directory.
const Path = "config/flipflop.yaml"

// Config holds user-tunable settings persisted across runs.
type Config struct {
	Window WindowConfig `yaml:"window"`
	View   ViewConfig   `yaml:"view"`
	Wire   WireConfig   `yaml:"wire"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type ViewConfig struct {
	TilePixels float32 `yaml:"tile_pixels"` // screen pixels per board tile at zoom 1
	MinZoom    float32 `yaml:"min_zoom"`
	MaxZoom    float32 `yaml:"max_zoom"`
	PanSpeed   float32 `yaml:"pan_speed"` // tiles per second at zoom 1
}

type WireConfig struct {
	OffColor colors.Color `yaml:"off_color"`
	OnColor  colors.Color `yaml:"on_color"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "FlipFlop",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		View: ViewConfig{
			TilePixels: 16,
			MinZoom:    0.25,
			MaxZoom:    16,
			PanSpeed:   10,
		},
		Wire: WireConfig{
			OffColor: colors.Black,
			OnColor:  colors.WireOn,
		},
	}
}

// Load reads the config file; a missing file yields defaults without error.
func Load() (Config, error) {
	return LoadFrom(Path)
}

func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// Save writes the config, creating the directory if needed.
func Save(cfg Config) error {
	return SaveTo(Path, cfg)
}

func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) sanitize() {
	d := Default()
	if c.Window.Width < 1 || c.Window.Height < 1 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.View.TilePixels <= 0 {
		c.View.TilePixels = d.View.TilePixels
	}
	if c.View.MinZoom <= 0 {
		c.View.MinZoom = d.View.MinZoom
	}
	if c.View.MaxZoom < c.View.MinZoom {
		c.View.MaxZoom = d.View.MaxZoom
	}
	if c.View.PanSpeed <= 0 {
		c.View.PanSpeed = d.View.PanSpeed
	}
}
