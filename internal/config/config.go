package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// WindowConfig sets up the main window.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DisplayConfig bounds the preview of the current image. Larger images are
// scaled down to fit, smaller ones are shown as they are.
type DisplayConfig struct {
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// CameraConfig controls device probing and the live preview.
type CameraConfig struct {
	ProbeOrder        []int `yaml:"probe_order"`         // device indices tried in order, first that opens wins
	PreviewIntervalMs int   `yaml:"preview_interval_ms"` // delay between preview frames
}

// EditorConfig holds editing defaults.
type EditorConfig struct {
	RectangleColor string `yaml:"rectangle_color"` // hex, e.g. "#0000ff"
}

// Config aggregates all application configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Editor  EditorConfig  `yaml:"editor"`

	rectangleColor color.Color
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.applyDefaults(); err != nil {
		panic(err) // defaults are constant
	}
	return cfg
}

// Load reads a YAML file and returns the configuration. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data, fills in defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Window.Title == "" {
		c.Window.Title = "Image Editor"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 900
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 700
	}

	if c.Display.MaxWidth < 0 || c.Display.MaxHeight < 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.MaxWidth, c.Display.MaxHeight)
	}
	if c.Display.MaxWidth == 0 {
		c.Display.MaxWidth = 960 // half of a 1920 wide screen
	}
	if c.Display.MaxHeight == 0 {
		c.Display.MaxHeight = 540
	}

	if len(c.Camera.ProbeOrder) == 0 {
		c.Camera.ProbeOrder = []int{2, 1, 0}
	}
	for _, idx := range c.Camera.ProbeOrder {
		if idx < 0 {
			return fmt.Errorf("camera.probe_order: device index must be >= 0, got %d", idx)
		}
	}
	if c.Camera.PreviewIntervalMs < 0 {
		return fmt.Errorf("camera.preview_interval_ms must be > 0, got %d", c.Camera.PreviewIntervalMs)
	}
	if c.Camera.PreviewIntervalMs == 0 {
		c.Camera.PreviewIntervalMs = 10
	}

	if c.Editor.RectangleColor == "" {
		c.Editor.RectangleColor = "#0000ff"
	}
	rc, err := colorful.Hex(c.Editor.RectangleColor)
	if err != nil {
		return fmt.Errorf("editor.rectangle_color %q: %w", c.Editor.RectangleColor, err)
	}
	r, g, b := rc.RGB255()
	c.rectangleColor = color.NRGBA{R: r, G: g, B: b, A: 0xff}

	return nil
}

// PreviewInterval returns the delay between two camera preview frames.
func (c *Config) PreviewInterval() time.Duration {
	return time.Duration(c.Camera.PreviewIntervalMs) * time.Millisecond
}

// RectangleColor returns the opaque fill color for the rectangle tool.
func (c *Config) RectangleColor() color.Color {
	return c.rectangleColor
}
