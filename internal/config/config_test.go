package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Image Editor", cfg.Window.Title)
	assert.Equal(t, 960, cfg.Display.MaxWidth)
	assert.Equal(t, 540, cfg.Display.MaxHeight)
	assert.Equal(t, []int{2, 1, 0}, cfg.Camera.ProbeOrder)
	assert.Equal(t, 10*time.Millisecond, cfg.PreviewInterval())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, cfg.RectangleColor())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := `
window:
  title: "My Editor"
display:
  max_width: 640
camera:
  probe_order: [0, 1]
  preview_interval_ms: 33
editor:
  rectangle_color: "#ff8000"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "My Editor", cfg.Window.Title)
	assert.Equal(t, float32(900), cfg.Window.Width)
	assert.Equal(t, 640, cfg.Display.MaxWidth)
	assert.Equal(t, 540, cfg.Display.MaxHeight)
	assert.Equal(t, []int{0, 1}, cfg.Camera.ProbeOrder)
	assert.Equal(t, 33*time.Millisecond, cfg.PreviewInterval())
	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, cfg.RectangleColor())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "window: [unclosed"},
		{"negative display", "display:\n  max_width: -1\n"},
		{"negative device", "camera:\n  probe_order: [1, -2]\n"},
		{"negative interval", "camera:\n  preview_interval_ms: -5\n"},
		{"bad color", "editor:\n  rectangle_color: blue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
