package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeTerm, cfg.Mode)
	assert.Equal(t, 30, cfg.Hz)
	assert.Equal(t, "black", cfg.ClearColor)
}

func TestDecodeConfig(t *testing.T) {
	src := `
mode: headless
scene: torus
hz: 60
ticks: 10
width: 120
height: 64
clear_color: bright-blue
hud: false
camera:
  position: [0, 1, -2]
  focal_distance: 50
  near: 0.5
  far: 200
log:
  level: debug
  file: /tmp/termgl.log
`
	cfg, err := DecodeConfig(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, ModeHeadless, cfg.Mode)
	assert.Equal(t, "torus", cfg.Scene)
	assert.Equal(t, 60, cfg.Hz)
	assert.Equal(t, uint64(10), cfg.Ticks)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
	assert.Equal(t, "bright-blue", cfg.ClearColor)
	assert.False(t, cfg.HUD)
	assert.Equal(t, [3]float32{0, 1, -2}, cfg.Camera.Position)
	assert.Equal(t, float32(50), cfg.Camera.FocalDistance)
	assert.Equal(t, float32(0.5), cfg.Camera.Near)
	assert.Equal(t, float32(200), cfg.Camera.Far)
	assert.Equal(t, LogConfig{Level: "debug", File: "/tmp/termgl.log"}, cfg.Log)
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("scene: vertex\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Scene = "vertex"
	assert.Equal(t, want, cfg)

	cfg, err = DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfigRejectsUnknownFields(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("fps: 30\n"))
	assert.ErrorContains(t, err, "decode config")
}

func TestConfigValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"mode", func(c *Config) { c.Mode = "vga" }, "invalid mode"},
		{"scene", func(c *Config) { c.Scene = "teapot" }, "invalid scene"},
		{"hz zero", func(c *Config) { c.Hz = 0 }, "hz"},
		{"hz huge", func(c *Config) { c.Hz = 5000 }, "hz"},
		{"negative size", func(c *Config) { c.Width = -1 }, "invalid size"},
		{"odd height", func(c *Config) { c.Height = 25 }, "even"},
		{"color", func(c *Config) { c.ClearColor = "mauve" }, "clear_color"},
		{"focal", func(c *Config) { c.Camera.FocalDistance = -3 }, "focal_distance"},
		{"near", func(c *Config) { c.Camera.Near = 0 }, "near"},
		{"far", func(c *Config) { c.Camera.Far = c.Camera.Near }, "far"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termgl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: tunnel\nhz: 24\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tunnel", cfg.Scene)
	assert.Equal(t, 24, cfg.Hz)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open config")
}

func TestFixedSize(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.FixedSize()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	cfg.Width = 30
	w, h = cfg.FixedSize()
	assert.Equal(t, 30, w)
	assert.Equal(t, DefaultHeight, h)
}
