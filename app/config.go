package app

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"termgl/render"
	"termgl/scene"
)

// Mode selects the host a run is attached to.
type Mode string

const (
	ModeTerm     Mode = "term"
	ModeANSI     Mode = "ansi"
	ModeWindow   Mode = "window"
	ModeHeadless Mode = "headless"
)

// Config is the run configuration. A zero Width or Height follows the host
// on that axis.
type Config struct {
	Mode       Mode         `yaml:"mode"`
	Scene      string       `yaml:"scene"`
	Hz         int          `yaml:"hz"`
	Ticks      uint64       `yaml:"ticks"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	ClearColor string       `yaml:"clear_color"`
	HUD        bool         `yaml:"hud"`
	Camera     CameraConfig `yaml:"camera"`
	Log        LogConfig    `yaml:"log"`
}

type CameraConfig struct {
	Position      [3]float32 `yaml:"position"`
	FocalDistance float32    `yaml:"focal_distance"` // 0 = derived from the viewport
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty disables logging
}

// Size used by hosts that cannot report one (ansi, window, headless) when the
// configuration leaves it at zero.
const (
	DefaultWidth  = 80
	DefaultHeight = 48
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeTerm,
		Scene:      scene.DefaultName,
		Hz:         30,
		ClearColor: render.DefaultClearColor.String(),
		HUD:        true,
		Camera: CameraConfig{
			Near: render.DefaultNear,
			Far:  render.DefaultFar,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig reads YAML from r over DefaultConfig and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that can be checked without a host.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTerm, ModeANSI, ModeWindow, ModeHeadless:
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if _, err := scene.New(c.Scene); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}
	if c.Hz <= 0 || c.Hz > 1000 {
		return fmt.Errorf("hz must be in 1..1000, got %d", c.Hz)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Height%2 != 0 {
		return fmt.Errorf("height must be even (two pixel rows per cell), got %d", c.Height)
	}
	if _, err := render.ParseColor(c.ClearColor); err != nil {
		return fmt.Errorf("invalid clear_color: %w", err)
	}
	if c.Camera.FocalDistance < 0 {
		return fmt.Errorf("focal_distance must not be negative, got %g", c.Camera.FocalDistance)
	}
	if !(c.Camera.Near > 0) || !(c.Camera.Near < c.Camera.Far) {
		return fmt.Errorf("camera needs 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// FixedSize returns the configured size, falling back to DefaultWidth and
// DefaultHeight per axis.
func (c Config) FixedSize() (w, h int) {
	w, h = c.Width, c.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}
