// Command snapshot renders a scene without a terminal and writes the last
// frame as a PNG, one image pixel per buffer pixel times -scale.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"termgl/app"
	"termgl/hal"
)

func main() {
	var (
		sceneName = flag.String("scene", "cube", "Scene to render.")
		frames    = flag.Int("frames", 1, "Frames to advance before the snapshot.")
		hz        = flag.Int("hz", 30, "Simulated frame rate.")
		width     = flag.Int("width", app.DefaultWidth, "Buffer width in pixels.")
		height    = flag.Int("height", app.DefaultHeight, "Buffer height in pixels (even).")
		scale     = flag.Int("scale", 8, "Output pixels per buffer pixel.")
		wire      = flag.Bool("wireframe", false, "Toggle wireframe before rendering.")
		outPath   = flag.String("out", "", "Output PNG file.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: snapshot -out frame.png [-scene cube] [-frames 1] [-width 80 -height 48] [-scale 8]")
	}
	if *frames < 1 {
		fatalf("frames must be at least 1, got %d", *frames)
	}

	cfg := app.DefaultConfig()
	cfg.Mode = app.ModeHeadless
	cfg.Scene = *sceneName
	cfg.Hz = *hz
	cfg.Width, cfg.Height = *width, *height
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	if err := snapshot(cfg, *frames, *scale, *wire, *outPath); err != nil {
		fatalf("snapshot: %v", err)
	}
}

func snapshot(cfg app.Config, frames, scale int, wire bool, outPath string) error {
	host := hal.NewHeadlessHost(cfg.Width, cfg.Height)
	a, err := app.New(cfg, host, nil)
	if err != nil {
		return err
	}
	if wire {
		host.Press(hal.KeyEvent{Rune: 'w', Press: true})
	}

	dt := time.Second / time.Duration(cfg.Hz)
	for i := 0; i < frames; i++ {
		if err := a.Advance(dt); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, host.Image().Scaled(scale)); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
