package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termgl/app"
	"termgl/render"
)

func TestSnapshotWritesScaledPNG(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Scene = "vertex"
	cfg.Width, cfg.Height = 20, 20
	cfg.HUD = false
	out := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, snapshot(cfg, 2, 3, false, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	r, g, b, _ := img.At(31, 31).RGBA()
	want := render.Cyan.RGBA()
	assert.Equal(t, []uint32{uint32(want.R), uint32(want.G), uint32(want.B)}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestSnapshotRejectsUnknownScene(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Scene = "nope"
	cfg.Width, cfg.Height = 10, 10
	assert.Error(t, snapshot(cfg, 1, 1, false, filepath.Join(t.TempDir(), "x.png")))
}
