package hal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termgl/render"
)

func TestImageSinkHalfBlocks(t *testing.T) {
	s := NewImageSink(2, 1)
	require.NoError(t, s.Home())
	require.NoError(t, s.PutCell(render.Cell{Glyph: render.UpperHalfBlock, FG: render.Red, BG: render.Blue}))
	require.NoError(t, s.PutCell(render.Cell{Glyph: render.LowerHalfBlock, FG: render.Green, BG: render.White}))

	assert.Equal(t, color.RGBA{}, s.Frame().RGBAAt(0, 0), "front is untouched until Present")
	require.NoError(t, s.Present())

	f := s.Frame()
	assert.Equal(t, 2, f.Bounds().Dx())
	assert.Equal(t, 2, f.Bounds().Dy())
	assert.Equal(t, render.Red.RGBA(), f.RGBAAt(0, 0))
	assert.Equal(t, render.Blue.RGBA(), f.RGBAAt(0, 1))
	assert.Equal(t, render.White.RGBA(), f.RGBAAt(1, 0))
	assert.Equal(t, render.Green.RGBA(), f.RGBAAt(1, 1))
}

func TestImageSinkFromBuffer(t *testing.T) {
	buf := render.NewBuffer(render.V2(4, 4))
	buf.SetPixel(render.V2(3, 3), render.Yellow, 0.5)

	s := NewImageSink(4, 2)
	require.NoError(t, buf.Flush(s))
	f := s.Frame()
	assert.Equal(t, render.Yellow.RGBA(), f.RGBAAt(3, 3))
	assert.Equal(t, render.Black.RGBA(), f.RGBAAt(2, 3))
}

func TestImageSinkLabel(t *testing.T) {
	s := NewImageSink(40, 10)
	x, y := s.Size()
	assert.Equal(t, int16(40), x)
	assert.Equal(t, int16(20), y)

	s.SetLabel("XX")
	require.NoError(t, s.Present())

	f := s.Frame()
	lit := 0
	for py := 0; py < 8; py++ {
		for px := 0; px < 12; px++ {
			if f.RGBAAt(px, py) == labelColor {
				lit++
			}
		}
	}
	assert.NotZero(t, lit)

	assert.NotPanics(t, func() { s.SetPixel(-1, 500, labelColor) })
	assert.NoError(t, s.Display())
}

func TestImageSinkScaled(t *testing.T) {
	s := NewImageSink(2, 1)
	_ = s.Home()
	_ = s.PutCell(render.Cell{Glyph: render.UpperHalfBlock, FG: render.Red, BG: render.Blue})
	_ = s.PutCell(render.Cell{Glyph: render.UpperHalfBlock, FG: render.Cyan, BG: render.Magenta})
	require.NoError(t, s.Present())

	big := s.Scaled(3)
	assert.Equal(t, 6, big.Bounds().Dx())
	assert.Equal(t, 6, big.Bounds().Dy())
	assert.Equal(t, render.Red.RGBA(), big.RGBAAt(2, 2))
	assert.Equal(t, render.Cyan.RGBA(), big.RGBAAt(4, 1))
	assert.Equal(t, render.Magenta.RGBA(), big.RGBAAt(5, 5))

	assert.Equal(t, s.Frame(), s.Scaled(1))
}
