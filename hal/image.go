package hal

import (
	"image"
	"image/color"
	"sync"

	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"termgl/render"
)

var _ drivers.Displayer = (*ImageSink)(nil)

var labelColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}

// ImageSink paints cells into an RGBA image, one pixel per half block, so a
// cols x rows frame becomes a cols x 2*rows image.
//
// Cells are painted into a back image; Present overlays the label and copies
// it to the front image that Frame and Scaled read. It also acts as a tinygo
// Displayer for the label text.
type ImageSink struct {
	back  *image.RGBA
	col   int
	row   int
	label string

	mu    sync.Mutex
	front *image.RGBA
}

// NewImageSink returns a sink for a grid of cols x rows cells.
func NewImageSink(cols, rows int) *ImageSink {
	r := image.Rect(0, 0, max(cols, 0), max(rows, 0)*2)
	return &ImageSink{back: image.NewRGBA(r), front: image.NewRGBA(r)}
}

func (s *ImageSink) Home() error {
	s.col, s.row = 0, 0
	return nil
}

func (s *ImageSink) PutCell(c render.Cell) error {
	s.back.SetRGBA(s.col, s.row*2, c.Top().RGBA())
	s.back.SetRGBA(s.col, s.row*2+1, c.Bottom().RGBA())
	s.col++
	return nil
}

func (s *ImageSink) NextLine() error {
	s.col = 0
	s.row++
	return nil
}

func (s *ImageSink) Present() error {
	if s.label != "" {
		tinyfont.WriteLine(s, &tinyfont.TomThumb, 1, int16(tinyfont.TomThumb.GetYAdvance()), s.label, labelColor)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.front.Pix, s.back.Pix)
	return nil
}

func (s *ImageSink) SetLabel(label string) { s.label = label }

// Size, SetPixel and Display implement drivers.Displayer on the back image.

func (s *ImageSink) Size() (x, y int16) {
	b := s.back.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (s *ImageSink) SetPixel(x, y int16, c color.RGBA) {
	// SetRGBA ignores points outside the bounds.
	s.back.SetRGBA(int(x), int(y), c)
}

func (s *ImageSink) Display() error { return nil }

// Frame returns a copy of the last presented frame.
func (s *ImageSink) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.front.Bounds())
	copy(out.Pix, s.front.Pix)
	return out
}

// Scaled returns the last presented frame enlarged n times with
// nearest-neighbour sampling, which keeps pixel edges sharp.
func (s *ImageSink) Scaled(n int) *image.RGBA {
	if n <= 1 {
		return s.Frame()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.front.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), s.front, b, xdraw.Src, nil)
	return out
}
