package render

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
)

const (
	// UpperHalfBlock paints the top pixel with FG and the bottom one with BG.
	UpperHalfBlock = '▀'
	// LowerHalfBlock paints the bottom pixel with FG and the top one with BG.
	LowerHalfBlock = '▄'
)

// farDepth is stored by Clear; every finite depth is nearer.
var farDepth = math32.Inf(1)

// Cell is one terminal character position holding two vertical pixels.
type Cell struct {
	Glyph rune
	FG    Color // top pixel
	BG    Color // bottom pixel
}

// Top returns the color of the upper pixel as seen on a terminal.
func (c Cell) Top() Color {
	if c.Glyph == LowerHalfBlock {
		return c.BG
	}
	return c.FG
}

// Bottom returns the color of the lower pixel as seen on a terminal.
func (c Cell) Bottom() Color {
	if c.Glyph == LowerHalfBlock {
		return c.FG
	}
	return c.BG
}

func blankCell(c Color) Cell {
	return Cell{Glyph: UpperHalfBlock, FG: c, BG: c}
}

// Buffer is a pixel grid at twice the vertical density of the terminal, plus a
// per-pixel depth buffer.
//
// Pixel operations address the full width x height space. Only the output
// mapping collapses two pixel rows into one Cell: even rows are stored as the
// cell's FG, odd rows as its BG.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	width  int
	height int // pixel rows, always even

	cells []Cell    // width * height/2
	depth []float32 // width * height
}

// NewBuffer allocates a buffer for the given pixel resolution. An odd height is
// rounded down, since two pixel rows make one cell.
func NewBuffer(viewport Vec2[int]) *Buffer {
	w, h := viewport.X, viewport.Y&^1
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	b := &Buffer{
		width:  w,
		height: h,
		cells:  make([]Cell, w*(h/2)),
		depth:  make([]float32, w*h),
	}
	b.Clear(DefaultClearColor)
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Rows returns the number of terminal rows.
func (b *Buffer) Rows() int { return b.height / 2 }

// Clear resets every cell to c and the whole depth buffer to the far sentinel,
// so depth written during the previous frame never hides new geometry.
func (b *Buffer) Clear(c Color) {
	blank := blankCell(c)
	for i := range b.cells {
		b.cells[i] = blank
	}
	for i := range b.depth {
		b.depth[i] = farDepth
	}
}

func (b *Buffer) inBounds(p Vec2[int]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

// SetPixel writes one pixel if it lies inside the buffer and is at least as
// near as what this frame already stored there. Smaller depth is nearer.
// Rejected writes are silently dropped.
func (b *Buffer) SetPixel(p Vec2[int], c Color, depth float32) {
	if !b.inBounds(p) {
		return
	}
	di := p.Y*b.width + p.X
	if !(depth <= b.depth[di]) {
		return
	}
	b.depth[di] = depth

	cell := &b.cells[(p.Y/2)*b.width+p.X]
	if p.Y%2 == 0 {
		cell.FG = c
	} else {
		cell.BG = c
	}
}

// Pixel returns the color and depth stored for a pixel.
func (b *Buffer) Pixel(p Vec2[int]) (Color, float32, bool) {
	if !b.inBounds(p) {
		return 0, 0, false
	}
	cell := b.cells[(p.Y/2)*b.width+p.X]
	c := cell.FG
	if p.Y%2 == 1 {
		c = cell.BG
	}
	return c, b.depth[p.Y*b.width+p.X], true
}

// Cell returns the output cell at a terminal column and row.
func (b *Buffer) Cell(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= b.width || row >= b.Rows() {
		return Cell{}, false
	}
	return b.cells[row*b.width+col], true
}

// Flush writes the frame to s row by row. Rows are separated by explicit
// NextLine calls; there is none after the last row.
func (b *Buffer) Flush(s Sink) error {
	if err := s.Home(); err != nil {
		return err
	}
	rows := b.Rows()
	for row := 0; row < rows; row++ {
		line := b.cells[row*b.width : (row+1)*b.width]
		for _, cell := range line {
			if err := s.PutCell(cell); err != nil {
				return err
			}
		}
		if row < rows-1 {
			if err := s.NextLine(); err != nil {
				return err
			}
		}
	}
	return s.Present()
}

// Digest hashes the visible content of the frame. Two frames with the same
// digest produce the same output.
func (b *Buffer) Digest() uint64 {
	d := xxhash.New()
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(b.width))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(b.height))
	_, _ = d.Write(hdr[:])

	var rec [6]byte
	for _, c := range b.cells {
		binary.LittleEndian.PutUint32(rec[0:], uint32(c.Glyph))
		rec[4] = byte(c.FG)
		rec[5] = byte(c.BG)
		_, _ = d.Write(rec[:])
	}
	return d.Sum64()
}
