package render

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink keeps every call made by Buffer.Flush.
type recordSink struct {
	ops     []string
	cells   []Cell
	failOn  string
	failErr error
}

func (s *recordSink) call(op string) error {
	s.ops = append(s.ops, op)
	if op == s.failOn {
		return s.failErr
	}
	return nil
}

func (s *recordSink) Home() error     { return s.call("home") }
func (s *recordSink) NextLine() error { return s.call("nl") }
func (s *recordSink) Present() error  { return s.call("present") }
func (s *recordSink) PutCell(c Cell) error {
	s.cells = append(s.cells, c)
	return s.call("cell")
}

func TestNewBufferSizes(t *testing.T) {
	tcs := []struct {
		w, h       int
		wantHeight int
		wantRows   int
	}{
		{w: 10, h: 10, wantHeight: 10, wantRows: 5},
		{w: 80, h: 50, wantHeight: 50, wantRows: 25},
		{w: 7, h: 9, wantHeight: 8, wantRows: 4},
		{w: 3, h: 1, wantHeight: 0, wantRows: 0},
	}
	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			b := NewBuffer(V2(tc.w, tc.h))
			assert.Equal(t, tc.w, b.Width())
			assert.Equal(t, tc.wantHeight, b.Height())
			assert.Equal(t, tc.wantRows, b.Rows())
			assert.Len(t, b.cells, tc.w*tc.wantRows)
			assert.Len(t, b.depth, tc.w*tc.wantHeight)
		})
	}
}

func TestDefaultCellIsUpperHalfBlock(t *testing.T) {
	b := NewBuffer(V2(4, 4))
	c, ok := b.Cell(3, 1)
	require.True(t, ok)
	assert.Equal(t, Cell{Glyph: UpperHalfBlock, FG: DefaultClearColor, BG: DefaultClearColor}, c)

	_, ok = b.Cell(4, 0)
	assert.False(t, ok)
	_, ok = b.Cell(0, 2)
	assert.False(t, ok)
}

func TestSetPixelHalfBlockMapping(t *testing.T) {
	b := NewBuffer(V2(4, 4))

	b.SetPixel(V2(1, 2), Red, 0.5)
	b.SetPixel(V2(1, 3), Blue, 0.5)

	cell, ok := b.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, Red, cell.FG, "even row is the top half")
	assert.Equal(t, Blue, cell.BG, "odd row is the bottom half")
	assert.Equal(t, Red, cell.Top())
	assert.Equal(t, Blue, cell.Bottom())

	other, _ := b.Cell(1, 0)
	assert.Equal(t, Black, other.FG)
	assert.Equal(t, Black, other.BG)
}

func TestSetPixelDepthTest(t *testing.T) {
	const near, far = 0.2, 0.6

	t.Run("farther write after nearer is dropped", func(t *testing.T) {
		b := NewBuffer(V2(4, 4))
		b.SetPixel(V2(2, 2), Red, near)
		b.SetPixel(V2(2, 2), Blue, far)
		c, d, ok := b.Pixel(V2(2, 2))
		require.True(t, ok)
		assert.Equal(t, Red, c)
		assert.Equal(t, float32(near), d)
	})

	t.Run("nearer write after farther wins", func(t *testing.T) {
		b := NewBuffer(V2(4, 4))
		b.SetPixel(V2(2, 2), Blue, far)
		b.SetPixel(V2(2, 2), Red, near)
		c, d, _ := b.Pixel(V2(2, 2))
		assert.Equal(t, Red, c)
		assert.Equal(t, float32(near), d)
	})

	t.Run("equal depth is accepted", func(t *testing.T) {
		b := NewBuffer(V2(4, 4))
		b.SetPixel(V2(2, 2), Blue, far)
		b.SetPixel(V2(2, 2), Green, far)
		c, _, _ := b.Pixel(V2(2, 2))
		assert.Equal(t, Green, c)
	})

	t.Run("nan depth is dropped", func(t *testing.T) {
		b := NewBuffer(V2(4, 4))
		b.SetPixel(V2(2, 2), Green, float32(math.NaN()))
		c, d, _ := b.Pixel(V2(2, 2))
		assert.Equal(t, Black, c)
		assert.True(t, math.IsInf(float64(d), 1))
	})
}

func TestSetPixelOutOfBounds(t *testing.T) {
	b := NewBuffer(V2(10, 10))
	before := b.Digest()

	for _, p := range []Vec2[int]{V2(10, 0), V2(-1, 0), V2(0, 10), V2(0, -1), V2(1<<30, 1<<30)} {
		assert.NotPanics(t, func() { b.SetPixel(p, White, 0) })
		_, _, ok := b.Pixel(p)
		assert.False(t, ok)
	}
	assert.Equal(t, before, b.Digest())
}

func TestClearResetsColorAndDepth(t *testing.T) {
	b := NewBuffer(V2(4, 4))
	b.SetPixel(V2(0, 0), Red, 0.001)

	b.Clear(Blue)
	c, d, _ := b.Pixel(V2(0, 0))
	assert.Equal(t, Blue, c)
	assert.True(t, math.IsInf(float64(d), 1))

	b.SetPixel(V2(0, 0), Green, 0.9)
	c, _, _ = b.Pixel(V2(0, 0))
	assert.Equal(t, Green, c, "depth from the previous frame must not hide new geometry")
}

func TestFlushOrder(t *testing.T) {
	b := NewBuffer(V2(3, 4))
	b.SetPixel(V2(0, 0), Red, 0.5)
	b.SetPixel(V2(2, 3), Cyan, 0.5)

	s := &recordSink{}
	require.NoError(t, b.Flush(s))

	assert.Equal(t, []string{
		"home",
		"cell", "cell", "cell", "nl",
		"cell", "cell", "cell",
		"present",
	}, s.ops)
	require.Len(t, s.cells, 6)
	assert.Equal(t, Red, s.cells[0].FG)
	assert.Equal(t, Cyan, s.cells[5].BG)
	for _, c := range s.cells {
		assert.Equal(t, UpperHalfBlock, c.Glyph)
	}
}

func TestFlushStopsOnSinkError(t *testing.T) {
	boom := errors.New("boom")
	b := NewBuffer(V2(2, 4))

	s := &recordSink{failOn: "nl", failErr: boom}
	err := b.Flush(s)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"home", "cell", "cell", "nl"}, s.ops)
}

func TestDigestTracksContent(t *testing.T) {
	b := NewBuffer(V2(6, 6))
	empty := b.Digest()

	b.SetPixel(V2(3, 3), Yellow, 0.5)
	lit := b.Digest()
	assert.NotEqual(t, empty, lit)

	b.Clear(DefaultClearColor)
	assert.Equal(t, empty, b.Digest())

	assert.NotEqual(t, empty, NewBuffer(V2(4, 6)).Digest(), "size is part of the digest")
}
