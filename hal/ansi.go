package hal

import (
	"bufio"
	"io"
	"strconv"

	"termgl/render"
)

const (
	csi        = "\x1b["
	sgrReset   = csi + "0m"
	cursorHome = csi + "H"
	nextLine   = csi + "1E"
)

// ANSISink writes frames as VT100/xterm escape sequences. Output is buffered
// and reaches the writer only on Present.
type ANSISink struct {
	w     *bufio.Writer
	label string

	styled bool
	fg, bg render.Color
}

func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{w: bufio.NewWriterSize(w, 16<<10)}
}

func fgCode(c render.Color) int {
	if c.Bright() {
		return 90 + int(c-render.BrightBlack)
	}
	return 30 + int(c&7)
}

func bgCode(c render.Color) int {
	if c.Bright() {
		return 100 + int(c-render.BrightBlack)
	}
	return 40 + int(c&7)
}

func (s *ANSISink) Home() error {
	s.styled = false
	_, err := s.w.WriteString(cursorHome)
	return err
}

func (s *ANSISink) PutCell(c render.Cell) error {
	if !s.styled || c.FG != s.fg || c.BG != s.bg {
		var seq [16]byte
		b := append(seq[:0], csi...)
		b = strconv.AppendInt(b, int64(fgCode(c.FG)), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(bgCode(c.BG)), 10)
		b = append(b, 'm')
		if _, err := s.w.Write(b); err != nil {
			return err
		}
		s.styled, s.fg, s.bg = true, c.FG, c.BG
	}
	_, err := s.w.WriteRune(c.Glyph)
	return err
}

func (s *ANSISink) NextLine() error {
	s.styled = false
	_, err := s.w.WriteString(sgrReset + nextLine)
	return err
}

func (s *ANSISink) Present() error {
	if _, err := s.w.WriteString(sgrReset); err != nil {
		return err
	}
	if s.label != "" {
		if _, err := s.w.WriteString(cursorHome + csi + "97;40m" + s.label + sgrReset); err != nil {
			return err
		}
	}
	s.styled = false
	return s.w.Flush()
}

func (s *ANSISink) SetLabel(label string) { s.label = label }

// StreamHost drives an ANSISink with a fixed size and no input.
type StreamHost struct {
	w, h int
	sink *ANSISink
	keys *keyQueue
}

func NewStreamHost(out io.Writer, w, h int) *StreamHost {
	return &StreamHost{w: w, h: h, sink: NewANSISink(out), keys: newKeyQueue()}
}

func (h *StreamHost) Size() (int, int)   { return h.w, h.h }
func (h *StreamHost) Sink() render.Sink  { return h.sink }
func (h *StreamHost) Keyboard() Keyboard { return h.keys }
