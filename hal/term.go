package hal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"termgl/render"
)

// TermSink draws cells onto a tcell screen. Palette colors are passed through
// as tcell palette indices, so the terminal's own theme decides the RGB.
type TermSink struct {
	screen tcell.Screen
	x, y   int
	label  string
}

func NewTermSink(screen tcell.Screen) *TermSink {
	return &TermSink{screen: screen}
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(c.FG))).
		Background(tcell.PaletteColor(int(c.BG)))
}

func (t *TermSink) Home() error {
	t.x, t.y = 0, 0
	return nil
}

func (t *TermSink) PutCell(c render.Cell) error {
	t.screen.SetContent(t.x, t.y, c.Glyph, nil, cellStyle(c))
	t.x++
	return nil
}

func (t *TermSink) NextLine() error {
	t.x = 0
	t.y++
	return nil
}

func (t *TermSink) Present() error {
	if t.label != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		w, _ := t.screen.Size()
		x := 0
		for _, r := range t.label {
			if x >= w {
				break
			}
			t.screen.SetContent(x, 0, r, nil, style)
			x++
		}
	}
	t.screen.Show()
	return nil
}

func (t *TermSink) SetLabel(s string) { t.label = s }

type termHost struct {
	screen tcell.Screen
	sink   *TermSink
	keys   *keyQueue
}

func newTermHost(screen tcell.Screen) *termHost {
	return &termHost{screen: screen, sink: NewTermSink(screen), keys: newKeyQueue()}
}

func (h *termHost) Size() (int, int) {
	cols, rows := h.screen.Size()
	return cols, rows * 2
}

func (h *termHost) Sink() render.Sink  { return h.sink }
func (h *termHost) Keyboard() Keyboard { return h.keys }

// pump forwards screen events until the screen is finalized or ctx is done.
func (h *termHost) pump(ctx context.Context) error {
	for {
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			h.screen.Sync()
		case *tcell.EventKey:
			h.keys.emit(translateKey(ev))
		}
	}
}

func translateKey(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape, Press: true}
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}
	}
	return KeyEvent{Code: KeyUnknown, Press: true}
}

// RunTerminal takes over screen and runs the app until it exits, the tick
// budget is spent or ctx is cancelled. Input is read on its own goroutine;
// frames are produced on the calling one's ticker.
func RunTerminal(ctx context.Context, screen tcell.Screen, newApp AppFactory, cfg RunConfig) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	h := newTermHost(screen)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return h.pump(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		// Wakes pump out of PollEvent.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return runTicks(ctx, step, cfg)
	})
	return g.Wait()
}
