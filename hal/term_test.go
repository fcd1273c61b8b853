package hal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termgl/render"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTermSinkPaintsHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 3, 2)
	buf := render.NewBuffer(render.V2(3, 4))
	buf.SetPixel(render.V2(1, 0), render.Red, 0.5)
	buf.SetPixel(render.V2(2, 3), render.BrightGreen, 0.5)

	require.NoError(t, buf.Flush(NewTermSink(screen)))

	cells, w, h := screen.GetContents()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)

	at := func(x, y int) (rune, tcell.Color, tcell.Color) {
		c := cells[y*w+x]
		require.NotEmpty(t, c.Runes)
		fg, bg, _ := c.Style.Decompose()
		return c.Runes[0], fg, bg
	}

	r, fg, bg := at(1, 0)
	assert.Equal(t, render.UpperHalfBlock, r)
	assert.Equal(t, tcell.PaletteColor(int(render.Red)), fg)
	assert.Equal(t, tcell.PaletteColor(int(render.Black)), bg)

	_, fg, bg = at(2, 1)
	assert.Equal(t, tcell.PaletteColor(int(render.Black)), fg)
	assert.Equal(t, tcell.PaletteColor(int(render.BrightGreen)), bg)
}

func TestTermSinkLabel(t *testing.T) {
	screen := newSimScreen(t, 4, 1)
	sink := NewTermSink(screen)
	sink.SetLabel("abcdef")

	require.NoError(t, render.NewBuffer(render.V2(4, 2)).Flush(sink))
	cells, w, _ := screen.GetContents()
	got := make([]rune, 0, w)
	for _, c := range cells[:w] {
		got = append(got, c.Runes[0])
	}
	assert.Equal(t, "abcd", string(got))
}

func TestTranslateKey(t *testing.T) {
	tcs := []struct {
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Code: KeyUp, Press: true}},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyEvent{Code: KeyLeft, Press: true}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEvent{Code: KeyEscape, Press: true}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyEvent{Code: KeyEscape, Press: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyEvent{Press: true, Rune: 'w'}},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyEvent{Code: KeyUnknown, Press: true}},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.want, translateKey(tc.ev), tc.ev.Name())
	}
}

func TestRunTerminalExitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")

	var w, h int
	steps := 0
	err := RunTerminal(context.Background(), screen, func(host Host) (StepFunc, error) {
		return func() error {
			steps++
			if steps == 1 {
				// The screen is finalized once RunTerminal returns.
				w, h = host.Size()
				screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
			}
			select {
			case ev := <-host.Keyboard().Events():
				if ev.Rune == 'q' {
					return ErrExit
				}
			default:
			}
			return nil
		}, nil
	}, RunConfig{Hz: 500, Ticks: 5000})

	assert.ErrorIs(t, err, ErrExit)
	assert.True(t, IsCleanExit(err))
	assert.Equal(t, 80, w)
	assert.Equal(t, 50, h)
}

func TestRunTerminalStopsAfterTicks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	steps := 0
	err := RunTerminal(context.Background(), screen, func(Host) (StepFunc, error) {
		return func() error { steps++; return nil }, nil
	}, RunConfig{Hz: 500, Ticks: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestRunTerminalCancelled(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := RunTerminal(ctx, screen, func(Host) (StepFunc, error) {
		return func() error { return nil }, nil
	}, RunConfig{Hz: 100})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
