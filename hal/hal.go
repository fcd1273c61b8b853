// Package hal connects the renderer to the outside world: terminals, byte
// streams, images and desktop windows.
package hal

import (
	"context"
	"errors"

	"termgl/render"
)

// ErrExit is returned by a step function when the user asked to quit. Runners
// treat it as a clean shutdown.
var ErrExit = errors.New("exit requested")

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Printable keys carry Rune and KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Host is what a frame driver needs from a platform.
type Host interface {
	// Size returns the pixel resolution the host can show. Height counts
	// pixel rows, two per terminal row.
	Size() (w, h int)
	Sink() render.Sink
	Keyboard() Keyboard
}

// Labeler is implemented by sinks that can overlay a line of text on the
// next presented frame.
type Labeler interface {
	SetLabel(s string)
}

// StepFunc advances the application by one frame.
type StepFunc func() error

// AppFactory builds the per-frame step for a host.
type AppFactory func(Host) (StepFunc, error)

// RunConfig controls the tick loop shared by the runners.
type RunConfig struct {
	Hz    int
	Ticks uint64 // 0 = run until cancelled
}

// WindowConfig sizes the desktop window. Width and Height are in buffer
// pixels; Scale enlarges each of them on screen.
type WindowConfig struct {
	RunConfig
	Width, Height int
	Scale         int
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Hz <= 0 {
		c.Hz = 30
	}
	return c
}

// IsCleanExit reports whether err ends a run without failure.
func IsCleanExit(err error) bool {
	return err == nil || errors.Is(err, ErrExit) || errors.Is(err, context.Canceled)
}

// keyQueue is a bounded, non-blocking Keyboard. Events beyond its capacity
// are dropped.
type keyQueue struct {
	ch chan KeyEvent
}

func newKeyQueue() *keyQueue {
	return &keyQueue{ch: make(chan KeyEvent, 64)}
}

func (k *keyQueue) Events() <-chan KeyEvent { return k.ch }

func (k *keyQueue) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
