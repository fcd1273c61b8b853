package hal

import (
	"context"
	"fmt"
	"time"

	"termgl/render"
)

// HeadlessHost renders into an in-memory image and never produces input.
type HeadlessHost struct {
	w, h int
	sink *ImageSink
	keys *keyQueue
}

// NewHeadlessHost returns a host with a fixed pixel resolution.
func NewHeadlessHost(w, h int) *HeadlessHost {
	return &HeadlessHost{w: w, h: h, sink: NewImageSink(w, h/2), keys: newKeyQueue()}
}

func (h *HeadlessHost) Size() (int, int)   { return h.w, h.h }
func (h *HeadlessHost) Sink() render.Sink  { return h.sink }
func (h *HeadlessHost) Keyboard() Keyboard { return h.keys }

// Image returns the sink holding the last presented frame.
func (h *HeadlessHost) Image() *ImageSink { return h.sink }

// Press queues a key event as if it had been typed.
func (h *HeadlessHost) Press(ev KeyEvent) { h.keys.emit(ev) }

// RunHeadless runs the app on a plain ticker, without a window or an input
// pump. It suits HeadlessHost and StreamHost.
func RunHeadless(ctx context.Context, h Host, newApp AppFactory, cfg RunConfig) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}
	return runTicks(ctx, step, cfg)
}

func runTicks(ctx context.Context, step StepFunc, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid tick rate: %d hz", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
