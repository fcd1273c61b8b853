//go:build cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"termgl/internal/buildinfo"
	"termgl/render"
)

type windowHost struct {
	w, h int
	sink *ImageSink
	keys *hostKeyboard
}

func (h *windowHost) Size() (int, int)   { return h.w, h.h }
func (h *windowHost) Sink() render.Sink  { return h.sink }
func (h *windowHost) Keyboard() Keyboard { return h.keys }

// RunWindow opens a desktop window that displays the frame and forwards
// keyboard input. It blocks until the window closes, the app exits or the
// tick budget is spent.
func RunWindow(newApp AppFactory, cfg WindowConfig) error {
	cfg.RunConfig = cfg.RunConfig.withDefaults()
	if cfg.Width <= 0 || cfg.Height < 2 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 8
	}

	h := &windowHost{
		w:    cfg.Width,
		h:    cfg.Height &^ 1,
		sink: NewImageSink(cfg.Width, cfg.Height/2),
		keys: newHostKeyboard(),
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, ticks: cfg.Ticks}
	ebiten.SetWindowTitle("termgl (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.w*cfg.Scale, h.h*cfg.Scale)
	ebiten.SetTPS(cfg.Hz)
	err = ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type hostGame struct {
	h     *windowHost
	img   *ebiten.Image
	step  StepFunc
	ticks uint64
	tick  uint64
}

func (g *hostGame) Update() error {
	g.h.keys.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	g.tick++
	if g.ticks > 0 && g.tick >= g.ticks {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame := g.h.sink.Frame()
	b := frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.w, g.h.h
}
