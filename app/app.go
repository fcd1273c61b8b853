// Package app drives the renderer: it owns the camera, the frame buffer and
// the active scene, and turns host ticks into frames.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"termgl/hal"
	"termgl/render"
	"termgl/scene"
)

const (
	orbitStep  float32 = 0.15 // rad per arrow key press
	zoomStep   float32 = 0.5
	statsEvery         = 100 // frames between debug stats
)

// App renders one scene onto one host.
type App struct {
	cfg   Config
	host  hal.Host
	log   *zap.Logger
	scene scene.Scene

	cam   *render.Camera
	buf   *render.Buffer
	bg    render.Color
	label string

	now  func() time.Time
	last time.Time

	frame   uint64
	flushes uint64
	digest  uint64
	flushed bool
}

// New prepares an app for host. The configuration must already be valid.
func New(cfg Config, host hal.Host, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sc, err := scene.New(cfg.Scene)
	if err != nil {
		return nil, err
	}
	bg, err := render.ParseColor(cfg.ClearColor)
	if err != nil {
		return nil, fmt.Errorf("clear color: %w", err)
	}

	a := &App{
		cfg:   cfg,
		host:  host,
		log:   log.With(zap.String("scene", sc.Name())),
		scene: sc,
		bg:    bg,
		label: sc.Name(),
		now:   time.Now,
	}

	w, h := a.targetSize()
	if err := a.setViewport(w, h); err != nil {
		return nil, err
	}
	a.last = a.now()

	a.log.Info("app started",
		zap.Int("width", a.buf.Width()),
		zap.Int("height", a.buf.Height()),
		zap.Float32("focal", a.cam.FocalDistance),
	)
	return a, nil
}

// Factory adapts New to the hal runners.
func Factory(cfg Config, log *zap.Logger) hal.AppFactory {
	return func(h hal.Host) (hal.StepFunc, error) {
		a, err := New(cfg, h, log)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

func (a *App) setViewport(w, h int) error {
	h &^= 1
	if w <= 0 || h <= 0 {
		return fmt.Errorf("viewport %dx%d is too small", w, h)
	}

	cc := a.cfg.Camera
	focal := cc.FocalDistance
	if focal == 0 {
		focal = float32(min(w, h))
	}
	cam := render.NewCamera(render.V3(cc.Position[0], cc.Position[1], cc.Position[2]), focal, render.V2(w, h))
	cam.Near, cam.Far = cc.Near, cc.Far
	if err := cam.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	a.cam = cam
	a.buf = render.NewBuffer(cam.Viewport)
	a.flushed = false
	return nil
}

// Camera returns the camera used for the next frame.
func (a *App) Camera() *render.Camera { return a.cam }

// Buffer returns the frame buffer. Its content is the last rendered frame.
func (a *App) Buffer() *render.Buffer { return a.buf }

// Scene returns the active scene.
func (a *App) Scene() scene.Scene { return a.scene }

// Frames returns the number of frames rendered and the number that reached
// the sink.
func (a *App) Frames() (rendered, flushed uint64) { return a.frame, a.flushes }

// Step renders one frame using the wall-clock time since the previous step.
func (a *App) Step() (err error) {
	defer a.recoverFrame(&err)

	now := a.now()
	dt := now.Sub(a.last)
	a.last = now
	return a.advance(dt)
}

// Advance renders one frame as if dt had passed. It does not touch the wall
// clock, so a sequence of Advance calls is reproducible.
func (a *App) Advance(dt time.Duration) (err error) {
	defer a.recoverFrame(&err)
	return a.advance(dt)
}

func (a *App) advance(dt time.Duration) error {
	if err := a.drainKeys(); err != nil {
		return err
	}
	if err := a.followHostSize(); err != nil {
		return err
	}

	a.scene.Update(dt)
	a.buf.Clear(a.bg)
	prims := a.scene.Renderables()
	for _, r := range prims {
		r.Render(a.cam, a.buf)
	}
	a.frame++

	if err := a.present(); err != nil {
		return err
	}

	if a.frame%statsEvery == 0 {
		a.log.Debug("frame stats",
			zap.Uint64("frame", a.frame),
			zap.Uint64("flushed", a.flushes),
			zap.Int("primitives", len(prims)),
			zap.Duration("dt", dt),
		)
	}
	return nil
}

// present flushes the buffer unless it is identical to the last flushed one.
func (a *App) present() error {
	d := a.buf.Digest()
	if a.flushed && d == a.digest {
		return nil
	}

	sink := a.host.Sink()
	if l, ok := sink.(hal.Labeler); ok && a.cfg.HUD {
		l.SetLabel(a.label)
	}
	if err := a.buf.Flush(sink); err != nil {
		return fmt.Errorf("flush frame %d: %w", a.frame, err)
	}
	a.digest, a.flushed = d, true
	a.flushes++
	return nil
}

// targetSize is the host size with each configured axis taking precedence.
func (a *App) targetSize() (w, h int) {
	w, h = a.host.Size()
	if a.cfg.Width > 0 {
		w = a.cfg.Width
	}
	if a.cfg.Height > 0 {
		h = a.cfg.Height
	}
	return w, h
}

func (a *App) followHostSize() error {
	w, h := a.targetSize()
	if w == a.buf.Width() && h&^1 == a.buf.Height() {
		return nil
	}
	if w <= 0 || h < 2 {
		// Keep the old buffer while the host reports nothing usable.
		return nil
	}
	if err := a.setViewport(w, h); err != nil {
		return err
	}
	a.log.Info("viewport resized", zap.Int("width", w), zap.Int("height", h&^1))
	return nil
}

func (a *App) drainKeys() error {
	kb := a.host.Keyboard()
	if kb == nil {
		return nil
	}
	ch := kb.Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	orbit := a.scene.Orbit()

	switch {
	case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
		a.log.Info("exit requested", zap.Uint64("frame", a.frame))
		return hal.ErrExit
	case ev.Rune == 'w', ev.Rune == 'W':
		if t, ok := a.scene.(scene.Toggler); ok {
			t.ToggleWireframe()
		}
	case orbit == nil:
	case ev.Code == hal.KeyLeft:
		orbit.Rotate(-orbitStep, 0)
	case ev.Code == hal.KeyRight:
		orbit.Rotate(orbitStep, 0)
	case ev.Code == hal.KeyUp:
		orbit.Rotate(0, -orbitStep)
	case ev.Code == hal.KeyDown:
		orbit.Rotate(0, orbitStep)
	case ev.Rune == '+', ev.Rune == '=':
		orbit.Zoom(-zoomStep)
	case ev.Rune == '-', ev.Rune == '_':
		orbit.Zoom(zoomStep)
	}
	return nil
}
