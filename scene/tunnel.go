package scene

import (
	"time"

	"github.com/chewxy/math32"

	"termgl/render"
)

const (
	tunnelRings    = 40
	tunnelGap      = 2.5
	tunnelHalf     = 2
	tunnelRailNear = -10
	tunnelRailFar  = 1500
)

var (
	// X scrolls the rings towards the camera, Y twists the tunnel.
	tunnelVelocity = render.V2[float32](6, 0.3)
	tunnelPeriod   = render.V2[float32](tunnelGap, 2*math32.Pi)
)

var tunnelCorners = [4]render.Vec3[float32]{
	{X: -tunnelHalf, Y: -tunnelHalf},
	{X: tunnelHalf, Y: -tunnelHalf},
	{X: tunnelHalf, Y: tunnelHalf},
	{X: -tunnelHalf, Y: tunnelHalf},
}

// tunnel is a corridor of square rings that flows through the camera. The
// rails and floor run from behind the camera to beyond the far plane, so every
// frame clips against both.
type tunnel struct {
	phase render.Vec2[float32]
}

func newTunnel() *tunnel { return &tunnel{} }

func (s *tunnel) Name() string         { return "tunnel" }
func (s *tunnel) Orbit() *render.Orbit { return nil }

func (s *tunnel) Update(dt time.Duration) {
	s.phase = s.phase.Add(tunnelVelocity.Scale(seconds(dt))).Rem(tunnelPeriod)
}

func (s *tunnel) Renderables() []render.Renderable {
	out := make([]render.Renderable, 0, 1+4+tunnelRings*4)

	out = append(out, render.Polygon{
		Vertices: []render.Vec3[float32]{
			{X: -tunnelHalf, Y: tunnelHalf + 0.5, Z: tunnelRailNear},
			{X: tunnelHalf, Y: tunnelHalf + 0.5, Z: tunnelRailNear},
			{X: tunnelHalf, Y: tunnelHalf + 0.5, Z: tunnelRailFar},
			{X: -tunnelHalf, Y: tunnelHalf + 0.5, Z: tunnelRailFar},
		},
		Color: render.BrightBlack,
	})

	for _, c := range tunnelCorners {
		from := render.RotateZ(c, s.phase.Y)
		from.Z = tunnelRailNear
		to := from
		to.Z = tunnelRailFar
		out = append(out, render.Segment{From: from, To: to, Color: render.Blue})
	}

	for i := 0; i < tunnelRings; i++ {
		z := float32(i)*tunnelGap - s.phase.X - tunnelGap
		color := render.BrightCyan
		if i%2 == 1 {
			color = render.Cyan
		}

		var ring [4]render.Vec3[float32]
		for k, c := range tunnelCorners {
			ring[k] = render.RotateZ(c, s.phase.Y)
			ring[k].Z = z
		}
		for k := range ring {
			out = append(out, render.Segment{From: ring[k], To: ring[(k+1)%len(ring)], Color: color})
		}
	}
	return out
}
