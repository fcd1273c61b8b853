package scene

import (
	"time"

	"github.com/chewxy/math32"

	"termgl/render"
)

const torusSpinRate float32 = 1.0

var torusPalette = [...]render.Color{render.Yellow, render.BrightRed}

// torus is a ring of quads around the Y axis, tilted towards the viewer.
type torus struct {
	orbit     render.Orbit
	wireframe bool

	segU, segV int
	verts      []render.Vec3[float32] // segU*segV, model space
	world      []render.Vec3[float32]
}

func newTorus(major, minor float32, segU, segV int) *torus {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]render.Vec3[float32], 0, segU*segV)
	twoPi := float32(2 * math32.Pi)
	for u := 0; u < segU; u++ {
		st, ct := math32.Sincos(twoPi * float32(u) / float32(segU))
		for v := 0; v < segV; v++ {
			sp, cp := math32.Sincos(twoPi * float32(v) / float32(segV))
			r := major + minor*cp
			verts = append(verts, render.V3(r*ct, minor*sp, r*st))
		}
	}

	return &torus{
		orbit: render.Orbit{Pitch: cubeTilt, Radius: 3.2, MinRadius: 1.5, MaxRadius: 40},
		segU:  segU,
		segV:  segV,
		verts: verts,
		world: make([]render.Vec3[float32], len(verts)),
	}
}

func (s *torus) Name() string         { return "torus" }
func (s *torus) Orbit() *render.Orbit { return &s.orbit }
func (s *torus) ToggleWireframe()     { s.wireframe = !s.wireframe }

func (s *torus) Update(dt time.Duration) {
	s.orbit.Rotate(torusSpinRate*seconds(dt), 0)
}

func (s *torus) idx(u, v int) int {
	return (u%s.segU)*s.segV + v%s.segV
}

func (s *torus) Renderables() []render.Renderable {
	for i, v := range s.verts {
		s.world[i] = s.orbit.Apply(v)
	}

	out := make([]render.Renderable, 0, s.segU*s.segV)
	for u := 0; u < s.segU; u++ {
		for v := 0; v < s.segV; v++ {
			out = append(out, render.Polygon{
				Vertices: []render.Vec3[float32]{
					s.world[s.idx(u, v)],
					s.world[s.idx(u+1, v)],
					s.world[s.idx(u+1, v+1)],
					s.world[s.idx(u, v+1)],
				},
				Color:     torusPalette[(u+v)%len(torusPalette)],
				Wireframe: s.wireframe,
			})
		}
	}
	return out
}
