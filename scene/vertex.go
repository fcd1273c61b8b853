package scene

import (
	"time"

	"termgl/render"
)

// vertex is the smallest possible scene: one point straight ahead of the
// default camera.
type vertex struct {
	orbit render.Orbit
}

func newVertex() *vertex {
	return &vertex{orbit: render.Orbit{Radius: 1, MinRadius: render.DefaultNear, MaxRadius: 50}}
}

func (s *vertex) Name() string         { return "vertex" }
func (s *vertex) Update(time.Duration) {}
func (s *vertex) Orbit() *render.Orbit { return &s.orbit }

func (s *vertex) Renderables() []render.Renderable {
	return []render.Renderable{
		render.Point{Pos: s.orbit.Apply(render.Vec3[float32]{}), Color: render.Cyan},
	}
}
