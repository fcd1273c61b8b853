package scene

import (
	"time"

	"termgl/render"
)

const (
	cubeSpinRate float32 = 1.2 // rad/s around Y
	cubeTilt     float32 = 0.65
)

var cubeCorners = [8]render.Vec3[float32]{
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
}

var cubeFaces = [6]struct {
	idx   [4]int
	color render.Color
}{
	{[4]int{0, 1, 2, 3}, render.Red},
	{[4]int{5, 4, 7, 6}, render.Green},
	{[4]int{4, 0, 3, 7}, render.Blue},
	{[4]int{1, 5, 6, 2}, render.Yellow},
	{[4]int{4, 5, 1, 0}, render.Magenta},
	{[4]int{3, 2, 6, 7}, render.Cyan},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// cube is a spinning cube drawn as solid faces with white edges on top, or as
// edges only in wireframe mode.
type cube struct {
	orbit     render.Orbit
	wireframe bool
}

func newCube() *cube {
	return &cube{orbit: render.Orbit{Pitch: cubeTilt, Radius: 5, MinRadius: 2, MaxRadius: 40}}
}

func (s *cube) Name() string         { return "cube" }
func (s *cube) Orbit() *render.Orbit { return &s.orbit }
func (s *cube) ToggleWireframe()     { s.wireframe = !s.wireframe }

func (s *cube) Update(dt time.Duration) {
	s.orbit.Rotate(cubeSpinRate*seconds(dt), 0)
}

func (s *cube) Renderables() []render.Renderable {
	world := s.orbit.ApplyAll(cubeCorners[:])

	out := make([]render.Renderable, 0, len(cubeFaces)+len(cubeEdges))
	if !s.wireframe {
		for _, f := range cubeFaces {
			out = append(out, render.Polygon{
				Vertices: []render.Vec3[float32]{world[f.idx[0]], world[f.idx[1]], world[f.idx[2]], world[f.idx[3]]},
				Color:    f.color,
			})
		}
	}
	for _, e := range cubeEdges {
		out = append(out, render.Segment{From: world[e[0]], To: world[e[1]], Color: render.BrightWhite})
	}
	return out
}
