// Package scene holds the built-in geometry that the frame driver animates.
package scene

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"termgl/render"
)

// Scene produces the primitives for one frame.
//
// Update advances the animation by dt. Renderables is called after Update and
// must not be retained by the caller past the frame. Orbit may return nil when
// the scene does not react to orbit input.
type Scene interface {
	Name() string
	Update(dt time.Duration)
	Renderables() []render.Renderable
	Orbit() *render.Orbit
}

// Toggler is implemented by scenes that can switch between solid and
// wireframe drawing.
type Toggler interface {
	ToggleWireframe()
}

// DefaultName is the scene used when none is configured.
const DefaultName = "cube"

var registry = map[string]func() Scene{
	"vertex": func() Scene { return newVertex() },
	"cube":   func() Scene { return newCube() },
	"torus":  func() Scene { return newTorus(1.0, 0.38, 32, 16) },
	"tunnel": func() Scene { return newTunnel() },
}

// New returns a fresh instance of the named scene.
func New(name string) (Scene, error) {
	if name == "" {
		name = DefaultName
	}
	mk, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func seconds(dt time.Duration) float32 {
	if dt < 0 {
		return 0
	}
	return float32(dt.Seconds())
}
