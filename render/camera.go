package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 1000
)

// pixelAspect is 1 because the buffer already stores two pixel rows per
// terminal cell, which makes buffer pixels roughly square.
const pixelAspect float32 = 1

// maxScreenCoord bounds projected coordinates so the int conversion is always
// defined. Anything beyond it is far outside any real viewport.
const maxScreenCoord = 1 << 24

// Projected is a screen-space point with its depth-test key.
type Projected struct {
	Pos   Vec2[int]
	Depth float32
}

// Camera is a pinhole camera looking down +Z from Position.
//
// FocalDistance is expressed in pixels: the local point (1, 0, z) lands
// FocalDistance/z pixels right of the viewport center. Screen y grows downward,
// like world y.
type Camera struct {
	Position      Vec3[float32]
	FocalDistance float32
	Viewport      Vec2[int] // pixel width, full pixel height

	Near float32
	Far  float32
}

// NewCamera returns a camera with the default near/far range.
func NewCamera(pos Vec3[float32], focal float32, viewport Vec2[int]) *Camera {
	return &Camera{
		Position:      pos,
		FocalDistance: focal,
		Viewport:      viewport,
		Near:          DefaultNear,
		Far:           DefaultFar,
	}
}

// Validate checks the camera invariants.
func (c *Camera) Validate() error {
	switch {
	case c == nil:
		return errors.New("camera is nil")
	case !(c.Near > 0):
		return fmt.Errorf("near plane must be positive, got %g", c.Near)
	case !(c.Near < c.Far):
		return fmt.Errorf("near plane %g must be closer than far plane %g", c.Near, c.Far)
	case !(c.FocalDistance > 0):
		return fmt.Errorf("focal distance must be positive, got %g", c.FocalDistance)
	case c.Viewport.X <= 0 || c.Viewport.Y <= 0:
		return fmt.Errorf("invalid viewport %dx%d", c.Viewport.X, c.Viewport.Y)
	}
	return nil
}

// ToLocal translates a world point into camera-local space.
func (c *Camera) ToLocal(p Vec3[float32]) Vec3[float32] { return p.Sub(c.Position) }

// InView reports whether a screen position lies inside the viewport.
func (c *Camera) InView(p Vec2[int]) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.Viewport.X && p.Y < c.Viewport.Y
}

// ProjectWorld projects a world-space point.
func (c *Camera) ProjectWorld(p Vec3[float32]) (Projected, bool) {
	return c.ProjectLocal(c.ToLocal(p))
}

// ProjectLocal perspective-divides a camera-local point.
//
// It fails when z is outside [Near, Far]. The result is not checked against the
// viewport: callers clip in 3D first and the buffer drops off-screen pixels.
func (c *Camera) ProjectLocal(p Vec3[float32]) (Projected, bool) {
	if !c.inRange(p.Z) {
		return Projected{}, false
	}

	sx := c.FocalDistance*(p.X/p.Z) + float32(c.Viewport.X)/2
	sy := c.FocalDistance*(p.Y/p.Z)*pixelAspect + float32(c.Viewport.Y)/2
	if !screenCoordOK(sx) || !screenCoordOK(sy) {
		return Projected{}, false
	}

	return Projected{
		Pos:   Vec2[int]{X: int(math32.Floor(sx)), Y: int(math32.Floor(sy))},
		Depth: p.Z / c.Far,
	}, true
}

func (c *Camera) inRange(z float32) bool {
	return z >= c.Near && z <= c.Far
}

func screenCoordOK(v float32) bool {
	return v > -maxScreenCoord && v < maxScreenCoord
}

// zPlane returns the point of segment a-b with the given z.
func zPlane(a, b Vec3[float32], z float32) Vec3[float32] {
	t := (z - a.Z) / (b.Z - a.Z)
	p := Lerp(a, b, t)
	p.Z = z
	return p
}

// ClipSegment moves a world-space segment into camera-local space and clips it
// to the [Near, Far] slab. It fails when the whole segment lies in front of the
// near plane or beyond the far plane.
//
// This has to happen before projection: perspective division of a point behind
// the camera mirrors it and cannot be undone in screen space.
func (c *Camera) ClipSegment(from, to Vec3[float32]) ([2]Vec3[float32], bool) {
	a := c.ToLocal(from)
	b := c.ToLocal(to)
	near, far := c.Near, c.Far

	if math32.IsNaN(a.Z) || math32.IsNaN(b.Z) {
		return [2]Vec3[float32]{}, false
	}
	if (a.Z < near && b.Z < near) || (a.Z > far && b.Z > far) {
		return [2]Vec3[float32]{}, false
	}

	if a.Z < near {
		a = zPlane(a, b, near)
	} else if b.Z < near {
		b = zPlane(b, a, near)
	}

	if a.Z > far {
		a = zPlane(a, b, far)
	} else if b.Z > far {
		b = zPlane(b, a, far)
	}

	return [2]Vec3[float32]{a, b}, true
}

// ProjectAndClipSegment clips a world-space segment and projects both ends.
func (c *Camera) ProjectAndClipSegment(from, to Vec3[float32]) ([2]Projected, bool) {
	seg, ok := c.ClipSegment(from, to)
	if !ok {
		return [2]Projected{}, false
	}
	pa, ok := c.ProjectLocal(seg[0])
	if !ok {
		return [2]Projected{}, false
	}
	pb, ok := c.ProjectLocal(seg[1])
	if !ok {
		return [2]Projected{}, false
	}
	return [2]Projected{pa, pb}, true
}

// ClipPolygon moves a world-space polygon into camera-local space and clips it
// against the near and far planes (Sutherland–Hodgman). The result may have
// fewer than three vertices, in which case nothing is visible.
func (c *Camera) ClipPolygon(vertices []Vec3[float32]) []Vec3[float32] {
	if len(vertices) == 0 {
		return nil
	}
	local := make([]Vec3[float32], len(vertices))
	for i, v := range vertices {
		local[i] = c.ToLocal(v)
	}

	near, far := c.Near, c.Far
	out := clipAgainstZ(local, near, func(z float32) bool { return z >= near })
	out = clipAgainstZ(out, far, func(z float32) bool { return z <= far })
	return out
}

// clipAgainstZ keeps the part of the polygon on the inside of the plane z=plane.
func clipAgainstZ(in []Vec3[float32], plane float32, inside func(z float32) bool) []Vec3[float32] {
	if len(in) == 0 {
		return nil
	}
	out := make([]Vec3[float32], 0, len(in)+2)
	prev := in[len(in)-1]
	prevIn := inside(prev.Z)
	for _, cur := range in {
		curIn := inside(cur.Z)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, zPlane(prev, cur, plane), cur)
		case !curIn && prevIn:
			out = append(out, zPlane(prev, cur, plane))
		}
		prev, prevIn = cur, curIn
	}
	return out
}
