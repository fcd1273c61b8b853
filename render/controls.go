package render

// Orbit places a model in front of the camera and turns it in place.
//
// The camera in this package never rotates, so orbiting is expressed as a
// model transform: points are rotated by Pitch (around X) then Yaw (around Y),
// and moved to Target pushed Radius units down +Z. It does not depend on any
// input system.
type Orbit struct {
	Target Vec3[float32]
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
}

const defaultOrbitRadius float32 = 3

// Apply transforms a model-space point.
func (o *Orbit) Apply(v Vec3[float32]) Vec3[float32] {
	p := RotateY(RotateX(v, o.Pitch), o.Yaw)
	return p.Add(o.Target).Add(Vec3[float32]{Z: o.radius()})
}

// ApplyAll transforms a slice of points into a new slice.
func (o *Orbit) ApplyAll(vs []Vec3[float32]) []Vec3[float32] {
	out := make([]Vec3[float32], len(vs))
	for i, v := range vs {
		out[i] = o.Apply(v)
	}
	return out
}

func (o *Orbit) Rotate(deltaYaw, deltaPitch float32) {
	o.Yaw += deltaYaw
	o.Pitch += deltaPitch
}

func (o *Orbit) Zoom(delta float32) {
	o.Radius = o.clamp(o.radius() + delta)
}

func (o *Orbit) radius() float32 {
	r := o.Radius
	if r == 0 {
		r = defaultOrbitRadius
	}
	return o.clamp(r)
}

func (o *Orbit) clamp(r float32) float32 {
	if o.MinRadius != 0 && r < o.MinRadius {
		r = o.MinRadius
	}
	if o.MaxRadius != 0 && r > o.MaxRadius {
		r = o.MaxRadius
	}
	return r
}
