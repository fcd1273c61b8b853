package render

// Renderable is anything that can project itself through a camera and draw
// into a buffer. Render never mutates the camera or the receiver.
type Renderable interface {
	Render(cam *Camera, buf *Buffer)
}

var (
	_ Renderable = Point{}
	_ Renderable = Segment{}
	_ Renderable = Polygon{}
	_ Renderable = Group(nil)
)

// Point is a single world-space vertex.
type Point struct {
	Pos   Vec3[float32]
	Color Color
}

func (p Point) Render(cam *Camera, buf *Buffer) {
	if pp, ok := cam.ProjectWorld(p.Pos); ok {
		buf.DrawPoint(pp, p.Color)
	}
}

// Segment is a world-space line segment.
type Segment struct {
	From, To Vec3[float32]
	Color    Color
}

func (s Segment) Render(cam *Camera, buf *Buffer) {
	ends, ok := cam.ProjectAndClipSegment(s.From, s.To)
	if !ok {
		return
	}
	buf.DrawLine(ends[0], ends[1], s.Color)
}

// Polygon is a planar, convex polygon. Vertex order is the winding order.
//
// With Wireframe set only the edges are drawn, each clipped like a Segment.
type Polygon struct {
	Vertices  []Vec3[float32]
	Color     Color
	Wireframe bool
}

func (p Polygon) Render(cam *Camera, buf *Buffer) {
	if len(p.Vertices) < 3 {
		return
	}
	if p.Wireframe {
		p.renderEdges(cam, buf)
		return
	}

	clipped := cam.ClipPolygon(p.Vertices)
	if len(clipped) < 3 {
		return
	}
	projected := make([]Projected, 0, len(clipped))
	for _, v := range clipped {
		if pv, ok := cam.ProjectLocal(v); ok {
			projected = append(projected, pv)
		}
	}
	if len(projected) < 3 {
		return
	}
	buf.DrawPolygon(projected, p.Color)
}

func (p Polygon) renderEdges(cam *Camera, buf *Buffer) {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		Segment{From: p.Vertices[i], To: p.Vertices[(i+1)%n], Color: p.Color}.Render(cam, buf)
	}
}

// Group renders its members in order.
type Group []Renderable

func (g Group) Render(cam *Camera, buf *Buffer) {
	for _, r := range g {
		if r != nil {
			r.Render(cam, buf)
		}
	}
}
