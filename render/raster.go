package render

// DrawPoint writes a single projected point.
func (b *Buffer) DrawPoint(p Projected, c Color) {
	b.SetPixel(p.Pos, c, p.Depth)
}

// DrawLine rasterizes the segment between two projected points with Bresenham's
// algorithm. Both endpoints are included and the path is 8-connected.
//
// The endpoints are put in a canonical order first, so swapping them yields
// exactly the same pixels. Depth is interpolated linearly in screen space.
//
// Step i moves the major axis by i and the minor axis by
// floor((major + 2*i*minor) / (2*major)), which is the path of the classic
// error-term loop. Only the steps that land inside the buffer are visited.
func (b *Buffer) DrawLine(from, to Projected, c Color) {
	if to.Pos.X < from.Pos.X || (to.Pos.X == from.Pos.X && to.Pos.Y < from.Pos.Y) {
		from, to = to, from
	}

	x0, y0 := from.Pos.XY()
	x1, y1 := to.Pos.XY()
	if max(x0, x1) < 0 || min(x0, x1) >= b.width || max(y0, y1) < 0 || min(y0, y1) >= b.height {
		return
	}

	adx, ady := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	xMajor := adx >= ady
	major, minor := max(adx, ady), min(adx, ady)

	xlo, xhi := axisSpan(x0, sx, b.width)
	ylo, yhi := axisSpan(y0, sy, b.height)
	majLo, majHi, minLo, minHi := xlo, xhi, ylo, yhi
	if !xMajor {
		majLo, majHi, minLo, minHi = ylo, yhi, xlo, xhi
	}

	first, last := max(0, majLo), min(major, majHi)
	if minor > 0 {
		first = max(first, ceilDiv(2*major*minLo-major, 2*minor))
		last = min(last, ceilDiv(2*major*(minHi+1)-major, 2*minor)-1)
	}

	z0, dz := from.Depth, to.Depth-from.Depth
	for i := first; i <= last; i++ {
		lag, z := 0, z0
		if major > 0 {
			lag = (major + 2*i*minor) / (2 * major)
			z = z0 + dz*float32(i)/float32(major)
		}
		u, v := i, lag
		if !xMajor {
			u, v = lag, i
		}
		b.SetPixel(Vec2[int]{X: x0 + sx*u, Y: y0 + sy*v}, c, z)
	}
}

// axisSpan returns the offsets k for which p0 + s*k lies in [0, size).
func axisSpan(p0, s, size int) (lo, hi int) {
	if s > 0 {
		return -p0, size - 1 - p0
	}
	return p0 - (size - 1), p0
}

// ceilDiv is a/b rounded up, for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// DrawPolygon fills a polygon by fanning triangles around its first vertex.
//
// Fan triangulation is exact only for convex polygons; concave input gets
// filled wrongly around the reflex vertices.
func (b *Buffer) DrawPolygon(vertices []Projected, c Color) {
	if len(vertices) < 3 {
		return
	}
	for i := 1; i+1 < len(vertices); i++ {
		b.FillTriangle(vertices[0], vertices[i], vertices[i+1], c)
	}
}

// FillTriangle fills every pixel of the triangle's bounding box that passes the
// edge-function test. Both windings are accepted and pixels exactly on an edge
// count as inside, so neighbours sharing an edge both cover it.
func (b *Buffer) FillTriangle(v0, v1, v2 Projected, c Color) {
	x0, y0 := v0.Pos.XY()
	x1, y1 := v1.Pos.XY()
	x2, y2 := v2.Pos.XY()

	minX, maxX := max(min(x0, x1, x2), 0), min(max(x0, x1, x2), b.width-1)
	minY, maxY := max(min(y0, y1, y2), 0), min(max(y0, y1, y2), b.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	var invArea float32
	if area != 0 {
		invArea = 1 / float32(area)
	}
	flatZ := (v0.Depth + v1.Depth + v2.Depth) / 3

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)

			hasNeg := w0 < 0 || w1 < 0 || w2 < 0
			hasPos := w0 > 0 || w1 > 0 || w2 > 0
			if hasNeg && hasPos {
				continue
			}

			z := flatZ
			if area != 0 {
				z = (float32(w0)*v0.Depth + float32(w1)*v1.Depth + float32(w2)*v2.Depth) * invArea
			}
			b.SetPixel(Vec2[int]{X: x, Y: y}, c, z)
		}
	}
}

// edgeFn is twice the signed area of the triangle (x0,y0), (x1,y1), (x,y).
func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
