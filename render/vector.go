package render

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the scalar type accepted by the vector types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2D vector. Screen positions are Vec2[int].
type Vec2[T Number] struct {
	X, Y T
}

// Vec3 is a 3D vector. World and camera-local points are Vec3[float32].
type Vec3[T Number] struct {
	X, Y, Z T
}

func V2[T Number](x, y T) Vec2[T]    { return Vec2[T]{X: x, Y: y} }
func V3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }
func (v Vec2[T]) Rem(o Vec2[T]) Vec2[T] { return Vec2[T]{rem(v.X, o.X), rem(v.Y, o.Y)} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) XY() (T, T)            { return v.X, v.Y }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vec3[T]) Rem(o Vec3[T]) Vec3[T] {
	return Vec3[T]{rem(v.X, o.X), rem(v.Y, o.Y), rem(v.Z, o.Z)}
}
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) XYZ() (T, T, T)    { return v.X, v.Y, v.Z }

// rem is % for integers and math.Mod for floats, so the sign follows the dividend
// in both cases.
func rem[T Number](a, b T) T {
	var zero T
	one := zero + 1
	switch {
	case one/2 != zero:
		return T(math.Mod(float64(a), float64(b)))
	case zero-one < zero:
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

func Dot(a, b Vec3[float32]) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3[float32]) Vec3[float32] {
	return Vec3[float32]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Length(v Vec3[float32]) float32 { return math32.Sqrt(Dot(v, v)) }

func Normalize(v Vec3[float32]) Vec3[float32] {
	l := Length(v)
	if l == 0 {
		return Vec3[float32]{}
	}
	return v.Scale(1 / l)
}

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b Vec3[float32], t float32) Vec3[float32] {
	return Vec3[float32]{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}

func RotateX(v Vec3[float32], rad float32) Vec3[float32] {
	s, c := math32.Sincos(rad)
	return Vec3[float32]{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

func RotateY(v Vec3[float32], rad float32) Vec3[float32] {
	s, c := math32.Sincos(rad)
	return Vec3[float32]{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

func RotateZ(v Vec3[float32], rad float32) Vec3[float32] {
	s, c := math32.Sincos(rad)
	return Vec3[float32]{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}
