// Package xmath provides the vector, ray and orthonormal-frame math shared
// by the rest of the renderer.
package xmath

import "math"

// Vec3 is a 3-component vector, used interchangeably for points, directions
// and RGB colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) MulVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Neg() Vec3          { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// MaxComponent returns the largest of the three components — used by the
// material's lobe-selection weights, which are deliberately max-component
// rather than luminance based.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// IsZero reports whether every component of v is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Vec2 is a 2-component vector, used for pixel-space samples.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Ray is a half-line: Origin + t*Dir for t >= TMin. Never mutated after
// construction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	TMin   float64
}

// NewRay builds a ray from origin along dir with TMin 0. It applies no
// self-intersection offset; OffsetRay does.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir, TMin: 0}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// EpsRay is the self-intersection offset applied to every spawned ray's
// origin, in scene-scale units. See spec Design Notes: "correctness
// concern, not a performance one".
const EpsRay = 1e-3

// OffsetRay returns a ray starting EpsRay along dir from origin, avoiding
// self-intersection with the surface it was spawned from.
func OffsetRay(origin, dir Vec3) Ray {
	return NewRay(origin.Add(dir.Mul(EpsRay)), dir)
}
