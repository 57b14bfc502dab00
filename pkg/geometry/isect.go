// Package geometry implements ray-primitive intersection (spheres and
// triangles) and the bounding-volume hierarchy used to accelerate it. This
// is the "black box" the spec treats as an external collaborator: the
// estimators only ever call Intersect/Occluded through the pkg/scene
// facade.
package geometry

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// NoLight is the sentinel LightID for a hit surface that emits nothing.
const NoLight = -1

// Isect is a ray-intersection record: distance along the ray, the unit
// surface normal, the material table index, and the light table index (or
// NoLight). Only meaningful when a Shape's Hit reports true.
type Isect struct {
	Dist    float64
	Normal  xmath.Vec3
	MatID   int
	LightID int
}

// Shape is anything that can be intersected by a ray and bounded by an AABB.
type Shape interface {
	Hit(ray xmath.Ray, tMin, tMax float64) (Isect, bool)
	Bounds() AABB
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max xmath.Vec3
}

// UnionAABB returns the smallest box containing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		Min: xmath.NewVec3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: xmath.NewVec3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Center returns the AABB's midpoint.
func (b AABB) Center() xmath.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// LongestAxis returns 0/1/2 for X/Y/Z, whichever extent is largest.
func (b AABB) LongestAxis() int {
	d := b.Max.Sub(b.Min)
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// Hit tests the slab intersection of ray with the box over [tMin, tMax].
func (b AABB) Hit(ray xmath.Ray, tMin, tMax float64) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	bmin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	bmax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for a := 0; a < 3; a++ {
		if dir[a] == 0 {
			if origin[a] < bmin[a] || origin[a] > bmax[a] {
				return false
			}
			continue
		}
		invD := 1 / dir[a]
		t0 := (bmin[a] - origin[a]) * invD
		t1 := (bmax[a] - origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
