package geometry

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Triangle is a ray-intersectable triangle defined as P0, P0+E1, P0+E2 —
// the same parameterization the area light uses, so a light's geometry and
// its Light-side sampling share one description.
type Triangle struct {
	P0, E1, E2 xmath.Vec3
	Normal     xmath.Vec3
	MatID      int
	LightID    int // geometry.NoLight if not an emitter
}

// NewTriangle builds a triangle from three vertices.
func NewTriangle(p0, p1, p2 xmath.Vec3, matID int) Triangle {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	return Triangle{P0: p0, E1: e1, E2: e2, Normal: e1.Cross(e2).Normalize(), MatID: matID, LightID: NoLight}
}

// NewTriangleLight builds a triangle tagged as the given light index's
// surface.
func NewTriangleLight(p0, p1, p2 xmath.Vec3, matID, lightID int) Triangle {
	t := NewTriangle(p0, p1, p2, matID)
	t.LightID = lightID
	return t
}

func (t Triangle) Bounds() AABB {
	p1 := t.P0.Add(t.E1)
	p2 := t.P0.Add(t.E2)
	min := xmath.NewVec3(
		math.Min(t.P0.X, math.Min(p1.X, p2.X)),
		math.Min(t.P0.Y, math.Min(p1.Y, p2.Y)),
		math.Min(t.P0.Z, math.Min(p1.Z, p2.Z)),
	)
	max := xmath.NewVec3(
		math.Max(t.P0.X, math.Max(p1.X, p2.X)),
		math.Max(t.P0.Y, math.Max(p1.Y, p2.Y)),
		math.Max(t.P0.Z, math.Max(p1.Z, p2.Z)),
	)
	return AABB{Min: min, Max: max}
}

// Hit implements the Moller-Trumbore ray-triangle intersection test.
func (t Triangle) Hit(ray xmath.Ray, tMin, tMax float64) (Isect, bool) {
	const eps = 1e-9

	pVec := ray.Dir.Cross(t.E2)
	det := t.E1.Dot(pVec)
	if math.Abs(det) < eps {
		return Isect{}, false
	}
	invDet := 1 / det

	tVec := ray.Origin.Sub(t.P0)
	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return Isect{}, false
	}

	qVec := tVec.Cross(t.E1)
	v := ray.Dir.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return Isect{}, false
	}

	dist := t.E2.Dot(qVec) * invDet
	if dist < tMin || dist > tMax {
		return Isect{}, false
	}

	return Isect{Dist: dist, Normal: t.Normal, MatID: t.MatID, LightID: t.LightID}, true
}
