package geometry

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Sphere is a ray-intersectable sphere, optionally tagged as the surface of
// an emitter via LightID.
type Sphere struct {
	Center  xmath.Vec3
	Radius  float64
	MatID   int
	LightID int // geometry.NoLight if not an emitter
}

// NewSphere builds a non-emitting sphere.
func NewSphere(center xmath.Vec3, radius float64, matID int) Sphere {
	return Sphere{Center: center, Radius: radius, MatID: matID, LightID: NoLight}
}

// NewSphereLight builds a sphere tagged as the given light index's surface.
func NewSphereLight(center xmath.Vec3, radius float64, matID, lightID int) Sphere {
	return Sphere{Center: center, Radius: radius, MatID: matID, LightID: lightID}
}

func (s Sphere) Bounds() AABB {
	r := xmath.NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s Sphere) Hit(ray xmath.Ray, tMin, tMax float64) (Isect, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.LengthSquared()
	halfB := oc.Dot(ray.Dir)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Isect{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Isect{}, false
		}
	}

	point := ray.At(root)
	normal := point.Sub(s.Center).Mul(1 / s.Radius)

	return Isect{Dist: root, Normal: normal, MatID: s.MatID, LightID: s.LightID}, true
}
