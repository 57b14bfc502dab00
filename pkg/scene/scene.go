// Package scene is the external collaborator the spec treats as a black
// box: it wires geometry, materials and lights into the Scene facade the
// estimators actually consume (intersect, occlude, material/light lookup).
package scene

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/lights"
	"github.com/cornellgo/pathtracer/pkg/material"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Scene is the read-only facade the estimators intersect and query against.
// A Scene is built once by the driver and shared across all render workers.
type Scene interface {
	Intersect(ray xmath.Ray) (geometry.Isect, bool)
	Occluded(p, dir xmath.Vec3, maxDist float64) bool
	Camera() *Camera
	Lights() lights.Sampler
	Material(id int) *material.Phong
	Light(lightID int) lights.Light
	Environment() (lights.Light, bool)
}

// CornellScene is a Scene built from a fixed shape/material/light table, the
// classic Cornell box with a swappable light source and material set.
type CornellScene struct {
	bvh        *geometry.BVH
	camera     *Camera
	materials  []*material.Phong
	lightList  []lights.Light
	sampler    lights.Sampler
	background lights.Light
	hasBackrnd bool
}

func (s *CornellScene) Intersect(ray xmath.Ray) (geometry.Isect, bool) {
	return s.bvh.Hit(ray, xmath.EpsRay, math.Inf(1))
}

func (s *CornellScene) Occluded(p, dir xmath.Vec3, maxDist float64) bool {
	return s.bvh.Occluded(p, dir, maxDist)
}

func (s *CornellScene) Camera() *Camera { return s.camera }

func (s *CornellScene) Lights() lights.Sampler { return s.sampler }

func (s *CornellScene) Material(id int) *material.Phong { return s.materials[id] }

func (s *CornellScene) Light(lightID int) lights.Light { return s.lightList[lightID] }

func (s *CornellScene) Environment() (lights.Light, bool) { return s.background, s.hasBackrnd }
