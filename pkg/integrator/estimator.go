// Package integrator implements the three light-transport estimators: an
// eye-light diagnostic, single-bounce direct illumination with multiple
// importance sampling, and a unidirectional path tracer with Russian
// roulette termination.
package integrator

import (
	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/scene"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Estimator computes the radiance arriving along a camera ray. Each call
// owns its sampler exclusively; estimators hold no state between calls.
type Estimator interface {
	Estimate(ray xmath.Ray, sc scene.Scene, sampler xmath.Sampler) xmath.Vec3
}

// balanceWeight is the MIS balance heuristic w = a/(a+b), with the 0/0 case
// (both densities zero) treated as a zero weight rather than a NaN.
func balanceWeight(a, b float64) float64 {
	if a+b <= 0 {
		return 0
	}
	return a / (a + b)
}

// shadingSetup builds the local shading quantities shared by every
// estimator at a non-emitter hit: the orthonormal frame, and wo (toward the
// eye) in both local and world space. The frame's normal is flipped, when
// needed, to face the side the ray arrived from, so wo is always in the
// local upper hemisphere whichever way the geometry's winding points.
func shadingSetup(ray xmath.Ray, isect geometry.Isect) (frame xmath.Frame, woLocal, woWorld, hitPoint xmath.Vec3) {
	normal := isect.Normal
	if normal.Dot(ray.Dir) > 0 {
		normal = normal.Neg()
	}
	frame = xmath.FrameFromNormal(normal)
	woWorld = ray.Dir.Neg()
	woLocal = frame.ToLocal(woWorld)
	hitPoint = ray.At(isect.Dist)
	return
}
