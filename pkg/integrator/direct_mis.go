package integrator

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/material"
	"github.com/cornellgo/pathtracer/pkg/scene"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// DirectMIS shades the camera ray's first hit with single-bounce direct
// illumination, combining a light-sampling pass and a BRDF-sampling pass
// via the balance heuristic. Per the source this estimator preserves,
// the light-sampling pass skips the environment light — only the BRDF pass
// can pick it up.
type DirectMIS struct{}

func (DirectMIS) Estimate(ray xmath.Ray, sc scene.Scene, sampler xmath.Sampler) xmath.Vec3 {
	isect, hit := sc.Intersect(ray)
	if !hit {
		if env, ok := sc.Environment(); ok {
			return env.Emitted()
		}
		return xmath.Vec3{}
	}
	if isect.LightID != geometry.NoLight {
		return sc.Light(isect.LightID).Emitted()
	}

	frame, woLocal, _, hitPoint := shadingSetup(ray, isect)
	mat := sc.Material(isect.MatID)

	L := xmath.Vec3{}
	L = L.Add(sampleLights(sc, mat, frame, woLocal, hitPoint, sampler))
	L = L.Add(sampleBRDF(sc, mat, frame, woLocal, hitPoint, sampler))
	return L
}

// sampleLights is the light-sampling pass of direct-MIS: draw an incident
// direction from every light and add its weighted contribution when
// unoccluded.
func sampleLights(sc scene.Scene, mat *material.Phong, frame xmath.Frame, woLocal, hitPoint xmath.Vec3, sampler xmath.Sampler) xmath.Vec3 {
	total := xmath.Vec3{}
	for _, light := range sc.Lights().All() {
		s := light.Sample(sampler, hitPoint, frame)
		if s.Li.IsZero() {
			continue
		}

		var w float64
		if light.Singular() {
			w = 1
		} else {
			wiLocal := frame.ToLocal(s.Wi)
			pB := mat.PDF(woLocal, wiLocal)
			w = balanceWeight(s.PDF, pB)
		}

		if sc.Occluded(hitPoint, s.Wi, s.Dist) {
			continue
		}

		wiLocal := frame.ToLocal(s.Wi)
		f := mat.EvalBRDF(wiLocal, woLocal)
		total = total.Add(s.Li.MulVec(f).Mul(w))
	}
	return total
}

// sampleBRDF is the BRDF-sampling pass of direct-MIS: draw a direction from
// the material, trace it, and weight the contribution if it lands on an
// emitter or (unweighted) escapes into the environment.
func sampleBRDF(sc scene.Scene, mat *material.Phong, frame xmath.Frame, woLocal, hitPoint xmath.Vec3, sampler xmath.Sampler) xmath.Vec3 {
	wiLocal, pB, ok := mat.Sample(woLocal, sampler)
	if !ok || pB <= 0 {
		return xmath.Vec3{}
	}
	wiWorld := frame.ToWorld(wiLocal)
	cosine := math.Max(0, frame.Normal().Dot(wiWorld))
	if cosine <= 0 {
		return xmath.Vec3{}
	}

	f := mat.EvalBRDF(wiLocal, woLocal)
	bounceRay := xmath.OffsetRay(hitPoint, wiWorld)
	isect, hit := sc.Intersect(bounceRay)

	if hit && isect.LightID != geometry.NoLight {
		light := sc.Light(isect.LightID)
		pL := light.PDF(isect.Dist, wiWorld)
		w := balanceWeight(pB, pL)
		return light.Emitted().MulVec(f).Mul(cosine * w / pB)
	}
	if !hit {
		if env, ok := sc.Environment(); ok {
			return env.Emitted().MulVec(f).Mul(cosine / pB)
		}
	}
	return xmath.Vec3{}
}
