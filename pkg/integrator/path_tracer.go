package integrator

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/lights"
	"github.com/cornellgo/pathtracer/pkg/scene"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// PathTracer is a unidirectional path tracer with next-event MIS on
// emission hits and Russian-roulette termination. No maximum depth is
// enforced — RR alone guarantees unbiased termination.
type PathTracer struct{}

func (PathTracer) Estimate(ray xmath.Ray, sc scene.Scene, sampler xmath.Sampler) xmath.Vec3 {
	L := xmath.Vec3{}
	beta := xmath.NewVec3(1, 1, 1)
	pB := 1.0
	firstHit := true
	current := ray

	for {
		isect, hit := sc.Intersect(current)
		if !hit {
			if env, ok := sc.Environment(); ok {
				w := balanceWeight(pB, lights.EnvironmentPDF)
				L = L.Add(beta.MulVec(env.Emitted()).Mul(w))
			}
			return L
		}

		if isect.LightID != geometry.NoLight {
			light := sc.Light(isect.LightID)
			if firstHit {
				L = L.Add(beta.MulVec(light.Emitted()))
			} else {
				pL := light.PDF(isect.Dist, current.Dir)
				w := balanceWeight(pB, pL)
				L = L.Add(beta.MulVec(light.Emitted()).Mul(w))
			}
			return L
		}
		firstHit = false

		frame, woLocal, _, hitPoint := shadingSetup(current, isect)
		mat := sc.Material(isect.MatID)

		wiLocal, pdf, ok := mat.Sample(woLocal, sampler)
		if !ok || pdf <= 0 {
			return L
		}
		wiWorld := frame.ToWorld(wiLocal)
		cosine := math.Abs(frame.Normal().Dot(wiWorld))

		f := mat.EvalBRDF(wiLocal, woLocal)
		delta := f.Mul(cosine / pdf)

		q := math.Min(1, delta.MaxComponent())
		if q <= 0 {
			return L
		}
		if sampler.Get1D() >= q {
			return L
		}
		beta = beta.MulVec(delta).Mul(1 / q)

		current = xmath.OffsetRay(hitPoint, wiWorld)
		pB = pdf
	}
}
