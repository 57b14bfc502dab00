package lights

// Sampler exposes the fixed light list a scene carries. Adapted from the
// teacher's weighted_light_sampler.go, but with the actual per-light pick
// dropped: the direct-MIS estimator iterates every light explicitly
// (spec 4.D.2's light-sampling pass), and the path tracer never samples
// lights directly at all (spec 4.D.3's only light-facing step is weighting
// an emission hit reached by BRDF sampling), so nothing in this repo ever
// needs to draw a single light from the list.
type Sampler struct {
	lights []Light
}

// NewSampler wraps the given light list.
func NewSampler(lights []Light) Sampler {
	return Sampler{lights: lights}
}

// Count returns the number of lights in the scene.
func (s Sampler) Count() int { return len(s.lights) }

// All returns every light in the scene, in a stable order — used by the
// direct-MIS estimator's per-light loop.
func (s Sampler) All() []Light { return s.lights }
