// Package lights implements the three light-source variants — area, point
// and environment — sharing a common sampling and PDF interface used by
// the direct-lighting and path-tracing estimators.
package lights

import "github.com/cornellgo/pathtracer/pkg/xmath"

// Kind identifies which of the three light variants a Light is, as reported
// by Light.Type. The estimators do not branch on it: they call the Light
// interface methods and special-case point lights through Singular.
type Kind int

const (
	KindArea Kind = iota
	KindPoint
	KindEnvironment
)

// Sample is the result of sampling a light for incident illumination at a
// shading point: incident radiance already carries the geometry term (and,
// for area lights, the 1/pdf area-measure factor — see Area.Sample), the
// unit direction from the shading point to the light, the distance to it
// (+Inf for the environment light), and the solid-angle sampling PDF at the
// shading point (1 by convention for point lights, a singular measure).
type Sample struct {
	Li   xmath.Vec3
	Wi   xmath.Vec3
	Dist float64
	PDF  float64
}

// Light is the shared capability set of all three light variants.
type Light interface {
	Type() Kind

	// Sample draws an incident direction/radiance pair toward this light
	// from the given shading point. frame is the shading frame at that
	// point (normal == frame.Normal()).
	Sample(sampler xmath.Sampler, point xmath.Vec3, frame xmath.Frame) Sample

	// PDF returns the solid-angle density of sampling a direction that
	// would hit this light, given the direction was reached by BRDF
	// sampling from a distance dist. Used by the BRDF side of MIS.
	PDF(dist float64, wi xmath.Vec3) float64

	// Emitted returns the radiance this light emits toward any point that
	// directly sees it (used when a primary or BRDF-sampled ray lands on
	// the light's own surface).
	Emitted() xmath.Vec3

	// Singular reports whether this light has a delta distribution (point
	// lights): MIS short-circuits to light-only weighting when true.
	Singular() bool
}
