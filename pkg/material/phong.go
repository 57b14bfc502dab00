// Package material implements the diffuse+modified-Phong BRDF that every
// surface in the scene shares. Emitter geometry is marked by the shape's
// LightID, not by a material type.
package material

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// localZ is the surface normal in the shading frame's local space.
var localZ = xmath.Vec3{X: 0, Y: 0, Z: 1}

// Phong is a diffuse+modified-Phong BRDF. All directions passed to its
// methods are expressed in the shading frame's local space, where the
// surface normal is +Z. Component-wise Diffuse+Glossy should sum to <= 1
// for energy conservation; this is not enforced here, but the lobe
// selection probabilities below assume it.
type Phong struct {
	Diffuse  xmath.Vec3 // rho_d, RGB reflectance in [0,1]^3
	Glossy   xmath.Vec3 // rho_s, RGB reflectance in [0,1]^3
	Exponent float64    // Phong exponent n, >= 1
}

// NewPhong constructs a material, clamping the exponent to the valid range.
func NewPhong(diffuse, glossy xmath.Vec3, exponent float64) Phong {
	if exponent < 1 {
		exponent = 1
	}
	return Phong{Diffuse: diffuse, Glossy: glossy, Exponent: exponent}
}

// reflectAboutZ mirrors a local-space direction about the local +Z axis:
// r = 2*dot(d,Z)*Z - d.
func reflectAboutZ(d xmath.Vec3) xmath.Vec3 {
	return localZ.Mul(2 * d.Dot(localZ)).Sub(d)
}

// EvalBRDF evaluates f(wi, wo) — both directions local, both unit.
func (m Phong) EvalBRDF(wi, wo xmath.Vec3) xmath.Vec3 {
	if wi.Z <= 0 && wo.Z <= 0 {
		return xmath.Vec3{}
	}

	diffuseTerm := m.Diffuse.Mul(1 / math.Pi)

	reflection := reflectAboutZ(wi)
	cosAlpha := math.Max(0, reflection.Dot(wo))
	glossyTerm := m.Glossy.Mul((m.Exponent + 2) / (2 * math.Pi) * math.Pow(cosAlpha, m.Exponent))

	return diffuseTerm.Add(glossyTerm)
}

// lobeWeights returns the normalized diffuse/glossy selection probabilities
// used both for sampling and for the combined PDF. ok is false when the
// material is black (pd+ps == 0) — the caller must handle termination
// rather than divide by zero.
func (m Phong) lobeWeights() (pd, ps float64, ok bool) {
	pd = m.Diffuse.MaxComponent()
	ps = m.Glossy.MaxComponent()
	sum := pd + ps
	if sum <= 0 {
		return 0, 0, false
	}
	return pd / sum, ps / sum, true
}

// Sample draws an outgoing direction wi (local space) given the local
// viewing direction wo, choosing between the diffuse and glossy lobes by
// their max-component albedo weight. Returns ok=false when the material is
// black.
func (m Phong) Sample(wo xmath.Vec3, sampler xmath.Sampler) (wi xmath.Vec3, pdf float64, ok bool) {
	pd, _, ok := m.lobeWeights()
	if !ok {
		return xmath.Vec3{}, 0, false
	}

	u := sampler.Get1D()
	r := sampler.Get2D()

	if u < pd {
		wi = xmath.SampleCosineHemisphere(r.X, r.Y)
	} else {
		wi = m.sampleGlossy(wo, r.X, r.Y)
	}

	pdf = m.PDF(wo, wi)
	return wi, pdf, true
}

// sampleGlossy samples the Phong lobe in a frame aligned to the perfect
// reflection direction of wo about the normal, per spec: local direction
// (cos(2*pi*r1)*s, sin(2*pi*r1)*s, r2^(1/(n+1))) with s = sqrt(1 -
// r2^(2/(n+1))), rotated into the outer local space via that frame.
func (m Phong) sampleGlossy(wo xmath.Vec3, r1, r2 float64) xmath.Vec3 {
	reflected := reflectAboutZ(wo)
	lobeFrame := xmath.FrameFromNormal(reflected)

	exp := 2.0 / (m.Exponent + 1)
	z := math.Pow(r2, 1/(m.Exponent+1))
	s := math.Sqrt(math.Max(0, 1-math.Pow(r2, exp)))
	phi := 2 * math.Pi * r1

	local := xmath.Vec3{
		X: math.Cos(phi) * s,
		Y: math.Sin(phi) * s,
		Z: z,
	}
	return lobeFrame.ToWorld(local)
}

// PDF evaluates the combined sampling density for direction wi given the
// viewing direction wo, both local.
func (m Phong) PDF(wo, wi xmath.Vec3) float64 {
	pd, ps, ok := m.lobeWeights()
	if !ok {
		return 0
	}

	diffusePdf := math.Max(0, wi.Z) / math.Pi

	reflected := reflectAboutZ(wo)
	cosAlpha := math.Max(0, reflected.Dot(wi))
	glossyPdf := (m.Exponent + 1) / (2 * math.Pi) * math.Pow(cosAlpha, m.Exponent)

	return pd*diffusePdf + ps*glossyPdf
}

// IsBlack reports whether the material reflects no light at all, in which
// case a caller must terminate rather than sample it.
func (m Phong) IsBlack() bool {
	_, _, ok := m.lobeWeights()
	return !ok
}
