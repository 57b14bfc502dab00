package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// TestDiffuseReciprocity is invariant 2: with rho_s = 0, f(wi,wo) == f(wo,wi)
// exactly, since the diffuse term does not depend on direction at all.
func TestDiffuseReciprocity(t *testing.T) {
	m := NewPhong(xmath.NewVec3(0.5, 0.3, 0.8), xmath.Vec3{}, 1)

	dirs := []xmath.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: 0.3, Y: 0.4, Z: 0.866},
		{X: -0.2, Y: 0.5, Z: 0.843},
		{X: 0.6, Y: -0.6, Z: 0.529},
	}

	for _, wi := range dirs {
		for _, wo := range dirs {
			f1 := m.EvalBRDF(wi, wo)
			f2 := m.EvalBRDF(wo, wi)
			if f1 != f2 {
				t.Fatalf("reciprocity broken for wi=%v wo=%v: f(wi,wo)=%v f(wo,wi)=%v", wi, wo, f1, f2)
			}
		}
	}
}

// TestMaterialEnergyConservation is invariant 3: for a fixed wo with wo.Z >
// 0, the Monte-Carlo integral of f(wi,wo)*max(0,wi.Z) over the hemisphere
// must not exceed max(rho_d)+max(rho_s)+eps.
func TestMaterialEnergyConservation(t *testing.T) {
	m := NewPhong(xmath.NewVec3(0.4, 0.4, 0.4), xmath.NewVec3(0.3, 0.3, 0.3), 20)
	wo := xmath.Vec3{X: 0.1, Y: 0.2, Z: 0.974}.Normalize()

	rnd := rand.New(rand.NewSource(7))
	const samples = 200000

	var sum xmath.Vec3
	for i := 0; i < samples; i++ {
		// cosine-weighted samples so pdf = cosTheta/pi cancels the cosine
		// factor in the integrand, leaving f * pi / N as the estimator.
		wi := xmath.SampleCosineHemisphere(rnd.Float64(), rnd.Float64())
		f := m.EvalBRDF(wi, wo)
		sum = sum.Add(f)
	}
	integral := sum.Mul(math.Pi / samples)

	bound := m.Diffuse.MaxComponent() + m.Glossy.MaxComponent() + 0.05
	require.LessOrEqualf(t, integral.MaxComponent(), bound, "energy integral %v exceeds bound %v (diffuse+glossy+eps)", integral, bound)
}

// TestSamplingPDFConsistency is invariant 4 (reduced scale): draws wi from
// the sampler and checks the marginal density recovered by an independent
// hemisphere histogram agrees with PDF's own evaluation of the same
// direction, using a coarse zenith/azimuth binning and a chi-square style
// relative tolerance.
func TestSamplingPDFConsistency(t *testing.T) {
	m := NewPhong(xmath.NewVec3(0.5, 0.5, 0.5), xmath.NewVec3(0.2, 0.2, 0.2), 8)
	wo := xmath.Vec3{X: 0, Y: 0, Z: 1}
	sampler := xmath.NewSampler(99)

	const nTheta, nPhi = 8, 8
	counts := make([]int, nTheta*nPhi)
	const samples = 400000
	n := 0
	for i := 0; i < samples; i++ {
		wi, pdf, ok := m.Sample(wo, sampler)
		if !ok || pdf <= 0 || wi.Z <= 0 {
			continue
		}
		n++
		theta := math.Acos(math.Min(1, wi.Z))
		phi := math.Atan2(wi.Y, wi.X)
		if phi < 0 {
			phi += 2 * math.Pi
		}
		ti := int(theta / (math.Pi / 2) * nTheta)
		pi := int(phi / (2 * math.Pi) * nPhi)
		if ti >= nTheta {
			ti = nTheta - 1
		}
		if pi >= nPhi {
			pi = nPhi - 1
		}
		counts[ti*nPhi+pi]++
	}

	// For each bin, compare the empirical probability mass against the
	// analytic PDF integrated (approximately, via the bin's solid angle at
	// its center direction).
	for ti := 0; ti < nTheta; ti++ {
		thetaCenter := (float64(ti) + 0.5) / nTheta * (math.Pi / 2)
		dTheta := (math.Pi / 2) / nTheta
		dPhi := 2 * math.Pi / nPhi
		solidAngle := math.Sin(thetaCenter) * dTheta * dPhi

		for pi := 0; pi < nPhi; pi++ {
			phiCenter := (float64(pi) + 0.5) / nPhi * 2 * math.Pi
			wi := xmath.Vec3{
				X: math.Sin(thetaCenter) * math.Cos(phiCenter),
				Y: math.Sin(thetaCenter) * math.Sin(phiCenter),
				Z: math.Cos(thetaCenter),
			}
			analyticMass := m.PDF(wo, wi) * solidAngle
			empiricalMass := float64(counts[ti*nPhi+pi]) / float64(n)

			// Coarse bins near the pole/high-exponent lobe can have low
			// counts; use an absolute+relative tolerance mix.
			tol := 0.02 + 0.5*analyticMass
			require.InDeltaf(t, analyticMass, empiricalMass, tol,
				"bin theta=%d phi=%d", ti, pi)
		}
	}
}

func TestBlackMaterialSampleFails(t *testing.T) {
	m := NewPhong(xmath.Vec3{}, xmath.Vec3{}, 1)
	if !m.IsBlack() {
		t.Fatal("expected black material")
	}
	sampler := xmath.NewSampler(1)
	_, _, ok := m.Sample(xmath.Vec3{X: 0, Y: 0, Z: 1}, sampler)
	if ok {
		t.Fatal("expected Sample to fail on black material")
	}
}

func TestEvalBRDFZeroBelowSurface(t *testing.T) {
	m := NewPhong(xmath.NewVec3(0.5, 0.5, 0.5), xmath.NewVec3(0.2, 0.2, 0.2), 10)
	wi := xmath.Vec3{X: 0, Y: 0, Z: -1}
	wo := xmath.Vec3{X: 0, Y: 0, Z: -1}
	f := m.EvalBRDF(wi, wo)
	if !f.IsZero() {
		t.Fatalf("expected zero BRDF below surface, got %v", f)
	}
}
