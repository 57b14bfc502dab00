package lights

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Environment is a constant background light treated as radiance arriving
// from infinity in every direction.
type Environment struct {
	Background xmath.Vec3
}

// NewEnvironment builds an environment light with the given background
// color.
func NewEnvironment(background xmath.Vec3) Environment {
	return Environment{Background: background}
}

func (e Environment) Type() Kind          { return KindEnvironment }
func (e Environment) Emitted() xmath.Vec3 { return e.Background }
func (e Environment) Singular() bool      { return false }

// Sample draws a direction with SampleUniformSphere, expressed in the
// shading frame (so the frame's +Z is the surface normal). With the
// sampler's [0,1) inputs every direction lies in the upper hemisphere, which
// the 2*pi factor in Li accounts for; a direction at or below the surface
// returns a zero sample. The returned PDF is EnvironmentPDF, the density
// used for MIS.
func (e Environment) Sample(sampler xmath.Sampler, point xmath.Vec3, frame xmath.Frame) Sample {
	r := sampler.Get3D()
	local := xmath.SampleUniformSphere(r.X, r.Y)
	wi := frame.ToWorld(local).Normalize()

	cosX := frame.Normal().Dot(wi)
	if cosX <= 0 {
		return Sample{}
	}

	li := e.Background.Mul(cosX * 2 * math.Pi)
	return Sample{Li: li, Wi: wi, Dist: math.Inf(1), PDF: EnvironmentPDF}
}

// EnvironmentPDF is the solid-angle density used for MIS against BRDF
// sampling: 1/(4*pi), the mathematically correct value for uniform
// sampling over the full sphere. The original C++ source computes this as
// `(1/4) * PI_F`, an operator-precedence bug; we deviate deliberately and
// use the correct 1/(4*pi) here (see spec Open Questions).
const EnvironmentPDF = 1 / (4 * math.Pi)

func (e Environment) PDF(dist float64, wi xmath.Vec3) float64 {
	return EnvironmentPDF
}
