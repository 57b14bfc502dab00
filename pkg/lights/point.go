package lights

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Point is a singular light source with no area: a delta distribution in
// both position and direction.
type Point struct {
	Position  xmath.Vec3
	Intensity xmath.Vec3
}

// NewPoint builds a point light at the given position with the given
// radiant intensity.
func NewPoint(position, intensity xmath.Vec3) Point {
	return Point{Position: position, Intensity: intensity}
}

func (p Point) Type() Kind          { return KindPoint }
func (p Point) Emitted() xmath.Vec3 { return p.Intensity }
func (p Point) Singular() bool      { return true }

func (p Point) Sample(sampler xmath.Sampler, point xmath.Vec3, frame xmath.Frame) Sample {
	wi := p.Position.Sub(point)
	distSq := wi.LengthSquared()
	dist := math.Sqrt(distSq)
	wi = wi.Mul(1 / dist)

	cosTheta := frame.Normal().Dot(wi)
	if cosTheta <= 0 {
		return Sample{}
	}

	li := p.Intensity.Mul(cosTheta / distSq)
	// By convention the point light's own sampling PDF is 1: a delta
	// distribution has no meaningful density. It is 1 here, on the
	// light-sampling side, and 0 in PDF below, on the BRDF side; the
	// estimators do not weigh it with the balance heuristic but check
	// Singular and give the light-sampling strategy weight 1.
	return Sample{Li: li, Wi: wi, Dist: dist, PDF: 1}
}

// PDF is always zero: it is mathematically impossible for a BRDF-sampled
// ray to hit a point light, so the BRDF-side density is zero by
// definition, not merely by convention.
func (p Point) PDF(dist float64, wi xmath.Vec3) float64 {
	return 0
}
