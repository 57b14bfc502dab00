package lights

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Area is a triangular emitter. P0/E1/E2 define the triangle as P0, P0+E1,
// P0+E2. Frame's normal is the outward-facing triangle normal;
// InvArea is precomputed as 2/|E1 x E2|.
type Area struct {
	P0, E1, E2 xmath.Vec3
	Frame      xmath.Frame
	Radiance   xmath.Vec3
	InvArea    float64
}

// NewArea builds an area light from three triangle vertices and an emitted
// radiance.
func NewArea(p0, p1, p2, radiance xmath.Vec3) Area {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	normal := e1.Cross(e2)
	invArea := 2 / normal.Length()

	return Area{
		P0:       p0,
		E1:       e1,
		E2:       e2,
		Frame:    xmath.FrameFromNormal(normal),
		Radiance: radiance,
		InvArea:  invArea,
	}
}

func (a Area) Type() Kind          { return KindArea }
func (a Area) Emitted() xmath.Vec3 { return a.Radiance }
func (a Area) Singular() bool      { return false }

// Sample draws a uniform point on the triangle by folding the unit square
// into its lower-left half, per spec: if r1+r2 >= 1, reflect (r1,r2) to
// (1-r1, 1-r2).
func (a Area) Sample(sampler xmath.Sampler, point xmath.Vec3, frame xmath.Frame) Sample {
	r := sampler.Get2D()
	r1, r2 := r.X, r.Y
	if r1+r2 >= 1 {
		r1, r2 = 1-r1, 1-r2
	}

	p := a.P0.Add(a.E1.Mul(r1)).Add(a.E2.Mul(r2))

	wi := p.Sub(point)
	distSq := wi.LengthSquared()
	dist := math.Sqrt(distSq)
	wi = wi.Mul(1 / dist)

	cosX := frame.Normal().Dot(wi)
	cosY := -a.Frame.Normal().Dot(wi)

	if cosX <= 0 || cosY <= 0 {
		return Sample{}
	}

	// Li = Le * cosX * cosY / (distSq * invArea); this already folds in
	// the reciprocal of the solid-angle pdf below, so the estimator adds
	// Li*f*weight directly without a further division by pdf.
	li := a.Radiance.Mul(cosX * cosY / (distSq * a.InvArea))
	pdf := distSq * a.InvArea / cosY

	return Sample{Li: li, Wi: wi, Dist: dist, PDF: pdf}
}

// PDF returns the solid-angle pdf of hitting this light along wi from a
// point at the given distance. Clamped to zero when the light is seen from
// its back face — matches the C++ source's guard against an implausible
// "light stripe" artifact.
func (a Area) PDF(dist float64, wi xmath.Vec3) float64 {
	cosY := -a.Frame.Normal().Dot(wi)
	if cosY < 0 {
		cosY = 0
	}
	if cosY == 0 {
		return 0
	}
	return dist * dist * a.InvArea / cosY
}
