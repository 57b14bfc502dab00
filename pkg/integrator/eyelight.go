package integrator

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/scene"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// EyeLight is the diagnostic estimator: it shades the first hit with
// |cos(n, -ray.dir)| * rho_d/pi and never recurses. Not energy-correct, but
// cheap enough for a fast preview.
type EyeLight struct{}

func (EyeLight) Estimate(ray xmath.Ray, sc scene.Scene, sampler xmath.Sampler) xmath.Vec3 {
	isect, hit := sc.Intersect(ray)
	if !hit {
		return xmath.Vec3{}
	}
	if isect.LightID != geometry.NoLight {
		return sc.Light(isect.LightID).Emitted()
	}

	mat := sc.Material(isect.MatID)
	cosine := math.Abs(isect.Normal.Dot(ray.Dir.Neg()))
	return mat.Diffuse.Mul(cosine / math.Pi)
}
