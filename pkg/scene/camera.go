package scene

import (
	"math"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Camera is a pinhole camera. Rays are generated from normalized image-plane
// coordinates (0,0) at the top-left corner through (1,1) at the bottom-right,
// matching the driver's per-pixel jitter convention.
type Camera struct {
	origin          xmath.Vec3
	lowerLeftCorner xmath.Vec3
	horizontal      xmath.Vec3
	vertical        xmath.Vec3
}

// NewCamera builds a pinhole camera looking from lookFrom toward lookAt, with
// the given up vector, vertical field of view in degrees, and aspect ratio
// (width/height).
func NewCamera(lookFrom, lookAt, up xmath.Vec3, vfovDeg, aspectRatio float64) *Camera {
	theta := vfovDeg * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Mul(2 * halfWidth)
	vertical := v.Mul(2 * halfHeight)
	lowerLeftCorner := origin.Sub(horizontal.Mul(0.5)).Sub(vertical.Mul(0.5)).Sub(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay returns a ray through normalized image coordinates (s, t), where s
// increases left-to-right and t increases top-to-bottom.
func (c *Camera) GetRay(s, t float64) xmath.Ray {
	dir := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(1 - t)).
		Sub(c.origin)
	return xmath.NewRay(c.origin, dir.Normalize())
}
