package scene

import (
	"fmt"

	"github.com/cornellgo/pathtracer/pkg/geometry"
	"github.com/cornellgo/pathtracer/pkg/lights"
	"github.com/cornellgo/pathtracer/pkg/material"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Standard Cornell box dimensions, in the classic 555-unit convention.
const boxSize = 555.0

// LightMode selects which of the three light variants a preset uses.
type LightMode int

const (
	LightPoint LightMode = iota
	LightCeilingArea
	LightBoxArea
	LightEnvironment
)

// PresetSpec describes one of the eight scene presets named in the CLI
// surface: a light variant crossed with a material set (diffuse-only vs
// diffuse+glossy walls and spheres).
type PresetSpec struct {
	Light  LightMode
	Glossy bool
}

// Presets is the ordered table addressed by the -s flag, 0..7.
var Presets = [8]PresetSpec{
	{Light: LightPoint, Glossy: false},
	{Light: LightPoint, Glossy: true},
	{Light: LightCeilingArea, Glossy: false},
	{Light: LightCeilingArea, Glossy: true},
	{Light: LightBoxArea, Glossy: false},
	{Light: LightBoxArea, Glossy: true},
	{Light: LightEnvironment, Glossy: false},
	{Light: LightEnvironment, Glossy: true},
}

type quadBuilder struct {
	shapes []geometry.Shape
}

// addQuad appends both triangles of a quad given a corner and two edge
// vectors, tagged with a material id and optional light id.
func (b *quadBuilder) addQuad(corner, u, v xmath.Vec3, matID, lightID int) {
	p0, p1, p2, p3 := corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)
	t1 := geometry.NewTriangle(p0, p1, p2, matID)
	t2 := geometry.NewTriangle(p0, p2, p3, matID)
	if lightID != geometry.NoLight {
		t1.LightID = lightID
		t2.LightID = lightID
	}
	b.shapes = append(b.shapes, t1, t2)
}

// NewCornellScene builds the Cornell box for preset id (0..7) at the given
// image aspect ratio.
func NewCornellScene(presetID int, aspectRatio float64) (*CornellScene, error) {
	if presetID < 0 || presetID >= len(Presets) {
		return nil, fmt.Errorf("scene preset %d out of range [0,%d]", presetID, len(Presets)-1)
	}
	preset := Presets[presetID]

	var mats []*material.Phong
	newDiffuse := func(rho xmath.Vec3) int {
		m := material.NewPhong(rho, xmath.Vec3{}, 1)
		mats = append(mats, &m)
		return len(mats) - 1
	}
	newGlossy := func(rhoD, rhoS xmath.Vec3, exp float64) int {
		m := material.NewPhong(rhoD, rhoS, exp)
		mats = append(mats, &m)
		return len(mats) - 1
	}

	white := xmath.NewVec3(0.73, 0.73, 0.73)
	red := xmath.NewVec3(0.65, 0.05, 0.05)
	green := xmath.NewVec3(0.12, 0.45, 0.15)

	var whiteMat, redMat, greenMat, sphereMat int
	if preset.Glossy {
		whiteMat = newGlossy(white.Mul(0.6), xmath.Splat(0.15), 40)
		redMat = newGlossy(red.Mul(0.6), xmath.Splat(0.1), 40)
		greenMat = newGlossy(green.Mul(0.6), xmath.Splat(0.1), 40)
		sphereMat = newGlossy(xmath.Splat(0.2), xmath.Splat(0.55), 120)
	} else {
		whiteMat = newDiffuse(white)
		redMat = newDiffuse(red)
		greenMat = newDiffuse(green)
		sphereMat = newDiffuse(xmath.Splat(0.5))
	}

	b := &quadBuilder{}

	// Floor, ceiling, back wall (white), left (red), right (green).
	b.addQuad(xmath.NewVec3(0, 0, 0), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, 0, boxSize), whiteMat, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, boxSize, 0), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, 0, boxSize), whiteMat, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, 0, boxSize), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, boxSize, 0), whiteMat, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, 0, 0), xmath.NewVec3(0, 0, boxSize), xmath.NewVec3(0, boxSize, 0), redMat, geometry.NoLight)
	b.addQuad(xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, boxSize, 0), xmath.NewVec3(0, 0, boxSize), greenMat, geometry.NoLight)

	// Two spheres, always present regardless of light mode.
	sphere1 := geometry.NewSphere(xmath.NewVec3(185, 82.5, 169), 82.5, sphereMat)
	sphere2 := geometry.NewSphere(xmath.NewVec3(370, 130, 351), 130, sphereMat)
	b.shapes = append(b.shapes, sphere1, sphere2)

	var lightList []lights.Light
	var background lights.Light
	hasBackground := false

	switch preset.Light {
	case LightPoint:
		lightList = append(lightList, lights.NewPoint(xmath.NewVec3(278, boxSize-20, 279.5), xmath.Splat(9e5)))

	case LightCeilingArea:
		lightSize := 130.0
		off := (boxSize - lightSize) / 2
		lightMat := newDiffuse(xmath.Vec3{})
		lightID := len(lightList)
		radiance := xmath.Splat(15)
		p0 := xmath.NewVec3(off, boxSize-1, off)
		p1 := p0.Add(xmath.NewVec3(lightSize, 0, 0))
		p2 := p0.Add(xmath.NewVec3(0, 0, lightSize))
		lightList = append(lightList, lights.NewArea(p0, p1, p2, radiance))
		b.addQuad(p0, xmath.NewVec3(lightSize, 0, 0), xmath.NewVec3(0, 0, lightSize), lightMat, lightID)

	case LightBoxArea:
		lightMat := newDiffuse(xmath.Vec3{})
		lightID := len(lightList)
		radiance := xmath.Splat(8)
		p0 := xmath.NewVec3(213, 0, 227)
		p1 := p0.Add(xmath.NewVec3(130, 0, 0))
		p2 := p0.Add(xmath.NewVec3(0, 300, 0))
		lightList = append(lightList, lights.NewArea(p0, p1, p2, radiance))
		b.addQuad(p0, xmath.NewVec3(130, 0, 0), xmath.NewVec3(0, 300, 0), lightMat, lightID)

	case LightEnvironment:
		background = lights.NewEnvironment(xmath.Splat(0.6))
		hasBackground = true

	default:
		return nil, fmt.Errorf("unknown light mode %d", preset.Light)
	}

	bvh := geometry.NewBVH(b.shapes)
	cam := NewCamera(
		xmath.NewVec3(278, 278, -800),
		xmath.NewVec3(278, 278, 0),
		xmath.NewVec3(0, 1, 0),
		40,
		aspectRatio,
	)

	return &CornellScene{
		bvh:        bvh,
		camera:     cam,
		materials:  mats,
		lightList:  lightList,
		sampler:    lights.NewSampler(lightList),
		background: background,
		hasBackrnd: hasBackground,
	}, nil
}

// NewMirrorSymmetricScene builds a box-area-light Cornell box with both side
// walls the same color, no off-center spheres, and an isosceles triangular
// light whose emitting geometry is exactly the triangle the light samples,
// so the scene is symmetric under an X-axis flip up to half a unit (light
// and camera are centered on x = 278, the walls on x = 277.5). Preset 4/5's
// own spheres are placed
// off-center and break that symmetry, so this variant exists solely to give
// the direct-MIS symmetry property (scenario S5) a scene it can actually
// hold on.
func NewMirrorSymmetricScene(aspectRatio float64) *CornellScene {
	white := xmath.NewVec3(0.73, 0.73, 0.73)
	whiteMatVal := material.NewPhong(white, xmath.Vec3{}, 1)
	whiteMat := &whiteMatVal
	mats := []*material.Phong{whiteMat}

	b := &quadBuilder{}
	b.addQuad(xmath.NewVec3(0, 0, 0), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, 0, boxSize), 0, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, boxSize, 0), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, 0, boxSize), 0, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, 0, boxSize), xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, boxSize, 0), 0, geometry.NoLight)
	b.addQuad(xmath.NewVec3(0, 0, 0), xmath.NewVec3(0, 0, boxSize), xmath.NewVec3(0, boxSize, 0), 0, geometry.NoLight)
	b.addQuad(xmath.NewVec3(boxSize, 0, 0), xmath.NewVec3(0, boxSize, 0), xmath.NewVec3(0, 0, boxSize), 0, geometry.NoLight)

	lightMatVal := material.NewPhong(xmath.Vec3{}, xmath.Vec3{}, 1)
	mats = append(mats, &lightMatVal)
	lightMatID := 1
	radiance := xmath.Splat(8)
	p0 := xmath.NewVec3(213, 0, 227)
	p1 := p0.Add(xmath.NewVec3(130, 0, 0))
	p2 := p0.Add(xmath.NewVec3(65, 300, 0))
	lightList := []lights.Light{lights.NewArea(p0, p1, p2, radiance)}
	b.shapes = append(b.shapes, geometry.NewTriangleLight(p0, p1, p2, lightMatID, 0))

	bvh := geometry.NewBVH(b.shapes)
	cam := NewCamera(
		xmath.NewVec3(278, 278, -800),
		xmath.NewVec3(278, 278, 0),
		xmath.NewVec3(0, 1, 0),
		40,
		aspectRatio,
	)

	return &CornellScene{
		bvh:       bvh,
		camera:    cam,
		materials: mats,
		lightList: lightList,
		sampler:   lights.NewSampler(lightList),
	}
}
