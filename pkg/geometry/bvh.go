package geometry

import (
	"sort"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// leafThreshold mirrors the teacher's median-split BVH: scenes of at most
// this many shapes fit in a single leaf and never recurse at all. The
// Cornell box presets (12 to 14 shapes) split once, into two leaves.
const leafThreshold = 8

// BVH accelerates ray intersection against a static shape list. Built once
// per scene and shared read-only across all rendering goroutines.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	bounds      AABB
	left, right *bvhNode
	shapes      []Shape // non-nil only on leaves
}

// NewBVH builds a BVH over shapes. The input slice is copied so the caller
// may reuse or mutate it afterward.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	cp := make([]Shape, len(shapes))
	copy(cp, shapes)
	return &BVH{root: build(cp)}
}

func build(shapes []Shape) *bvhNode {
	bounds := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		bounds = UnionAABB(bounds, s.Bounds())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	axis := bounds.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		ci, cj := shapes[i].Bounds().Center(), shapes[j].Bounds().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})

	mid := len(shapes) / 2
	return &bvhNode{
		bounds: bounds,
		left:   build(shapes[:mid]),
		right:  build(shapes[mid:]),
	}
}

// Hit returns the closest intersection over [tMin, tMax], if any.
func (b *BVH) Hit(ray xmath.Ray, tMin, tMax float64) (Isect, bool) {
	if b.root == nil {
		return Isect{}, false
	}
	return hitNode(b.root, ray, tMin, tMax)
}

func hitNode(n *bvhNode, ray xmath.Ray, tMin, tMax float64) (Isect, bool) {
	if !n.bounds.Hit(ray, tMin, tMax) {
		return Isect{}, false
	}

	if n.shapes != nil {
		var closest Isect
		hitAny := false
		closestSoFar := tMax
		for _, s := range n.shapes {
			if isect, ok := s.Hit(ray, tMin, closestSoFar); ok {
				hitAny = true
				closestSoFar = isect.Dist
				closest = isect
			}
		}
		return closest, hitAny
	}

	var closest Isect
	hitAny := false
	closestSoFar := tMax
	if n.left != nil {
		if isect, ok := hitNode(n.left, ray, tMin, closestSoFar); ok {
			hitAny = true
			closestSoFar = isect.Dist
			closest = isect
		}
	}
	if n.right != nil {
		if isect, ok := hitNode(n.right, ray, tMin, closestSoFar); ok {
			hitAny = true
			closest = isect
		}
	}
	return closest, hitAny
}

// Occluded reports whether any shape blocks the segment from p toward dir
// out to maxDist. Uses a slightly inset tMax so a light exactly at maxDist
// is not reported as self-occluding.
func (b *BVH) Occluded(p, dir xmath.Vec3, maxDist float64) bool {
	ray := xmath.OffsetRay(p, dir)
	_, hit := b.Hit(ray, 0, maxDist-2*xmath.EpsRay)
	return hit
}
