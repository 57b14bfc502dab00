// Package framebuffer accumulates per-sample radiance into a pixel grid and
// tone-maps it to a low-dynamic-range image on save.
package framebuffer

import (
	"fmt"
	"math"

	"github.com/cornellgo/pathtracer/pkg/imageio"
	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Framebuffer is a resX x resY grid of RGB accumulators. Add is commutative
// and associative (floating-point sums); callers on disjoint pixel ranges
// (the driver's tile partition) may write concurrently without locking
// since no two tiles ever touch the same bin.
type Framebuffer struct {
	W, H int
	bins []xmath.Vec3
}

// New allocates a zeroed framebuffer of the given resolution.
func New(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, bins: make([]xmath.Vec3, w*h)}
}

// Add splats color into the bin containing floor(sampleXY). Out-of-range
// samples (possible at the image border under jitter) are dropped silently.
func (f *Framebuffer) Add(sampleXY xmath.Vec2, color xmath.Vec3) {
	x := int(math.Floor(sampleXY.X))
	y := int(math.Floor(sampleXY.Y))
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.bins[y*f.W+x] = f.bins[y*f.W+x].Add(color)
}

// At returns the accumulated (unscaled) value at pixel (x, y).
func (f *Framebuffer) At(x, y int) xmath.Vec3 {
	return f.bins[y*f.W+x]
}

// Scale multiplies every bin by s, used to divide by the iteration count
// once rendering finishes.
func (f *Framebuffer) Scale(s float64) {
	for i := range f.bins {
		f.bins[i] = f.bins[i].Mul(s)
	}
}

// Save tone-maps and writes the framebuffer to path, dispatching on file
// extension (.bmp or .hdr).
func (f *Framebuffer) Save(path string) error {
	if err := imageio.Save(path, f.W, f.H, f.bins); err != nil {
		return fmt.Errorf("save framebuffer: %w", err)
	}
	return nil
}

// Tile is a disjoint rectangular pixel range assigned to one worker for the
// duration of an iteration.
type Tile struct {
	X0, Y0, X1, Y1 int // half-open: [X0,X1) x [Y0,Y1)
}

// Tiles partitions a w x h image into row bands of roughly tileHeight rows
// each, matching the "one pixel-range per thread" scheduling model.
func Tiles(w, h, tileHeight int) []Tile {
	if tileHeight <= 0 {
		tileHeight = h
	}
	var tiles []Tile
	for y := 0; y < h; y += tileHeight {
		y1 := y + tileHeight
		if y1 > h {
			y1 = h
		}
		tiles = append(tiles, Tile{X0: 0, Y0: y, X1: w, Y1: y1})
	}
	return tiles
}
