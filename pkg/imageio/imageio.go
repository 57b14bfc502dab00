// Package imageio writes a tone-mapped framebuffer to disk. BMP output goes
// through github.com/jsummers/gobmp, which picks bit depth from the image's
// own opacity rather than always emitting 32bpp; Radiance HDR has no library
// anywhere in the example pack, so it is hand-rolled here (see DESIGN.md).
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsummers/gobmp"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

// Save writes w x h RGB pixels (row-major, top-to-bottom) to path. The
// extension selects the format: ".hdr" writes Radiance RGBE, anything else
// (including no extension, which gets ".bmp" appended) writes 24-bit BMP.
func Save(path string, w, h int, pixels []xmath.Vec3) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".hdr":
		return saveHDR(path, w, h, pixels)
	case ".bmp":
		return saveBMP(path, w, h, pixels)
	default:
		return saveBMP(path+".bmp", w, h, pixels)
	}
}

// clampToByte converts a linear radiance value to an 8-bit sRGB-ish byte via
// simple clamping (no filmic tone curve — the core estimators are the
// subject under test here, not display mapping).
func clampToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func saveBMP(path string, w, h int, pixels []xmath.Vec3) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := pixels[y*w+x]
			img.SetRGBA(x, y, color.RGBA{
				R: clampToByte(p.X),
				G: clampToByte(p.Y),
				B: clampToByte(p.Z),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	// img.Opaque() is true (alpha is always 255 above), so gobmp picks the
	// 24-bit BGR encoding the spec requires instead of padding in an unused
	// alpha channel.
	buf := bufio.NewWriter(f)
	if err := gobmp.Encode(buf, img); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return buf.Flush()
}

// saveHDR writes the Radiance RGBE format: a short text header followed by
// one 4-byte (R,G,B,E) record per pixel, scanlines top-to-bottom.
func saveHDR(path string, w, h int, pixels []xmath.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	fmt.Fprintf(buf, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", h, w)

	for i := 0; i < len(pixels); i++ {
		r, g, b, e := rgbe(pixels[i])
		buf.WriteByte(r)
		buf.WriteByte(g)
		buf.WriteByte(b)
		buf.WriteByte(e)
	}
	return buf.Flush()
}

// rgbe converts a linear RGB triple to the Radiance shared-exponent encoding.
func rgbe(c xmath.Vec3) (r, g, b, e byte) {
	m := math.Max(c.X, math.Max(c.Y, c.Z))
	if m < 1e-32 {
		return 0, 0, 0, 0
	}
	frac, exp := math.Frexp(m)
	scale := frac * 256 / m
	r = clampRGBE(c.X * scale)
	g = clampRGBE(c.Y * scale)
	b = clampRGBE(c.Z * scale)
	e = byte(exp + 128)
	return r, g, b, e
}

func clampRGBE(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
