package imageio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cornellgo/pathtracer/pkg/xmath"
)

func TestSaveDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	pixels := []xmath.Vec3{
		xmath.NewVec3(1, 0, 0), xmath.NewVec3(0, 1, 0),
		xmath.NewVec3(0, 0, 1), xmath.NewVec3(1, 1, 1),
	}

	bmpPath := filepath.Join(dir, "out.bmp")
	if err := Save(bmpPath, 2, 2, pixels); err != nil {
		t.Fatalf("save bmp: %v", err)
	}
	if info, err := os.Stat(bmpPath); err != nil || info.Size() == 0 {
		t.Fatalf("bmp file missing or empty: %v", err)
	}
	assertBMPIs24Bit(t, bmpPath)

	hdrPath := filepath.Join(dir, "out.hdr")
	if err := Save(hdrPath, 2, 2, pixels); err != nil {
		t.Fatalf("save hdr: %v", err)
	}
	if info, err := os.Stat(hdrPath); err != nil || info.Size() == 0 {
		t.Fatalf("hdr file missing or empty: %v", err)
	}

	noExtPath := filepath.Join(dir, "out")
	if err := Save(noExtPath, 2, 2, pixels); err != nil {
		t.Fatalf("save no-extension: %v", err)
	}
	if _, err := os.Stat(noExtPath + ".bmp"); err != nil {
		t.Fatalf("expected .bmp appended: %v", err)
	}
}

// assertBMPIs24Bit checks the biBitCount field of the BITMAPINFOHEADER
// (offset 28, little-endian uint16, per the 14-byte BITMAPFILEHEADER +
// standard 40-byte info header layout) equals 24, guarding against an
// encoder that silently pads in a 32-bit BGRA image instead.
func assertBMPIs24Bit(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if len(data) < 30 {
		t.Fatalf("bmp file too short: %d bytes", len(data))
	}
	bitCount := uint16(data[28]) | uint16(data[29])<<8
	if bitCount != 24 {
		t.Fatalf("biBitCount = %d, want 24", bitCount)
	}
}

func TestRGBERoundTripsBrightValues(t *testing.T) {
	r, g, b, e := rgbe(xmath.NewVec3(100, 50, 25))
	if e == 0 {
		t.Fatal("expected nonzero exponent for a bright pixel")
	}
	if r == 0 && g == 0 && b == 0 {
		t.Fatal("expected nonzero mantissa bytes for a bright pixel")
	}
}

func TestRGBEHandlesBlack(t *testing.T) {
	r, g, b, e := rgbe(xmath.Vec3{})
	if r != 0 || g != 0 || b != 0 || e != 0 {
		t.Fatalf("rgbe(black) = (%d,%d,%d,%d), want all zero", r, g, b, e)
	}
}
