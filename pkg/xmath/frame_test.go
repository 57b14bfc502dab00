package xmath

import (
	"math"
	"testing"
)

// TestFrameOrthonormality is invariant 1 from the spec: for any unit vector
// n, the frame built from it has unit-length axes and is pairwise
// orthogonal within 1e-5.
func TestFrameOrthonormality(t *testing.T) {
	normals := []Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 2, Z: -3},
		{X: 0.001, Y: 0.999, Z: 0.02},
	}

	const tol = 1e-5

	for _, n := range normals {
		f := FrameFromNormal(n)

		for name, axis := range map[string]Vec3{"U": f.U, "V": f.V, "W": f.W} {
			if math.Abs(axis.Length()-1) > tol {
				t.Errorf("normal %v: |%s| = %v, want 1", n, name, axis.Length())
			}
		}

		if math.Abs(f.U.Dot(f.V)) > tol {
			t.Errorf("normal %v: U.V = %v, want 0", n, f.U.Dot(f.V))
		}
		if math.Abs(f.U.Dot(f.W)) > tol {
			t.Errorf("normal %v: U.W = %v, want 0", n, f.U.Dot(f.W))
		}
		if math.Abs(f.V.Dot(f.W)) > tol {
			t.Errorf("normal %v: V.W = %v, want 0", n, f.V.Dot(f.W))
		}
	}
}

func TestFrameToLocalToWorldRoundTrip(t *testing.T) {
	f := FrameFromNormal(Vec3{X: 0.3, Y: 0.6, Z: 0.74})
	dir := Vec3{X: 0.2, Y: -0.4, Z: 0.9}.Normalize()

	local := f.ToLocal(dir)
	world := f.ToWorld(local)

	if world.Sub(dir).Length() > 1e-9 {
		t.Fatalf("round trip mismatch: got %v, want %v", world, dir)
	}
}

func TestFrameNormalIsLocalZ(t *testing.T) {
	f := FrameFromNormal(Vec3{X: 1, Y: 1, Z: 1})
	local := f.ToLocal(f.Normal())
	if math.Abs(local.Z-1) > 1e-9 || math.Abs(local.X) > 1e-9 || math.Abs(local.Y) > 1e-9 {
		t.Fatalf("normal in local space = %v, want (0,0,1)", local)
	}
}
