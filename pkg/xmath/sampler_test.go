package xmath

import "testing"

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(1234)
	b := NewSampler(1234)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("sample %d diverged for identical seeds", i)
		}
	}
}

func TestMixSeedVariesPerTile(t *testing.T) {
	seen := map[int64]bool{}
	for tile := 0; tile < 8; tile++ {
		s := MixSeed(1234, 0, tile)
		if seen[s] {
			t.Fatalf("tile %d produced a seed collision", tile)
		}
		seen[s] = true
	}
}

func TestSampleCosineHemisphereStaysInUpperHalf(t *testing.T) {
	for _, r1 := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		for _, r2 := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
			d := SampleCosineHemisphere(r1, r2)
			if d.Z < 0 {
				t.Fatalf("SampleCosineHemisphere(%v,%v) = %v has negative Z", r1, r2, d)
			}
			if l := d.Length(); l < 1-1e-6 || l > 1+1e-6 {
				t.Fatalf("SampleCosineHemisphere(%v,%v) = %v not unit length (%v)", r1, r2, d, l)
			}
		}
	}
}
