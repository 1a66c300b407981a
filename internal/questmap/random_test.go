package questmap

import (
	"math"
	"testing"
)

func TestSeedMatchesFNV1a(t *testing.T) {
	if got := Seed(""); got != 2166136261 {
		t.Fatalf("expected offset basis for empty key, got %d", got)
	}
	if got := Seed("a"); got != 0xe40c292c {
		t.Fatalf("expected 0xe40c292c, got %#x", got)
	}
	if got := Seed("REQ-001"); got != 4026934209 {
		t.Fatalf("expected 4026934209, got %d", got)
	}
}

func TestRNGMatchesMulberry32(t *testing.T) {
	want := []float64{0.26642920868471265, 0.0003297457005828619, 0.2232720274478197}
	r := NewRNG(0)
	for i, w := range want {
		if got := r.Float64(); math.Abs(got-w) > 1e-15 {
			t.Fatalf("draw %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestRNGStaysInUnitInterval(t *testing.T) {
	r := NewRNG(Seed("bounds"))
	for i := 0; i < 10_000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("value out of range: %v", v)
		}
	}
}
