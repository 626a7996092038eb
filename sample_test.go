package revrng

import (
	"math"
	"testing"
)

func TestUniformRange(t *testing.T) {
	s := NewState(99)
	for i := 0; i < 10000; i++ {
		u := s.Uniform()
		if u < 0 || u >= 1 {
			t.Fatalf("Uniform() = %v, want value in [0, 1)", u)
		}
	}
}

func TestUniformIsDeterministic(t *testing.T) {
	a := NewState(1).Uniform()
	b := NewState(1).Uniform()
	if a != b {
		t.Errorf("Uniform() not deterministic for same seed: %v != %v", a, b)
	}
}

func TestNormalPairFinite(t *testing.T) {
	s := NewState(3)
	for i := 0; i < 1000; i++ {
		a, b := s.NormalPair()
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
			t.Fatalf("NormalPair() = (%v, %v) at iteration %d, want finite values", a, b, i)
		}
	}
}
