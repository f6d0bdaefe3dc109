package mathutil

import (
	"math/rand"
	"testing"
)

func TestVec2Basics(t *testing.T) {
	a := V(3, 4)
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}
	if got := a.Add(V(1, 1)).Sub(V(1, 1)); got != a {
		t.Errorf("Add/Sub round trip = %v, want %v", got, a)
	}
	if got := a.Dist(V(0, 0)); got != 5 {
		t.Errorf("Dist() = %v, want 5", got)
	}
	if !V(1, 1).ApproxEqual(V(1+1e-10, 1), 1e-9) {
		t.Errorf("ApproxEqual should tolerate tiny drift")
	}
}

func TestRandRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		f := RandRange(rng, 2.5, 4.5)
		if f < 2.5 || f >= 4.5 {
			t.Fatalf("RandRange out of range: %v", f)
		}
		n := RandIntRange(rng, 2, 4)
		if n < 2 || n > 4 {
			t.Fatalf("RandIntRange out of range: %d", n)
		}
	}
	if got := RandIntRange(rng, 3, 3); got != 3 {
		t.Errorf("RandIntRange(3,3) = %d", got)
	}
}

func TestIntHelpers(t *testing.T) {
	if IntAbs(-4) != 4 || IntAbs(4) != 4 {
		t.Errorf("IntAbs broken")
	}
}
