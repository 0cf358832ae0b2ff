package intersection

import "testing"

func TestNewRand_ZeroSeedRemapped(t *testing.T) {
	r := NewRand(0)
	if r.s != 1 {
		t.Fatalf("zero seed remapped to %d, want 1", r.s)
	}
}

func TestRand_IsDeterministicForSameSeed(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("same-seed generators diverged at step %d", i)
		}
	}
}

func TestRand_IntnRespectsBound(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d, out of range", v)
		}
	}
}

func TestRand_IntnZeroOrNegativeIsZero(t *testing.T) {
	r := NewRand(7)
	if r.Intn(0) != 0 {
		t.Fatal("Intn(0) should return 0")
	}
	if r.Intn(-5) != 0 {
		t.Fatal("Intn(-5) should return 0")
	}
}

func TestShuffleRoutes_ContainsAllThreeRoutes(t *testing.T) {
	r := NewRand(123)
	routes := r.ShuffleRoutes()
	seen := map[Route]bool{}
	for _, route := range routes {
		seen[route] = true
	}
	if len(seen) != 3 {
		t.Fatalf("shuffled routes missing entries: %v", routes)
	}
}

func TestDirection_ReturnsValidCompassDirection(t *testing.T) {
	r := NewRand(99)
	valid := map[Direction]bool{North: true, South: true, East: true, West: true}
	for i := 0; i < 50; i++ {
		if !valid[r.Direction()] {
			t.Fatalf("invalid direction produced")
		}
	}
}
