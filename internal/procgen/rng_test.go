package procgen

import (
	"testing"
)

func TestStreamDeterminism(t *testing.T) {
	a := NewStream(1234)
	b := NewStream(1234)

	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("streams diverged at draw %d: %v != %v", i, va, vb)
		}
	}
}

func TestStreamSeedsDiffer(t *testing.T) {
	a := NewStream(1)
	b := NewStream(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestNextBounds(t *testing.T) {
	rng := NewStream(42)
	for i := 0; i < 10000; i++ {
		v := rng.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() returned %v, want [0, 1)", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	rng := NewStream(7)
	for i := 0; i < 1000; i++ {
		v := rng.Range(10, 20)
		if v < 10 || v >= 20 {
			t.Fatalf("Range(10, 20) returned %v", v)
		}
	}
}

func TestIntN(t *testing.T) {
	rng := NewStream(99)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.IntN(4)
		if v < 0 || v >= 4 {
			t.Fatalf("IntN(4) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all values in [0, 4) after 1000 draws, saw %d", len(seen))
	}

	if v := rng.IntN(0); v != 0 {
		t.Errorf("IntN(0) = %d, want 0", v)
	}
	if v := rng.IntN(-5); v != 0 {
		t.Errorf("IntN(-5) = %d, want 0", v)
	}
}

func TestDeriveStreamIndependence(t *testing.T) {
	// Derived streams must be reproducible from (seed, salt) alone.
	a := DeriveStream(1234, "system:5")
	b := DeriveStream(1234, "system:5")
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("derived streams with identical salts diverged")
		}
	}

	c := DeriveStream(1234, "system:5")
	d := DeriveStream(1234, "system:6")
	if c.Next() == d.Next() && c.Next() == d.Next() && c.Next() == d.Next() {
		t.Error("derived streams with different salts look identical")
	}
}

func TestDeriveSeedStable(t *testing.T) {
	if DeriveSeed(1234, "system:0") != DeriveSeed(1234, "system:0") {
		t.Error("DeriveSeed is not stable")
	}
	if DeriveSeed(1234, "system:0") == DeriveSeed(1234, "system:1") {
		t.Error("DeriveSeed collision across salts")
	}
}
