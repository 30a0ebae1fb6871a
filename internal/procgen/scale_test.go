package procgen

import (
	"math"
	"testing"
)

func TestMassForGasGiant(t *testing.T) {
	// Reference point for the mass formula: r³ × density × scaling.
	mass := MassFor(1000, "gas_giant")
	want := 1000.0 * 1000.0 * 1000.0 * 0.3 * 0.1
	if mass != want {
		t.Errorf("MassFor(1000, gas_giant) = %v, want %v", mass, want)
	}
	if mass != 30_000_000 {
		t.Errorf("MassFor(1000, gas_giant) = %v, want 30000000", mass)
	}
}

func TestMassForDensityOrdering(t *testing.T) {
	// gas < ice < moon < rocky < metal at equal radius.
	categories := []string{"gas_giant", "ice", "moon_rocky", "rocky", "volcanic"}
	prev := 0.0
	for _, cat := range categories {
		m := MassFor(100, cat)
		if m <= prev {
			t.Errorf("density ordering broken at %s: %v <= %v", cat, m, prev)
		}
		prev = m
	}
}

func TestMassForUnknownCategory(t *testing.T) {
	// Unknown categories degrade to density 1.0, never fail.
	if got, want := MassFor(10, "plasma_squid"), 10.0*10*10*1.0*0.1; got != want {
		t.Errorf("MassFor unknown category = %v, want %v", got, want)
	}
}

func TestSizeForBounds(t *testing.T) {
	rng := NewStream(5)
	for cat, r := range sizeRanges {
		for i := 0; i < 100; i++ {
			size := SizeFor(cat, rng)
			if size < r.min || size >= r.max {
				t.Fatalf("SizeFor(%s) = %v, want [%v, %v)", cat, size, r.min, r.max)
			}
		}
	}
}

func TestSizeForUnknownCategory(t *testing.T) {
	rng := NewStream(5)
	if got := SizeFor("plasma_squid", rng); got != DefaultBodyRadius {
		t.Errorf("SizeFor unknown category = %v, want %v", got, DefaultBodyRadius)
	}
}

func TestSafeOrbitDistanceMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i < 20; i++ {
		d := SafeOrbitDistance(200, 50, i)
		if d <= prev {
			t.Fatalf("orbit distance not strictly increasing at index %d: %v <= %v", i, d, prev)
		}
		prev = d
	}
}

func TestSafeOrbitDistanceComponents(t *testing.T) {
	got := SafeOrbitDistance(200, 50, 3)
	want := 200*ParentClearance + 3*OrbitSpacing + 50*BodyClearance
	if got != want {
		t.Errorf("SafeOrbitDistance(200, 50, 3) = %v, want %v", got, want)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		x1, y1, r1, x2, y2, r2, buf float64
		want                       bool
	}{
		{"identical circles", 0, 0, 10, 0, 0, 10, 0, true},
		{"touching exactly", 0, 0, 10, 20, 0, 10, 0, false},
		{"clearly apart", 0, 0, 10, 100, 0, 10, 0, false},
		{"apart but inside buffer", 0, 0, 10, 25, 0, 10, 10, true},
		{"diagonal overlap", 0, 0, 10, 10, 10, 10, 0, true},
	}

	for _, tt := range tests {
		got := Overlaps(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2, tt.buf)
		if got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMassRadiusRoundTrip(t *testing.T) {
	rng := NewStream(77)
	for cat := range sizeRanges {
		radius := SizeFor(cat, rng)
		mass := MassFor(radius, cat)
		if math.Abs(mass-MassFor(radius, cat)) != 0 {
			t.Errorf("MassFor is not a pure function of (radius, category) for %s", cat)
		}
	}
}
