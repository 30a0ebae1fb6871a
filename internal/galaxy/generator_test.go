package galaxy

import (
	"encoding/json"
	"math"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	g := NewGenerator(nil)

	for _, seed := range []int64{1234, 0, -5, 42424242} {
		a := g.Generate(seed, 50)
		b := g.Generate(seed, 50)

		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		if string(ja) != string(jb) {
			t.Errorf("seed %d generated two different galaxies", seed)
		}
	}
}

func TestGenerateSizeFixed(t *testing.T) {
	g := NewGenerator(nil)
	gal := g.Generate(1234, 50)

	if gal.Size != 50 || len(gal.Sites) != 50 {
		t.Fatalf("expected 50 sites, got size=%d len=%d", gal.Size, len(gal.Sites))
	}
	for i, site := range gal.Sites {
		if site.Index != i {
			t.Errorf("site %d carries index %d", i, site.Index)
		}
	}
}

func TestSystemSpacing(t *testing.T) {
	g := NewGenerator(nil)

	for _, seed := range []int64{1234, 7, 999} {
		gal := g.Generate(seed, 50)
		for i := 0; i < gal.Size; i++ {
			for j := i + 1; j < gal.Size; j++ {
				if d := gal.Distance(i, j); d < minSystemSpacing {
					t.Errorf("seed %d: systems %d and %d are %v apart, min %v", seed, i, j, d, minSystemSpacing)
				}
			}
		}
	}
}

func TestSitesInsideMap(t *testing.T) {
	g := NewGenerator(nil)
	gal := g.Generate(1234, 100)
	for _, site := range gal.Sites {
		if site.X < 0 || site.X >= mapWidth || site.Y < 0 || site.Y >= mapHeight {
			t.Errorf("site %d at (%v, %v) outside map", site.Index, site.X, site.Y)
		}
	}
}

func TestStartIndexValid(t *testing.T) {
	g := NewGenerator(nil)
	for _, seed := range []int64{1234, 8, 15} {
		gal := g.Generate(seed, 30)
		if gal.StartIndex < 0 || gal.StartIndex >= gal.Size {
			t.Errorf("seed %d: start index %d out of range", seed, gal.StartIndex)
		}
	}
}

func TestSystemAtIdempotent(t *testing.T) {
	g := NewGenerator(nil)
	gal := g.Generate(1234, 50)

	a := g.SystemAt(gal, 17)
	b := g.SystemAt(gal, 17)

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Error("SystemAt(17) is not idempotent")
	}
}

func TestSiteSeedsMatchSystems(t *testing.T) {
	g := NewGenerator(nil)
	gal := g.Generate(1234, 20)

	systems := g.Systems(gal)
	for i, sys := range systems {
		if sys.Seed != gal.Sites[i].Seed {
			t.Errorf("system %d seed %d does not match site seed %d", i, sys.Seed, gal.Sites[i].Seed)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	g := NewGenerator(nil)
	gal := g.Generate(55, 20)
	for i := 0; i < gal.Size; i++ {
		for j := 0; j < gal.Size; j++ {
			if math.Abs(gal.Distance(i, j)-gal.Distance(j, i)) > 1e-12 {
				t.Fatalf("distance not symmetric for %d,%d", i, j)
			}
		}
	}
}
