package body

import (
	"reflect"
	"testing"

	"starmap-server/internal/procgen"
)

func TestPlanetTableSumsToOne(t *testing.T) {
	last := planetTable[len(planetTable)-1]
	if last.cum != 1.0 {
		t.Errorf("planet table ends at %v, want 1.0", last.cum)
	}
	prev := 0.0
	for _, entry := range planetTable {
		if entry.cum <= prev {
			t.Errorf("planet table not strictly increasing at %s", entry.category)
		}
		prev = entry.cum
	}
}

func TestRollPlanetCategoryCoversTable(t *testing.T) {
	f := NewFactory(procgen.NewStream(42))
	seen := make(map[Category]int)
	for i := 0; i < 20000; i++ {
		seen[f.RollPlanetCategory()]++
	}
	for _, entry := range planetTable {
		if seen[entry.category] == 0 {
			t.Errorf("category %s never rolled in 20000 draws", entry.category)
		}
	}
	// Rocky has the largest share and shattered the smallest.
	if seen[CategoryRocky] <= seen[CategoryShattered] {
		t.Errorf("weighting inverted: rocky=%d shattered=%d", seen[CategoryRocky], seen[CategoryShattered])
	}
}

func TestFactoryDeterminism(t *testing.T) {
	a := NewFactory(procgen.NewStream(1234)).New("", 300, 0)
	b := NewFactory(procgen.NewStream(1234)).New("", 300, 0)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different bodies:\n%+v\n%+v", a, b)
	}
}

func TestMassConsistency(t *testing.T) {
	f := NewFactory(procgen.NewStream(9))
	for i := 0; i < 200; i++ {
		b := f.New("", 300, i)
		if got := procgen.MassFor(b.Radius, string(b.Category)); got != b.Mass {
			t.Fatalf("body %d mass %v does not match MassFor(%v, %s) = %v", i, b.Mass, b.Radius, b.Category, got)
		}
		for _, moon := range b.Moons {
			if got := procgen.MassFor(moon.Radius, string(moon.Category)); got != moon.Mass {
				t.Fatalf("moon mass %v does not match recomputed %v", moon.Mass, got)
			}
		}
	}
}

func TestMoonsOnlyOnLargePlanets(t *testing.T) {
	f := NewFactory(procgen.NewStream(11))
	for i := 0; i < 500; i++ {
		b := f.New("", 300, i%8)
		if len(b.Moons) > 3 {
			t.Fatalf("body has %d moons, max is 3", len(b.Moons))
		}
		if len(b.Moons) > 0 && b.Radius < moonRadiusThreshold {
			t.Fatalf("planet with radius %v below threshold %v has moons", b.Radius, moonRadiusThreshold)
		}
		for _, moon := range b.Moons {
			if moon.Category != CategoryMoonRocky && moon.Category != CategoryMoonIce {
				t.Fatalf("unexpected moon category %s", moon.Category)
			}
			if len(moon.Moons) != 0 {
				t.Fatal("moons must not have nested moons")
			}
		}
	}
}

func TestMoonOrbitsClearParent(t *testing.T) {
	f := NewFactory(procgen.NewStream(13))
	for i := 0; i < 200; i++ {
		b := f.New(CategoryGasGiant, 300, i)
		for idx, moon := range b.Moons {
			want := procgen.SafeOrbitDistance(b.Radius, moon.Radius, idx)
			if moon.OrbitDistance != want {
				t.Fatalf("moon %d orbit %v, want %v", idx, moon.OrbitDistance, want)
			}
		}
	}
}

func TestResourcesAreCopied(t *testing.T) {
	f := NewFactory(procgen.NewStream(3))
	b := f.New(CategoryTerran, 300, 0)
	if len(b.Resources) == 0 {
		t.Fatal("terran planet should carry resources")
	}

	// Simulate mining depletion on the body's own list.
	b.Resources[0] = "depleted"

	if TemplateFor(CategoryTerran).Resources[0] == "depleted" {
		t.Error("mutating a body's resources corrupted the shared template")
	}
}

func TestTemplateFlagsCarriedVerbatim(t *testing.T) {
	f := NewFactory(procgen.NewStream(8))
	b := f.New(CategoryVolcanic, 300, 0)
	tpl := TemplateFor(CategoryVolcanic)
	if b.Hostile != tpl.Hostile || b.Glow != tpl.Glow || b.HasRings != tpl.HasRings || b.Habitability != tpl.Habitability {
		t.Errorf("template flags not carried: %+v vs %+v", b, tpl)
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	f := NewFactory(procgen.NewStream(21))
	b := f.New(Category("plasma_squid"), 300, 0)
	if b.Radius != procgen.DefaultBodyRadius {
		t.Errorf("unknown category radius = %v, want default %v", b.Radius, procgen.DefaultBodyRadius)
	}
	if b.Mass == 0 {
		t.Error("unknown category must still derive a mass")
	}
}
