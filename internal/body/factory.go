package body

import (
	"math"

	"starmap-server/internal/procgen"
)

func cos(a float64) float64 { return math.Cos(a) }
func sin(a float64) float64 { return math.Sin(a) }

// Planets with a radius at or above this threshold roll for moons.
const moonRadiusThreshold = 55.0

// Cumulative probability table for planet categories. Boundaries must
// end at exactly 1.0 so every roll lands on a category.
var planetTable = []struct {
	category Category
	cum      float64
}{
	{CategoryRocky, 0.20},
	{CategoryDesert, 0.35},
	{CategoryIce, 0.45},
	{CategoryTerran, 0.55},
	{CategoryOcean, 0.65},
	{CategoryGasGiant, 0.73},
	{CategoryVolcanic, 0.80},
	{CategoryToxic, 0.85},
	{CategoryFrozen, 0.89},
	{CategoryJungle, 0.93},
	{CategoryCrystal, 0.96},
	{CategoryMolten, 0.98},
	{CategoryShattered, 1.0},
}

// Moon categories are a much smaller table, rocky-weighted.
var moonTable = []struct {
	category Category
	cum      float64
}{
	{CategoryMoonRocky, 0.70},
	{CategoryMoonIce, 1.0},
}

// Factory builds single body records from a seeded stream. All radii,
// masses and orbital parameters are drawn from the stream in a fixed
// order, so a factory over the same stream always produces the same
// bodies.
type Factory struct {
	rng *procgen.Stream
}

func NewFactory(rng *procgen.Stream) *Factory {
	return &Factory{rng: rng}
}

// RollPlanetCategory draws a planet subtype from the weighted table.
func (f *Factory) RollPlanetCategory() Category {
	roll := f.rng.Next()
	for _, entry := range planetTable {
		if roll < entry.cum {
			return entry.category
		}
	}
	// Roll is in [0, 1) and the table ends at 1.0; this is unreachable
	// unless the table is edited, in which case fall back to the last row.
	return planetTable[len(planetTable)-1].category
}

func (f *Factory) rollMoonCategory() Category {
	roll := f.rng.Next()
	for _, entry := range moonTable {
		if roll < entry.cum {
			return entry.category
		}
	}
	return moonTable[len(moonTable)-1].category
}

// New produces one fully-formed body at the given orbital slot around a
// parent of the given radius. An empty category rolls a weighted planet
// subtype. Planets above the moon threshold carry 0-3 moons placed on
// their own orbital slots.
func (f *Factory) New(category Category, parentRadius float64, orbitIndex int) Body {
	if category == "" {
		category = f.RollPlanetCategory()
	}

	b := f.newBare(category, parentRadius, orbitIndex)

	if IsPlanet(category) && b.Radius >= moonRadiusThreshold {
		moonCount := f.rng.IntN(4)
		for i := 0; i < moonCount; i++ {
			moon := f.newBare(f.rollMoonCategory(), b.Radius, i)
			b.Moons = append(b.Moons, moon)
		}
	}

	return b
}

// newBare builds a body without moons: radius, derived mass, orbital
// placement and the template's flags.
func (f *Factory) newBare(category Category, parentRadius float64, orbitIndex int) Body {
	tpl := TemplateFor(category)

	radius := procgen.SizeFor(string(category), f.rng)
	mass := procgen.MassFor(radius, string(category))
	distance := procgen.SafeOrbitDistance(parentRadius, radius, orbitIndex)
	angle := f.rng.Range(0, 2*math.Pi)
	speed := f.rng.Range(0.01, 0.2)

	// Resources are copied, never aliased to the template table.
	resources := make([]string, len(tpl.Resources))
	copy(resources, tpl.Resources)

	return Body{
		Category:      category,
		Name:          tpl.DisplayName,
		Radius:        radius,
		Mass:          mass,
		OrbitDistance: distance,
		OrbitAngle:    angle,
		OrbitSpeed:    speed,
		HasRings:      tpl.HasRings,
		Glow:          tpl.Glow,
		Hostile:       tpl.Hostile,
		Habitability:  tpl.Habitability,
		Resources:     resources,
	}
}
