package system

import (
	"fmt"
	"log/slog"
	"math"

	"starmap-server/internal/body"
	"starmap-server/internal/procgen"
)

const (
	// Hard caps bounding generation time. Placement never loops
	// unbounded: the iteration cap silently clamps the body count and
	// the nudge cap stacks a body at its last computed distance.
	maxPlacementIterations = 96
	maxOrbitNudges         = 8

	// Buffer applied between sibling bodies during overlap checks.
	siblingBuffer = 10.0
)

// Fixed stellar class table with cumulative weights. The distribution
// leans on red and orange dwarfs the way real populations do.
var stellarTable = []struct {
	class StellarClass
	cum   float64
}{
	{StellarClass{Class: "O", Name: "Blue Supergiant", Color: "#9bb0ff", RadiusMin: 380, RadiusMax: 450, Density: 0.9, SafeZoneMult: 2.5, BaseDanger: 6}, 0.01},
	{StellarClass{Class: "B", Name: "Blue Giant", Color: "#aabfff", RadiusMin: 320, RadiusMax: 380, Density: 0.9, SafeZoneMult: 2.3, BaseDanger: 5}, 0.04},
	{StellarClass{Class: "A", Name: "White Star", Color: "#cad7ff", RadiusMin: 260, RadiusMax: 320, Density: 1.0, SafeZoneMult: 2.1, BaseDanger: 4}, 0.10},
	{StellarClass{Class: "F", Name: "Yellow-White Star", Color: "#f8f7ff", RadiusMin: 220, RadiusMax: 260, Density: 1.0, SafeZoneMult: 2.0, BaseDanger: 3}, 0.22},
	{StellarClass{Class: "G", Name: "Yellow Dwarf", Color: "#fff4ea", RadiusMin: 180, RadiusMax: 220, Density: 1.1, SafeZoneMult: 1.9, BaseDanger: 2}, 0.42},
	{StellarClass{Class: "K", Name: "Orange Dwarf", Color: "#ffd2a1", RadiusMin: 150, RadiusMax: 180, Density: 1.1, SafeZoneMult: 1.8, BaseDanger: 1}, 0.67},
	{StellarClass{Class: "M", Name: "Red Dwarf", Color: "#ffcc6f", RadiusMin: 110, RadiusMax: 150, Density: 1.2, SafeZoneMult: 1.8, BaseDanger: 1}, 1.0},
}

var bodySuffixes = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "Prime", "Minor", "Outer",
}

// StreamSalt returns the salt naming system index i's random stream.
func StreamSalt(index int) string {
	return fmt.Sprintf("system:%d", index)
}

// Generator assembles star systems. Each system depends only on
// (galaxySeed, index), so generating system i never requires systems
// 0..i-1 and distinct systems are safe to generate in parallel as long
// as each call derives its own stream.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate builds system index for the given galaxy seed. Calling it
// twice with the same arguments yields identical systems.
func (g *Generator) Generate(galaxySeed int64, index int) *System {
	seed := procgen.DeriveSeed(galaxySeed, StreamSalt(index))
	rng := procgen.NewStream(seed)

	class := rollStar(rng)
	danger := class.BaseDanger + rng.IntN(4)

	sys := &System{
		Index: index,
		Seed:  seed,
		Star: Star{
			Class:    class.Class,
			Name:     class.Name,
			Color:    class.Color,
			Radius:   rng.Range(class.RadiusMin, class.RadiusMax),
			SafeZone: 0,
		},
	}
	sys.Star.Mass = sys.Star.Radius * sys.Star.Radius * sys.Star.Radius * class.Density * procgen.MassScaling
	sys.Star.SafeZone = sys.Star.Radius * class.SafeZoneMult

	targetCount := rollBodyCount(rng)
	factory := body.NewFactory(rng)
	bodies, nextOrbit := placeBodies(rng, factory, sys.Star, targetCount)
	sys.Bodies = bodies
	for i := range sys.Bodies {
		sys.Bodies[i].Name = fmt.Sprintf("%s %s", sys.Bodies[i].Name, bodySuffixes[i%len(bodySuffixes)])
	}

	sys.Hazards = rollHazards(rng, sys.Star, danger, outerRadius(sys))
	danger += len(sys.Hazards)

	sys.IsCapital = rng.Chance(0.10)
	sys.HasMegastructure = rng.Chance(0.02)
	sys.HasBlackhole = danger >= 8 && rng.Chance(0.05)

	if sys.HasMegastructure {
		b := factory.New(body.CategoryMegastructure, sys.Star.Radius, nextOrbit)
		nextOrbit = nudgeClear(sys.Bodies, &b, sys.Star, nextOrbit)
		sys.Bodies = append(sys.Bodies, b)
		nextOrbit++
	}
	if sys.HasBlackhole {
		b := factory.New(body.CategoryBlackhole, sys.Star.Radius, nextOrbit)
		nudgeClear(sys.Bodies, &b, sys.Star, nextOrbit)
		sys.Bodies = append(sys.Bodies, b)
		danger = 10
	}

	sys.DangerLevel = clampDanger(danger)

	if g.logger != nil {
		g.logger.Debug("System generated",
			"index", index,
			"star_class", sys.Star.Class,
			"bodies", len(sys.Bodies),
			"hazards", len(sys.Hazards),
			"danger", sys.DangerLevel,
		)
	}

	return sys
}

func rollStar(rng *procgen.Stream) StellarClass {
	roll := rng.Next()
	for _, entry := range stellarTable {
		if roll < entry.cum {
			return entry.class
		}
	}
	return stellarTable[len(stellarTable)-1].class
}

// rollBodyCount picks a target count by richness tier: sparse, normal
// or rich systems.
func rollBodyCount(rng *procgen.Stream) int {
	roll := rng.Next()
	switch {
	case roll < 0.25:
		return 2 + rng.IntN(3) // 2-4
	case roll < 0.85:
		return 4 + rng.IntN(5) // 4-8
	default:
		return 8 + rng.IntN(5) // 8-12
	}
}

// rollBodyCategory occasionally yields a loose asteroid or comet between
// the planets; an empty category lets the factory roll a planet subtype.
func rollBodyCategory(rng *procgen.Stream) body.Category {
	roll := rng.Next()
	switch {
	case roll < 0.12:
		return body.CategoryAsteroid
	case roll < 0.20:
		return body.CategoryComet
	default:
		return ""
	}
}

// placeBodies fills orbital slots outward from the star. Monotonic slot
// spacing means overlaps should not occur, but each body is still
// checked against placed siblings and nudged to the next free slot when
// the check fires. Both loops are bounded: the iteration cap clamps the
// body count, the nudge cap stacks the body at its last distance.
func placeBodies(rng *procgen.Stream, factory *body.Factory, star Star, targetCount int) ([]body.Body, int) {
	bodies := make([]body.Body, 0, targetCount)
	orbitIndex := 0

	for iterations := 0; len(bodies) < targetCount && iterations < maxPlacementIterations; iterations++ {
		b := factory.New(rollBodyCategory(rng), star.Radius, orbitIndex)
		orbitIndex = nudgeClear(bodies, &b, star, orbitIndex)
		bodies = append(bodies, b)
		orbitIndex++
	}

	return bodies, orbitIndex
}

// nudgeClear moves the candidate outward one orbital slot at a time
// while it overlaps a placed sibling, up to the nudge cap. If the cap is
// exhausted the body stays at the last computed distance. Returns the
// orbital slot the body ended up on.
func nudgeClear(bodies []body.Body, candidate *body.Body, star Star, orbitIndex int) int {
	for nudge := 0; nudge < maxOrbitNudges && overlapsAny(bodies, candidate); nudge++ {
		orbitIndex++
		candidate.OrbitDistance = procgen.SafeOrbitDistance(star.Radius, candidate.Radius, orbitIndex)
	}
	return orbitIndex
}

func overlapsAny(bodies []body.Body, candidate *body.Body) bool {
	for i := range bodies {
		if procgen.Overlaps(
			bodies[i].X(), bodies[i].Y(), bodies[i].Radius,
			candidate.X(), candidate.Y(), candidate.Radius,
			siblingBuffer,
		) {
			return true
		}
	}
	return false
}

// outerRadius is the distance to the outermost body plus a margin,
// bounding where hazards may appear.
func outerRadius(sys *System) float64 {
	outer := sys.Star.SafeZone * 3
	for i := range sys.Bodies {
		if d := sys.Bodies[i].OrbitDistance; d > outer {
			outer = d
		}
	}
	return outer + procgen.OrbitSpacing
}

// rollHazards attaches environmental hazards with independent
// probability rolls gated by danger level. Every position comes from the
// same system stream; nothing here touches unseeded randomness.
func rollHazards(rng *procgen.Stream, star Star, danger int, outer float64) []Hazard {
	var hazards []Hazard

	place := func(kind HazardKind) {
		angle := rng.Range(0, 2*math.Pi)
		dist := rng.Range(star.SafeZone, outer)
		hazards = append(hazards, Hazard{
			Kind:   kind,
			X:      dist * math.Cos(angle),
			Y:      dist * math.Sin(angle),
			Radius: rng.Range(60, 180),
		})
	}

	if rng.Chance(0.15) {
		place(HazardNebula)
	}
	if danger > 3 && rng.Chance(0.12) {
		place(HazardIonStorm)
	}
	if danger > 5 && rng.Chance(0.20) {
		place(HazardRadiation)
	}
	if danger > 7 && rng.Chance(0.10) {
		place(HazardGravityWell)
	}

	return hazards
}

func clampDanger(danger int) int {
	if danger < 1 {
		return 1
	}
	if danger > 10 {
		return 10
	}
	return danger
}
