package procgen

import "math"

// Scale constants shared by every body category. MassScaling is part of
// the save compatibility contract together with the density table.
const (
	MassScaling = 0.1

	// Clearance between a body and its gravitational parent.
	ParentClearance = 1.5
	// Clearance applied to the body's own radius when computing orbits.
	BodyClearance = 2.0
	// Fixed spacing between consecutive orbital slots.
	OrbitSpacing = 120.0

	// Fallback radius for unrecognized categories.
	DefaultBodyRadius = 60.0
)

type sizeRange struct {
	min, max float64
}

// Radius sampling ranges per category, in map units.
var sizeRanges = map[string]sizeRange{
	"rocky":            {40, 70},
	"desert":           {40, 75},
	"ice":              {35, 65},
	"terran":           {50, 80},
	"ocean":            {50, 85},
	"gas_giant":        {90, 160},
	"volcanic":         {40, 70},
	"toxic":            {45, 75},
	"frozen_wasteland": {35, 60},
	"jungle":           {50, 80},
	"crystal":          {30, 55},
	"molten":           {40, 65},
	"shattered":        {25, 50},
	"moon_rocky":       {14, 22},
	"moon_ice":         {12, 20},
	"asteroid":         {6, 14},
	"comet":            {8, 16},
	"blackhole":        {70, 90},
	"megastructure":    {100, 140},
}

// Density multipliers by category family: gas < ice < moon < rocky < metal.
var densities = map[string]float64{
	"gas_giant":        0.3,
	"ice":              0.5,
	"frozen_wasteland": 0.5,
	"crystal":          0.5,
	"comet":            0.5,
	"moon_ice":         0.5,
	"moon_rocky":       0.8,
	"asteroid":         0.8,
	"rocky":            1.0,
	"desert":           1.0,
	"terran":           1.0,
	"ocean":            1.0,
	"jungle":           1.0,
	"toxic":            1.0,
	"shattered":        1.0,
	"volcanic":         1.5,
	"molten":           1.5,
	"blackhole":        1.5,
	"megastructure":    0.8,
}

// SizeFor samples a radius for the category. Unknown categories fall back
// to a default mid-size planet radius; generation must never abort on a
// procedurally chosen category string.
func SizeFor(category string, rng *Stream) float64 {
	r, ok := sizeRanges[category]
	if !ok {
		return DefaultBodyRadius
	}
	return rng.Range(r.min, r.max)
}

// MassFor derives mass from radius and the category's density family.
// Mass is never set independently of radius.
func MassFor(radius float64, category string) float64 {
	density, ok := densities[category]
	if !ok {
		density = 1.0
	}
	return radius * radius * radius * density * MassScaling
}

// SafeOrbitDistance returns the minimum orbital distance for a body at the
// given orbital slot. Strictly increasing in orbitIndex, which makes
// consecutive slots non-overlapping by construction.
func SafeOrbitDistance(parentRadius, bodyRadius float64, orbitIndex int) float64 {
	return parentRadius*ParentClearance + float64(orbitIndex)*OrbitSpacing + bodyRadius*BodyClearance
}

// Overlaps reports whether two circles are closer than r1+r2+buffer. Used
// during placement and as a post-generation invariant check.
func Overlaps(x1, y1, r1, x2, y2, r2, buffer float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx+dy*dy) < r1+r2+buffer
}
