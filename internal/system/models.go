package system

import "starmap-server/internal/body"

// StellarClass is one entry of the fixed star table. Radius bounds,
// density and safe-zone multiplier play the role of the body scale
// tables, specialized for stars.
type StellarClass struct {
	Class        string
	Name         string
	Color        string
	RadiusMin    float64
	RadiusMax    float64
	Density      float64
	SafeZoneMult float64
	BaseDanger   int
}

// Star is the gravitational anchor of a system.
type Star struct {
	Class    string  `json:"class"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Radius   float64 `json:"radius"`
	Mass     float64 `json:"mass"`
	SafeZone float64 `json:"safe_zone"`
}

// HazardKind names an environmental hazard type.
type HazardKind string

const (
	HazardNebula      HazardKind = "nebula"
	HazardRadiation   HazardKind = "radiation_zone"
	HazardIonStorm    HazardKind = "ion_storm"
	HazardGravityWell HazardKind = "gravity_well"
)

// Hazard is a static environmental zone inside a system. Positions are
// relative to the star and fully seed-derived.
type Hazard struct {
	Kind   HazardKind `json:"kind"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Radius float64    `json:"radius"`
}

// System is one fully generated star system. Nothing here is mutated
// after generation; Discovered is toggled only by the player-progress
// layer.
type System struct {
	Index            int         `json:"index"`
	Seed             int64       `json:"seed"`
	Star             Star        `json:"star"`
	Bodies           []body.Body `json:"bodies"`
	Hazards          []Hazard    `json:"hazards"`
	DangerLevel      int         `json:"danger_level"`
	IsCapital        bool        `json:"is_capital"`
	HasBlackhole     bool        `json:"has_blackhole"`
	HasMegastructure bool        `json:"has_megastructure"`
	Discovered       bool        `json:"discovered"`
}
