package body

// Category identifies a celestial body subtype. Categories are stable
// strings: they appear in cached JSON and are part of the save
// compatibility contract.
type Category string

const (
	CategoryRocky     Category = "rocky"
	CategoryDesert    Category = "desert"
	CategoryIce       Category = "ice"
	CategoryTerran    Category = "terran"
	CategoryOcean     Category = "ocean"
	CategoryGasGiant  Category = "gas_giant"
	CategoryVolcanic  Category = "volcanic"
	CategoryToxic     Category = "toxic"
	CategoryFrozen    Category = "frozen_wasteland"
	CategoryJungle    Category = "jungle"
	CategoryCrystal   Category = "crystal"
	CategoryMolten    Category = "molten"
	CategoryShattered Category = "shattered"

	CategoryMoonRocky Category = "moon_rocky"
	CategoryMoonIce   Category = "moon_ice"

	CategoryAsteroid Category = "asteroid"
	CategoryComet    Category = "comet"

	CategoryBlackhole     Category = "blackhole"
	CategoryMegastructure Category = "megastructure"
)

// Body is one orbiting object. Mass is always derived from radius and
// category, never set independently. Moons form a two-level ownership
// tree of owned values, not shared references.
type Body struct {
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Radius        float64  `json:"radius"`
	Mass          float64  `json:"mass"`
	OrbitDistance float64  `json:"orbit_distance"`
	OrbitAngle    float64  `json:"orbit_angle"`
	OrbitSpeed    float64  `json:"orbit_speed"`
	HasRings      bool     `json:"has_rings"`
	Glow          bool     `json:"glow"`
	Hostile       bool     `json:"hostile"`
	Habitability  int      `json:"habitability"`
	Resources     []string `json:"resources"`
	Moons         []Body   `json:"moons,omitempty"`
}

// X and Y return the body's current position relative to its parent,
// from angle+radius kinematics. This is the placement used for overlap
// checks and handed to renderers.
func (b *Body) X() float64 { return b.OrbitDistance * cos(b.OrbitAngle) }
func (b *Body) Y() float64 { return b.OrbitDistance * sin(b.OrbitAngle) }

// Template carries the static, read-only definition of a category.
// Cosmetic and behavioral flags are copied onto bodies verbatim; the
// resource list is copied by value so per-body mutation (mining
// depletion) never corrupts this shared table.
type Template struct {
	DisplayName  string
	HasRings     bool
	Glow         bool
	Hostile      bool
	Habitability int
	Resources    []string
}

var templates = map[Category]Template{
	CategoryRocky:     {DisplayName: "Rocky Planet", Habitability: 3, Resources: []string{"iron", "silicon"}},
	CategoryDesert:    {DisplayName: "Desert Planet", Habitability: 2, Resources: []string{"silicon", "titanium"}},
	CategoryIce:       {DisplayName: "Ice Planet", Habitability: 1, Resources: []string{"water", "deuterium"}},
	CategoryTerran:    {DisplayName: "Terran Planet", Habitability: 9, Resources: []string{"food", "water", "iron"}},
	CategoryOcean:     {DisplayName: "Ocean Planet", Habitability: 7, Resources: []string{"water", "food"}},
	CategoryGasGiant:  {DisplayName: "Gas Giant", HasRings: true, Resources: []string{"hydrogen", "helium"}},
	CategoryVolcanic:  {DisplayName: "Volcanic Planet", Hostile: true, Glow: true, Resources: []string{"tungsten", "sulfur"}},
	CategoryToxic:     {DisplayName: "Toxic Planet", Hostile: true, Resources: []string{"chemicals", "sulfur"}},
	CategoryFrozen:    {DisplayName: "Frozen Wasteland", Habitability: 1, Resources: []string{"water", "platinum"}},
	CategoryJungle:    {DisplayName: "Jungle Planet", Habitability: 8, Resources: []string{"food", "biomass"}},
	CategoryCrystal:   {DisplayName: "Crystal Planet", Glow: true, Resources: []string{"crystals", "silicon"}},
	CategoryMolten:    {DisplayName: "Molten Planet", Hostile: true, Glow: true, Resources: []string{"tungsten", "gold"}},
	CategoryShattered: {DisplayName: "Shattered World", Hostile: true, Resources: []string{"iron", "platinum", "relics"}},

	CategoryMoonRocky: {DisplayName: "Rocky Moon", Habitability: 1, Resources: []string{"iron"}},
	CategoryMoonIce:   {DisplayName: "Ice Moon", Habitability: 1, Resources: []string{"water"}},

	CategoryAsteroid: {DisplayName: "Asteroid", Resources: []string{"iron", "nickel"}},
	CategoryComet:    {DisplayName: "Comet", Glow: true, Resources: []string{"water", "dust"}},

	CategoryBlackhole:     {DisplayName: "Black Hole", Hostile: true, Glow: true},
	CategoryMegastructure: {DisplayName: "Ancient Megastructure", Glow: true, Resources: []string{"relics", "alloys"}},
}

// TemplateFor returns the static definition for a category. Unknown
// categories get the rocky planet template rather than failing.
func TemplateFor(category Category) Template {
	if tpl, ok := templates[category]; ok {
		return tpl
	}
	return templates[CategoryRocky]
}

// IsPlanet reports whether the category is a planet subtype, eligible
// for moons of its own.
func IsPlanet(category Category) bool {
	switch category {
	case CategoryRocky, CategoryDesert, CategoryIce, CategoryTerran, CategoryOcean,
		CategoryGasGiant, CategoryVolcanic, CategoryToxic, CategoryFrozen,
		CategoryJungle, CategoryCrystal, CategoryMolten, CategoryShattered:
		return true
	}
	return false
}
