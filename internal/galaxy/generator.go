package galaxy

import (
	"log/slog"

	"starmap-server/internal/procgen"
	"starmap-server/internal/system"
)

// Starmap bounds and spacing. Spacing keeps system bubbles from
// visually overlapping; the attempt cap bounds placement time, with the
// last candidate accepted if no clear spot is found.
const (
	mapWidth           = 4000.0
	mapHeight          = 3000.0
	minSystemSpacing   = 150.0
	maxScatterAttempts = 100
)

// Generator produces galaxies and materializes their systems. It holds
// no per-galaxy state: every output is a pure function of the seed.
type Generator struct {
	systems *system.Generator
	logger  *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{
		systems: system.NewGenerator(logger),
		logger:  logger,
	}
}

// Generate scatters size system sites across the starmap and flags the
// starting system. The full body lists are not generated here; use
// SystemAt or Systems.
func (g *Generator) Generate(seed int64, size int) *Galaxy {
	rng := procgen.DeriveStream(seed, "layout")

	gal := &Galaxy{
		Seed:  seed,
		Size:  size,
		Sites: make([]SystemSite, 0, size),
	}

	for i := 0; i < size; i++ {
		var x, y float64
		for attempt := 0; attempt < maxScatterAttempts; attempt++ {
			x = rng.Range(0, mapWidth)
			y = rng.Range(0, mapHeight)
			if !g.tooClose(gal.Sites, x, y) {
				break
			}
		}
		gal.Sites = append(gal.Sites, SystemSite{
			Index: i,
			Seed:  procgen.DeriveSeed(seed, system.StreamSalt(i)),
			X:     x,
			Y:     y,
		})
	}

	gal.StartIndex = rng.IntN(size)

	if g.logger != nil {
		g.logger.Debug("Galaxy generated", "seed", seed, "size", size, "start_index", gal.StartIndex)
	}

	return gal
}

func (g *Generator) tooClose(sites []SystemSite, x, y float64) bool {
	for i := range sites {
		if procgen.Overlaps(sites[i].X, sites[i].Y, 0, x, y, 0, minSystemSpacing) {
			return true
		}
	}
	return false
}

// SystemAt regenerates system index from the galaxy seed. Idempotent:
// every call returns an identical system.
func (g *Generator) SystemAt(gal *Galaxy, index int) *system.System {
	return g.systems.Generate(gal.Seed, index)
}

// Systems materializes every system eagerly, in index order.
func (g *Generator) Systems(gal *Galaxy) []*system.System {
	out := make([]*system.System, gal.Size)
	for i := 0; i < gal.Size; i++ {
		out[i] = g.systems.Generate(gal.Seed, i)
	}
	return out
}
