package warp

import (
	"log/slog"
	"sort"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/procgen"
	"starmap-server/internal/system"
)

const (
	localGateChance     = 0.4
	strategicGateChance = 0.5

	// One highway per this many systems.
	systemsPerHighway = 30

	// Bounded retry budget per highway link for self-pairs and
	// already-connected pairs.
	highwayRetriesPerLink = 64
)

// Builder constructs the three-tier gate network over a finished
// galaxy. Construction is inherently sequential: the dedup check of
// each tier is only meaningful once the earlier tiers have completed,
// and the adjacency map is mutated in place throughout the pass.
type Builder struct {
	logger *slog.Logger
}

func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build runs the three tiers in order over the galaxy. All randomness
// comes from a stream derived from the galaxy seed, so rebuilding over
// the identical galaxy yields an identical network.
func (b *Builder) Build(gal *galaxy.Galaxy, systems []*system.System) *Network {
	rng := procgen.DeriveStream(gal.Seed, "warp")
	n := &Network{adj: make(adjacency)}

	b.buildLocalTier(rng, gal, n)
	b.buildStrategicTier(rng, systems, n)
	b.buildHighwayTier(rng, gal.Size, n)

	if b.logger != nil {
		stats := n.Stats()
		b.logger.Debug("Warp network built",
			"seed", gal.Seed,
			"local", stats.Local,
			"strategic", stats.Strategic,
			"highway", stats.Highway,
		)
	}

	return n
}

// buildLocalTier links systems to their geometric neighbors. Systems
// are visited in fixed index order; each connects to its 1-3 nearest
// systems with fixed probability.
func (b *Builder) buildLocalTier(rng *procgen.Stream, gal *galaxy.Galaxy, n *Network) {
	for i := 0; i < gal.Size; i++ {
		if !rng.Chance(localGateChance) {
			continue
		}
		count := 1 + rng.IntN(3)
		for _, j := range nearestSystems(gal, i, count) {
			n.connect(i, j, GateLocal)
		}
	}
}

// buildStrategicTier links capital systems pairwise with fixed
// probability. Deliberately does not guarantee a connected capital
// mesh.
func (b *Builder) buildStrategicTier(rng *procgen.Stream, systems []*system.System, n *Network) {
	var capitals []int
	for i, sys := range systems {
		if sys.IsCapital {
			capitals = append(capitals, i)
		}
	}

	for i := 0; i < len(capitals); i++ {
		for j := i + 1; j < len(capitals); j++ {
			if rng.Chance(strategicGateChance) {
				n.connect(capitals[i], capitals[j], GateStrategic)
			}
		}
	}
}

// buildHighwayTier creates floor(size/30) long-range links between
// uniformly random pairs, independent of geometric proximity.
// Self-pairs and already-connected pairs are retried rather than
// silently reducing the count; retries are bounded per link.
func (b *Builder) buildHighwayTier(rng *procgen.Stream, size int, n *Network) {
	target := size / systemsPerHighway

	for created := 0; created < target; {
		linked := false
		for attempt := 0; attempt < highwayRetriesPerLink; attempt++ {
			a := rng.IntN(size)
			c := rng.IntN(size)
			if n.connect(a, c, GateHighway) {
				linked = true
				break
			}
		}
		if !linked {
			// Graph is saturated around the rolled pairs; give up on
			// this link rather than spinning forever.
			if b.logger != nil {
				b.logger.Warn("Highway link retry budget exhausted", "created", created, "target", target)
			}
			return
		}
		created++
	}
}

// nearestSystems returns up to count systems sorted by starmap distance
// from the origin, nearest first. Ties break on index so ordering never
// depends on map iteration or timing.
func nearestSystems(gal *galaxy.Galaxy, origin, count int) []int {
	candidates := make([]int, 0, gal.Size-1)
	for i := 0; i < gal.Size; i++ {
		if i != origin {
			candidates = append(candidates, i)
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		da := gal.Distance(origin, candidates[a])
		db := gal.Distance(origin, candidates[b])
		if da != db {
			return da < db
		}
		return candidates[a] < candidates[b]
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count]
}
