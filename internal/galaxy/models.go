package galaxy

import (
	"math"
	"time"
)

// SystemSite is one slot of the starmap: the derived seed and 2-D
// position of a system, without its bodies. Full systems are
// materialized lazily from the site's seed.
type SystemSite struct {
	Index int     `json:"index"`
	Seed  int64   `json:"seed"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Galaxy is an ordered, fixed-length sequence of system sites. Created
// once from a top-level seed and immutable for the session; everything
// else (bodies, hazards, gates) regenerates from Seed on demand.
type Galaxy struct {
	Seed       int64        `json:"seed"`
	Size       int          `json:"size"`
	StartIndex int          `json:"start_index"`
	Sites      []SystemSite `json:"sites"`
}

// Distance returns the Euclidean starmap distance between two systems.
func (g *Galaxy) Distance(a, b int) float64 {
	dx := g.Sites[a].X - g.Sites[b].X
	dy := g.Sites[a].Y - g.Sites[b].Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Save is the persisted record of a playthrough. Only the seed and the
// player's progress are stored; the galaxy itself regenerates from the
// seed on load.
type Save struct {
	ID            int       `json:"id"`
	Commander     string    `json:"commander"`
	Name          string    `json:"name"`
	Seed          int64     `json:"seed"`
	Size          int       `json:"size"`
	CurrentSystem int       `json:"current_system"`
	Discovered    []int64   `json:"discovered"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
