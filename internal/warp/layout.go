package warp

import "math"

// Render layout constants. Gates sit on a fixed ring around each
// system's star; the proximity radius is what "is the player at gate G"
// checks against.
const (
	GateRingRadius = 900.0
	GateRadius     = 40.0
)

// GatePosition is a gate's static placement inside its home system,
// relative to the star. This placement rule is authoritative for any
// renderer.
type GatePosition struct {
	Gate   Gate    `json:"gate"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Layout returns the gate ring of one system: gate k of m sits at angle
// 2π×k/m on the ring.
func (n *Network) Layout(systemIndex int) []GatePosition {
	gates := n.GatesFrom(systemIndex)
	out := make([]GatePosition, len(gates))
	for k, g := range gates {
		angle := 2 * math.Pi * float64(k) / float64(len(gates))
		out[k] = GatePosition{
			Gate:   g,
			X:      GateRingRadius * math.Cos(angle),
			Y:      GateRingRadius * math.Sin(angle),
			Radius: GateRadius,
		}
	}
	return out
}

// WithinRange reports whether a point in system-local coordinates is
// within reach units of the gate position.
func (p *GatePosition) WithinRange(x, y, reach float64) bool {
	dx := x - p.X
	dy := y - p.Y
	return math.Sqrt(dx*dx+dy*dy) <= p.Radius+reach
}
