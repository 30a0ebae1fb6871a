package warp

// GateType classifies a connection by the construction rule that
// created it.
type GateType string

const (
	GateLocal     GateType = "local"
	GateStrategic GateType = "strategic"
	GateHighway   GateType = "highway"
)

// Gate is one directed edge of the network. Gates are always created in
// symmetric pairs (A→B and B→A) representing one logical bidirectional
// connection. Active is true at creation; external systems may flip it
// later, this package never revisits the decision.
type Gate struct {
	Source int      `json:"source"`
	Target int      `json:"target"`
	Type   GateType `json:"type"`
	Active bool     `json:"active"`
}

// Network is the finished gate graph: the gate list plus its derived
// adjacency map. The adjacency map is never authoritative on its own;
// it can be rebuilt from Gates at any time.
type Network struct {
	Gates []Gate `json:"gates"`
	adj   adjacency
}

// Connected reports whether a and b share a direct connection in either
// direction.
func (n *Network) Connected(a, b int) bool {
	return n.adj.connected(a, b)
}

// Neighbors returns the sorted set of systems directly reachable from
// the given system.
func (n *Network) Neighbors(index int) []int {
	return n.adj.neighbors(index)
}

// GatesFrom returns the outbound gates of a system in creation order.
// Creation order is what fixes each gate's slot on the render ring.
func (n *Network) GatesFrom(index int) []Gate {
	var out []Gate
	for _, g := range n.Gates {
		if g.Source == index {
			out = append(out, g)
		}
	}
	return out
}

// Stats summarizes the network per tier, counting logical connections
// rather than directed records.
type Stats struct {
	Local     int `json:"local"`
	Strategic int `json:"strategic"`
	Highway   int `json:"highway"`
}

func (n *Network) Stats() Stats {
	var s Stats
	for _, g := range n.Gates {
		if g.Source > g.Target {
			continue // count each pair once
		}
		switch g.Type {
		case GateLocal:
			s.Local++
		case GateStrategic:
			s.Strategic++
		case GateHighway:
			s.Highway++
		}
	}
	return s
}

// connect records one logical connection: two directed gates and a
// symmetric adjacency insert, all in the same step. Returns false
// without modifying anything if the systems are already connected, so
// the graph stays simple across the three construction tiers.
func (n *Network) connect(a, b int, gateType GateType) bool {
	if a == b || n.adj.connected(a, b) {
		return false
	}
	n.Gates = append(n.Gates,
		Gate{Source: a, Target: b, Type: gateType, Active: true},
		Gate{Source: b, Target: a, Type: gateType, Active: true},
	)
	n.adj.insert(a, b)
	return true
}
