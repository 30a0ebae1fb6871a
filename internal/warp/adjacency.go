package warp

import "sort"

// adjacency is an undirected adjacency map with symmetric inserts. It
// hides the two-directed-records representation from callers: one
// insert covers both directions.
type adjacency map[int]map[int]struct{}

func (a adjacency) insert(x, y int) {
	if a[x] == nil {
		a[x] = make(map[int]struct{})
	}
	if a[y] == nil {
		a[y] = make(map[int]struct{})
	}
	a[x][y] = struct{}{}
	a[y][x] = struct{}{}
}

func (a adjacency) connected(x, y int) bool {
	_, ok := a[x][y]
	return ok
}

func (a adjacency) neighbors(x int) []int {
	out := make([]int, 0, len(a[x]))
	for y := range a[x] {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// adjacencyFromGates rebuilds the map from a gate list. Used to restore
// a Network from serialized gates and as the consistency reference: the
// builder's in-place map must always equal this derivation.
func adjacencyFromGates(gates []Gate) adjacency {
	adj := make(adjacency)
	for _, g := range gates {
		adj.insert(g.Source, g.Target)
	}
	return adj
}

// Restore wraps a serialized gate list back into a Network, rebuilding
// the adjacency map.
func Restore(gates []Gate) *Network {
	return &Network{Gates: gates, adj: adjacencyFromGates(gates)}
}
