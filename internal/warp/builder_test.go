package warp

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/system"
)

func buildTestNetwork(t *testing.T, seed int64, size int) (*galaxy.Galaxy, []*system.System, *Network) {
	t.Helper()
	g := galaxy.NewGenerator(nil)
	gal := g.Generate(seed, size)
	systems := g.Systems(gal)
	return gal, systems, NewBuilder(nil).Build(gal, systems)
}

func TestBuildDeterminism(t *testing.T) {
	gal, systems, first := buildTestNetwork(t, 1234, 50)

	// Re-running the builder on the identical galaxy must produce an
	// identical gate list and adjacency map.
	second := NewBuilder(nil).Build(gal, systems)

	ja, _ := json.Marshal(first.Gates)
	jb, _ := json.Marshal(second.Gates)
	if string(ja) != string(jb) {
		t.Fatal("gate lists differ across identical builds")
	}
	for i := 0; i < gal.Size; i++ {
		if !reflect.DeepEqual(first.Neighbors(i), second.Neighbors(i)) {
			t.Fatalf("adjacency for system %d differs across identical builds", i)
		}
	}
}

func TestGateSymmetry(t *testing.T) {
	_, _, n := buildTestNetwork(t, 1234, 60)

	type edge struct {
		src, dst int
		typ      GateType
	}
	index := make(map[edge]bool)
	for _, g := range n.Gates {
		index[edge{g.Source, g.Target, g.Type}] = true
	}
	for _, g := range n.Gates {
		if !index[edge{g.Target, g.Source, g.Type}] {
			t.Errorf("gate %d→%d (%s) has no matching reverse record", g.Source, g.Target, g.Type)
		}
	}
}

func TestNoDuplicateEdges(t *testing.T) {
	for _, seed := range []int64{1234, 5, 777} {
		_, _, n := buildTestNetwork(t, seed, 90)

		seen := make(map[[2]int]int)
		for _, g := range n.Gates {
			seen[[2]int{g.Source, g.Target}]++
		}
		for pair, count := range seen {
			if count > 1 {
				t.Errorf("seed %d: directed edge %v appears %d times", seed, pair, count)
			}
		}
	}
}

func TestNoSelfLoops(t *testing.T) {
	_, _, n := buildTestNetwork(t, 99, 120)
	for _, g := range n.Gates {
		if g.Source == g.Target {
			t.Errorf("self-loop gate at system %d", g.Source)
		}
	}
}

func TestHighwayCount(t *testing.T) {
	for _, tc := range []struct {
		size int
		want int
	}{
		{50, 1},
		{90, 3},
		{29, 0},
		{120, 4},
	} {
		_, _, n := buildTestNetwork(t, 1234, tc.size)
		if got := n.Stats().Highway; got != tc.want {
			t.Errorf("size %d: highway connections = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestAllGatesActiveAtCreation(t *testing.T) {
	_, _, n := buildTestNetwork(t, 3, 50)
	for _, g := range n.Gates {
		if !g.Active {
			t.Errorf("gate %d→%d created inactive", g.Source, g.Target)
		}
	}
}

func TestStrategicGatesLinkCapitalsOnly(t *testing.T) {
	_, systems, n := buildTestNetwork(t, 1234, 100)
	for _, g := range n.Gates {
		if g.Type == GateStrategic {
			if !systems[g.Source].IsCapital || !systems[g.Target].IsCapital {
				t.Errorf("strategic gate %d→%d touches a non-capital system", g.Source, g.Target)
			}
		}
	}
}

func TestAdjacencyMatchesGateList(t *testing.T) {
	gal, _, n := buildTestNetwork(t, 1234, 80)

	rebuilt := Restore(n.Gates)
	for i := 0; i < gal.Size; i++ {
		if !reflect.DeepEqual(n.Neighbors(i), rebuilt.Neighbors(i)) {
			t.Fatalf("adjacency for system %d inconsistent with gate list", i)
		}
	}
}

func TestConnectedMatchesNeighbors(t *testing.T) {
	gal, _, n := buildTestNetwork(t, 41, 60)
	for i := 0; i < gal.Size; i++ {
		for _, j := range n.Neighbors(i) {
			if !n.Connected(i, j) || !n.Connected(j, i) {
				t.Fatalf("Connected disagrees with Neighbors for %d,%d", i, j)
			}
		}
	}
}

func TestLayoutRing(t *testing.T) {
	_, _, n := buildTestNetwork(t, 1234, 60)

	for index := 0; index < 60; index++ {
		layout := n.Layout(index)
		for k, pos := range layout {
			wantAngle := 2 * math.Pi * float64(k) / float64(len(layout))
			wantX := GateRingRadius * math.Cos(wantAngle)
			wantY := GateRingRadius * math.Sin(wantAngle)
			if math.Abs(pos.X-wantX) > 1e-9 || math.Abs(pos.Y-wantY) > 1e-9 {
				t.Fatalf("system %d gate %d at (%v, %v), want (%v, %v)", index, k, pos.X, pos.Y, wantX, wantY)
			}
			dist := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
			if math.Abs(dist-GateRingRadius) > 1e-9 {
				t.Fatalf("gate not on ring: %v", dist)
			}
		}
	}
}

func TestWithinRange(t *testing.T) {
	p := GatePosition{X: 100, Y: 0, Radius: 40}
	if !p.WithinRange(130, 0, 0) {
		t.Error("point inside gate radius reported out of range")
	}
	if p.WithinRange(200, 0, 10) {
		t.Error("far point reported in range")
	}
	if !p.WithinRange(160, 0, 20) {
		t.Error("reach not added to gate radius")
	}
}
