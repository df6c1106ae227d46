package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFindUnionAndFind(t *testing.T) {
	uf := newUnionFind(5)
	uf.union(0, 1)
	uf.union(1, 2)
	require.Equal(t, uf.find(0), uf.find(2))
	require.NotEqual(t, uf.find(0), uf.find(3))
}

// TestSnapEdgesClustersWithinTolerance verifies the snap-bucket spread
// invariant: every edge that ends up in the same bucket lands on exactly
// the bucket's mean perpendicular coordinate, and that mean never strays
// outside the original cluster's min/max.
func TestSnapEdgesClustersWithinTolerance(t *testing.T) {
	edges := []Edge{
		NewHEdge(0, 10, 10.0, 0, Color{}),
		NewHEdge(0, 10, 10.4, 0, Color{}),
		NewHEdge(0, 10, 9.7, 0, Color{}),
		NewHEdge(0, 10, 50.0, 0, Color{}), // far away: its own bucket
	}

	snapped := snapEdges(edges, 1.0)
	require.Len(t, snapped, 4)

	firstThreeMean := (10.0 + 10.4 + 9.7) / 3
	for i := 0; i < 3; i++ {
		require.InDelta(t, firstThreeMean, snapped[i].Perp(), 1e-9)
	}
	require.Equal(t, 50.0, snapped[3].Perp())
}

func TestJoinGroupMergesOverlappingAndAdjacent(t *testing.T) {
	edges := []Edge{
		NewHEdge(0, 10, 0, 0, Color{}),
		NewHEdge(9, 20, 0, 0, Color{}),  // overlaps the first
		NewHEdge(22, 30, 0, 0, Color{}), // within tolerance of the merged run
		NewHEdge(100, 110, 0, 0, Color{}),
	}

	joined := joinGroup(edges, 3)
	require.Len(t, joined, 2)
	require.Equal(t, 0.0, joined[0].ParallelMin())
	require.Equal(t, 30.0, joined[0].ParallelMax())
	require.Equal(t, 100.0, joined[1].ParallelMin())
}

// TestSnapAndJoinDeterministic confirms that running SnapAndJoin twice on
// the same (even shuffled-order) input yields identical output, per the
// pipeline's determinism requirement.
func TestSnapAndJoinDeterministic(t *testing.T) {
	settings := DefaultTfSettings()
	edges := []Edge{
		NewHEdge(0, 50, 10.1, 0, Color{}),
		NewHEdge(48, 100, 9.9, 0, Color{}),
		NewVEdge(0, 40, 0.2, 0, Color{}),
		NewVEdge(0, 40, 100.1, 0, Color{}),
	}
	reversed := make([]Edge, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = e
	}

	a := SnapAndJoin(edges, settings)
	b := SnapAndJoin(reversed, settings)
	require.ElementsMatch(t, a, b)
}
