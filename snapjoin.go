package pdftables

import (
	"math"
	"sort"
)

// unionFind is a small disjoint-set structure with path compression and
// union by rank, standalone since katalvlaran/lvlath's own Kruskal DSU is
// private to MST construction.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// SnapAndJoin runs the two-pass snap/join procedure on a set
// of edges, independently for each orientation, and applies the post-filter.
func SnapAndJoin(edges []Edge, settings TfSettings) []Edge {
	var hEdges, vEdges []Edge
	for _, e := range edges {
		if e.Orientation == Horizontal {
			hEdges = append(hEdges, e)
		} else {
			vEdges = append(vEdges, e)
		}
	}

	hEdges = snapEdges(hEdges, settings.SnapYTolerance)
	vEdges = snapEdges(vEdges, settings.SnapXTolerance)

	hEdges = joinEdges(hEdges, settings.JoinXTolerance)
	vEdges = joinEdges(vEdges, settings.JoinYTolerance)

	result := append(hEdges, vEdges...)
	return filterByLength(result, settings.EdgeMinLength)
}

// snapEdges buckets edges whose perpendicular coordinate lies within tol of
// each other (transitively, via union-find) and assigns each bucket's mean
// perpendicular coordinate to every edge in it. Determinism: the mean is a
// function only of the bucket's membership, not of input order.
func snapEdges(edges []Edge, tol float64) []Edge {
	if len(edges) == 0 {
		return edges
	}

	uf := newUnionFind(len(edges))
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if math.Abs(edges[i].Perp()-edges[j].Perp()) <= tol {
				uf.union(i, j)
			}
		}
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i, e := range edges {
		root := uf.find(i)
		sums[root] += e.Perp()
		counts[root]++
	}

	result := make([]Edge, len(edges))
	for i, e := range edges {
		root := uf.find(i)
		mean := sums[root] / float64(counts[root])
		result[i] = e.WithPerp(mean)
	}
	return result
}

// joinEdges merges collinear edges (same perpendicular coordinate, since
// snapEdges already ran) whose parallel extents overlap or are separated by
// no more than tol. Edges are grouped by their (now snapped)
// perpendicular coordinate first, then joined within each group.
func joinEdges(edges []Edge, tol float64) []Edge {
	if len(edges) == 0 {
		return edges
	}

	groups := make(map[float64][]Edge)
	var order []float64
	for _, e := range edges {
		key := e.Perp()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	sort.Float64s(order)

	var result []Edge
	for _, key := range order {
		result = append(result, joinGroup(groups[key], tol)...)
	}
	return result
}

// joinGroup merges one perpendicular-coordinate group's edges, sorted by
// parallel coordinate, in a single left-to-right sweep (sufficient for a
// fixpoint once sorted).
func joinGroup(edges []Edge, tol float64) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ParallelMin() < sorted[j].ParallelMin()
	})

	joined := []Edge{sorted[0]}
	for _, e := range sorted[1:] {
		last := &joined[len(joined)-1]
		if e.ParallelMin() <= last.ParallelMax()+tol {
			if e.ParallelMax() > last.ParallelMax() {
				*last = last.WithParallelRange(last.ParallelMin(), e.ParallelMax())
			}
		} else {
			joined = append(joined, e)
		}
	}
	return joined
}
