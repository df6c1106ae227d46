package pdftables

import "math"

// latticeKey rounds a point to a tolerance-stable grid cell so that points
// within a fraction of a unit of each other collide in the map, tolerant of
// floating-point jitter.
type latticeKey struct {
	x, y int64
}

const latticeGrid = 100.0 // round to 1/100 unit before keying the map

func roundToGrid(v float64) int64 {
	return int64(math.Round(v * latticeGrid))
}

func keyFor(p Point) latticeKey {
	return latticeKey{x: roundToGrid(p.X), y: roundToGrid(p.Y)}
}

// latticePoint is one intersection point together with the witness edges
// that produced it, needed by the cell enumerator to verify side coverage.
type latticePoint struct {
	Point Point
	HEdge []Edge
	VEdge []Edge
}

// lattice maps rounded coordinates to their witnessed intersection.
type lattice map[latticeKey]*latticePoint

// BuildLattice computes the intersection lattice: for every
// H-edge/V-edge pair that cross within tolerance, record a lattice point
// witnessed by both edges.
func BuildLattice(edges []Edge, settings TfSettings) lattice {
	var hEdges, vEdges []Edge
	for _, e := range edges {
		if e.Orientation == Horizontal {
			hEdges = append(hEdges, e)
		} else {
			vEdges = append(vEdges, e)
		}
	}

	xTol := settings.IntersectionXTolerance
	yTol := settings.IntersectionYTolerance

	lat := make(lattice)
	for _, h := range hEdges {
		for _, v := range vEdges {
			if v.P1.X < h.P1.X-xTol || v.P1.X > h.P2.X+xTol {
				continue
			}
			if h.P1.Y < v.P1.Y-yTol || h.P1.Y > v.P2.Y+yTol {
				continue
			}

			p := Point{X: v.P1.X, Y: h.P1.Y}
			k := keyFor(p)
			lp, ok := lat[k]
			if !ok {
				lp = &latticePoint{Point: p}
				lat[k] = lp
			}
			lp.HEdge = append(lp.HEdge, h)
			lp.VEdge = append(lp.VEdge, v)
		}
	}
	return lat
}

// pointAt looks up the lattice point at exactly p (rounded), if any.
func (l lattice) pointAt(p Point) (*latticePoint, bool) {
	lp, ok := l[keyFor(p)]
	return lp, ok
}

// hEdgeSpans reports whether some witness H-edge at y fully covers [x1, x2]
// within eps, i.e. the top/bottom side of a candidate cell is backed by a
// single continuous edge segment.
func hEdgeSpans(lp *latticePoint, x1, x2, eps float64) bool {
	for _, e := range lp.HEdge {
		if e.P1.X <= x1+eps && e.P2.X >= x2-eps {
			return true
		}
	}
	return false
}

// vEdgeSpans is the vertical analog of hEdgeSpans.
func vEdgeSpans(lp *latticePoint, y1, y2, eps float64) bool {
	for _, e := range lp.VEdge {
		if e.P1.Y <= y1+eps && e.P2.Y >= y2-eps {
			return true
		}
	}
	return false
}
