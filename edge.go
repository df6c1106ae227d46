package pdftables

// Orientation distinguishes horizontal from vertical edges.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

// Edge is an axis-aligned line segment derived from page vector graphics.
// H-edges satisfy P1.Y == P2.Y and P1.X <= P2.X; V-edges satisfy
// P1.X == P2.X and P1.Y <= P2.Y. Equality for clustering purposes uses only
// orientation and endpoints; Width/Color are carried through for reporting
// but never compared.
type Edge struct {
	Orientation Orientation
	P1, P2      Point
	Width       float64
	Color       Color
}

// NewHEdge builds a horizontal edge, normalizing endpoint order.
func NewHEdge(x1, x2, y float64, width float64, color Color) Edge {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return Edge{
		Orientation: Horizontal,
		P1:          Point{X: x1, Y: y},
		P2:          Point{X: x2, Y: y},
		Width:       width,
		Color:       color,
	}
}

// NewVEdge builds a vertical edge, normalizing endpoint order.
func NewVEdge(y1, y2, x float64, width float64, color Color) Edge {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Edge{
		Orientation: Vertical,
		P1:          Point{X: x, Y: y1},
		P2:          Point{X: x, Y: y2},
		Width:       width,
		Color:       color,
	}
}

// Length returns the edge's extent along its own axis.
func (e Edge) Length() float64 {
	if e.Orientation == Horizontal {
		return e.P2.X - e.P1.X
	}
	return e.P2.Y - e.P1.Y
}

// Perp returns the coordinate perpendicular to the edge's axis: Y for an
// H-edge, X for a V-edge. Edges in the same snap bucket share (approximately)
// this value.
func (e Edge) Perp() float64 {
	if e.Orientation == Horizontal {
		return e.P1.Y
	}
	return e.P1.X
}

// ParallelMin and ParallelMax return the edge's extent along its own axis:
// X0/X1 for an H-edge, Y0/Y1 for a V-edge.
func (e Edge) ParallelMin() float64 {
	if e.Orientation == Horizontal {
		return e.P1.X
	}
	return e.P1.Y
}

func (e Edge) ParallelMax() float64 {
	if e.Orientation == Horizontal {
		return e.P2.X
	}
	return e.P2.Y
}

// WithPerp returns a copy of e with its perpendicular coordinate set to v,
// used by the snap pass.
func (e Edge) WithPerp(v float64) Edge {
	if e.Orientation == Horizontal {
		e.P1.Y = v
		e.P2.Y = v
	} else {
		e.P1.X = v
		e.P2.X = v
	}
	return e
}

// WithParallelRange returns a copy of e with its parallel extent set to
// [min, max], used by the join pass.
func (e Edge) WithParallelRange(min, max float64) Edge {
	if e.Orientation == Horizontal {
		e.P1.X = min
		e.P2.X = max
	} else {
		e.P1.Y = min
		e.P2.Y = max
	}
	return e
}

// BBox returns the degenerate bounding box of the edge.
func (e Edge) BBox() BBox {
	return NewBBox(e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
}
