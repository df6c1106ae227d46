package pdftables

import "math"

// defaultEpsilon is used where a caller does not supply an explicit tolerance
// for bbox/point equality checks.
const defaultEpsilon = 0.01

// Point is a page-space coordinate, origin at top-left, y increasing downward.
type Point struct {
	X float64
	Y float64
}

// ApproxEqual reports whether two points are within eps on both axes.
func (p Point) ApproxEqual(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}

// BBox is an axis-aligned bounding box with X0<=X1 and Y0<=Y1.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// NewBBox builds a BBox, normalizing coordinate order.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// CenterX returns the horizontal midpoint.
func (b BBox) CenterX() float64 { return (b.X0 + b.X1) / 2 }

// CenterY returns the vertical midpoint.
func (b BBox) CenterY() float64 { return (b.Y0 + b.Y1) / 2 }

// ApproxEqual reports whether all four coordinates differ by no more than eps.
func (b BBox) ApproxEqual(o BBox, eps float64) bool {
	return math.Abs(b.X0-o.X0) <= eps &&
		math.Abs(b.Y0-o.Y0) <= eps &&
		math.Abs(b.X1-o.X1) <= eps &&
		math.Abs(b.Y1-o.Y1) <= eps
}

// Union returns the smallest BBox containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// ContainsPoint reports whether p lies within b, inclusive of the boundary,
// within eps.
func (b BBox) ContainsPoint(p Point, eps float64) bool {
	return p.X >= b.X0-eps && p.X <= b.X1+eps && p.Y >= b.Y0-eps && p.Y <= b.Y1+eps
}

// Color is an RGBA color; 3-tuple inputs are extended with A=255 on ingest.
type Color struct {
	R, G, B, A uint8
}

// unionBBoxes returns the union of a non-empty slice of BBoxes.
func unionBBoxes(boxes []BBox) BBox {
	result := boxes[0]
	for _, b := range boxes[1:] {
		result = result.Union(b)
	}
	return result
}
