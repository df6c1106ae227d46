package pdftables

import "github.com/ivanvanderbyl/pdftables/internal/pdfium"

// backendPage adapts an internal/pdfium.Page (which knows nothing about
// this package, to avoid an import cycle) into PageGeometry and PageText.
type backendPage struct {
	raw *pdfium.Page
}

func (b backendPage) Rects() []RawRect {
	raw := b.raw.Rects()
	if raw == nil {
		return nil
	}
	out := make([]RawRect, len(raw))
	for i, r := range raw {
		out[i] = RawRect{BBox: NewBBox(r.X0, r.Y0, r.X1, r.Y1), Color: convertColor(r.Color)}
	}
	return out
}

func (b backendPage) Segments() []RawSegment {
	raw := b.raw.Segments()
	if raw == nil {
		return nil
	}
	out := make([]RawSegment, len(raw))
	for i, s := range raw {
		out[i] = RawSegment{
			P1:    Point{X: s.X0, Y: s.Y0},
			P2:    Point{X: s.X1, Y: s.Y1},
			Width: s.Width,
			Color: convertColor(s.Color),
		}
	}
	return out
}

func (b backendPage) Paths() []RawPath {
	raw := b.raw.Paths()
	if raw == nil {
		return nil
	}
	out := make([]RawPath, len(raw))
	for i, p := range raw {
		ops := make([]PathOp, len(p.Ops))
		for j, op := range p.Ops {
			ops[j] = PathOp{Kind: PathOpKind(op.Kind), Point: Point{X: op.X, Y: op.Y}}
		}
		out[i] = RawPath{Ops: ops, Width: p.Width, Color: convertColor(p.Color)}
	}
	return out
}

func (b backendPage) PageWidth() float64  { return b.raw.PageWidth() }
func (b backendPage) PageHeight() float64 { return b.raw.PageHeight() }

func (b backendPage) Glyphs() []Glyph {
	raw := b.raw.Glyphs()
	out := make([]Glyph, len(raw))
	for i, g := range raw {
		out[i] = Glyph{
			Text:     g.Text,
			Box:      NewBBox(g.X0, g.Y0, g.X1, g.Y1),
			FontSize: g.FontSize,
			Rotation: g.Rotation,
			Upright:  g.Upright,
		}
	}
	return out
}

func convertColor(c pdfium.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
