package pdftables

// fakeGeometry is a synthetic PageGeometry for tests that don't need a real
// PDF backend.
type fakeGeometry struct {
	rects    []RawRect
	segments []RawSegment
	paths    []RawPath
	width    float64
	height   float64
}

func (f *fakeGeometry) Rects() []RawRect       { return f.rects }
func (f *fakeGeometry) Segments() []RawSegment { return f.segments }
func (f *fakeGeometry) Paths() []RawPath       { return f.paths }
func (f *fakeGeometry) PageWidth() float64     { return f.width }
func (f *fakeGeometry) PageHeight() float64    { return f.height }

// fakeText is a synthetic PageText for tests.
type fakeText struct {
	glyphs []Glyph
}

func (f *fakeText) Glyphs() []Glyph { return f.glyphs }

// glyphsForWord builds one upright glyph per rune of s, laid out left to
// right starting at (x0, top), each glyph advance wide and (bottom-top)
// tall, for building synthetic text fixtures.
func glyphsForWord(s string, x0, top, bottom, advance float64) []Glyph {
	var glyphs []Glyph
	x := x0
	for _, r := range s {
		glyphs = append(glyphs, Glyph{
			Text:    r,
			Box:     NewBBox(x, top, x+advance, bottom),
			Upright: true,
		})
		x += advance
	}
	return glyphs
}
