package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// s1PathGeometry builds a single RawPath whose operator stream contains
// multiple move-to runs, one per grid line, drawing a 4-row x 2-column
// table spanning x in [0, 60] and y in [0, 80]. This is the multi-subpath
// shape a naive bbox-only path reader collapses into one box.
func s1PathGeometry() *fakeGeometry {
	lineColor := Color{A: 255}
	op := func(kind PathOpKind, x, y float64) PathOp { return PathOp{Kind: kind, Point: Point{X: x, Y: y}} }

	var ops []PathOp
	for _, y := range []float64{0, 20, 40, 60, 80} {
		ops = append(ops, op(PathMoveTo, 0, y), op(PathLineTo, 60, y))
	}
	for _, x := range []float64{0, 30, 60} {
		ops = append(ops, op(PathMoveTo, x, 0), op(PathLineTo, x, 80))
	}

	return &fakeGeometry{
		paths:  []RawPath{{Ops: ops, Width: 0.48, Color: lineColor}},
		width:  60,
		height: 80,
	}
}

// s1TextGlyphs lays out the cell text from spec scenario S1:
// [["abc","q"],["","w"],["1","2"],["3","4"]].
func s1TextGlyphs() *fakeText {
	var glyphs []Glyph
	glyphs = append(glyphs, glyphsForWord("abc", 5, 5, 15, 6)...)
	glyphs = append(glyphs, glyphsForWord("q", 35, 5, 15, 6)...)
	glyphs = append(glyphs, glyphsForWord("w", 35, 25, 35, 6)...)
	glyphs = append(glyphs, glyphsForWord("1", 5, 45, 55, 6)...)
	glyphs = append(glyphs, glyphsForWord("2", 35, 45, 55, 6)...)
	glyphs = append(glyphs, glyphsForWord("3", 5, 65, 75, 6)...)
	glyphs = append(glyphs, glyphsForWord("4", 35, 65, 75, 6)...)
	return &fakeText{glyphs: glyphs}
}

func TestExtractTablesMultiSubpathGrid(t *testing.T) {
	geo := s1PathGeometry()
	text := s1TextGlyphs()
	settings := DefaultTfSettings()

	tables := ExtractTables(geo, text, settings)
	require.Len(t, tables, 1)

	table := tables[0]
	require.Equal(t, 4, table.NumRows)
	require.Equal(t, 2, table.NumCols)
	require.Len(t, table.Cells, 8, "the empty row-2 col-0 cell is still a cell, not absent")

	csv, err := ToCSV(table)
	require.NoError(t, err)
	require.Equal(t, "abc,q\n,w\n1,2\n3,4", csv)

	md, err := ToMarkdown(table)
	require.NoError(t, err)
	require.Equal(t, "| abc | q |\n| --- | --- |\n|  | w |\n| 1 | 2 |\n| 3 | 4 |", md)

	htm, err := ToHTML(table)
	require.NoError(t, err)
	require.Equal(t, "<table>\n<tr><td>abc</td><td>q</td></tr>\n<tr><td></td><td>w</td></tr>\n<tr><td>1</td><td>2</td></tr>\n<tr><td>3</td><td>4</td></tr>\n</table>", htm)
}

// s2RuleGeometry builds 5 horizontal and 3 vertical stroked segments, in
// the reverse of top-to-bottom / left-to-right order, so ordering in the
// result reflects SnapAndJoin's own sort rather than incidentally matching
// input order.
func s2RuleGeometry() *fakeGeometry {
	color := Color{R: 0, G: 0, B: 0, A: 255}
	var segments []RawSegment
	for _, y := range []float64{504.84, 400, 300, 200, 72.24} {
		segments = append(segments, RawSegment{
			P1: Point{X: 90, Y: y}, P2: Point{X: 504.84, Y: y}, Width: 0.48, Color: color,
		})
	}
	for _, x := range []float64{90, 300, 504.84} {
		segments = append(segments, RawSegment{
			P1: Point{X: x, Y: 72.24}, P2: Point{X: x, Y: 504.84}, Width: 0.48, Color: color,
		})
	}
	return &fakeGeometry{segments: segments, width: 600, height: 600}
}

func TestSnapAndJoinOrdersTopToBottomLeftToRight(t *testing.T) {
	settings := DefaultTfSettings()
	edges := CanonicalizeEdges(s2RuleGeometry(), &fakeText{}, settings)
	edges = SnapAndJoin(edges, settings)

	var hEdges, vEdges []Edge
	for _, e := range edges {
		if e.Orientation == Horizontal {
			hEdges = append(hEdges, e)
		} else {
			vEdges = append(vEdges, e)
		}
	}
	require.Len(t, hEdges, 5)
	require.Len(t, vEdges, 3)

	// joinEdges groups by Perp and visits groups in ascending order: Y
	// ascending is top-to-bottom, X ascending is left-to-right, in
	// page-space's origin-top-left convention.
	first := hEdges[0]
	require.InDelta(t, 90.0, first.P1.X, 1e-9)
	require.InDelta(t, 504.84, first.P2.X, 1e-9)
	require.InDelta(t, 72.24, first.P1.Y, 1e-9)
	require.InDelta(t, 0.48, first.Width, 1e-9)
	require.Equal(t, Color{R: 0, G: 0, B: 0, A: 255}, first.Color)
}

// s3FilterCells builds four independent candidate groupings: a lone cell,
// a 1x2 row, a 2x1 column, and a 2x2 block, each isolated far enough apart
// that AssembleTables never merges two groupings into one.
func s3FilterCells() []BBox {
	var cells []BBox
	// single-cell grouping
	cells = append(cells, NewBBox(0, 0, 20, 20))
	// 1x2 grouping (one row, two columns)
	cells = append(cells, NewBBox(100, 0, 120, 20), NewBBox(120, 0, 140, 20))
	// 2x1 grouping (two rows, one column)
	cells = append(cells, NewBBox(200, 0, 220, 20), NewBBox(200, 20, 220, 40))
	// 2x2 grouping
	cells = append(cells,
		NewBBox(300, 0, 320, 20), NewBBox(320, 0, 340, 20),
		NewBBox(300, 20, 320, 40), NewBBox(320, 20, 340, 40),
	)
	return cells
}

func TestAssembleTablesFiltersByDefaultSettings(t *testing.T) {
	settings := DefaultTfSettings()
	tables := AssembleTables(s3FilterCells(), settings)
	require.Len(t, tables, 4)
}

func TestAssembleTablesFiltersExcludeSingleCell(t *testing.T) {
	settings := DefaultTfSettings()
	settings.IncludeSingleCell = false
	tables := AssembleTables(s3FilterCells(), settings)
	require.Len(t, tables, 3)
}

func TestAssembleTablesFiltersMinColumns(t *testing.T) {
	settings := DefaultTfSettings()
	settings.MinColumns = 2
	tables := AssembleTables(s3FilterCells(), settings)
	require.Len(t, tables, 2)
}

func TestAssembleTablesFiltersMinRowsAndMinColumns(t *testing.T) {
	settings := DefaultTfSettings()
	settings.MinRows = 2
	settings.MinColumns = 2
	tables := AssembleTables(s3FilterCells(), settings)
	require.Len(t, tables, 1)
	require.Equal(t, 2, tables[0].NumRows)
	require.Equal(t, 2, tables[0].NumCols)
}

// TestOpenDocumentNonexistentPathIsNotFound covers the NotFound half of
// scenario S4 without a real pdfium backend: a path that never resolves
// must surface NotFound rather than AuthFailed or a generic BackendError.
func TestOpenDocumentNonexistentPathIsNotFound(t *testing.T) {
	_, err := OpenDocument("/nonexistent/path/does-not-exist.pdf", "")
	require.Error(t, err)
	var pdfErr *Error
	require.ErrorAs(t, err, &pdfErr)
	require.Equal(t, KindNotFound, pdfErr.Kind)
}
