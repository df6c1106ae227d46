package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleAttributedTable() Table {
	table := twoByTwoTable()
	table.CellText = []string{"abc", "q", "", "w"}
	table.TextExtracted = true
	return table
}

func TestToCSVRendersRowsAndEmptyCells(t *testing.T) {
	out, err := ToCSV(sampleAttributedTable())
	require.NoError(t, err)
	require.Equal(t, "abc,q\n,w", out)
}

func TestToMarkdownRendersHeaderAndSeparator(t *testing.T) {
	out, err := ToMarkdown(sampleAttributedTable())
	require.NoError(t, err)
	require.Equal(t, "| abc | q |\n| --- | --- |\n|  | w |", out)
}

func TestToHTMLEscapesAndWrapsCells(t *testing.T) {
	table := twoByTwoTable()
	table.CellText = []string{"a < b", "q", "", "w"}
	table.TextExtracted = true

	out, err := ToHTML(table)
	require.NoError(t, err)
	require.Equal(t, "<table>\n<tr><td>a &lt; b</td><td>q</td></tr>\n<tr><td></td><td>w</td></tr>\n</table>", out)
}

func TestToMarkdownLeavesInternalNewlinesLiteral(t *testing.T) {
	table := twoByTwoTable()
	table.CellText = []string{"line1\nline2", "q", "", "w"}
	table.TextExtracted = true

	out, err := ToMarkdown(table)
	require.NoError(t, err)
	require.Equal(t, "| line1\nline2 | q |\n| --- | --- |\n|  | w |", out)
}

// fourRowTwoColGrid is the 4-row x 2-column cell layout from the
// multi-move-subpath scenario: cells [["abc","q"],["","w"],["1","2"],["3","4"]].
func fourRowTwoColGrid() []BBox {
	return []BBox{
		NewBBox(0, 0, 30, 20), NewBBox(30, 0, 60, 20),
		NewBBox(0, 20, 30, 40), NewBBox(30, 20, 60, 40),
		NewBBox(0, 40, 30, 60), NewBBox(30, 40, 60, 60),
		NewBBox(0, 60, 30, 80), NewBBox(30, 60, 60, 80),
	}
}

func fourByTwoAttributedTable() Table {
	table := buildTable(fourRowTwoColGrid(), []int{0, 1, 2, 3, 4, 5, 6, 7})
	table.CellText = []string{"abc", "q", "", "w", "1", "2", "3", "4"}
	table.TextExtracted = true
	return table
}

func TestSerializersProduceExactMultiRowStrings(t *testing.T) {
	table := fourByTwoAttributedTable()
	require.Equal(t, 4, table.NumRows)
	require.Equal(t, 2, table.NumCols)
	require.Len(t, table.Cells, 8)

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

func TestSerializersRefuseUnextractedTable(t *testing.T) {
	table := twoByTwoTable()

	_, err := ToCSV(table)
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, KindInvalidState, pe.Kind)

	_, err = ToMarkdown(table)
	require.Error(t, err)
	_, err = ToHTML(table)
	require.Error(t, err)
}
