package pdftables

import (
	"encoding/csv"
	"html"
	"strings"
)

// ToCSV renders a table as RFC 4180 CSV with one row per table row and one
// field per cell, empty cells rendering as empty fields. It returns an
// InvalidState error if the table's text has not been attributed yet.
func ToCSV(t Table) (string, error) {
	if !t.TextExtracted {
		return "", invalidStateErrorf("table text has not been extracted")
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	for _, row := range t.Rows {
		record := make([]string, len(row.CellIndices))
		for i, ci := range row.CellIndices {
			record[i] = t.CellText[ci]
		}
		if err := w.Write(record); err != nil {
			return "", backendErrorf("writing csv record: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", backendErrorf("flushing csv writer: %v", err)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

// ToMarkdown renders a table as a GitHub-flavored pipe table: the first row
// becomes the header, followed by a separator row of dashes, followed by
// the remaining rows. It returns an InvalidState error if the table's text
// has not been attributed yet.
func ToMarkdown(t Table) (string, error) {
	if !t.TextExtracted {
		return "", invalidStateErrorf("table text has not been extracted")
	}
	if len(t.Rows) == 0 {
		return "", nil
	}

	cols := t.NumCols
	if cols == 0 {
		cols = len(t.Rows[0].CellIndices)
	}

	rowCells := func(row TableRow) []string {
		cells := make([]string, cols)
		for i := 0; i < cols && i < len(row.CellIndices); i++ {
			cells[i] = escapeMarkdownCell(t.CellText[row.CellIndices[i]])
		}
		return cells
	}

	var lines []string
	lines = append(lines, "| "+strings.Join(rowCells(t.Rows[0]), " | ")+" |")

	sep := make([]string, cols)
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range t.Rows[1:] {
		lines = append(lines, "| "+strings.Join(rowCells(row), " | ")+" |")
	}

	return strings.Join(lines, "\n"), nil
}

// escapeMarkdownCell escapes the one character that would break the pipe
// table's column grid. Internal newlines are deliberately left alone;
// multi-line cell text renders literally, a known limitation of the pipe
// table format.
func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// ToHTML renders a table as a bare <table> element: one <tr> per row, one
// <td> per cell, cell text entity-escaped, newline-separated between the
// opening tag, each row, and the closing tag. It returns an InvalidState
// error if the table's text has not been attributed yet.
func ToHTML(t Table) (string, error) {
	if !t.TextExtracted {
		return "", invalidStateErrorf("table text has not been extracted")
	}

	var sb strings.Builder
	sb.WriteString("<table>\n")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, ci := range row.CellIndices {
			sb.WriteString("<td>")
			sb.WriteString(html.EscapeString(t.CellText[ci]))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>")

	return sb.String(), nil
}
