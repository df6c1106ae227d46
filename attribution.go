package pdftables

import (
	"sort"
	"strings"
)

// AttributeText assigns each word to the cell whose bbox contains the
// word's center point, grouping words within a cell into lines (a new line
// starts whenever a word's top is more than lineGapTolerance below the
// bottom of the line so far, mirroring a visual line break) and joining
// lines with newlines and words within a line with single spaces. A word
// whose center falls in no cell is dropped. TextExtracted is set on every
// returned table once attribution has run.
func AttributeText(table Table, words []Word, settings TfSettings) Table {
	cellText := make([]string, len(table.Cells))
	buckets := make([][]Word, len(table.Cells))

	xTol := settings.TextXTolerance
	yTol := settings.TextYTolerance

	for _, w := range words {
		cx, cy := w.BBox.CenterX(), w.BBox.CenterY()
		for i, cell := range table.Cells {
			if cx >= cell.X0-xTol && cx <= cell.X1+xTol && cy >= cell.Y0-yTol && cy <= cell.Y1+yTol {
				buckets[i] = append(buckets[i], w)
				break
			}
		}
	}

	const lineGapTolerance = 2.0
	for i, bucket := range buckets {
		cellText[i] = joinCellWords(bucket, lineGapTolerance, settings.NeedStrip)
	}

	table.CellText = cellText
	table.TextExtracted = true
	return table
}

// joinCellWords lays a cell's words out top-to-bottom, left-to-right into
// lines and joins them: words within a line separated by a single space,
// lines separated by a newline.
func joinCellWords(words []Word, lineGapTolerance float64, needStrip bool) string {
	if len(words) == 0 {
		return ""
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var lines [][]Word
	var current []Word
	lastBottom := 0.0
	for _, w := range sorted {
		if len(current) == 0 {
			current = []Word{w}
			lastBottom = w.BBox.Y1
			continue
		}
		if w.BBox.Y0-lastBottom > lineGapTolerance {
			lines = append(lines, current)
			current = []Word{w}
			lastBottom = w.BBox.Y1
			continue
		}
		current = append(current, w)
		if w.BBox.Y1 > lastBottom {
			lastBottom = w.BBox.Y1
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	lineStrs := make([]string, len(lines))
	for i, line := range lines {
		sort.SliceStable(line, func(a, b int) bool { return line[a].BBox.X0 < line[b].BBox.X0 })
		texts := make([]string, len(line))
		for j, w := range line {
			texts[j] = w.Text
		}
		lineStrs[i] = strings.Join(texts, " ")
	}

	result := strings.Join(lineStrs, "\n")
	if needStrip {
		result = strings.TrimSpace(result)
	}
	return result
}
