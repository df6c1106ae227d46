package pdftables

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// TableRow is one row of a table: the cell indices (into Table.Cells) that
// belong to it, left to right, plus the row's vertical extent.
type TableRow struct {
	CellIndices []int
	Top, Bottom float64
}

// Table is a connected cluster of cells assembled by adjacency, together
// with its inferred row/column structure.
type Table struct {
	BBox  BBox
	Cells []BBox
	Rows  []TableRow

	// NumRows and NumCols are the inferred grid dimensions.
	NumRows, NumCols int

	// TextExtracted is set by AttributeText once cell content has been
	// attributed; serializers refuse to run while it is false.
	TextExtracted bool
	CellText      []string // parallel to Cells, populated by AttributeText
}

// AssembleTables clusters cells into tables by adjacency, infers each
// table's row/column structure, and applies the inclusion filters below.
// Cells sharing a side within settings' tolerances are adjacent;
// connected components of the adjacency graph become tables.
func AssembleTables(cells []BBox, settings TfSettings) []Table {
	if len(cells) == 0 {
		return nil
	}

	eps := maxFloat(settings.SnapXTolerance, settings.SnapYTolerance)
	if eps == 0 {
		eps = defaultEpsilon
	}

	g := core.NewGraph()
	for i := range cells {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			if cellsAdjacent(cells[i], cells[j], eps) {
				_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0)
			}
		}
	}

	visited := make(map[string]bool, len(cells))
	var components [][]int
	for i := range cells {
		id := strconv.Itoa(i)
		if visited[id] {
			continue
		}
		result, err := bfs.BFS(g, id)
		if err != nil {
			// A vertex with no edges still forms its own singleton
			// component; BFS only fails on malformed input, which
			// AssembleTables never constructs.
			components = append(components, []int{i})
			visited[id] = true
			continue
		}
		idxs := make([]int, 0, len(result.Order))
		for _, vid := range result.Order {
			if visited[vid] {
				continue
			}
			visited[vid] = true
			n, _ := strconv.Atoi(vid)
			idxs = append(idxs, n)
		}
		components = append(components, idxs)
	}

	var tables []Table
	for _, idxs := range components {
		t := buildTable(cells, idxs)
		if !passesFilters(t, settings) {
			continue
		}
		tables = append(tables, t)
	}

	sort.Slice(tables, func(i, j int) bool {
		if tables[i].BBox.Y0 != tables[j].BBox.Y0 {
			return tables[i].BBox.Y0 < tables[j].BBox.Y0
		}
		return tables[i].BBox.X0 < tables[j].BBox.X0
	})
	return tables
}

// cellsAdjacent reports whether two cell rectangles share a side: either a
// vertical edge (one's right meets the other's left, with overlapping
// vertical extent) or a horizontal edge (one's bottom meets the other's
// top, with overlapping horizontal extent), both within eps.
func cellsAdjacent(a, b BBox, eps float64) bool {
	shareVerticalEdge := (abs(a.X1-b.X0) <= eps || abs(b.X1-a.X0) <= eps) &&
		intervalsOverlap(a.Y0, a.Y1, b.Y0, b.Y1, eps)
	shareHorizontalEdge := (abs(a.Y1-b.Y0) <= eps || abs(b.Y1-a.Y0) <= eps) &&
		intervalsOverlap(a.X0, a.X1, b.X0, b.X1, eps)
	return shareVerticalEdge || shareHorizontalEdge
}

func intervalsOverlap(a0, a1, b0, b1, eps float64) bool {
	return a0 < b1+eps && b0 < a1+eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// buildTable computes a table's bbox and row/column structure from the
// subset of cells named by idxs: rows are inferred by clustering cells
// whose vertical extents overlap into the same row, rows are sorted
// top-to-bottom and cells within a row left-to-right, and the column
// count is the most cells any row contains.
func buildTable(cells []BBox, idxs []int) Table {
	sort.Ints(idxs)

	memberBoxes := make([]BBox, len(idxs))
	for i, ci := range idxs {
		memberBoxes[i] = cells[ci]
	}
	bbox := unionBBoxes(memberBoxes)

	// From here on, work in terms of local indices into memberBoxes (and
	// so into Table.Cells), not the original cells slice.
	type rowAcc struct {
		indices     []int
		top, bottom float64
	}
	var rows []rowAcc
	for li, c := range memberBoxes {
		placed := false
		for r := range rows {
			// A negative tolerance keeps rows that merely touch apart.
			if intervalsOverlap(c.Y0, c.Y1, rows[r].top, rows[r].bottom, -defaultEpsilon) {
				rows[r].indices = append(rows[r].indices, li)
				if c.Y0 < rows[r].top {
					rows[r].top = c.Y0
				}
				if c.Y1 > rows[r].bottom {
					rows[r].bottom = c.Y1
				}
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, rowAcc{indices: []int{li}, top: c.Y0, bottom: c.Y1})
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].top < rows[j].top })

	tableRows := make([]TableRow, len(rows))
	numCols := 0
	for i, r := range rows {
		sort.Slice(r.indices, func(a, b int) bool {
			return memberBoxes[r.indices[a]].X0 < memberBoxes[r.indices[b]].X0
		})
		tableRows[i] = TableRow{CellIndices: r.indices, Top: r.top, Bottom: r.bottom}
		if len(r.indices) > numCols {
			numCols = len(r.indices)
		}
	}

	return Table{
		BBox:    bbox,
		Cells:   memberBoxes,
		Rows:    tableRows,
		NumRows: len(tableRows),
		NumCols: numCols,
	}
}

// passesFilters applies the inclusion filters in order:
// single-cell exclusion, then minimum row count, then minimum column count.
func passesFilters(t Table, settings TfSettings) bool {
	if !settings.IncludeSingleCell && len(t.Cells) <= 1 {
		return false
	}
	if t.NumRows < settings.MinRows {
		return false
	}
	if t.NumCols < settings.MinColumns {
		return false
	}
	return true
}
