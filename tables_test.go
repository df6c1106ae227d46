package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fourCellGrid() []BBox {
	return []BBox{
		NewBBox(0, 0, 30, 20),
		NewBBox(30, 0, 60, 20),
		NewBBox(0, 20, 30, 40),
		NewBBox(30, 20, 60, 40),
	}
}

func TestAssembleTablesClustersAdjacentCells(t *testing.T) {
	settings := DefaultTfSettings()
	tables := AssembleTables(fourCellGrid(), settings)

	require.Len(t, tables, 1)
	require.Equal(t, 2, tables[0].NumRows)
	require.Equal(t, 2, tables[0].NumCols)
	require.Equal(t, NewBBox(0, 0, 60, 40), tables[0].BBox)
}

func TestAssembleTablesSeparatesDisjointClusters(t *testing.T) {
	settings := DefaultTfSettings()
	cells := append(fourCellGrid(), NewBBox(1000, 1000, 1030, 1020))

	tables := AssembleTables(cells, settings)
	require.Len(t, tables, 2)
}

func TestAssembleTablesExcludesSingleCellWhenDisabled(t *testing.T) {
	settings := DefaultTfSettings()
	settings.IncludeSingleCell = false

	tables := AssembleTables([]BBox{NewBBox(0, 0, 10, 10)}, settings)
	require.Empty(t, tables)
}

func TestAssembleTablesIncludesSingleCellWhenConfigured(t *testing.T) {
	settings := DefaultTfSettings()
	settings.IncludeSingleCell = true

	tables := AssembleTables([]BBox{NewBBox(0, 0, 10, 10)}, settings)
	require.Len(t, tables, 1)
}

func TestAssembleTablesFiltersByMinRowsAndColumns(t *testing.T) {
	settings := DefaultTfSettings()
	settings.MinRows = 2
	settings.MinColumns = 2

	// A single row of two cells passes min_columns but fails min_rows.
	oneRow := []BBox{NewBBox(0, 0, 30, 20), NewBBox(30, 0, 60, 20)}
	require.Empty(t, AssembleTables(oneRow, settings))

	// The full 2x2 grid satisfies both.
	require.Len(t, AssembleTables(fourCellGrid(), settings), 1)
}

func TestCellsAdjacentRequiresOverlap(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(10, 20, 20, 30) // touches a's right edge's X, but no Y overlap
	require.False(t, cellsAdjacent(a, b, defaultEpsilon))

	c := NewBBox(10, 0, 20, 10) // shares the full right edge
	require.True(t, cellsAdjacent(a, c, defaultEpsilon))
}
