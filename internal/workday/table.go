package workday

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// tableHeaderRow is the 1-indexed sheet row carrying the data table header.
// Workday always emits it at row 17, below the metadata block.
const tableHeaderRow = 17

// RawTable is the data region of a source workbook: the header row mapped to
// column indexes (duplicate names keep every occurrence, in sheet order) and
// the data rows below it, with fully blank rows already dropped.
type RawTable struct {
	columns map[string][]int
	rows    [][]string
}

// ReadTable reads the data table of the source workbook. A sheet too short
// to contain the header row yields an empty table; the transformer then
// reports every required column as missing.
func ReadTable(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	table := &RawTable{columns: make(map[string][]int)}
	if len(rows) < tableHeaderRow {
		slog.Warn("Sheet has no data table header row",
			slog.String("path", path),
			slog.Int("row_count", len(rows)))
		return table, nil
	}

	for j, name := range rows[tableHeaderRow-1] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		table.columns[name] = append(table.columns[name], j)
	}

	for _, row := range rows[tableHeaderRow:] {
		if rowIsBlank(row) {
			continue
		}
		table.rows = append(table.rows, row)
	}

	slog.Debug("Data table read",
		slog.String("path", path),
		slog.Int("column_count", len(table.columns)),
		slog.Int("row_count", len(table.rows)))

	return table, nil
}

// HasColumn reports whether the table header contains the named column.
func (t *RawTable) HasColumn(name string) bool {
	return len(t.columns[name]) > 0
}

// ColumnCount returns how many columns share the given header name.
func (t *RawTable) ColumnCount(name string) int {
	return len(t.columns[name])
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	return len(t.rows)
}

// Cell returns the cell in the given data row for the first column with the
// given header name. Absent columns and short rows yield an empty cell.
func (t *RawTable) Cell(row int, name string) Cell {
	return t.CellAt(row, name, 0)
}

// CellAt is Cell for the nth column sharing the header name, for sources
// that repeat a column (the duplicated Cost Center column).
func (t *RawTable) CellAt(row int, name string, occurrence int) Cell {
	idxs := t.columns[name]
	if occurrence >= len(idxs) || row < 0 || row >= len(t.rows) {
		return EmptyCell()
	}
	j := idxs[occurrence]
	if j >= len(t.rows[row]) {
		return EmptyCell()
	}
	return CellOf(t.rows[row][j])
}

// rowIsBlank reports whether every cell in the row is blank.
func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if !CellOf(cell).IsBlank() {
			return false
		}
	}
	return true
}
