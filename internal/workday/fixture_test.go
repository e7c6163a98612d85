package workday

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixture describes a minimal Workday export workbook: a banner row, a
// header block entry, the table header at sheet row 17, and data rows below.
type fixture struct {
	headerLabel string
	headerValue string
	tableHeader []string
	rows        [][]interface{}
}

// writeFixture builds the workbook and returns its path.
func writeFixture(t *testing.T, fx fixture) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "A1", "Workday Costing Allocations"))
	if fx.headerLabel != "" {
		require.NoError(t, f.SetCellValue(sheet, "A3", fx.headerLabel))
		require.NoError(t, f.SetCellValue(sheet, "B3", fx.headerValue))
	}

	for j, name := range fx.tableHeader {
		col, err := excelize.ColumnNumberToName(j + 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, col+"17", name))
	}

	for i, row := range fx.rows {
		for j, val := range row {
			if val == nil {
				continue
			}
			col, err := excelize.ColumnNumberToName(j + 1)
			require.NoError(t, err)
			cell := fmt.Sprintf("%s%d", col, i+18)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "Costing Allocations.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

// appendHeaderEntry sets one key/value pair in an existing fixture workbook.
func appendHeaderEntry(t *testing.T, path, keyCell, key, valueCell, value string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), keyCell, key))
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), valueCell, value))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())
}

// standardHeader is the column layout of a healthy export: the first Cost
// Center column is the organization-level one, the second the
// allocation-level one.
func standardHeader() []string {
	return []string{
		"Worker", "Title", "FTE", "Start Date", "End Date",
		"Distribution Percent", "Cost Center", "Cost Center",
		"Program", "Grant", "Gift",
	}
}
