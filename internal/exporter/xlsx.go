package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"costingcli/internal/workday"
)

// SheetName is the single sheet written to the output workbook.
const SheetName = "Costing Allocations"

// Headers are the output columns, in the fixed order payroll expects.
var Headers = []string{
	"Cost Center",
	"Last Name",
	"First Name",
	"Title",
	"FTE",
	"Start Date",
	"End Date",
	"Distribution Percent",
	"Budget",
}

// columnWidths are the display widths per column, index-aligned with Headers.
var columnWidths = []float64{12, 18, 18, 35, 10, 12, 12, 20, 22}

// Columns E and H hold the fractional FTE and Distribution Percent values.
const (
	fteColumn          = "E"
	distributionColumn = "H"
)

// XLSXWriter writes formatted costing allocation workbooks
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// Write serializes the output rows to a new workbook at path: one sheet, a
// header row, fixed column widths, and a 0.00% display format on the FTE and
// Distribution Percent columns. Blank fractions stay empty cells.
func (w *XLSXWriter) Write(path string, rows []workday.OutputRow) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	for j, name := range Headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}

	for i, row := range rows {
		if err := w.writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	for j, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", j+1, err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	// Built-in number format 10 is "0.00%".
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return fmt.Errorf("failed to create percent style: %w", err)
	}
	for _, col := range []string{fteColumn, distributionColumn} {
		if err := f.SetColStyle(SheetName, col, percentStyle); err != nil {
			return fmt.Errorf("failed to style column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("Workbook written",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))

	return nil
}

// writeRow writes one output row at the given 1-indexed sheet row.
func (w *XLSXWriter) writeRow(f *excelize.File, sheetRow int, row workday.OutputRow) error {
	values := []interface{}{
		row.CostCenter,
		row.LastName,
		row.FirstName,
		row.Title,
		fractionValue(row.FTE),
		row.StartDate,
		row.EndDate,
		fractionValue(row.DistributionPercent),
		row.Budget,
	}

	for j, val := range values {
		if val == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(j+1, sheetRow)
		if err != nil {
			return fmt.Errorf("failed to name cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, val); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	return nil
}

// fractionValue unwraps a fraction for the sheet, nil for blanks so the cell
// is left empty rather than written as zero.
func fractionValue(fr workday.Fraction) interface{} {
	if !fr.Valid() {
		return nil
	}
	return fr.Value()
}
