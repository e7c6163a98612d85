// Package exporter serializes transformed costing allocation rows to the
// output workbook, applying the column widths and percentage display formats
// payroll expects.
package exporter
