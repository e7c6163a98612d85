package workday

import "strings"

// Cell is a single spreadsheet cell that may be absent. Workday exports mark
// missing values either with an empty cell or the literal "NA"; both count
// as blank so every derivation rule shares one missing-value check.
type Cell struct {
	value   string
	present bool
}

// CellOf wraps a raw cell value read from the sheet.
func CellOf(value string) Cell {
	return Cell{value: value, present: true}
}

// EmptyCell returns an absent cell, used when a row is shorter than the
// header or a column does not exist in the source.
func EmptyCell() Cell {
	return Cell{}
}

// String returns the raw cell text, empty for absent cells.
func (c Cell) String() string {
	return c.value
}

// Trimmed returns the cell text with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.value)
}

// IsBlank reports whether the cell carries no usable value.
func (c Cell) IsBlank() bool {
	if !c.present {
		return true
	}
	t := c.Trimmed()
	return t == "" || strings.EqualFold(t, "NA") || strings.EqualFold(t, "N/A")
}
