package workday

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// RequiredColumns are the data table columns that must be present, in
// addition to at least one Cost Center column.
var RequiredColumns = []string{"Worker", "Title", "FTE", "Start Date", "End Date", "Distribution Percent"}

// budgetColumns are checked in priority order for the budget number.
var budgetColumns = []string{"Program", "Grant", "Gift"}

// costCenterPattern matches the short cost center code inside the longer
// Workday cost center string, e.g. "CC0075".
var costCenterPattern = regexp.MustCompile(`(?i)\bCC\d+\b`)

// OutputRow is one row of the formatted output, in the fixed column order
// payroll expects.
type OutputRow struct {
	CostCenter          string
	LastName            string
	FirstName           string
	Title               string
	FTE                 Fraction
	StartDate           string
	EndDate             string
	DistributionPercent Fraction
	Budget              string
}

// Fraction is an optional fractional value in the unit interval convention:
// FTE and Distribution Percent land here as 0.5 for "50%".
type Fraction struct {
	value float64
	valid bool
}

// FractionOf wraps a parsed fractional value.
func FractionOf(v float64) Fraction {
	return Fraction{value: v, valid: true}
}

// Valid reports whether the fraction holds a value.
func (f Fraction) Valid() bool {
	return f.valid
}

// Value returns the fractional value, zero when blank.
func (f Fraction) Value() float64 {
	return f.value
}

// Transform maps the raw table into output rows: required-column check,
// per-row field derivation, identifying-information filter, then a stable
// sort by cost center and last name.
func Transform(table *RawTable) ([]OutputRow, error) {
	var missing []string
	for _, name := range RequiredColumns {
		if !table.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, NewMissingColumnsError(missing)
	}

	if !table.HasColumn("Cost Center") {
		return nil, NewNoCostCenterError()
	}

	rows := make([]OutputRow, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		row := deriveRow(table, i)
		if row.CostCenter == "" && row.FirstName == "" && row.LastName == "" {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CostCenter != rows[j].CostCenter {
			return rows[i].CostCenter < rows[j].CostCenter
		}
		return rows[i].LastName < rows[j].LastName
	})

	slog.Info("Table transformed",
		slog.Int("source_rows", table.Len()),
		slog.Int("output_rows", len(rows)))

	return rows, nil
}

// deriveRow applies the per-field derivation rules to one source row.
func deriveRow(table *RawTable, i int) OutputRow {
	first, last := SplitWorkerName(textOrEmpty(table.Cell(i, "Worker")))

	return OutputRow{
		CostCenter:          pickCostCenter(table, i),
		LastName:            last,
		FirstName:           first,
		Title:               textOrEmpty(table.Cell(i, "Title")),
		FTE:                 ParseFraction(table.Cell(i, "FTE")),
		StartDate:           formatDateCell(table.Cell(i, "Start Date")),
		EndDate:             formatDateCell(table.Cell(i, "End Date")),
		DistributionPercent: ParseFraction(table.Cell(i, "Distribution Percent")),
		Budget:              extractBudget(table, i),
	}
}

// pickCostCenter extracts the cost center code. When the export carries both
// Cost Center columns, the second (allocation-level) one wins and the first
// (organization-level) one is only a fallback. The precedence is silent on
// conflict; that matches the upstream convention.
func pickCostCenter(table *RawTable, i int) string {
	if table.ColumnCount("Cost Center") > 1 {
		if code := ExtractCostCenterCode(table.CellAt(i, "Cost Center", 1).String()); code != "" {
			return code
		}
	}
	return ExtractCostCenterCode(table.Cell(i, "Cost Center").String())
}

// ExtractCostCenterCode pulls the short "CC"+digits code out of a longer
// cost center string, upper-cased, or "" when no code is present.
func ExtractCostCenterCode(s string) string {
	match := costCenterPattern.FindString(strings.TrimSpace(s))
	return strings.ToUpper(match)
}

// SplitWorkerName splits a Workday Worker cell into (first, last).
//
// "Last, First Middle" and "First Middle Last" are both handled; a single
// bare token is taken as a first name.
func SplitWorkerName(s string) (first, last string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}

	if strings.Contains(s, ",") {
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			return "", ""
		}
		last = parts[0]
		if len(parts) >= 2 {
			first = strings.Fields(parts[1])[0]
		}
		return first, last
	}

	tokens := strings.Fields(s)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[0], tokens[len(tokens)-1]
	}
}

// ParseFraction converts a percentage-or-fraction cell like "50.%", "0.75"
// or "100" into a Fraction. Values above 1 are read as percentages and
// divided by 100; 1 and below are taken as already fractional. Blank or
// non-numeric cells yield an invalid Fraction.
func ParseFraction(c Cell) Fraction {
	if c.IsBlank() {
		return Fraction{}
	}

	s := strings.ReplaceAll(c.Trimmed(), "%", "")
	s = stripNonNumeric(s)
	if s == "" {
		return Fraction{}
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fraction{}
	}

	if val > 1 {
		val /= 100
	}
	return FractionOf(val)
}

// stripNonNumeric drops every character that is not a digit, dot or minus.
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// textOrEmpty returns the trimmed cell text, treating blank markers as "".
func textOrEmpty(c Cell) string {
	if c.IsBlank() {
		return ""
	}
	return c.Trimmed()
}

// extractBudget takes the budget number from the first non-empty of the
// Program, Grant and Gift columns, keeping only its first token.
func extractBudget(table *RawTable, i int) string {
	for _, name := range budgetColumns {
		if !table.HasColumn(name) {
			continue
		}
		c := table.Cell(i, name)
		if c.IsBlank() {
			continue
		}
		return strings.Fields(c.Trimmed())[0]
	}
	return ""
}
