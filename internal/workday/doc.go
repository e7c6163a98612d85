// Package workday reads Workday "Costing Allocations" export workbooks and
// transforms them into the fixed nine-column layout expected by payroll.
//
// A source workbook has three regions on its first sheet: row 1 is a banner,
// rows 2-16 form a key/value header block (the Effective Date lives here),
// and row 17 is the header of the data table that runs to the end of the
// sheet.
//
// The transformation is a single pass: map each source row to an OutputRow
// using the per-field derivation rules in transform.go, drop rows with no
// identifying information, and stable-sort by cost center then last name.
// Per-cell parse failures never abort a run; they degrade to blank values.
// Only structural problems (missing required columns) are surfaced, as a
// *SchemaError the caller can present to the user.
package workday
