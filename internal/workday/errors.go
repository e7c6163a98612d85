package workday

import (
	"fmt"
	"strings"
)

// SchemaError reports a source table whose layout no longer matches the
// expected Workday export. It is the only error surfaced from the transform;
// the driver presents it to the user and aborts without writing output.
type SchemaError struct {
	// Missing lists the required columns absent from the table header.
	// Empty when the problem is the Cost Center column instead.
	Missing []string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// NewMissingColumnsError builds the schema error for absent required columns.
func NewMissingColumnsError(missing []string) *SchemaError {
	return &SchemaError{
		Missing: missing,
		Message: "the excel file layout has changed; missing columns",
	}
}

// NewNoCostCenterError builds the schema error for a table with no Cost
// Center column at all.
func NewNoCostCenterError() *SchemaError {
	return &SchemaError{Message: "no Cost Center column found"}
}
