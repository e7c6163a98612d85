package workday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellIsBlank(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"absent", EmptyCell(), true},
		{"empty string", CellOf(""), true},
		{"whitespace", CellOf("  \t "), true},
		{"na marker", CellOf("NA"), true},
		{"na lower", CellOf("na"), true},
		{"na slash", CellOf("N/A"), true},
		{"value", CellOf("CC0001"), false},
		{"value with na inside", CellOf("NAME"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.IsBlank())
		})
	}
}

func TestCellTrimmed(t *testing.T) {
	assert.Equal(t, "CC0001", CellOf("  CC0001  ").Trimmed())
	assert.Equal(t, "", EmptyCell().Trimmed())
}
