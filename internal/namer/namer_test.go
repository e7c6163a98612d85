package namer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costingcli/internal/workday"
)

func TestDateToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-01-05", "01_05_2024"},
		{"us date", "1/5/2024", "01_05_2024"},
		{"date with time", "2024-01-05 00:00:00", "01_05_2024"},
		{"excel serial", "45000", "03_15_2023"},
		{"empty", "", "unknowndate"},
		{"whitespace only", "   ", "unknowndate"},
		{"unparseable slashes", "Q1/Q2", "Q1_Q2"},
		{"unparseable mixed", `FY24\H1:draft`, "FY24_H1_draft"},
		{"unparseable plain", "sometime soon", "sometime soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateToken(tt.input))
		})
	}
}

func TestOutputFileName(t *testing.T) {
	meta := workday.HeaderMetadata{EffectiveDate: "2024-01-05"}
	assert.Equal(t, "01_05_2024 Costing Allocations.xlsx", OutputFileName(meta))

	assert.Equal(t, "unknowndate Costing Allocations.xlsx", OutputFileName(workday.HeaderMetadata{}))
}

func TestOutputPath_CreatesDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "formatted")
	meta := workday.HeaderMetadata{EffectiveDate: "2024-01-05"}

	path, err := OutputPath(outDir, meta)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "01_05_2024 Costing Allocations.xlsx"), path)

	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
