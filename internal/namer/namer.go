// Package namer derives the output file name from the header metadata of a
// source workbook.
package namer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"costingcli/internal/workday"
)

// unknownDateToken names the output when the header carries no effective date.
const unknownDateToken = "unknowndate"

// fileNameSuffix is appended to the date token to form the output file name.
const fileNameSuffix = " Costing Allocations.xlsx"

// sanitizer replaces path-hostile characters when the effective date text
// does not parse as a date and is used verbatim.
var sanitizer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

// DateToken renders the effective date as the MM_DD_YYYY file name token.
// An empty date yields the unknowndate sentinel; unparseable text is kept
// but sanitized.
func DateToken(effectiveDate string) string {
	raw := strings.TrimSpace(effectiveDate)
	if raw == "" {
		return unknownDateToken
	}

	if t, ok := workday.ParseDateValue(raw); ok {
		return t.Format("01_02_2006")
	}

	return sanitizer.Replace(raw)
}

// OutputFileName builds the output file name for the given header metadata.
func OutputFileName(meta workday.HeaderMetadata) string {
	return DateToken(meta.EffectiveDate) + fileNameSuffix
}

// OutputPath joins the output file name onto the output directory, creating
// the directory when absent.
func OutputPath(outputDir string, meta workday.HeaderMetadata) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, OutputFileName(meta))
	slog.Debug("Output path computed",
		slog.String("effective_date", meta.EffectiveDate),
		slog.String("path", path))
	return path, nil
}
