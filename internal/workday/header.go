package workday

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Rows 2-16 of the first sheet form the key/value header block.
const (
	headerBlockFirstRow = 2
	headerBlockLastRow  = 16
)

// HeaderMetadata holds the values extracted from the header block at the top
// of a Workday export. Only the Effective Date is used; it names the output
// file.
type HeaderMetadata struct {
	EffectiveDate string
}

// ReadHeader reads the header block of the source workbook and extracts the
// Effective Date. A header block without the key is not an error; the field
// stays empty and the output namer falls back to its sentinel.
func ReadHeader(path string) (HeaderMetadata, error) {
	var meta HeaderMetadata

	f, err := excelize.OpenFile(path)
	if err != nil {
		return meta, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return meta, fmt.Errorf("failed to read sheet: %w", err)
	}

	for i := headerBlockFirstRow; i <= headerBlockLastRow && i <= len(rows); i++ {
		row := rows[i-1]

		key := EmptyCell()
		if len(row) > 0 {
			key = CellOf(row[0])
		}
		if key.IsBlank() {
			continue
		}

		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}

		// Last occurrence wins; only one is expected.
		if normalizeHeaderKey(key.String()) == "effectivedate" {
			meta.EffectiveDate = value
		}
	}

	slog.Debug("Header block read",
		slog.String("path", path),
		slog.String("effective_date", meta.EffectiveDate))

	return meta, nil
}

// normalizeHeaderKey canonicalizes a header key cell so label variants like
// "Effective Date", "effective_date" and "EffectiveDate" all match.
func normalizeHeaderKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	return key
}
