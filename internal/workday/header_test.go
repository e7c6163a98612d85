package workday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader_LabelVariants(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"plain", "Effective Date"},
		{"underscored", "effective_date"},
		{"upper", "EFFECTIVE DATE"},
		{"compact", "EffectiveDate"},
		{"padded", "  Effective Date  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, fixture{
				headerLabel: tt.label,
				headerValue: "  2024-01-05  ",
				tableHeader: standardHeader(),
			})

			meta, err := ReadHeader(path)
			require.NoError(t, err)
			assert.Equal(t, "2024-01-05", meta.EffectiveDate)
		})
	}
}

func TestReadHeader_MissingKeyIsNotAnError(t *testing.T) {
	path := writeFixture(t, fixture{
		headerLabel: "Run Date",
		headerValue: "2024-01-05",
		tableHeader: standardHeader(),
	})

	meta, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Empty(t, meta.EffectiveDate)
}

func TestReadHeader_LastOccurrenceWins(t *testing.T) {
	path := writeFixture(t, fixture{
		headerLabel: "Effective Date",
		headerValue: "2024-01-05",
		tableHeader: standardHeader(),
	})

	// Append a second occurrence below the first, still inside rows 2-16.
	appendHeaderEntry(t, path, "A9", "effective date", "B9", "2024-02-06")

	meta, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-06", meta.EffectiveDate)
}

func TestReadHeader_IgnoresBannerRow(t *testing.T) {
	path := writeFixture(t, fixture{
		tableHeader: standardHeader(),
	})

	// Row 1 is the banner row and is skipped even with a matching label.
	appendHeaderEntry(t, path, "A1", "Effective Date", "B1", "1999-09-09")

	meta, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Empty(t, meta.EffectiveDate)
}

func TestReadHeader_MissingFile(t *testing.T) {
	_, err := ReadHeader("does-not-exist.xlsx")
	assert.Error(t, err)
}
