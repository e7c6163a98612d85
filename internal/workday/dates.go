package workday

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts lists the textual date shapes seen in Workday exports plus the
// short formats excelize renders for date-styled cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"01-02-2006",
	"2-Jan-06",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// maxExcelSerial bounds serial-number interpretation to the year 9999,
// matching the range excelize itself accepts.
const maxExcelSerial = 2958465

// ParseDateValue interprets a cell value as a calendar date. It accepts
// Excel date-serial numbers as well as common date text, and reports false
// when the value is not recognizably a date.
func ParseDateValue(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < 1 || serial > maxExcelSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// formatDateCell renders a date cell as MM/DD/YYYY, or blank when the cell
// is missing or unparseable.
func formatDateCell(c Cell) string {
	if c.IsBlank() {
		return ""
	}
	t, ok := ParseDateValue(c.Trimmed())
	if !ok {
		return ""
	}
	return t.Format("01/02/2006")
}
