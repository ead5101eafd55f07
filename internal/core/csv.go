package core

import (
	"strconv"
	"strings"
	"time"
)

// ToCSV serializes records in input order. The header is
// Date,Amount,Category,Description; the description is always quoted with
// internal quotes doubled, and embedded newlines survive inside the quoted
// field. Date, amount and category cannot contain commas or quotes by
// construction, so they are written bare. Empty input yields an empty
// string with no header.
func ToCSV(records []Expense) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Date,Amount,Category,Description")
	for _, e := range records {
		b.WriteByte('\n')
		b.WriteString(e.Date)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(e.Amount, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(string(e.Category))
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(e.Description, `"`, `""`))
		b.WriteByte('"')
	}
	return b.String()
}

// ExportFilename returns the suggested download name for an export taken at
// the given time, e.g. "expenses-export-2025-09-30.csv".
func ExportFilename(now time.Time) string {
	return "expenses-export-" + now.Format(DateLayout) + ".csv"
}
