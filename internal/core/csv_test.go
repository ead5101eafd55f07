package core

import (
	enccsv "encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestToCSVEmpty(t *testing.T) {
	if got := ToCSV(nil); got != "" {
		t.Fatalf("empty input must yield empty string, got %q", got)
	}
}

func TestToCSVFormat(t *testing.T) {
	records := []Expense{
		{Date: "2025-09-15", Amount: 34.99, Category: Food, Description: "Lunch"},
		{Date: "2025-09-01", Amount: 210, Category: Bills, Description: `He said "hi"`},
	}
	got := ToCSV(records)
	want := "Date,Amount,Category,Description\n" +
		`2025-09-15,34.99,Food,"Lunch"` + "\n" +
		`2025-09-01,210,Bills,"He said ""hi"""`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToCSVRoundTrip(t *testing.T) {
	records := []Expense{
		{Date: "2025-09-15", Amount: 34.99, Category: Food, Description: `He said "hi"`},
		{Date: "2025-09-14", Amount: 7.5, Category: Other, Description: "line one\nline two"},
		{Date: "2025-09-13", Amount: 12, Category: Shopping, Description: "commas, everywhere, here"},
	}

	parsed, err := enccsv.NewReader(strings.NewReader(ToCSV(records))).ReadAll()
	if err != nil {
		t.Fatalf("generated CSV should parse cleanly: %v", err)
	}
	if len(parsed) != len(records)+1 {
		t.Fatalf("got %d rows, want %d", len(parsed), len(records)+1)
	}
	for i, e := range records {
		row := parsed[i+1]
		if row[0] != e.Date || row[2] != string(e.Category) || row[3] != e.Description {
			t.Fatalf("row %d: got %v", i, row)
		}
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 9, 30, 18, 0, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "expenses-export-2025-09-30.csv" {
		t.Fatalf("got %q", got)
	}
}
