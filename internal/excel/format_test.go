package excel

import (
	"errors"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestNormalizeDateText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-15T00:00:00", "2024-03-15"},
		{"2024-03-15 10:22:01 +0100 (Fri, 15 Mar 2024)", "2024-03-15"},
		{"2024-03-15", "2024-03-15"},
		{"N/A", "N/A"},
		{"Not found", "Not found"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDateText(tt.input); got != tt.expected {
			t.Errorf("NormalizeDateText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeDateSerial(t *testing.T) {
	got, err := NormalizeDateSerial("45366", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-15" {
		t.Errorf("Expected 2024-03-15, got %q", got)
	}

	if got, err := NormalizeDateSerial("-1", false); err == nil || got != "-1" {
		t.Errorf("Expected error and unchanged value, got %q, %v", got, err)
	}
	if got, err := NormalizeDateSerial("abc", false); err == nil || got != "abc" {
		t.Errorf("Expected error and unchanged value, got %q, %v", got, err)
	}
}

func newFileListEditor(t *testing.T) *Editor {
	t.Helper()
	e := CreateNewFile()
	t.Cleanup(func() { e.Close() })
	if err := e.PrepareFileList(DefaultSheet); err != nil {
		t.Fatalf("PrepareFileList failed: %v", err)
	}
	return e
}

func TestFormatDataRowsDates(t *testing.T) {
	e := newFileListEditor(t)
	s := DefaultSheet
	e.SetCellValue(s, "A2", "a.c")
	e.SetCellValue(s, "B2", "2024-03-15T00:00:00")
	e.SetCellValue(s, "E2", "N/A")
	e.SetCellValue(s, "A3", "b.c")
	e.SetCellValue(s, "B3", 45366)
	e.SetCellValue(s, "E3", -5)
	e.SetCellValue(s, "D3", "2024-03-15T00:00:00")

	report, err := e.FormatDataRows(s)
	if err != nil {
		t.Fatalf("FormatDataRows failed: %v", err)
	}

	expected := map[string]string{
		"B2": "2024-03-15",
		"E2": "N/A",
		"B3": "2024-03-15",
		"E3": "-5",
		// Only date columns are normalized.
		"D3": "2024-03-15T00:00:00",
	}
	for cell, want := range expected {
		got, err := e.GetCellValue(s, cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	if report.Normalized != 2 {
		t.Errorf("Expected 2 normalized cells, got %d", report.Normalized)
	}
	if len(report.Issues) != 1 || report.Issues[0].Cell != "E3" {
		t.Fatalf("Expected one issue for E3, got %+v", report.Issues)
	}
	var issue DateIssue
	if !errors.As(report.Issues[0], &issue) || issue.Err == nil {
		t.Errorf("issue has no cause: %+v", report.Issues[0])
	}
}

func TestFormatDataRowsAlignment(t *testing.T) {
	e := newFileListEditor(t)
	s := DefaultSheet
	for row := 2; row <= 4; row++ {
		for col := 1; col <= 8; col++ {
			e.SetCellValue(s, cellName(col, row), "v"+strconv.Itoa(col))
		}
	}

	if _, err := e.FormatDataRows(s); err != nil {
		t.Fatalf("FormatDataRows failed: %v", err)
	}

	for row := 2; row <= 4; row++ {
		for col := 1; col <= 8; col++ {
			cell := cellName(col, row)
			want := "center"
			if col == 3 || col == 6 {
				want = "left"
			}
			if got := horizontalAlignment(t, e.file, s, cell); got != want {
				t.Errorf("%s aligned %q, want %q", cell, got, want)
			}
		}
	}
	if got := horizontalAlignment(t, e.file, s, "C1"); got != "center" {
		t.Errorf("header alignment changed to %q", got)
	}
}

func TestFormatDataRowsEmptySheet(t *testing.T) {
	e := newFileListEditor(t)
	report, err := e.FormatDataRows(DefaultSheet)
	if err != nil {
		t.Fatalf("FormatDataRows failed: %v", err)
	}
	if report.Normalized != 0 || len(report.Issues) != 0 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestFitColumns(t *testing.T) {
	e := newFileListEditor(t)
	s := DefaultSheet
	e.SetCellValue(s, "A2", "a-rather-long-file-name-for-testing.c")
	e.SetCellValue(s, "H2", "Match")

	if err := e.FitColumns(s); err != nil {
		t.Fatalf("FitColumns failed: %v", err)
	}

	widths := map[string]float64{
		"A": float64(len("a-rather-long-file-name-for-testing.c")) + 2,
		"C": 40,
		"F": 40,
		"H": float64(len("Compare")) + 2,
	}
	for col, want := range widths {
		got, err := e.file.GetColWidth(s, col)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("column %s width %v, want %v", col, got, want)
		}
	}
}

func horizontalAlignment(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		t.Fatal(err)
	}
	style, err := f.GetStyle(id)
	if err != nil {
		t.Fatal(err)
	}
	if style.Alignment == nil {
		return ""
	}
	return style.Alignment.Horizontal
}
