package excel

import (
	"errors"
	"testing"

	"fileList/internal/compare"
	"fileList/internal/svn"
)

func TestWriteComparison(t *testing.T) {
	e := newFileListEditor(t)
	s := DefaultSheet
	e.SetCellValue(s, "A5", "stale")

	rows := []compare.Row{
		{
			File:   "src/a.c",
			Left:   compare.Side{URL: "https://svn/tags", Info: &svn.Info{Date: "2024-03-15 10:22:01 +0100 (Fri, 15 Mar 2024)", Revision: "105"}},
			Right:  compare.Side{URL: "https://svn/trunk", Info: &svn.Info{Date: "2024-03-18 08:00:00 +0100", Revision: "107"}},
			Status: compare.Mismatch,
		},
		{
			File:   "src/b.h",
			Left:   compare.Side{URL: "https://svn/tags", Info: &svn.Info{Date: "2024-01-02 00:00:00 +0000", Revision: "99"}},
			Right:  compare.Side{URL: "https://svn/trunk", Err: errors.New("gone")},
			Status: compare.NotFound,
		},
	}

	if _, err := e.WriteComparison(s, rows); err != nil {
		t.Fatalf("WriteComparison failed: %v", err)
	}

	all, err := e.GetAllRows(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(all))
	}

	want := [][]string{
		{"src/a.c", "2024-03-15", "https://svn/tags/src/a.c", "105", "2024-03-18", "https://svn/trunk/src/a.c", "107", "Mismatch"},
		{"src/b.h", "2024-01-02", "https://svn/tags/src/b.h", "99", NotFound, NotFound, NotFound, "Not found"},
	}
	for i, row := range want {
		for j, v := range row {
			if got := all[i+1][j]; got != v {
				t.Errorf("row %d col %d = %q, want %q", i+2, j+1, got, v)
			}
		}
	}

	ok, link, err := e.file.GetCellHyperLink(s, "C2")
	if err != nil || !ok || link != "https://svn/tags/src/a.c" {
		t.Errorf("C2 hyperlink = %v %q %v", ok, link, err)
	}
	if ok, _, _ := e.file.GetCellHyperLink(s, "F3"); ok {
		t.Error("F3 should not be a hyperlink")
	}
	if got := horizontalAlignment(t, e.file, s, "F2"); got != "left" {
		t.Errorf("F2 aligned %q, want left", got)
	}
}
