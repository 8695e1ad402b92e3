package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fileList/internal/config"
	"fileList/internal/svn"

	"github.com/xuri/excelize/v2"
)

type stubSource struct{}

func (stubSource) List(ctx context.Context, url string) ([]string, error) {
	return []string{"src/", "src/a.c", "src/b.txt"}, nil
}

func (stubSource) Info(ctx context.Context, url, file string) (svn.Info, error) {
	return svn.Info{Date: "2024-03-15 10:22:01 +0100", Revision: "105"}, nil
}

func TestCompareWritesWorkbookAndReport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	path := filepath.Join(dir, "FileList.xlsm")
	reportPath := filepath.Join(dir, "report.json")

	if err := Build(cfg, path); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	summary, err := Compare(context.Background(), cfg, CompareOptions{
		Path:       path,
		URL1:       "https://svn/tags",
		URL2:       "https://svn/trunk",
		ReportPath: reportPath,
		Source:     stubSource{},
		Now:        func() time.Time { return time.Unix(0, 0) },
	})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if summary.Total != 1 || summary.Match != 1 {
		t.Errorf("unexpected summary %+v", summary)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for cell, want := range map[string]string{"A2": "src/a.c", "B2": "2024-03-15", "D2": "105", "H2": "Match"} {
		if got, _ := f.GetCellValue(cfg.Workbook.Sheet, cell); got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestNewInjector(t *testing.T) {
	cfg := config.Default()
	in := NewInjector(cfg)
	if in.Module != "FileListCompare" || in.Button.Name != "FileListCompareButton" {
		t.Errorf("unexpected injector %+v", in)
	}
	if in.Params.Procedure != "CompareVersions" || in.Button.Width != 100 {
		t.Errorf("unexpected params %+v / %+v", in.Params, in.Button)
	}
}
