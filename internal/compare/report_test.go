package compare

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fileList/internal/svn"
)

func TestReportSaveToFile(t *testing.T) {
	rows := []Row{
		{
			File:   "a.c",
			Left:   Side{URL: "u1", Info: &svn.Info{Date: "2024-03-15", Revision: "105"}},
			Right:  Side{URL: "u2", Err: svn.ErrNoInfo},
			Status: NotFound,
		},
	}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := NewReport("u1", "u2", rows, now).SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Summary Summary `json:"summary"`
		Files   []struct {
			File   string `json:"file"`
			Status string `json:"status"`
			Right  struct {
				Error string `json:"error"`
			} `json:"right"`
		} `json:"files"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Summary.NotFound != 1 {
		t.Errorf("unexpected summary %+v", decoded.Summary)
	}
	if len(decoded.Files) != 1 || decoded.Files[0].Status != "Not found" {
		t.Fatalf("unexpected files %+v", decoded.Files)
	}
	if decoded.Files[0].Right.Error != svn.ErrNoInfo.Error() {
		t.Errorf("error text not kept: %q", decoded.Files[0].Right.Error)
	}
}
