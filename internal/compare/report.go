package compare

import (
	"encoding/json"
	"os"
	"time"

	"fileList/internal/svn"
)

// Report is the JSON form of a comparison run.
type Report struct {
	GeneratedAt time.Time   `json:"generated_at"`
	URL1        string      `json:"url1"`
	URL2        string      `json:"url2"`
	Summary     Summary     `json:"summary"`
	Files       []ReportRow `json:"files"`
}

type ReportRow struct {
	File   string     `json:"file"`
	Status Status     `json:"status"`
	Left   ReportSide `json:"left"`
	Right  ReportSide `json:"right"`
}

type ReportSide struct {
	Info  *svn.Info `json:"info,omitempty"`
	Error string    `json:"error,omitempty"`
}

func NewReport(url1, url2 string, rows []Row, now time.Time) *Report {
	r := &Report{
		GeneratedAt: now,
		URL1:        url1,
		URL2:        url2,
		Summary:     Summarize(rows),
		Files:       make([]ReportRow, 0, len(rows)),
	}
	for _, row := range rows {
		r.Files = append(r.Files, ReportRow{
			File:   row.File,
			Status: row.Status,
			Left:   reportSide(row.Left),
			Right:  reportSide(row.Right),
		})
	}
	return r
}

func reportSide(s Side) ReportSide {
	rs := ReportSide{Info: s.Info}
	if s.Err != nil {
		rs.Error = s.Err.Error()
	}
	return rs
}

// SaveToFile writes the report as indented JSON.
func (r *Report) SaveToFile(filepath string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
