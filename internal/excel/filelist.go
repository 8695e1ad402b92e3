package excel

import (
	"fmt"

	"fileList/internal/logger"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet the file list lives on.
const DefaultSheet = "FileList"

const (
	headerRowHeight = 30
	pathColumnWidth = 40
)

// Column describes one column of the file list.
type Column struct {
	Label string
	// Width of zero leaves the column at the sheet default.
	Width float64
	Align string
}

// 1-based column numbers of the file list.
const (
	colFile      = 1
	colDate1     = 2
	colPath1     = 3
	colRevision1 = 4
	colDate2     = 5
	colPath2     = 6
	colRevision2 = 7
	colCompare   = 8
)

// FileListColumns is the fixed header of the file list, A through H.
var FileListColumns = []Column{
	{Label: "Files from Package_TAGS_Main", Width: 15, Align: "center"},
	{Label: "ReviewCycleDate", Width: 15, Align: "center"},
	{Label: "Path", Width: pathColumnWidth, Align: "left"},
	{Label: "VersionReview", Width: 15, Align: "center"},
	{Label: "ReviewCycleDate", Width: 20, Align: "center"},
	{Label: "Path", Width: pathColumnWidth, Align: "left"},
	{Label: "VersionReview", Width: 15, Align: "center"},
	{Label: "Compare", Align: "center"},
}

func isDateColumn(col int) bool {
	return col == colDate1 || col == colDate2
}

// BuildFileList makes sure the workbook at path has a freshly reset file list
// sheet with the canonical header, then saves it.
func BuildFileList(path, sheet string) (*DateReport, error) {
	editor, err := OpenOrCreateFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	if err := editor.PrepareFileList(sheet); err != nil {
		return nil, err
	}

	report, err := editor.FormatDataRows(sheet)
	if err != nil {
		return nil, err
	}

	if err := editor.Save(); err != nil {
		return nil, err
	}

	logger.Info("Built file list", "path", path, "sheet", sheet, "date_issues", len(report.Issues))
	return report, nil
}

// PrepareFileList creates or resets the sheet and writes its header.
func (e *Editor) PrepareFileList(sheet string) error {
	if err := e.EnsureSheet(sheet); err != nil {
		return err
	}
	if err := e.ResetDataRows(sheet); err != nil {
		return err
	}
	return e.WriteHeader(sheet)
}

// EnsureSheet makes sheet the first worksheet, creating it if it is missing.
// A newly created workbook has its default sheet renamed instead, so it ends
// up with exactly one sheet.
func (e *Editor) EnsureSheet(sheet string) error {
	if e.created {
		defaultSheet := e.file.GetSheetName(0)
		if defaultSheet != sheet {
			if err := e.file.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("failed to rename default sheet: %w", err)
			}
		}
		return nil
	}

	idx, err := e.file.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %s: %w", sheet, err)
	}
	if idx >= 0 {
		return nil
	}

	first := e.file.GetSheetName(0)
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if first != "" {
		if err := e.file.MoveSheet(sheet, first); err != nil {
			return fmt.Errorf("failed to move sheet %s to the front: %w", sheet, err)
		}
	}
	if idx, err = e.file.GetSheetIndex(sheet); err == nil && idx >= 0 {
		e.file.SetActiveSheet(idx)
	}
	logger.Info("Created sheet", "sheet", sheet)
	return nil
}

// ResetDataRows deletes every row below the header.
func (e *Editor) ResetDataRows(sheet string) error {
	last, err := e.LastRow(sheet)
	if err != nil {
		return err
	}
	for row := last; row >= 2; row-- {
		if err := e.file.RemoveRow(sheet, row); err != nil {
			return fmt.Errorf("failed to remove row %d: %w", row, err)
		}
	}
	if last > 1 {
		logger.Debug("Cleared data rows", "sheet", sheet, "rows", last-1)
	}
	return nil
}

// WriteHeader writes the header labels, style, column widths and row height.
func (e *Editor) WriteHeader(sheet string) error {
	style, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4682B4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range FileListColumns {
		cell := cellName(i+1, 1)
		if err := e.file.SetCellStr(sheet, cell, col.Label); err != nil {
			return fmt.Errorf("failed to set header %s: %w", cell, err)
		}
		if err := e.file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header %s: %w", cell, err)
		}
		if col.Width > 0 {
			name := columnName(i + 1)
			if err := e.file.SetColWidth(sheet, name, name, col.Width); err != nil {
				return fmt.Errorf("failed to set width of column %s: %w", name, err)
			}
		}
	}

	if err := e.file.SetRowHeight(sheet, 1, headerRowHeight); err != nil {
		return fmt.Errorf("failed to set header height: %w", err)
	}
	return nil
}
