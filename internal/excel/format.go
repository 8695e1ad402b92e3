package excel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fileList/internal/logger"

	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// DateIssue is a date cell that could not be normalized and was left as is.
type DateIssue struct {
	Cell  string
	Value string
	Err   error
}

func (d DateIssue) Error() string {
	return fmt.Sprintf("cell %s (%q): %v", d.Cell, d.Value, d.Err)
}

func (d DateIssue) Unwrap() error {
	return d.Err
}

// DateReport summarizes a date normalization pass.
type DateReport struct {
	Normalized int
	Issues     []DateIssue
}

// NormalizeDateText cuts a hyphenated date string down to YYYY-MM-DD.
// Values without a hyphen come back unchanged.
func NormalizeDateText(value string) string {
	if !strings.Contains(value, "-") || utf8.RuneCountInString(value) <= 10 {
		return value
	}
	return string([]rune(value)[:10])
}

// NormalizeDateSerial formats an Excel serial date as YYYY-MM-DD.
func NormalizeDateSerial(raw string, date1904 bool) (string, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw, err
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return raw, err
	}
	return t.Format(dateLayout), nil
}

// FormatDataRows aligns every data cell in columns A-H and normalizes the two
// date columns. Cells that fail to normalize are reported, not changed.
func (e *Editor) FormatDataRows(sheet string) (*DateReport, error) {
	report := &DateReport{}

	last, err := e.LastRow(sheet)
	if err != nil {
		return nil, err
	}
	if last < 2 {
		return report, nil
	}

	date1904 := false
	if props, err := e.file.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for row := 2; row <= last; row++ {
		for _, col := range []int{colDate1, colDate2} {
			if err := e.normalizeDateCell(sheet, cellName(col, row), date1904, report); err != nil {
				return nil, err
			}
		}
	}

	for _, issue := range report.Issues {
		logger.Warn("Date left unchanged", "sheet", sheet, "cell", issue.Cell, "value", issue.Value, "error", issue.Err)
	}

	if err := e.alignDataRows(sheet, last); err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Editor) normalizeDateCell(sheet, cell string, date1904 bool, report *DateReport) error {
	raw, err := e.file.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cell, err)
	}
	if raw == "" {
		return nil
	}

	typ, err := e.file.GetCellType(sheet, cell)
	if err != nil {
		return fmt.Errorf("failed to read type of %s: %w", cell, err)
	}

	var normalized string
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeDate:
		normalized = NormalizeDateText(raw)
		if normalized == raw {
			return nil
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		normalized, err = NormalizeDateSerial(raw, date1904)
		if err != nil {
			report.Issues = append(report.Issues, DateIssue{Cell: cell, Value: raw, Err: err})
			return nil
		}
	default:
		return nil
	}

	if err := e.file.SetCellStr(sheet, cell, normalized); err != nil {
		return fmt.Errorf("failed to write %s: %w", cell, err)
	}
	report.Normalized++
	return nil
}

func (e *Editor) alignDataRows(sheet string, last int) error {
	styles := make(map[string]int)
	for _, align := range []string{"left", "center"} {
		id, err := e.file.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: align, Vertical: "center"},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s style: %w", align, err)
		}
		styles[align] = id
	}

	for i, col := range FileListColumns {
		name := columnName(i + 1)
		top, bottom := name+"2", name+strconv.Itoa(last)
		if err := e.file.SetCellStyle(sheet, top, bottom, styles[col.Align]); err != nil {
			return fmt.Errorf("failed to align %s:%s: %w", top, bottom, err)
		}
	}
	return nil
}

const (
	minFitWidth = 8
	maxFitWidth = 80
)

// FitColumns fixes both path columns at their header width and sizes every other column
// to its longest value.
func (e *Editor) FitColumns(sheet string) error {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to get rows: %w", err)
	}

	for i := range FileListColumns {
		col := i + 1
		name := columnName(col)
		width := float64(pathColumnWidth)
		if col != colPath1 && col != colPath2 {
			width = fitWidth(rows, i)
		}
		if err := e.file.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}
	return nil
}

func fitWidth(rows [][]string, idx int) float64 {
	longest := 0
	for _, row := range rows {
		if idx < len(row) {
			if n := utf8.RuneCountInString(row[idx]); n > longest {
				longest = n
			}
		}
	}
	width := float64(longest) + 2
	if width < minFitWidth {
		width = minFitWidth
	}
	if width > maxFitWidth {
		width = maxFitWidth
	}
	return width
}
