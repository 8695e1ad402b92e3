package excel

import (
	"fmt"

	"fileList/internal/compare"
	"fileList/internal/logger"

	"github.com/xuri/excelize/v2"
)

// NotFound is written wherever a side has no metadata for a file.
const NotFound = "Not found"

// WriteComparison replaces the data rows with one row per compared file and
// formats the result.
func (e *Editor) WriteComparison(sheet string, rows []compare.Row) (*DateReport, error) {
	if err := e.ResetDataRows(sheet); err != nil {
		return nil, err
	}

	for i, r := range rows {
		row := i + 2
		if err := e.file.SetCellStr(sheet, cellName(colFile, row), r.File); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		if err := e.writeSide(sheet, row, r.File, r.Left, colDate1, colPath1, colRevision1); err != nil {
			return nil, err
		}
		if err := e.writeSide(sheet, row, r.File, r.Right, colDate2, colPath2, colRevision2); err != nil {
			return nil, err
		}
		if err := e.file.SetCellStr(sheet, cellName(colCompare, row), r.Status.String()); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	report, err := e.FormatDataRows(sheet)
	if err != nil {
		return nil, err
	}
	if err := e.FitColumns(sheet); err != nil {
		return nil, err
	}

	logger.Info("Wrote comparison", "sheet", sheet, "rows", len(rows))
	return report, nil
}

func (e *Editor) writeSide(sheet string, row int, file string, side compare.Side, dateCol, pathCol, revCol int) error {
	date, rev := NotFound, NotFound
	if side.Info != nil {
		date, rev = side.Info.Date, side.Info.Revision
	}

	if err := e.file.SetCellStr(sheet, cellName(dateCol, row), date); err != nil {
		return fmt.Errorf("failed to write date for %s: %w", file, err)
	}
	if err := e.file.SetCellStr(sheet, cellName(revCol, row), rev); err != nil {
		return fmt.Errorf("failed to write revision for %s: %w", file, err)
	}

	pathCell := cellName(pathCol, row)
	if side.Info == nil {
		return e.file.SetCellStr(sheet, pathCell, NotFound)
	}

	link := side.Link(file)
	if err := e.file.SetCellStr(sheet, pathCell, link); err != nil {
		return fmt.Errorf("failed to write path for %s: %w", file, err)
	}
	if err := e.file.SetCellHyperLink(sheet, pathCell, link, "External", excelize.HyperlinkOpts{Display: &link}); err != nil {
		return fmt.Errorf("failed to link %s: %w", pathCell, err)
	}
	return nil
}
