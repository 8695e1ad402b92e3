package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"fileList/internal/logger"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file     *excelize.File
	filepath string
	created  bool
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{
		file:    excelize.NewFile(),
		created: true,
	}
}

// OpenOrCreateFile opens an existing file or creates a new one if it doesn't exist
func OpenOrCreateFile(filepath string) (*Editor, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		logger.Info("Workbook not found, creating new file", "path", filepath)
		e := CreateNewFile()
		e.filepath = filepath
		return e, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking file status: %w", err)
	}

	logger.Info("Opening existing workbook", "path", filepath)
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open existing file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// Created reports whether the workbook did not exist on disk when opened.
func (e *Editor) Created() bool {
	return e.created
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// LastRow is the number of the last row holding a value, or 0 for an empty sheet.
func (e *Editor) LastRow(sheet string) (int, error) {
	rows, err := e.file.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to get rows: %w", err)
	}
	return len(rows), nil
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.SaveAs(e.filepath)
}

// SaveAs saves the Excel file with a new name, creating its directory if needed
func (e *Editor) SaveAs(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	e.filepath = path
	if err := e.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	e.created = false
	return nil
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(err) // callers only pass 1..8
	}
	return name
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}
