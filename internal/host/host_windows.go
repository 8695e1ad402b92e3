//go:build windows

package host

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// vbext_ct_StdModule
const standardModule = 1

// S_FALSE from CoInitializeEx: COM was already initialized on this thread.
const sFalse = 1

type excelSession struct {
	app *ole.IDispatch
}

// Attach starts a hidden Excel instance. The calling goroutine stays locked
// to its OS thread until Close.
func Attach() (Session, error) {
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("failed to initialize COM: %w", err)
		}
	}

	app, err := createExcel()
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, err
	}
	return &excelSession{app: app}, nil
}

func createExcel() (*ole.IDispatch, error) {
	unknown, err := oleutil.CreateObject("Excel.Application")
	if err != nil {
		return nil, fmt.Errorf("failed to start Excel: %w", err)
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("failed to get Excel dispatch: %w", err)
	}

	for prop, v := range map[string]bool{"Visible": false, "DisplayAlerts": false} {
		if _, err := oleutil.PutProperty(app, prop, v); err != nil {
			app.Release()
			return nil, fmt.Errorf("failed to set Excel.%s: %w", prop, err)
		}
	}
	return app, nil
}

func (s *excelSession) Open(path string) (Workbook, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	workbooks, err := dispatch(oleutil.GetProperty(s.app, "Workbooks"))
	if err != nil {
		return nil, fmt.Errorf("failed to get workbooks: %w", err)
	}
	defer workbooks.Release()

	wb, err := dispatch(oleutil.CallMethod(workbooks, "Open", abs))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s in Excel: %w", abs, err)
	}
	return &excelWorkbook{wb: wb}, nil
}

func (s *excelSession) Close() error {
	_, err := oleutil.CallMethod(s.app, "Quit")
	s.app.Release()
	ole.CoUninitialize()
	runtime.UnlockOSThread()
	if err != nil {
		return fmt.Errorf("failed to quit Excel: %w", err)
	}
	return nil
}

type excelWorkbook struct {
	wb *ole.IDispatch
}

func (w *excelWorkbook) worksheet(sheet string) (*ole.IDispatch, error) {
	sheets, err := dispatch(oleutil.GetProperty(w.wb, "Worksheets"))
	if err != nil {
		return nil, fmt.Errorf("failed to get worksheets: %w", err)
	}
	defer sheets.Release()

	ws, err := dispatch(oleutil.GetProperty(sheets, "Item", sheet))
	if err != nil {
		return nil, fmt.Errorf("worksheet %s: %w", sheet, err)
	}
	return ws, nil
}

func (w *excelWorkbook) components() (*ole.IDispatch, error) {
	project, err := dispatch(oleutil.GetProperty(w.wb, "VBProject"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVBAAccess, err)
	}
	defer project.Release()

	components, err := dispatch(oleutil.GetProperty(project, "VBComponents"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVBAAccess, err)
	}
	return components, nil
}

func (w *excelWorkbook) SelectSheet(sheet string) error {
	ws, err := w.worksheet(sheet)
	if err != nil {
		return err
	}
	defer ws.Release()

	if _, err := oleutil.CallMethod(ws, "Activate"); err != nil {
		return fmt.Errorf("failed to activate %s: %w", sheet, err)
	}
	return nil
}

func (w *excelWorkbook) RemoveModules(name string) (int, error) {
	components, err := w.components()
	if err != nil {
		return 0, err
	}
	defer components.Release()

	return removeNamed(components, name, func(item *ole.IDispatch) error {
		_, err := oleutil.CallMethod(components, "Remove", item)
		return err
	})
}

func (w *excelWorkbook) AddModule(name, source string) error {
	components, err := w.components()
	if err != nil {
		return err
	}
	defer components.Release()

	component, err := dispatch(oleutil.CallMethod(components, "Add", standardModule))
	if err != nil {
		return fmt.Errorf("failed to add module: %w", err)
	}
	defer component.Release()

	if _, err := oleutil.PutProperty(component, "Name", name); err != nil {
		return fmt.Errorf("failed to name module %s: %w", name, err)
	}

	code, err := dispatch(oleutil.GetProperty(component, "CodeModule"))
	if err != nil {
		return fmt.Errorf("failed to get code module: %w", err)
	}
	defer code.Release()

	if _, err := oleutil.CallMethod(code, "AddFromString", source); err != nil {
		return fmt.Errorf("failed to insert macro source: %w", err)
	}
	return nil
}

func (w *excelWorkbook) buttons(sheet string) (*ole.IDispatch, error) {
	ws, err := w.worksheet(sheet)
	if err != nil {
		return nil, err
	}
	defer ws.Release()

	buttons, err := dispatch(oleutil.CallMethod(ws, "Buttons"))
	if err != nil {
		return nil, fmt.Errorf("failed to get buttons on %s: %w", sheet, err)
	}
	return buttons, nil
}

func (w *excelWorkbook) RemoveButtons(sheet, name string) (int, error) {
	buttons, err := w.buttons(sheet)
	if err != nil {
		return 0, err
	}
	defer buttons.Release()

	return removeNamed(buttons, name, func(item *ole.IDispatch) error {
		_, err := oleutil.CallMethod(item, "Delete")
		return err
	})
}

func (w *excelWorkbook) AddButton(sheet string, b Button) error {
	buttons, err := w.buttons(sheet)
	if err != nil {
		return err
	}
	defer buttons.Release()

	btn, err := dispatch(oleutil.CallMethod(buttons, "Add", b.Left, b.Top, b.Width, b.Height))
	if err != nil {
		return fmt.Errorf("failed to add button: %w", err)
	}
	defer btn.Release()

	for _, p := range []struct {
		name  string
		value string
	}{
		{"Name", b.Name},
		{"Caption", b.Caption},
		{"OnAction", b.OnAction},
	} {
		if _, err := oleutil.PutProperty(btn, p.name, p.value); err != nil {
			return fmt.Errorf("failed to set button %s: %w", p.name, err)
		}
	}
	return nil
}

func (w *excelWorkbook) Save() error {
	if _, err := oleutil.CallMethod(w.wb, "Save"); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *excelWorkbook) Close() error {
	_, err := oleutil.CallMethod(w.wb, "Close", false)
	w.wb.Release()
	if err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	return nil
}

// removeNamed deletes every item of a 1-based COM collection whose Name
// matches, walking backwards so removal does not shift unvisited items.
func removeNamed(collection *ole.IDispatch, name string, remove func(*ole.IDispatch) error) (int, error) {
	count, err := oleutil.GetProperty(collection, "Count")
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	n := int(count.Val)
	count.Clear()

	removed := 0
	for i := n; i >= 1; i-- {
		item, err := dispatch(oleutil.CallMethod(collection, "Item", i))
		if err != nil {
			return removed, fmt.Errorf("failed to get item %d: %w", i, err)
		}

		v, err := oleutil.GetProperty(item, "Name")
		if err != nil {
			item.Release()
			return removed, fmt.Errorf("failed to read name of item %d: %w", i, err)
		}
		match := strings.EqualFold(v.ToString(), name)
		v.Clear()

		if match {
			if err := remove(item); err != nil {
				item.Release()
				return removed, fmt.Errorf("failed to remove %s: %w", name, err)
			}
			removed++
		}
		item.Release()
	}
	return removed, nil
}

func dispatch(v *ole.VARIANT, err error) (*ole.IDispatch, error) {
	if err != nil {
		return nil, err
	}
	d := v.ToIDispatch()
	if d == nil {
		return nil, errors.New("automation call returned no object")
	}
	return d, nil
}
