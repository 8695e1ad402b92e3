package macro

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fileList/internal/host"
	"fileList/internal/logger"
)

// ErrNotMacroEnabled is returned for workbook paths that cannot hold a VBA project.
var ErrNotMacroEnabled = errors.New("workbook must be macro-enabled (.xlsm, .xlsb, .xltm or .xls)")

// Injector installs the comparison macro and its trigger button into a workbook.
// Installing twice leaves a single module and a single button.
type Injector struct {
	Attach func() (host.Session, error)

	Sheet  string
	Module string
	Button host.Button
	Params Params
}

// Inject opens path in the host application, replaces the macro module and
// button, and saves. The host session is closed on every return path.
func (in *Injector) Inject(ctx context.Context, path string) (err error) {
	if !IsMacroEnabled(path) {
		return fmt.Errorf("%s: %w", path, ErrNotMacroEnabled)
	}

	source, err := Render(in.Params)
	if err != nil {
		return err
	}
	button := in.Button
	button.OnAction = in.Params.Procedure

	if err := ctx.Err(); err != nil {
		return err
	}

	attach := in.Attach
	if attach == nil {
		attach = host.Attach
	}
	session, err := attach()
	if err != nil {
		return fmt.Errorf("failed to attach to Excel: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	wb, err := session.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := wb.SelectSheet(in.Sheet); err != nil {
		return err
	}

	removed, err := wb.RemoveModules(in.Module)
	if err != nil {
		return fmt.Errorf("failed to remove previous module %s: %w", in.Module, err)
	}
	if err := wb.AddModule(in.Module, source); err != nil {
		return fmt.Errorf("failed to add module %s: %w", in.Module, err)
	}
	logger.Info("Installed macro module", "module", in.Module, "replaced", removed)

	removed, err = wb.RemoveButtons(in.Sheet, button.Name)
	if err != nil {
		return fmt.Errorf("failed to remove previous button %s: %w", button.Name, err)
	}
	if err := wb.AddButton(in.Sheet, button); err != nil {
		return fmt.Errorf("failed to add button %s: %w", button.Name, err)
	}
	logger.Info("Installed macro button", "button", button.Name, "action", button.OnAction, "replaced", removed)

	if err := wb.Save(); err != nil {
		return err
	}
	logger.Info("Saved workbook with macro", "path", path)
	return nil
}

// IsMacroEnabled reports whether the extension of path can carry VBA.
func IsMacroEnabled(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsm", ".xlsb", ".xltm", ".xls":
		return true
	}
	return false
}
