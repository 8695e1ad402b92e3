// Package host drives a running spreadsheet application through its
// automation interface. Only Excel on Windows is supported.
package host

import "errors"

var (
	// ErrUnsupported is returned by Attach on platforms without Excel automation.
	ErrUnsupported = errors.New("excel automation is only available on windows")

	// ErrVBAAccess means Excel refused access to the workbook's VBA project,
	// usually because "Trust access to the VBA project object model" is off.
	ErrVBAAccess = errors.New("access to the VBA project object model is not trusted")
)

// Button is a Forms button placed on a worksheet.
type Button struct {
	Name     string
	Caption  string
	OnAction string
	Left     float64
	Top      float64
	Width    float64
	Height   float64
}

// Session is one live application instance. Close must be called on every
// path once Attach succeeds; it quits the application.
type Session interface {
	Open(path string) (Workbook, error)
	Close() error
}

// Workbook is a workbook opened inside a Session.
type Workbook interface {
	// SelectSheet activates the named worksheet.
	SelectSheet(sheet string) error
	// RemoveModules deletes every code module called name and reports how many there were.
	RemoveModules(name string) (int, error)
	AddModule(name, source string) error
	// RemoveButtons deletes every button called name on sheet.
	RemoveButtons(sheet, name string) (int, error)
	AddButton(sheet string, b Button) error
	Save() error
	// Close closes the workbook without saving.
	Close() error
}
