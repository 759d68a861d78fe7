package windlg

import "errors"

var (
	// ErrDialogActive is returned when a dialog is requested while another
	// one is still on screen. Only one modal dialog may run at a time.
	ErrDialogActive = errors.New("windlg: another dialog is already active")

	// ErrNoOptions is returned by ShowMessageBox when the option list is
	// empty. No window is created in that case.
	ErrNoOptions = errors.New("windlg: message box needs at least one option")

	// ErrUnsupported is returned on platforms without an implementation
	// for the requested dialog.
	ErrUnsupported = errors.New("windlg: dialog not supported on this platform")
)
