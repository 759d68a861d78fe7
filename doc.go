// Package windlg wraps the Windows common-dialog APIs (file, folder, color
// and font pickers) and adds two dialogs the OS does not provide natively:
// a single-line text prompt and a multi-option message box. The custom
// dialogs are built directly on user32/gdi32 - window class registration,
// child-control layout, a window-procedure state machine and a blocking
// message loop - so they look and behave like the stock dialogs.
//
// All dialogs are modal: they block the calling goroutine until the user
// closes them. At most one dialog may be active at a time; concurrent calls
// fail fast with ErrDialogActive. User cancellation is a normal outcome,
// never an error.
//
// On Linux and macOS the prompt and message box fall back to external
// dialog tools (zenity/kdialog, osascript). The native pickers are
// Windows-only and return ErrUnsupported elsewhere.
package windlg
