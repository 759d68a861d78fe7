//go:build windows

package windlg

import (
	"fmt"
	"unsafe"
)

// Window class registration and the blocking message loop shared by the
// two custom dialogs. A class lives only for the duration of one dialog
// invocation: registered before CreateWindowEx, unregistered after the
// loop exits, on every path.

type windowClass struct {
	name *uint16
}

// registerDialogClass registers a window class under the given name with
// the given window procedure. Registration failure (name collision, OS
// resource exhaustion) is fatal for the dialog call.
func registerDialogClass(name string, wndProc uintptr) (*windowClass, error) {
	namePtr, err := toUTF16Ptr(name)
	if err != nil {
		return nil, err
	}

	wc := wndClassExW{
		style:         csHRedraw | csVRedraw,
		lpfnWndProc:   wndProc,
		hInstance:     moduleHandle(),
		hbrBackground: colorWindow + 1,
		lpszClassName: namePtr,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))

	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return nil, fmt.Errorf("windlg: failed to register window class %s: %w", name, callErr)
	}
	return &windowClass{name: namePtr}, nil
}

func (c *windowClass) unregister() {
	procUnregisterClassW.Call(uintptr(unsafe.Pointer(c.name)), moduleHandle())
}

// createDialogWindow creates the fixed-style top-level popup for a custom
// dialog, centered on the primary display.
func createDialogWindow(className *uint16, title string, width, height int) (uintptr, error) {
	titlePtr, err := toUTF16Ptr(title)
	if err != nil {
		return 0, err
	}

	x, y := centerOnScreen(systemMetric(smCxScreen), systemMetric(smCyScreen), width, height)

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsPopup|wsCaption|wsSysMenu|dsModalFrame,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		0, 0, moduleHandle(), 0)
	if hwnd == 0 {
		return 0, fmt.Errorf("windlg: failed to create dialog window: %w", callErr)
	}
	return hwnd, nil
}

// createChildControl creates one child control (STATIC, EDIT or BUTTON)
// with the given control ID.
func createChildControl(exStyle uintptr, class, text string, style uintptr, r rect, parent uintptr, id int) (uintptr, error) {
	classPtr, err := toUTF16Ptr(class)
	if err != nil {
		return 0, err
	}
	textPtr, err := toUTF16Ptr(text)
	if err != nil {
		return 0, err
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		exStyle,
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(textPtr)),
		style,
		uintptr(r.x), uintptr(r.y), uintptr(r.w), uintptr(r.h),
		parent, uintptr(id), moduleHandle(), 0)
	if hwnd == 0 {
		return 0, fmt.Errorf("windlg: failed to create %s control: %w", class, callErr)
	}
	return hwnd, nil
}

// createDialogFont creates the shared 24px ClearType UI font applied to
// every text-bearing control.
func createDialogFont() uintptr {
	face, err := toUTF16Ptr("Segoe UI")
	if err != nil {
		return 0
	}
	font, _, _ := procCreateFontW.Call(
		24, 0, 0, 0, fwNormal,
		0, 0, 0, defaultCharset,
		outDefaultPrecis, clipDefaultPrec,
		clearTypeQuality, defaultPitch|ffDontCare,
		uintptr(unsafe.Pointer(face)))
	return font
}

func setControlFont(control, font uintptr) {
	if control != 0 && font != 0 {
		procSendMessageW.Call(control, wmSetFont, font, 1)
	}
}

func moveControl(control uintptr, r rect) {
	if control != 0 {
		procSetWindowPos.Call(control, 0,
			uintptr(r.x), uintptr(r.y), uintptr(r.w), uintptr(r.h),
			swpNoZOrder)
	}
}

// paintDialogColors applies the dialog palette to a control's device
// context and returns the background brush for the control to use.
func paintDialogColors(hdc, brush uintptr) uintptr {
	procSetBkColor.Call(hdc, dialogBackColor)
	procSetTextColor.Call(hdc, dialogTextColor)
	return brush
}

// eraseDialogBackground fills the whole client area with the dialog brush.
func eraseDialogBackground(hwnd, hdc, brush uintptr) {
	var rc rectW
	procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(&rc)), brush)
}

// drainQuitMessage removes a pending WM_QUIT from the calling thread's
// queue. The destroy transition posts one unconditionally; on paths where
// the modal loop never consumes it (creation aborted inside WM_CREATE, or
// the window torn down after a loop failure) the stale WM_QUIT would end
// the next dialog's loop immediately, abandoning its window and keeping
// its class registered.
func drainQuitMessage() {
	var m msgW
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmQuit, wmQuit, pmRemove)
}

// runModalLoop pumps the message queue until the dialog posts WM_QUIT from
// its destroy transition. It blocks the calling thread for the whole
// session; the only way out is a user action or close request reaching the
// window procedure. IsDialogMessageW supplies the standard dialog keyboard
// behavior (Tab order, Enter activates the default button, Escape cancels).
func runModalLoop(hwnd uintptr) error {
	var m msgW
	for {
		r, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case 0:
			return nil
		case -1:
			return fmt.Errorf("windlg: message loop failed: %w", callErr)
		}

		if handled, _, _ := procIsDialogMessageW.Call(hwnd, uintptr(unsafe.Pointer(&m))); handled != 0 {
			continue
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
