//go:build windows

package windlg

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"
)

const promptClassName = "WindlgPromptDialog"

// Prompt control IDs.
const (
	idcPromptLabel  = 1001
	idcPromptInput  = 1002
	idcPromptOK     = 1003
	idcPromptCancel = 1004
)

// promptWindow owns the per-window resources of one prompt invocation.
// The font and brush are created on WM_CREATE and released on WM_DESTROY,
// which the OS delivers on every exit path including aborted creation.
type promptWindow struct {
	session *promptSession

	font  uintptr
	brush uintptr

	label  uintptr
	input  uintptr
	ok     uintptr
	cancel uintptr
}

// activePromptWin is consulted by the window procedure. It is only set
// while the dialog slot is held, so there is never more than one.
var (
	activePromptWin *promptWindow

	promptProcOnce sync.Once
	promptProcPtr  uintptr
)

func showPrompt(title, message, defaultText string) (string, bool, error) {
	sess := &promptSession{
		title:       title,
		message:     message,
		defaultText: defaultText,
		state:       stateCreated,
	}
	win := &promptWindow{session: sess}

	promptProcOnce.Do(func() {
		promptProcPtr = syscall.NewCallback(promptWndProc)
	})

	class, err := registerDialogClass(promptClassName, promptProcPtr)
	if err != nil {
		return "", false, err
	}
	defer class.unregister()

	activePromptWin = win
	defer func() { activePromptWin = nil }()

	hwnd, err := createDialogWindow(class.name, title, promptWindowWidth, promptWindowHeight)
	if err != nil {
		// Control or resource creation inside WM_CREATE aborts the
		// window; its destroy transition has already posted a WM_QUIT
		// that no loop will run to consume. Prefer the more specific
		// error when it is recorded.
		drainQuitMessage()
		if sess.err != nil {
			return "", false, sess.err
		}
		return "", false, err
	}

	procShowWindow.Call(hwnd, swShow)
	procUpdateWindow.Call(hwnd)
	procSetFocus.Call(win.input)
	LogDialogShown("prompt", title)

	if err := runModalLoop(hwnd); err != nil {
		procDestroyWindow.Call(hwnd)
		drainQuitMessage()
		return "", false, err
	}
	if sess.err != nil {
		return "", false, sess.err
	}
	if !sess.confirmed {
		return "", false, nil
	}
	return sess.text, true, nil
}

func promptWndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	win := activePromptWin
	if win == nil {
		ret, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
		return ret
	}
	sess := win.session

	switch message {
	case wmCreate:
		if err := win.onCreate(hwnd); err != nil {
			sess.err = err
			sess.transition(stateClosing)
			return ^uintptr(0) // abort window creation
		}
		sess.transition(stateIdle)
		return 0

	case wmSize:
		win.applyLayout(loword(lParam), hiword(lParam))
		return 0

	case wmCommand:
		if sess.state != stateIdle {
			return 0
		}
		switch loword(wParam) {
		case idcPromptOK, idOK:
			sess.text = windowText(win.input)
			sess.confirmed = true
			sess.transition(stateClosing)
			procDestroyWindow.Call(hwnd)
		case idcPromptCancel, idCancel:
			sess.text = ""
			sess.confirmed = false
			sess.transition(stateClosing)
			procDestroyWindow.Call(hwnd)
		}
		return 0

	case wmClose:
		// Title-bar close is a cancel.
		if sess.state == stateIdle {
			sess.text = ""
			sess.confirmed = false
			sess.transition(stateClosing)
		}
		procDestroyWindow.Call(hwnd)
		return 0

	case wmCtlColorStatic, wmCtlColorEdit, wmCtlColorBtn:
		return paintDialogColors(wParam, win.brush)

	case wmEraseBkgnd:
		eraseDialogBackground(hwnd, wParam, win.brush)
		return 1

	case wmDestroy:
		win.releaseResources()
		sess.transition(stateDestroyed)
		procPostQuitMessage.Call(0)
		return 0
	}

	ret, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
	return ret
}

// onCreate builds the four child controls at the initial geometry and
// applies the shared font. Any creation failure aborts the dialog.
func (w *promptWindow) onCreate(hwnd uintptr) error {
	w.brush, _, _ = procCreateSolidBrush.Call(dialogBackColor)
	if w.brush == 0 {
		return fmt.Errorf("windlg: failed to create background brush")
	}
	w.font = createDialogFont()

	l := computePromptLayout(promptWindowWidth, promptWindowHeight)

	var err error
	w.label, err = createChildControl(0, "STATIC", w.session.message,
		wsChild|wsVisible|ssLeft, l.label, hwnd, idcPromptLabel)
	if err != nil {
		return err
	}
	w.input, err = createChildControl(wsExClientEdge, "EDIT", w.session.defaultText,
		wsChild|wsVisible|esAutoHScroll, l.input, hwnd, idcPromptInput)
	if err != nil {
		return err
	}
	w.ok, err = createChildControl(0, "BUTTON", "OK",
		wsChild|wsVisible|bsDefPushButton, l.ok, hwnd, idcPromptOK)
	if err != nil {
		return err
	}
	w.cancel, err = createChildControl(0, "BUTTON", "Cancel",
		wsChild|wsVisible|bsPushButton, l.cancel, hwnd, idcPromptCancel)
	if err != nil {
		return err
	}

	setControlFont(w.label, w.font)
	setControlFont(w.input, w.font)
	setControlFont(w.ok, w.font)
	setControlFont(w.cancel, w.font)
	return nil
}

// applyLayout repositions all controls for the current client area.
func (w *promptWindow) applyLayout(clientW, clientH int) {
	l := computePromptLayout(clientW, clientH)
	moveControl(w.label, l.label)
	moveControl(w.input, l.input)
	moveControl(w.ok, l.ok)
	moveControl(w.cancel, l.cancel)
}

func (w *promptWindow) releaseResources() {
	if w.font != 0 {
		procDeleteObject.Call(w.font)
		w.font = 0
	}
	if w.brush != 0 {
		procDeleteObject.Call(w.brush)
		w.brush = 0
	}
}

// windowText reads the full text of a window or control.
func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return fromUTF16(buf)
}
