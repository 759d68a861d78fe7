//go:build windows

package windlg

import (
	"fmt"
	"sync"
	"syscall"
)

const msgClassName = "WindlgMessageDialog"

const (
	idcMsgLabel   = 1001
	msgButtonBase = 2000 // option button IDs count up from here
)

// messageWindow owns the per-window resources of one message-box
// invocation. Buttons are kept in option order so a command ID maps back
// to its option by index.
type messageWindow struct {
	session *messageSession

	font  uintptr
	brush uintptr

	label   uintptr
	buttons []uintptr
}

var (
	activeMessageWin *messageWindow

	msgProcOnce sync.Once
	msgProcPtr  uintptr
)

func showMessageBox(title, message string, options []Option) (int, error) {
	sess := &messageSession{
		title:    title,
		message:  message,
		options:  options,
		state:    stateCreated,
		selected: SelectionNone,
	}
	win := &messageWindow{session: sess}

	msgProcOnce.Do(func() {
		msgProcPtr = syscall.NewCallback(messageWndProc)
	})

	class, err := registerDialogClass(msgClassName, msgProcPtr)
	if err != nil {
		return SelectionInvalid, err
	}
	defer class.unregister()

	activeMessageWin = win
	defer func() { activeMessageWin = nil }()

	width, height := messageWindowSize(len(options))
	hwnd, err := createDialogWindow(class.name, title, width, height)
	if err != nil {
		// An abort inside WM_CREATE has already posted a WM_QUIT that
		// no loop will run to consume.
		drainQuitMessage()
		if sess.err != nil {
			return SelectionInvalid, sess.err
		}
		return SelectionInvalid, err
	}

	procShowWindow.Call(hwnd, swShow)
	procUpdateWindow.Call(hwnd)
	LogDialogShown("messagebox", title)

	if err := runModalLoop(hwnd); err != nil {
		procDestroyWindow.Call(hwnd)
		drainQuitMessage()
		return SelectionInvalid, err
	}
	if sess.err != nil {
		return SelectionInvalid, sess.err
	}
	return sess.selected, nil
}

func messageWndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	win := activeMessageWin
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
			return ^uintptr(0)
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
		id := loword(wParam)
		if opt, ok := sess.optionByIndex(id - msgButtonBase); ok {
			sess.selected = opt.ID
			sess.transition(stateClosing)
			procDestroyWindow.Call(hwnd)
		} else if id == idCancel {
			// Escape dismisses the box like a title-bar close.
			sess.selected = SelectionNone
			sess.transition(stateClosing)
			procDestroyWindow.Call(hwnd)
		}
		return 0

	case wmClose:
		if sess.state == stateIdle {
			sess.selected = SelectionNone
			sess.transition(stateClosing)
		}
		procDestroyWindow.Call(hwnd)
		return 0

	case wmCtlColorStatic, wmCtlColorBtn:
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

func (w *messageWindow) onCreate(hwnd uintptr) error {
	w.brush, _, _ = procCreateSolidBrush.Call(dialogBackColor)
	if w.brush == 0 {
		return fmt.Errorf("windlg: failed to create background brush")
	}
	w.font = createDialogFont()

	width, height := messageWindowSize(len(w.session.options))
	l := computeMessageLayout(width, height, len(w.session.options))

	var err error
	w.label, err = createChildControl(0, "STATIC", w.session.message,
		wsChild|wsVisible|ssLeft|ssWordEllipsis, l.label, hwnd, idcMsgLabel)
	if err != nil {
		return err
	}
	setControlFont(w.label, w.font)

	w.buttons = make([]uintptr, 0, len(w.session.options))
	for i, opt := range w.session.options {
		btn, err := createChildControl(0, "BUTTON", opt.Label,
			wsChild|wsVisible|bsPushButton, l.buttons[i], hwnd, msgButtonBase+i)
		if err != nil {
			return err
		}
		setControlFont(btn, w.font)
		w.buttons = append(w.buttons, btn)
	}
	return nil
}

func (w *messageWindow) applyLayout(clientW, clientH int) {
	l := computeMessageLayout(clientW, clientH, len(w.buttons))
	moveControl(w.label, l.label)
	for i, btn := range w.buttons {
		moveControl(btn, l.buttons[i])
	}
}

func (w *messageWindow) releaseResources() {
	if w.font != 0 {
		procDeleteObject.Call(w.font)
		w.font = 0
	}
	if w.brush != 0 {
		procDeleteObject.Call(w.brush)
		w.brush = 0
	}
	w.buttons = nil
}
