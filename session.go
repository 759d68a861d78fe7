package windlg

import (
	"fmt"
	"sync"
)

// Option is one choice in a multi-option message box. The ID is returned
// from ShowMessageBox when the button is pressed; the label is the button
// text. IDs should be positive: 0 means "dismissed" and -1 means "failed",
// so options using those values are indistinguishable from the sentinels.
type Option struct {
	ID    int
	Label string
}

// Message box selection sentinels.
const (
	// SelectionNone means the window was closed without choosing an option.
	SelectionNone = 0
	// SelectionInvalid means the dialog could not be shown at all.
	SelectionInvalid = -1
)

// dialogState tracks where a dialog window is in its lifecycle. The window
// procedure only mutates session results during stateIdle and only tears
// down during stateClosing, so illegal event orderings are rejected in one
// place instead of being scattered through the event switch.
type dialogState int

const (
	stateCreated dialogState = iota
	stateIdle
	stateClosing
	stateDestroyed
)

func (s dialogState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateIdle:
		return "idle"
	case stateClosing:
		return "closing"
	case stateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("dialogState(%d)", int(s))
}

// transition reports whether moving from s to next is legal. The only legal
// chain is created -> idle -> closing -> destroyed, with created -> closing
// allowed for windows that fail mid-creation.
func (s dialogState) canTransition(next dialogState) bool {
	switch s {
	case stateCreated:
		return next == stateIdle || next == stateClosing
	case stateIdle:
		return next == stateClosing
	case stateClosing:
		return next == stateDestroyed
	}
	return false
}

// promptSession carries one prompt invocation from show to close. The
// window procedure reads the inputs and writes the outcome; the caller
// reads the outcome after the modal loop returns.
type promptSession struct {
	title       string
	message     string
	defaultText string

	state     dialogState
	confirmed bool
	text      string
	err       error
}

// messageSession carries one message-box invocation.
type messageSession struct {
	title   string
	message string
	options []Option

	state    dialogState
	selected int
	err      error
}

func (s *promptSession) transition(next dialogState) {
	if !s.state.canTransition(next) {
		LogWarn("prompt dialog: illegal transition %s -> %s ignored", s.state, next)
		return
	}
	s.state = next
}

func (s *messageSession) transition(next dialogState) {
	if !s.state.canTransition(next) {
		LogWarn("message dialog: illegal transition %s -> %s ignored", s.state, next)
		return
	}
	s.state = next
}

// optionByIndex maps a button back to its option id. Buttons are created in
// insertion order, so the index is stable across resizes.
func (s *messageSession) optionByIndex(i int) (Option, bool) {
	if i < 0 || i >= len(s.options) {
		return Option{}, false
	}
	return s.options[i], true
}

// dialogSlot serializes dialog invocations process-wide. The window
// procedures share per-family session pointers with the exported entry
// points, which is only sound while a single session is live, so a second
// caller fails fast instead of corrupting the active session.
var dialogSlot sync.Mutex

func acquireDialogSlot() bool {
	return dialogSlot.TryLock()
}

func releaseDialogSlot() {
	dialogSlot.Unlock()
}
