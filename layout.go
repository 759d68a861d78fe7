package windlg

// Child-control layout for the custom dialogs. Geometry is recomputed from
// the current client rectangle on every resize; nothing here is cached, so
// control placement can never drift from the window size.

// rect is a control placement in client coordinates.
type rect struct {
	x, y, w, h int
}

// Shared margins and control metrics, in pixels.
const (
	sideMargin = 20 // left/right inset for text controls

	promptLabelTop    = 20
	promptLabelHeight = 25
	promptInputTop    = 55
	promptInputHeight = 30

	promptButtonWidth  = 80
	promptButtonHeight = 30
	promptButtonGap    = 20
	promptBottomMargin = 15

	promptWindowWidth  = 400
	promptWindowHeight = 180

	msgLabelTop    = 20
	msgLabelHeight = 26

	msgButtonWidth    = 100
	msgButtonHeight   = 30
	msgButtonSpacing  = 20
	msgButtonsPerRow  = 3
	msgRowStride      = 40
	msgBottomMargin   = 20
	msgBaseWindowLeft = 20
)

// promptLayout holds the placement of the prompt dialog's four controls.
type promptLayout struct {
	label  rect
	input  rect
	ok     rect
	cancel rect
}

// computePromptLayout lays out the prompt dialog for a client area of
// width w and height h. The label and input stretch with the width; the
// OK/Cancel pair is centered horizontally and anchored to the bottom.
func computePromptLayout(w, h int) promptLayout {
	buttonY := h - promptButtonHeight - promptBottomMargin
	pairWidth := promptButtonWidth*2 + promptButtonGap
	startX := (w - pairWidth) / 2

	return promptLayout{
		label:  rect{sideMargin, promptLabelTop, w - 2*sideMargin, promptLabelHeight},
		input:  rect{sideMargin, promptInputTop, w - 2*sideMargin, promptInputHeight},
		ok:     rect{startX, buttonY, promptButtonWidth, promptButtonHeight},
		cancel: rect{startX + promptButtonWidth + promptButtonGap, buttonY, promptButtonWidth, promptButtonHeight},
	}
}

// messageLayout holds the placement of the message-box controls. Buttons
// are in option order.
type messageLayout struct {
	label   rect
	buttons []rect
}

// computeMessageLayout lays out the message box for a client area of width
// w and height h with n option buttons. Buttons fill rows of three from
// left to right; the first row sits at the bottom margin and each further
// row stacks above it.
func computeMessageLayout(w, h, n int) messageLayout {
	l := messageLayout{
		label:   rect{sideMargin, msgLabelTop, w - 2*sideMargin, msgLabelHeight},
		buttons: make([]rect, n),
	}

	baseY := h - msgButtonHeight - msgBottomMargin
	for i := 0; i < n; i++ {
		row := i / msgButtonsPerRow
		col := i % msgButtonsPerRow
		l.buttons[i] = rect{
			x: msgBaseWindowLeft + col*(msgButtonWidth+msgButtonSpacing),
			y: baseY - row*msgRowStride,
			w: msgButtonWidth,
			h: msgButtonHeight,
		}
	}
	return l
}

// messageWindowSize returns the outer window size for a message box with n
// options. The width always fits a full row of three buttons; the height
// grows by one row stride for every started row beyond the first. Changing
// the height formula clips buttons, so it must stay in sync with
// computeMessageLayout.
func messageWindowSize(n int) (w, h int) {
	w = (msgButtonWidth+msgButtonSpacing)*msgButtonsPerRow + msgButtonSpacing
	h = 140 + msgRowStride*((n-1)/msgButtonsPerRow)
	return w, h
}

// centerOnScreen returns the top-left position that centers a w x h window
// on a screen of the given dimensions.
func centerOnScreen(screenW, screenH, w, h int) (x, y int) {
	return (screenW - w) / 2, (screenH - h) / 2
}
