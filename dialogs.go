package windlg

// ShowPrompt displays a modal dialog with a message, a single-line input
// field pre-filled with defaultText, and OK/Cancel buttons. It blocks until
// the dialog is closed.
//
// On OK the entered text is returned with confirmed=true; the text may be
// empty if the user cleared the field. On Cancel or when the window is
// closed from the title bar, text is empty and confirmed is false.
func ShowPrompt(title, message, defaultText string) (text string, confirmed bool, err error) {
	if !acquireDialogSlot() {
		return "", false, ErrDialogActive
	}
	defer releaseDialogSlot()

	LogDebug("showing prompt dialog: %q", title)
	text, confirmed, err = showPrompt(title, message, defaultText)
	if err != nil {
		LogError("prompt dialog failed: %v", err)
		return "", false, err
	}
	LogDialogResult("prompt", confirmed)
	return text, confirmed, nil
}

// ShowMessageBox displays a modal dialog with a message and one button per
// option, laid out in rows of three. It blocks until the dialog is closed
// and returns the ID of the chosen option.
//
// Closing the window without choosing returns SelectionNone. An empty
// option list returns SelectionInvalid and ErrNoOptions without any window
// being created.
func ShowMessageBox(title, message string, options []Option) (int, error) {
	if len(options) == 0 {
		return SelectionInvalid, ErrNoOptions
	}
	if !acquireDialogSlot() {
		return SelectionInvalid, ErrDialogActive
	}
	defer releaseDialogSlot()

	LogDebug("showing message box: %q (%d options)", title, len(options))
	selected, err := showMessageBox(title, message, options)
	if err != nil {
		LogError("message box failed: %v", err)
		return SelectionInvalid, err
	}
	LogDialogResult("messagebox", selected != SelectionNone)
	return selected, nil
}
