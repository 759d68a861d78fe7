//go:build !windows && !linux && !darwin

package windlg

func showPrompt(title, message, defaultText string) (string, bool, error) {
	return "", false, ErrUnsupported
}

func showMessageBox(title, message string, options []Option) (int, error) {
	return SelectionInvalid, ErrUnsupported
}
