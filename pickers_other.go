//go:build !windows

package windlg

// The native pickers wrap Windows common dialogs; there is no equivalent
// surface to delegate to elsewhere.

func openFileDialog(opts FileDialogOptions) (string, error) {
	return "", ErrUnsupported
}

func openMultiFileDialog(opts FileDialogOptions) ([]string, error) {
	return nil, ErrUnsupported
}

func saveFileDialog(opts FileDialogOptions) (string, error) {
	return "", ErrUnsupported
}

func pickFolderDialog(title, initialDir string) (string, error) {
	return "", ErrUnsupported
}

func pickColorDialog(initial Color) (Color, bool, error) {
	return initial, false, ErrUnsupported
}

func pickFontDialog() (FontChoice, bool, error) {
	return FontChoice{}, false, ErrUnsupported
}

func findFontFile(nameSubstring string) (string, error) {
	return "", ErrUnsupported
}
