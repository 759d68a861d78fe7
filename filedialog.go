package windlg

// FileDialogOptions configures the file open/save dialogs. Zero values
// fall back to the OS defaults (current directory, stock title).
type FileDialogOptions struct {
	Title       string       // window title; empty keeps the stock title
	Filters     []FileFilter // filter dropdown entries, in order
	InitialDir  string       // starting directory
	DefaultName string       // pre-filled file name
	DefaultExt  string       // extension (without dot) appended when omitted
}

// ShowOpenFile displays the file open dialog for selecting one existing
// file. It returns the selected path, or an empty string if the user
// cancelled.
func ShowOpenFile(opts FileDialogOptions) (string, error) {
	return openFileDialog(opts)
}

// ShowOpenMultiFile displays the file open dialog allowing multiple
// selection. It returns the selected paths, or an empty slice if the user
// cancelled.
func ShowOpenMultiFile(opts FileDialogOptions) ([]string, error) {
	return openMultiFileDialog(opts)
}

// ShowSaveFile displays the file save dialog. It returns the chosen path,
// or an empty string if the user cancelled. The OS prompts before
// overwriting an existing file.
func ShowSaveFile(opts FileDialogOptions) (string, error) {
	return saveFileDialog(opts)
}

// ShowPickFolder displays the folder selection dialog. The title is shown
// as the prompt text inside the dialog. It returns the selected directory,
// or an empty string if the user cancelled.
func ShowPickFolder(title, initialDir string) (string, error) {
	return pickFolderDialog(title, initialDir)
}
