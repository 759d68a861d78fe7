package windlg

// FontChoice is the result of the font picker.
type FontChoice struct {
	FaceName  string
	PointSize int
	// Path is the font file backing the face, resolved through the
	// registry. Best effort: empty when no file could be found.
	Path string
}

// ShowFontPicker displays the font selection dialog listing the system's
// installed TrueType screen fonts. It returns the chosen font with
// confirmed=true, or a zero FontChoice with confirmed=false if the user
// cancelled.
func ShowFontPicker() (FontChoice, bool, error) {
	return pickFontDialog()
}

// FindFontFile looks up the file path of an installed font whose name
// contains the given substring, case-insensitively. Results are cached;
// an empty string means no matching font was found.
func FindFontFile(nameSubstring string) (string, error) {
	return findFontFile(nameSubstring)
}
