package windlg

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ShowColorPicker displays the color selection dialog, initialized to the
// given color. It returns the chosen color with confirmed=true, or the
// initial color unchanged with confirmed=false if the user cancelled.
// Custom color slots persist across calls within the process.
func ShowColorPicker(initial Color) (Color, bool, error) {
	return pickColorDialog(initial)
}
