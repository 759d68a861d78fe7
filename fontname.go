package windlg

import "strings"

// Matching logic for the font registry scan. Registry value names under
// SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts look like
// "Segoe UI (TrueType)"; the parenthesized qualifier is not part of the
// face name and is stripped before matching.

// fontNameMatches reports whether the registry value name refers to a font
// whose face name contains the wanted substring, case-insensitively.
func fontNameMatches(valueName, wanted string) bool {
	name := valueName
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(wanted))
}

// resolveFontPath turns a registry font value into an absolute file path.
// Values without a drive component are relative to the Fonts directory
// under the Windows directory.
func resolveFontPath(value, windowsDir string) string {
	if strings.Contains(value, ":") {
		return value
	}
	return windowsDir + `\Fonts\` + value
}
