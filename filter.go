package windlg

import (
	"fmt"
	"strings"
)

// FileFilter is one entry in a file dialog's filter dropdown.
type FileFilter struct {
	Description string // shown in the dropdown, e.g. "Text Files(*.txt)"
	Pattern     string // match rules, e.g. "*.txt" or "*.bmp;*.jpg"
}

// ParseFilter parses a "description|pattern" spec into a FileFilter. The
// pipe separator is required; everything before it is the description and
// everything after it the pattern.
func ParseFilter(spec string) (FileFilter, error) {
	desc, pattern, ok := strings.Cut(spec, "|")
	if !ok {
		return FileFilter{}, fmt.Errorf(
			"windlg: invalid filter %q: use \"description|pattern\" (e.g. \"Text Files(*.txt)|*.txt\")", spec)
	}
	return FileFilter{Description: desc, Pattern: pattern}, nil
}

// ParseFilters parses a list of "description|pattern" specs, failing on the
// first malformed entry.
func ParseFilters(specs []string) ([]FileFilter, error) {
	filters := make([]FileFilter, 0, len(specs))
	for _, spec := range specs {
		f, err := ParseFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}
