//go:build windows

package windlg

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// toUTF16Ptr converts a Go string to a NUL-terminated UTF-16 pointer for
// the Win32 APIs. Interior NUL bytes are a conversion error.
func toUTF16Ptr(s string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("windlg: string conversion failed: %w", err)
	}
	return p, nil
}

// toUTF16 converts a Go string to a NUL-terminated UTF-16 slice.
func toUTF16(s string) ([]uint16, error) {
	u, err := windows.UTF16FromString(s)
	if err != nil {
		return nil, fmt.Errorf("windlg: string conversion failed: %w", err)
	}
	return u, nil
}

// fromUTF16 converts a NUL-terminated UTF-16 slice back to a Go string.
func fromUTF16(u []uint16) string {
	return windows.UTF16ToString(u)
}

// encodeFilters builds the double-NUL-terminated UTF-16 filter block the
// OPENFILENAME APIs expect: description NUL pattern NUL ... NUL.
func encodeFilters(filters []FileFilter) ([]uint16, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	var out []uint16
	for _, f := range filters {
		desc, err := toUTF16(f.Description)
		if err != nil {
			return nil, err
		}
		pattern, err := toUTF16(f.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, desc...)    // includes the terminating NUL
		out = append(out, pattern...) // includes the terminating NUL
	}
	out = append(out, 0)
	return out, nil
}
