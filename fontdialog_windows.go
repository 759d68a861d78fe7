//go:build windows

package windlg

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	cfScreenFonts = 0x00000001
	cfTTOnly      = 0x00040000
	cfNoVertFonts = 0x01000000
)

const fontsRegistryKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

func pickFontDialog() (FontChoice, bool, error) {
	var lf logFontW
	cf := chooseFontW{
		lpLogFont: &lf,
		flags:     cfScreenFonts | cfNoVertFonts | cfTTOnly,
	}
	cf.lStructSize = uint32(unsafe.Sizeof(cf))

	ok, _, _ := procChooseFontW.Call(uintptr(unsafe.Pointer(&cf)))
	runtime.KeepAlive(&cf)
	if ok == 0 {
		code, _, _ := procCommDlgExtendedError.Call()
		if code != 0 {
			return FontChoice{}, false, fmt.Errorf("windlg: font dialog failed: error %#x", code)
		}
		return FontChoice{}, false, nil // cancelled
	}

	face := fromUTF16(lf.lfFaceName[:])
	choice := FontChoice{
		FaceName:  face,
		PointSize: int(cf.iPointSize) / 10,
	}

	// Best effort: the chosen face usually maps to a registry entry, but
	// not always.
	if path, err := findFontFile(face); err == nil {
		choice.Path = path
	}
	return choice, true, nil
}

// findFontFile scans the per-machine and per-user font registrations for a
// face whose name contains the given substring. Lookups are cached.
func findFontFile(nameSubstring string) (string, error) {
	if path, found := cachedFontPath(nameSubstring); found {
		return path, nil
	}

	windowsDir, err := windows.GetWindowsDirectory()
	if err != nil {
		return "", fmt.Errorf("windlg: failed to locate windows directory: %w", err)
	}

	path := scanFontHive(registry.LOCAL_MACHINE, nameSubstring, windowsDir)
	if path == "" {
		path = scanFontHive(registry.CURRENT_USER, nameSubstring, windowsDir)
	}

	storeFontPath(nameSubstring, path)
	return path, nil
}

func scanFontHive(hive registry.Key, nameSubstring, windowsDir string) string {
	k, err := registry.OpenKey(hive, fontsRegistryKey, registry.READ)
	if err != nil {
		return ""
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return ""
	}
	for _, name := range names {
		if !fontNameMatches(name, nameSubstring) {
			continue
		}
		value, _, err := k.GetStringValue(name)
		if err != nil || value == "" {
			continue
		}
		return resolveFontPath(value, windowsDir)
	}
	return ""
}
