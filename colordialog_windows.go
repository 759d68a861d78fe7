//go:build windows

package windlg

import (
	"fmt"
	"runtime"
	"unsafe"
)

const (
	ccRGBInit  = 0x00000001
	ccFullOpen = 0x00000002
)

// customColors backs the dialog's 16 custom color slots. Persisting them
// across calls lets users reuse colors they mixed earlier in the session.
var customColors [16]uint32

func colorRef(c Color) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

func colorFromRef(ref uint32) Color {
	return Color{
		R: uint8(ref),
		G: uint8(ref >> 8),
		B: uint8(ref >> 16),
		A: 255,
	}
}

func pickColorDialog(initial Color) (Color, bool, error) {
	cc := chooseColorW{
		lpCustColors: &customColors[0],
		flags:        ccRGBInit | ccFullOpen,
		rgbResult:    colorRef(initial),
	}
	cc.lStructSize = uint32(unsafe.Sizeof(cc))

	ok, _, _ := procChooseColorW.Call(uintptr(unsafe.Pointer(&cc)))
	runtime.KeepAlive(&cc)
	if ok == 0 {
		code, _, _ := procCommDlgExtendedError.Call()
		if code != 0 {
			return initial, false, fmt.Errorf("windlg: color dialog failed: error %#x", code)
		}
		return initial, false, nil // cancelled
	}
	return colorFromRef(cc.rgbResult), true, nil
}
