//go:build windows

package windlg

import (
	"syscall"
)

// Lazy-loaded Win32 entry points. Everything the dialogs touch lives in
// user32/gdi32 plus the common-dialog and shell libraries.
var (
	user32   = syscall.NewLazyDLL("user32.dll")
	gdi32    = syscall.NewLazyDLL("gdi32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")
	comdlg32 = syscall.NewLazyDLL("comdlg32.dll")
	shell32  = syscall.NewLazyDLL("shell32.dll")
	ole32    = syscall.NewLazyDLL("ole32.dll")

	// Window class and window lifecycle
	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procUnregisterClassW = user32.NewProc("UnregisterClassW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procUpdateWindow     = user32.NewProc("UpdateWindow")

	// Message loop
	procGetMessageW      = user32.NewProc("GetMessageW")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procIsDialogMessageW = user32.NewProc("IsDialogMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")

	// Control plumbing
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procSendMessageW         = user32.NewProc("SendMessageW")
	procGetClientRect        = user32.NewProc("GetClientRect")
	procFillRect             = user32.NewProc("FillRect")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetSystemMetrics     = user32.NewProc("GetSystemMetrics")
	procSetFocus             = user32.NewProc("SetFocus")

	// GDI resources
	procCreateFontW      = gdi32.NewProc("CreateFontW")
	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procDeleteObject     = gdi32.NewProc("DeleteObject")
	procSetBkColor       = gdi32.NewProc("SetBkColor")
	procSetTextColor     = gdi32.NewProc("SetTextColor")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	// Common dialogs
	procGetOpenFileNameW     = comdlg32.NewProc("GetOpenFileNameW")
	procGetSaveFileNameW     = comdlg32.NewProc("GetSaveFileNameW")
	procChooseColorW         = comdlg32.NewProc("ChooseColorW")
	procChooseFontW          = comdlg32.NewProc("ChooseFontW")
	procCommDlgExtendedError = comdlg32.NewProc("CommDlgExtendedError")

	// Folder browser
	procSHBrowseForFolderW   = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = shell32.NewProc("SHGetPathFromIDListW")
	procCoTaskMemFree        = ole32.NewProc("CoTaskMemFree")
)

// Window messages
const (
	wmCreate         = 0x0001
	wmDestroy        = 0x0002
	wmSize           = 0x0005
	wmClose          = 0x0010
	wmQuit           = 0x0012
	wmEraseBkgnd     = 0x0014
	wmSetFont        = 0x0030
	wmCommand        = 0x0111
	wmCtlColorEdit   = 0x0133
	wmCtlColorBtn    = 0x0135
	wmCtlColorStatic = 0x0138
)

// Window and control styles
const (
	wsPopup   = 0x80000000
	wsCaption = 0x00C00000
	wsSysMenu = 0x00080000
	wsChild   = 0x40000000
	wsVisible = 0x10000000

	dsModalFrame = 0x0080

	wsExClientEdge = 0x00000200

	ssLeft         = 0x0000
	ssWordEllipsis = 0xC000
	esAutoHScroll  = 0x0080

	bsPushButton    = 0x0000
	bsDefPushButton = 0x0001

	csVRedraw = 0x0001
	csHRedraw = 0x0002
)

const (
	swShow = 5

	pmRemove = 0x0001

	swpNoZOrder = 0x0004

	smCxScreen = 0
	smCyScreen = 1

	colorWindow = 5
)

// CreateFontW arguments
const (
	fwNormal         = 400
	defaultCharset   = 1
	outDefaultPrecis = 0
	clipDefaultPrec  = 0
	clearTypeQuality = 5
	defaultPitch     = 0
	ffDontCare       = 0
)

// Standard dialog command IDs sent by IsDialogMessageW for Enter/Escape.
const (
	idOK     = 1
	idCancel = 2
)

// Dialog palette: neutral light-gray background, black text.
const (
	dialogBackColor = 0x00F0F0F0 // COLORREF, BGR
	dialogTextColor = 0x00000000
)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type pointW struct {
	x, y int32
}

type msgW struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      pointW
}

type rectW struct {
	left, top, right, bottom int32
}

type openFileNameW struct {
	lStructSize       uint32
	hwndOwner         uintptr
	hInstance         uintptr
	lpstrFilter       *uint16
	lpstrCustomFilter *uint16
	nMaxCustFilter    uint32
	nFilterIndex      uint32
	lpstrFile         *uint16
	nMaxFile          uint32
	lpstrFileTitle    *uint16
	nMaxFileTitle     uint32
	lpstrInitialDir   *uint16
	lpstrTitle        *uint16
	flags             uint32
	nFileOffset       uint16
	nFileExtension    uint16
	lpstrDefExt       *uint16
	lCustData         uintptr
	lpfnHook          uintptr
	lpTemplateName    *uint16
	pvReserved        uintptr
	dwReserved        uint32
	flagsEx           uint32
}

type chooseColorW struct {
	lStructSize    uint32
	hwndOwner      uintptr
	hInstance      uintptr
	rgbResult      uint32
	lpCustColors   *uint32
	flags          uint32
	lCustData      uintptr
	lpfnHook       uintptr
	lpTemplateName *uint16
}

type logFontW struct {
	lfHeight         int32
	lfWidth          int32
	lfEscapement     int32
	lfOrientation    int32
	lfWeight         int32
	lfItalic         byte
	lfUnderline      byte
	lfStrikeOut      byte
	lfCharSet        byte
	lfOutPrecision   byte
	lfClipPrecision  byte
	lfQuality        byte
	lfPitchAndFamily byte
	lfFaceName       [32]uint16
}

type chooseFontW struct {
	lStructSize    uint32
	hwndOwner      uintptr
	hDC            uintptr
	lpLogFont      *logFontW
	iPointSize     int32
	flags          uint32
	rgbColors      uint32
	lCustData      uintptr
	lpfnHook       uintptr
	lpTemplateName *uint16
	hInstance      uintptr
	lpszStyle      *uint16
	nFontType      uint16
	_              uint16
	nSizeMin       int32
	nSizeMax       int32
}

type browseInfoW struct {
	hwndOwner      uintptr
	pidlRoot       uintptr
	pszDisplayName *uint16
	lpszTitle      *uint16
	ulFlags        uint32
	lpfn           uintptr
	lParam         uintptr
	iImage         int32
}

func moduleHandle() uintptr {
	h, _, _ := procGetModuleHandleW.Call(0)
	return h
}

func systemMetric(index int) int {
	n, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(n)
}

func loword(v uintptr) int {
	return int(uint16(v))
}

func hiword(v uintptr) int {
	return int(uint16(v >> 16))
}
