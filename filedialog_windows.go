//go:build windows

package windlg

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"unsafe"
)

// OPENFILENAME flags
const (
	ofnOverwritePrompt  = 0x00000002
	ofnNoChangeDir      = 0x00000008
	ofnAllowMultiSelect = 0x00000200
	ofnPathMustExist    = 0x00000800
	ofnFileMustExist    = 0x00001000
	ofnExplorer         = 0x00080000
)

const (
	maxPathChars    = 4096  // single selection buffer
	multiPathChars  = 32768 // multi selection buffer (shared dir + names)
	maxFolderPath   = 260   // MAX_PATH for SHGetPathFromIDListW
)

// ofnRequest keeps every buffer referenced by the OPENFILENAME struct
// alive for the duration of the API call.
type ofnRequest struct {
	ofn        openFileNameW
	fileBuf    []uint16
	filterBuf  []uint16
	titleBuf   *uint16
	dirBuf     *uint16
	extBuf     *uint16
}

func newOFNRequest(opts FileDialogOptions, bufChars int) (*ofnRequest, error) {
	r := &ofnRequest{fileBuf: make([]uint16, bufChars)}

	if opts.DefaultName != "" {
		name, err := toUTF16(opts.DefaultName)
		if err != nil {
			return nil, err
		}
		if len(name) >= bufChars {
			return nil, fmt.Errorf("windlg: default file name is too long")
		}
		copy(r.fileBuf, name)
	}

	var err error
	if r.filterBuf, err = encodeFilters(opts.Filters); err != nil {
		return nil, err
	}
	if opts.Title != "" {
		if r.titleBuf, err = toUTF16Ptr(opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.InitialDir != "" {
		if r.dirBuf, err = toUTF16Ptr(opts.InitialDir); err != nil {
			return nil, err
		}
	}
	if opts.DefaultExt != "" {
		if r.extBuf, err = toUTF16Ptr(opts.DefaultExt); err != nil {
			return nil, err
		}
	}

	r.ofn = openFileNameW{
		lpstrFile:       &r.fileBuf[0],
		nMaxFile:        uint32(bufChars),
		lpstrInitialDir: r.dirBuf,
		lpstrTitle:      r.titleBuf,
		lpstrDefExt:     r.extBuf,
	}
	if r.filterBuf != nil {
		r.ofn.lpstrFilter = &r.filterBuf[0]
	}
	r.ofn.lStructSize = uint32(unsafe.Sizeof(r.ofn))
	return r, nil
}

// call invokes one of the GetOpenFileNameW/GetSaveFileNameW procs and
// distinguishes user cancellation (false, nil) from dialog failure.
func (r *ofnRequest) call(proc *syscall.LazyProc) (bool, error) {
	ok, _, _ := proc.Call(uintptr(unsafe.Pointer(&r.ofn)))
	runtime.KeepAlive(r)
	if ok != 0 {
		return true, nil
	}
	code, _, _ := procCommDlgExtendedError.Call()
	if code != 0 {
		return false, fmt.Errorf("windlg: file dialog failed: error %#x", code)
	}
	return false, nil
}

func openFileDialog(opts FileDialogOptions) (string, error) {
	r, err := newOFNRequest(opts, maxPathChars)
	if err != nil {
		return "", err
	}
	r.ofn.flags = ofnFileMustExist | ofnPathMustExist | ofnNoChangeDir | ofnExplorer

	ok, err := r.call(procGetOpenFileNameW)
	if err != nil || !ok {
		return "", err
	}
	return fromUTF16(r.fileBuf), nil
}

func saveFileDialog(opts FileDialogOptions) (string, error) {
	r, err := newOFNRequest(opts, maxPathChars)
	if err != nil {
		return "", err
	}
	r.ofn.flags = ofnOverwritePrompt | ofnPathMustExist | ofnNoChangeDir | ofnExplorer

	ok, err := r.call(procGetSaveFileNameW)
	if err != nil || !ok {
		return "", err
	}
	return fromUTF16(r.fileBuf), nil
}

func openMultiFileDialog(opts FileDialogOptions) ([]string, error) {
	r, err := newOFNRequest(opts, multiPathChars)
	if err != nil {
		return nil, err
	}
	r.ofn.flags = ofnFileMustExist | ofnPathMustExist | ofnNoChangeDir |
		ofnExplorer | ofnAllowMultiSelect

	ok, err := r.call(procGetOpenFileNameW)
	if err != nil || !ok {
		return nil, err
	}
	return splitMultiSelection(r.fileBuf), nil
}

// splitMultiSelection decodes the multi-select result buffer: either a
// single full path, or a directory followed by file names, each segment
// NUL-terminated with a double NUL at the end.
func splitMultiSelection(buf []uint16) []string {
	var segments []string
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i == start {
			break // double NUL: end of list
		}
		segments = append(segments, fromUTF16(buf[start:i+1]))
		start = i + 1
	}

	if len(segments) == 0 {
		return nil
	}
	if len(segments) == 1 {
		return segments // single selection: already a full path
	}

	dir := strings.TrimSuffix(segments[0], `\`)
	files := make([]string, 0, len(segments)-1)
	for _, name := range segments[1:] {
		files = append(files, dir+`\`+name)
	}
	return files
}

// Folder browser flags and messages
const (
	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040

	bffmInitialized   = 1
	bffmSetSelectionW = 0x0467 // WM_USER + 103
)

var (
	browseProcOnce sync.Once
	browseProcPtr  uintptr
)

// browseCallback selects the initial directory once the dialog is up.
func browseCallback(hwnd, msg, lParam, lpData uintptr) uintptr {
	if msg == bffmInitialized && lpData != 0 {
		procSendMessageW.Call(hwnd, bffmSetSelectionW, 1, lpData)
	}
	return 0
}

func pickFolderDialog(title, initialDir string) (string, error) {
	var titlePtr *uint16
	var err error
	if title != "" {
		if titlePtr, err = toUTF16Ptr(title); err != nil {
			return "", err
		}
	}

	bi := browseInfoW{
		lpszTitle: titlePtr,
		ulFlags:   bifReturnOnlyFSDirs | bifNewDialogStyle,
	}

	var dirBuf []uint16
	if initialDir != "" {
		if dirBuf, err = toUTF16(initialDir); err != nil {
			return "", err
		}
		browseProcOnce.Do(func() {
			browseProcPtr = syscall.NewCallback(browseCallback)
		})
		bi.lpfn = browseProcPtr
		bi.lParam = uintptr(unsafe.Pointer(&dirBuf[0]))
	}

	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	runtime.KeepAlive(dirBuf)
	if pidl == 0 {
		return "", nil // cancelled
	}
	defer procCoTaskMemFree.Call(pidl)

	buf := make([]uint16, maxFolderPath)
	ok, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
	if ok == 0 {
		return "", fmt.Errorf("windlg: failed to resolve selected folder path")
	}
	return fromUTF16(buf), nil
}
