//go:build windows

package windlg

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestDrainQuitMessage(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var m msgW
	// Touching the queue first makes sure the thread has one.
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, 0)

	// An aborted dialog leaves exactly this behind: a posted quit with no
	// loop left to consume it.
	procPostQuitMessage.Call(0)
	drainQuitMessage()

	if got, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmQuit, wmQuit, pmRemove); got != 0 {
		t.Fatal("WM_QUIT still queued after drain; the next modal loop would exit immediately")
	}
}

func TestDrainQuitMessageEmptyQueue(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Draining with nothing pending must not disturb anything.
	drainQuitMessage()

	var m msgW
	if got, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmQuit, wmQuit, pmRemove); got != 0 {
		t.Fatal("unexpected WM_QUIT in queue")
	}
}
