//go:build windows

package host

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	gwlExStyle      int32 = -20
	wsExLayered           = 0x00080000
	wsExTransparent       = 0x00000020
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW         = user32.NewProc("FindWindowW")
	procGetWindowLongPtrW   = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW   = user32.NewProc("SetWindowLongPtrW")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

func findWindow(title string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	if hwnd == 0 {
		return 0, fmt.Errorf("window %q not found", title)
	}
	return hwnd, nil
}

// setClickThrough toggles WS_EX_TRANSPARENT so pointer input falls through
// to whatever is beneath the overlay.
func setClickThrough(title string, ignore bool) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
	next := style | wsExLayered
	if ignore {
		next |= wsExTransparent
	} else {
		next &^= wsExTransparent
	}
	if next == style {
		return nil
	}
	prev, _, callErr := procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), next)
	if prev == 0 && callErr != windows.ERROR_SUCCESS {
		return fmt.Errorf("SetWindowLongPtrW: %w", callErr)
	}
	return nil
}

func focusWindow(title string) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	if ok, _, _ := procSetForegroundWindow.Call(hwnd); ok == 0 {
		return fmt.Errorf("SetForegroundWindow refused")
	}
	return nil
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
