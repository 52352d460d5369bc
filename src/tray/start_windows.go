//go:build windows

package tray

import (
	"runtime"

	"github.com/getlantern/systray"
)

// The Windows tray needs its own message loop; the webview owns the main one.
func start(onReady, onExit func()) {
	go func() {
		runtime.LockOSThread()
		systray.Run(onReady, onExit)
	}()
}

func platformIcon(i Icon) []byte { return i.ICO() }
