//go:build !windows

package tray

import "github.com/getlantern/systray"

// Register hooks into the GUI loop the webview already runs.
func start(onReady, onExit func()) {
	systray.Register(onReady, onExit)
}

func platformIcon(i Icon) []byte { return i.PNG }
