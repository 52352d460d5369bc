//go:build !windows

package host

// Click-through needs a native window handle the Wails v2 runtime does not
// expose outside Windows.
func setClickThrough(title string, ignore bool) error {
	return ErrUnsupported
}

// WindowShow already raises and focuses the window here.
func focusWindow(title string) error {
	return nil
}
