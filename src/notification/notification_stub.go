//go:build !windows

package notification

// The log line written by ShowBlockingError is the only surface here.
func showBlockingError(title, message string) {}
