package notification

import "log"

// ShowBlockingError tells the user why the overlay cannot start. It blocks
// until dismissed where a native dialog exists.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	showBlockingError(title, message)
}
