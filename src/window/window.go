package window

import "log"

// Host is the platform window the overlay lives in. Coordinates and sizes are
// logical units. The window itself is owned by the host runtime.
type Host interface {
	SetPosition(x, y float64) error
	SetSize(width, height float64) error
	SetIgnoreCursorEvents(ignore bool) error
	IsVisible() (bool, error)
	Show() error
	Hide() error
	Focus() error
}

// Controller applies best-effort mutations to the overlay window. Every
// operation is a direct assignment to host state; failures are logged and
// reported as false, never returned as errors, so a window manager rejecting
// a request cannot take the overlay down.
type Controller struct {
	host Host
}

func NewController(host Host) *Controller {
	return &Controller{host: host}
}

// SetPosition moves the window to logical (x, y).
func (c *Controller) SetPosition(x, y float64) bool {
	return c.apply("set position", func(h Host) error { return h.SetPosition(x, y) })
}

// SetSize resizes the window to logical (width, height).
func (c *Controller) SetSize(width, height float64) bool {
	return c.apply("set size", func(h Host) error { return h.SetSize(width, height) })
}

// SetIgnoreCursorEvents toggles click-through.
func (c *Controller) SetIgnoreCursorEvents(ignore bool) bool {
	return c.apply("set ignore cursor events", func(h Host) error { return h.SetIgnoreCursorEvents(ignore) })
}

// ToggleVisibility hides a visible window, otherwise shows and focuses it.
// A failed visibility query counts as hidden so a lost window can always be
// brought back.
func (c *Controller) ToggleVisibility() bool {
	if c == nil || c.host == nil {
		return false
	}
	visible, err := c.host.IsVisible()
	if err != nil {
		log.Printf("window: visibility query failed, assuming hidden: %v", err)
		visible = false
	}
	if visible {
		return c.apply("hide", func(h Host) error { return h.Hide() })
	}
	return c.Reveal()
}

// Reveal shows the window and requests input focus.
func (c *Controller) Reveal() bool {
	shown := c.apply("show", func(h Host) error { return h.Show() })
	focused := c.apply("focus", func(h Host) error { return h.Focus() })
	return shown && focused
}

func (c *Controller) apply(op string, fn func(Host) error) bool {
	if c == nil || c.host == nil {
		return false
	}
	if err := fn(c.host); err != nil {
		log.Printf("window: %s failed: %v", op, err)
		return false
	}
	return true
}
