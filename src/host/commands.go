package host

import (
	"chill-overlay/src/screen"
	"chill-overlay/src/window"
)

// Commands is bound to the front-end. Mutations are advisory: they return
// nothing and a rejected request leaves the overlay running.
type Commands struct {
	screen *screen.Service
	window *window.Controller
}

func NewCommands(s *screen.Service, w *window.Controller) *Commands {
	return &Commands{screen: s, window: w}
}

// GetScreenSize returns [width, height] of the current screen in logical units.
func (c *Commands) GetScreenSize() [2]float64 {
	s := c.screen.ResolveLogicalSize()
	return [2]float64{s.Width, s.Height}
}

func (c *Commands) SetPosition(x, y float64) {
	c.window.SetPosition(x, y)
}

func (c *Commands) SetSize(width, height float64) {
	c.window.SetSize(width, height)
}

func (c *Commands) SetIgnoreCursorEvents(ignore bool) {
	c.window.SetIgnoreCursorEvents(ignore)
}
