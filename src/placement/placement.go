package placement

import "chill-overlay/src/screen"

// Footprint is the overlay size the startup placement assumes. It is not read
// from the window, so centering is approximate when the window is resized.
var Footprint = screen.Size{Width: 200, Height: 200}

// Position is a logical screen coordinate.
type Position struct {
	X float64
	Y float64
}

// StartupPosition docks the overlay at the bottom center of the screen.
func StartupPosition(s screen.Size) Position {
	return Position{
		X: s.Width/2 - Footprint.Width/2,
		Y: s.Height - Footprint.Height,
	}
}

// Mover is the part of the window controller startup placement needs.
type Mover interface {
	SetPosition(x, y float64) bool
}

// ApplyStartup resolves the screen once and moves the overlay to its startup
// position. It still places the window when geometry fell back to defaults.
func ApplyStartup(geometry *screen.Service, w Mover) Position {
	pos := StartupPosition(geometry.ResolveLogicalSize())
	w.SetPosition(pos.X, pos.Y)
	return pos
}
