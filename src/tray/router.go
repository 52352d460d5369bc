package tray

import (
	"log"

	"chill-overlay/src/messages"
	"chill-overlay/src/window"
)

// Router turns tray events into window actions or front-end notifications.
// Each Dispatch handles exactly one event; callers serialize dispatches.
type Router struct {
	window  *window.Controller
	emitter messages.Emitter
	exit    func(code int)
}

// RouterConfig holds the collaborators a Router acts on. Window and Emitter
// may be nil when no window exists; the matching events are then dropped.
type RouterConfig struct {
	Window  *window.Controller
	Emitter messages.Emitter
	Exit    func(code int)
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{window: cfg.Window, emitter: cfg.Emitter, exit: cfg.Exit}
}

// Dispatch routes a raw menu identifier.
func (r *Router) Dispatch(id string) {
	ev := ParseEvent(id)
	log.Printf("tray: %q -> %s", id, ev)

	switch ev {
	case EventQuit:
		if r.exit != nil {
			r.exit(0)
		}
	case EventShowHide:
		if r.window != nil {
			r.window.ToggleVisibility()
		}
	case EventAbout:
		r.emit(messages.AboutRequested{})
	case EventToggleSleep:
		r.emit(messages.ToggleSleepRequested{})
	case EventUnknown:
		log.Printf("tray: ignoring unknown menu item %q", id)
	}
}

func (r *Router) emit(m messages.Message) {
	if r.emitter == nil {
		return
	}
	r.emitter.Emit(m)
}
