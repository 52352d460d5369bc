package tray

// Stable menu identifiers. Routing depends only on these, never on labels.
const (
	IDShow  = "show"
	IDSleep = "sleep"
	IDAbout = "about"
	IDQuit  = "quit"
)

// MenuItem is one entry of the tray menu.
type MenuItem struct {
	ID    string
	Label string
}

// Menu returns the tray menu in display order. The slice is a fresh copy.
func Menu() []MenuItem {
	return []MenuItem{
		{ID: IDShow, Label: "Show/Hide"},
		{ID: IDSleep, Label: "Toggle Sleep"},
		{ID: IDAbout, Label: "About"},
		{ID: IDQuit, Label: "Quit Chill"},
	}
}

// Event is a tray menu activation, parsed from the item identifier.
type Event int

const (
	EventUnknown Event = iota
	EventShowHide
	EventToggleSleep
	EventAbout
	EventQuit
)

// ParseEvent maps a raw menu identifier to its Event. Anything outside the
// fixed set is EventUnknown.
func ParseEvent(id string) Event {
	switch id {
	case IDShow:
		return EventShowHide
	case IDSleep:
		return EventToggleSleep
	case IDAbout:
		return EventAbout
	case IDQuit:
		return EventQuit
	default:
		return EventUnknown
	}
}

func (e Event) String() string {
	switch e {
	case EventShowHide:
		return "ShowHide"
	case EventToggleSleep:
		return "ToggleSleep"
	case EventAbout:
		return "About"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
