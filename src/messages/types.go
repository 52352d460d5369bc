package messages

// Message is a notification sent from the native side to the front-end.
// Type is the event name the front-end listens on. Notifications carry no
// payload.
type Message interface {
	Type() string
}

// Event names the front-end subscribes to.
const (
	TypeTrayAbout       = "tray-about"
	TypeTrayToggleSleep = "tray-toggle-sleep"
)

// AboutRequested - sent when the About tray item is activated
type AboutRequested struct{}

func (m AboutRequested) Type() string { return TypeTrayAbout }

// ToggleSleepRequested - sent when the Toggle Sleep tray item is activated
type ToggleSleepRequested struct{}

func (m ToggleSleepRequested) Type() string { return TypeTrayToggleSleep }

// Emitter delivers messages to the front-end window. Delivery is
// fire-and-forget.
type Emitter interface {
	Emit(m Message)
}
