package tray

import (
	"log"
	"sync"

	"github.com/getlantern/systray"
)

// Config describes the native tray icon.
type Config struct {
	Tooltip string
	Icon    Icon
	// OnClick receives the identifier of every activated menu item.
	OnClick func(id string)
}

// Tray is the process-wide system tray icon. The underlying systray package
// is global, so only one Tray may be started per process.
type Tray struct {
	cfg      Config
	stopOnce sync.Once
	done     chan struct{}
}

func New(cfg Config) *Tray {
	return &Tray{cfg: cfg, done: make(chan struct{})}
}

// Start registers the tray icon with the OS. See start_windows.go and
// start_other.go for how the native loop is driven.
func (t *Tray) Start() {
	start(t.onReady, t.onExit)
}

// Destroy removes the tray icon and stops click forwarding.
func (t *Tray) Destroy() {
	t.stopOnce.Do(func() {
		close(t.done)
		systray.Quit()
	})
}

func (t *Tray) onReady() {
	systray.SetIcon(platformIcon(t.cfg.Icon))
	systray.SetTooltip(t.cfg.Tooltip)

	for _, item := range Menu() {
		mi := systray.AddMenuItem(item.Label, item.Label)
		go t.forward(item.ID, mi.ClickedCh)
	}
	log.Printf("tray: ready (%d items)", len(Menu()))
}

func (t *Tray) onExit() {
	log.Printf("tray: exited")
}

func (t *Tray) forward(id string, clicked <-chan struct{}) {
	for {
		select {
		case <-t.done:
			return
		case <-clicked:
			if t.cfg.OnClick != nil {
				t.cfg.OnClick(id)
			}
		}
	}
}
