// Package host adapts the Wails runtime to the overlay's window, screen and
// front-end event interfaces, and exposes the command surface the front-end
// calls.
package host

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"chill-overlay/src/messages"
	"chill-overlay/src/screen"
)

var (
	// ErrNotStarted is returned before the Wails runtime has called Startup.
	ErrNotStarted = errors.New("window runtime not started")
	// ErrUnsupported is returned for operations the platform cannot perform.
	ErrUnsupported = errors.New("not supported on this platform")
)

// Bridge is the single overlay window as seen through the Wails runtime. It
// implements window.Host, screen.MonitorSource and messages.Emitter.
type Bridge struct {
	title string

	mu      sync.Mutex
	ctx     context.Context
	visible bool
}

// NewBridge creates a bridge for the window with the given title. The title
// is used to find the native handle on platforms that need one.
func NewBridge(title string) *Bridge {
	return &Bridge{title: title}
}

// Startup is the Wails OnStartup hook.
func (b *Bridge) Startup(ctx context.Context) {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()
	log.Printf("host: runtime started")
}

// Shutdown is the Wails OnShutdown hook.
func (b *Bridge) Shutdown(ctx context.Context) {
	b.mu.Lock()
	b.ctx = nil
	b.mu.Unlock()
	log.Printf("host: runtime stopped")
}

func (b *Bridge) context() (context.Context, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx == nil {
		return nil, ErrNotStarted
	}
	return b.ctx, nil
}

// call runs fn against the runtime context and converts runtime panics into
// errors.
func (b *Bridge) call(op string, fn func(ctx context.Context)) (err error) {
	ctx, err := b.context()
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", op, r)
		}
	}()
	fn(ctx)
	return nil
}

func (b *Bridge) SetPosition(x, y float64) error {
	return b.call("set position", func(ctx context.Context) {
		runtime.WindowSetPosition(ctx, int(math.Round(x)), int(math.Round(y)))
	})
}

func (b *Bridge) SetSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %vx%v", width, height)
	}
	return b.call("set size", func(ctx context.Context) {
		runtime.WindowSetSize(ctx, int(math.Round(width)), int(math.Round(height)))
	})
}

func (b *Bridge) SetIgnoreCursorEvents(ignore bool) error {
	if _, err := b.context(); err != nil {
		return err
	}
	return setClickThrough(b.title, ignore)
}

// IsVisible reports the last visibility the bridge applied. The Wails v2
// runtime has no visibility query, and the window starts hidden.
func (b *Bridge) IsVisible() (bool, error) {
	if _, err := b.context(); err != nil {
		return false, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible, nil
}

func (b *Bridge) Show() error {
	err := b.call("show", runtime.WindowShow)
	if err == nil {
		b.setVisible(true)
	}
	return err
}

func (b *Bridge) Hide() error {
	err := b.call("hide", runtime.WindowHide)
	if err == nil {
		b.setVisible(false)
	}
	return err
}

func (b *Bridge) Focus() error {
	if _, err := b.context(); err != nil {
		return err
	}
	return focusWindow(b.title)
}

func (b *Bridge) setVisible(v bool) {
	b.mu.Lock()
	b.visible = v
	b.mu.Unlock()
}

// Quit asks the runtime to close the window and return from wails.Run.
func (b *Bridge) Quit() error {
	return b.call("quit", runtime.Quit)
}

// Current returns the screen the window is on, or the primary screen.
func (b *Bridge) Current() (screen.Monitor, bool, error) {
	ctx, err := b.context()
	if err != nil {
		return screen.Monitor{}, false, err
	}
	screens, err := runtime.ScreenGetAll(ctx)
	if err != nil {
		return screen.Monitor{}, false, err
	}
	s, ok := pickScreen(screens)
	if !ok {
		return screen.Monitor{}, false, nil
	}
	return toMonitor(s), true, nil
}

// Emit sends a payload-less event to the front-end.
func (b *Bridge) Emit(m messages.Message) {
	err := b.call("emit "+m.Type(), func(ctx context.Context) {
		runtime.EventsEmit(ctx, m.Type())
	})
	if err != nil {
		log.Printf("host: dropping %s: %v", m.Type(), err)
	}
}

func pickScreen(screens []runtime.Screen) (runtime.Screen, bool) {
	for _, s := range screens {
		if s.IsCurrent {
			return s, true
		}
	}
	for _, s := range screens {
		if s.IsPrimary {
			return s, true
		}
	}
	if len(screens) > 0 {
		return screens[0], true
	}
	return runtime.Screen{}, false
}

// toMonitor derives the scale factor from the physical and logical sizes
// Wails reports.
func toMonitor(s runtime.Screen) screen.Monitor {
	physW, physH := s.PhysicalSize.Width, s.PhysicalSize.Height
	if physW <= 0 || physH <= 0 {
		physW, physH = s.Size.Width, s.Size.Height
	}
	scale := 0.0
	if s.Size.Width > 0 {
		scale = float64(physW) / float64(s.Size.Width)
	}
	return screen.Monitor{WidthPx: physW, HeightPx: physH, ScaleFactor: scale}
}
