package eventloop

import (
	"context"
	"log"
)

// Dispatcher handles one tray menu activation.
type Dispatcher interface {
	Dispatch(id string)
}

// Loop is the single goroutine that handles tray clicks, hotkey presses and
// second-instance activations. Each event is handled to completion before the
// next one is taken, so window state has a single mutator at a time.
type Loop struct {
	router   Dispatcher
	reveal   func()
	events   chan string
	hotkeyCh chan struct{}
	done     chan struct{}
}

// New creates a loop routing tray identifiers to router. reveal is called for
// every second-instance activation.
func New(router Dispatcher, reveal func()) *Loop {
	return &Loop{
		router:   router,
		reveal:   reveal,
		events:   make(chan string, 16),
		hotkeyCh: make(chan struct{}, 4),
		done:     make(chan struct{}),
	}
}

// Post queues a tray menu identifier. It blocks until the loop accepts the
// event or has stopped, so no click is dropped while the loop runs.
func (l *Loop) Post(id string) {
	select {
	case l.events <- id:
	case <-l.done:
		log.Printf("eventloop: stopped, dropping %q", id)
	}
}

// PostHotkey signals the show/hide hotkey. Presses arriving while one is
// pending are coalesced.
func (l *Loop) PostHotkey() {
	select {
	case l.hotkeyCh <- struct{}{}:
	default:
	}
}

// Run processes events until ctx is cancelled. activations may be nil.
func (l *Loop) Run(ctx context.Context, activations <-chan struct{}) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-l.events:
			l.router.Dispatch(id)
		case <-l.hotkeyCh:
			l.router.Dispatch("show")
		case _, ok := <-activations:
			if !ok {
				activations = nil
				continue
			}
			if l.reveal != nil {
				l.reveal()
			}
		}
	}
}
