// Package keybus is the keycode event substrate: every key press and
// release, physical or synthesized, is raised here, offered to the
// subscribed listeners in order, and sent to the output unless a listener
// captures it.
package keybus

import (
	"fmt"
	"sync"
	"time"

	"github.com/goCycleKeys/hid"
)

// Event is a keycode state change.
type Event struct {
	Usage     hid.Usage
	Pressed   bool
	Timestamp time.Duration
	Synthetic bool
}

func (e Event) String() string {
	state := "up"
	if e.Pressed {
		state = "down"
	}
	return fmt.Sprintf("%s %s @%s", e.Usage, state, e.Timestamp)
}

// Verdict is a listener's decision about an event.
type Verdict int

const (
	Bubble Verdict = iota
	Captured
)

// Listener observes events. Listeners may raise further events on the bus
// while handling one.
type Listener interface {
	OnKeycode(ev Event) Verdict
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event) Verdict

func (f ListenerFunc) OnKeycode(ev Event) Verdict {
	return f(ev)
}

// Output receives the events that bubbled through every listener.
type Output interface {
	Send(ev Event) error
}

type subscription struct {
	name     string
	listener Listener
}

// Bus dispatches events synchronously. Raise is reentrant: a listener that
// raises from inside OnKeycode has its events fully dispatched before the
// outer Raise continues.
type Bus struct {
	mu        sync.RWMutex
	listeners []subscription
	out       Output
}

// New returns a bus that forwards bubbled events to out. A nil out drops them.
func New(out Output) *Bus {
	return &Bus{out: out}
}

// Subscribe appends a listener. Listeners see events in subscription order.
func (b *Bus) Subscribe(name string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, subscription{name: name, listener: l})
}

// Raise offers ev to every listener and then to the output. It reports
// whether a listener captured the event, and any output error.
func (b *Bus) Raise(ev Event) (bool, error) {
	b.mu.RLock()
	subs := make([]subscription, len(b.listeners))
	copy(subs, b.listeners)
	out := b.out
	b.mu.RUnlock()

	for _, s := range subs {
		if s.listener.OnKeycode(ev) == Captured {
			return true, nil
		}
	}
	if out == nil {
		return false, nil
	}
	if err := out.Send(ev); err != nil {
		return false, fmt.Errorf("send %s: %w", ev, err)
	}
	return false, nil
}
