package keybus

import (
	"sync"

	"github.com/goCycleKeys/hid"
)

// Recorder is an Output that keeps every event it is sent. Set Fail to make
// Send reject events.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Fail   error
}

func (r *Recorder) Send(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Presses returns the usages of the recorded key-down events, in order.
func (r *Recorder) Presses() []hid.Usage {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []hid.Usage
	for _, ev := range r.events {
		if ev.Pressed {
			out = append(out, ev.Usage)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
}
