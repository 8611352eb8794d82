// Package emitter sends keystrokes by raising key events on the bus.
package emitter

import (
	"time"

	"github.com/goCycleKeys/encoder"
	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/logging"
)

// Sink is where synthesized key events go.
type Sink interface {
	Raise(ev keybus.Event) (bool, error)
}

// Clock returns a monotonic timestamp.
type Clock func() time.Duration

// MonotonicClock returns a clock counting from the moment it is created.
func MonotonicClock() Clock {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Emitter turns taps and modifier brackets into down/up events. A rejected
// half is logged and otherwise treated as sent.
type Emitter struct {
	sink     Sink
	clock    Clock
	logger   logging.Logger
	tapDelay time.Duration
	failures int
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock replaces the monotonic clock.
func WithClock(c Clock) Option {
	return func(e *Emitter) { e.clock = c }
}

// WithTapDelay sleeps d after every tap.
func WithTapDelay(d time.Duration) Option {
	return func(e *Emitter) { e.tapDelay = d }
}

// New returns an emitter raising on sink.
func New(sink Sink, logger logging.Logger, opts ...Option) *Emitter {
	e := &Emitter{sink: sink, clock: MonotonicClock(), logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emitter) raise(u hid.Usage, pressed bool) {
	_, err := e.sink.Raise(keybus.Event{
		Usage:     u,
		Pressed:   pressed,
		Timestamp: e.clock(),
		Synthetic: true,
	})
	if err != nil {
		e.failures++
		e.logger.Error("failed to raise key event", "key", u, "pressed", pressed, "err", err)
	}
}

// Tap presses and releases u.
func (e *Emitter) Tap(u hid.Usage) {
	e.raise(u, true)
	e.raise(u, false)
	if e.tapDelay > 0 {
		time.Sleep(e.tapDelay)
	}
}

// PressModifier raises a down-only event for mod.
func (e *Emitter) PressModifier(mod hid.Usage) {
	e.raise(mod, true)
}

// ReleaseModifier raises an up-only event for mod.
func (e *Emitter) ReleaseModifier(mod hid.Usage) {
	e.raise(mod, false)
}

// Emit sends one encoded instruction.
func (e *Emitter) Emit(in encoder.Instruction) {
	if in.HasModifier() {
		e.PressModifier(in.Modifier)
	}
	e.Tap(in.Base)
	if in.HasModifier() {
		e.ReleaseModifier(in.Modifier)
	}
}

// Backspace taps backspace n times.
func (e *Emitter) Backspace(n int) {
	for i := 0; i < n; i++ {
		e.Tap(hid.Backspace)
	}
}

// Type encodes s and emits it. Unmappable characters are logged and
// skipped. It returns the number of characters typed.
func (e *Emitter) Type(s string) int {
	out, skipped := encoder.EncodeString(s)
	for _, u := range skipped {
		e.logger.Error("cannot map character to keycode", "char", string(u.Char), "offset", u.Offset, "text", s)
	}
	for _, in := range out {
		e.Emit(in)
	}
	return len(out)
}

// Failures returns how many raises were rejected so far.
func (e *Emitter) Failures() int {
	return e.failures
}
