package cycle

import (
	"github.com/goCycleKeys/emitter"
	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/logging"
)

// Listener watches every key press on the bus. Punctuation typed right after
// an active binding replaces that binding's separator; anything else
// invalidates all bindings so the next press starts a fresh cycle.
type Listener struct {
	registry *Registry
	emit     *emitter.Emitter
	logger   logging.Logger
	shift    map[hid.Usage]bool
}

// NewListener returns a listener over registry that emits through emit.
func NewListener(registry *Registry, emit *emitter.Emitter, logger logging.Logger) *Listener {
	return &Listener{
		registry: registry,
		emit:     emit,
		logger:   logger,
		shift:    make(map[hid.Usage]bool),
	}
}

func (l *Listener) shiftHeld() bool {
	return len(l.heldShifts()) > 0
}

// OnKeycode implements keybus.Listener.
func (l *Listener) OnKeycode(ev keybus.Event) keybus.Verdict {
	// Modifiers only change how the next key is read.
	if ev.Usage.IsModifier() {
		if !ev.Synthetic && (ev.Usage == hid.LeftShift || ev.Usage == hid.RightShift) {
			l.shift[ev.Usage] = ev.Pressed
		}
		return keybus.Bubble
	}
	if !ev.Pressed {
		return keybus.Bubble
	}

	// Keys we typed ourselves still invalidate every binding, but never
	// collapse: a word containing punctuation must not rewrite itself.
	if ev.Synthetic {
		l.registry.ResetAll()
		return keybus.Bubble
	}

	anyActive := l.registry.AnyActive()
	p := Classify(ev.Usage, l.shiftHeld())
	if !anyActive || p.Kind == NotPunct {
		l.registry.ResetAll()
		return keybus.Bubble
	}

	l.logger.Debug("punctuation after active cycle string, replacing separator", "key", ev.Usage)
	// Plain and attached keys are retyped under whatever shift the user
	// holds. Fixed-output kinds lift it around the replacement and put it
	// back afterwards.
	var held []hid.Usage
	if p.Kind == Shifted || p.Kind == AltBase {
		held = l.heldShifts()
	}
	for _, u := range held {
		l.emit.ReleaseModifier(u)
	}
	l.emit.Tap(hid.Backspace)
	l.emit.Emit(p.Instruction())
	if p.Separator() {
		l.emit.Tap(Separator)
	}
	for _, u := range held {
		l.emit.PressModifier(u)
	}

	l.registry.ResetAll()
	return keybus.Captured
}

func (l *Listener) heldShifts() []hid.Usage {
	var held []hid.Usage
	for _, u := range []hid.Usage{hid.LeftShift, hid.RightShift} {
		if l.shift[u] {
			held = append(held, u)
		}
	}
	return held
}
