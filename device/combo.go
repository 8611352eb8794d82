package device

import (
	"time"

	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/keymaps"
)

// ActionKind says what the loop should do with an Action.
type ActionKind int

const (
	// ActionKey forwards an ordinary key transition to the bus.
	ActionKey ActionKind = iota
	// ActionPress fires a binding press.
	ActionPress
	// ActionRelease fires a binding release.
	ActionRelease
)

// Action is one output of the combo detector.
type Action struct {
	Kind    ActionKind
	Event   keybus.Event
	Binding int
	List    int
}

// ComboDetector turns the key transitions of one device into binding
// presses and plain keys. Key-downs that may still complete a combo are
// held back until the combo fires, turns impossible, or times out.
type ComboDetector struct {
	mapping keymaps.KeyMapping
	offset  int
	timeout time.Duration

	pending      []keybus.Event
	pendingSince time.Duration

	active   int
	consumed map[hid.Usage]bool
}

// NewComboDetector creates a detector. Binding ids it reports are the
// mapping's positions shifted by offset.
func NewComboDetector(mapping keymaps.KeyMapping, offset int, timeout time.Duration) *ComboDetector {
	return &ComboDetector{
		mapping:  mapping,
		offset:   offset,
		timeout:  timeout,
		active:   -1,
		consumed: map[hid.Usage]bool{},
	}
}

// Pending reports whether key-downs are being held back.
func (d *ComboDetector) Pending() bool {
	return len(d.pending) > 0
}

// Deadline is when the held-back keys expire.
func (d *ComboDetector) Deadline() (time.Duration, bool) {
	if len(d.pending) == 0 {
		return 0, false
	}
	return d.pendingSince + d.timeout, true
}

// Feed processes one transition.
func (d *ComboDetector) Feed(ev keybus.Event) []Action {
	if ev.Pressed {
		return d.down(ev)
	}
	return d.up(ev)
}

func (d *ComboDetector) down(ev keybus.Event) []Action {
	if d.consumed[ev.Usage] {
		return nil
	}
	if !d.mapping.IsComboKey(ev.Usage) {
		return append(d.flush(), key(ev))
	}

	held := append(d.pendingUsages(), ev.Usage)
	if idx, ok := d.mapping.Find(held); ok {
		for _, u := range held {
			d.consumed[u] = true
		}
		d.pending = nil
		d.active = idx
		return []Action{d.binding(ActionPress, idx, ev.Timestamp)}
	}
	if d.mapping.CouldComplete(held) {
		if len(d.pending) == 0 {
			d.pendingSince = ev.Timestamp
		}
		d.pending = append(d.pending, ev)
		return nil
	}

	// The new key cannot extend what is held; start over from it alone.
	actions := d.flush()
	if idx, ok := d.mapping.Find([]hid.Usage{ev.Usage}); ok {
		d.consumed[ev.Usage] = true
		d.active = idx
		return append(actions, d.binding(ActionPress, idx, ev.Timestamp))
	}
	if d.mapping.CouldComplete([]hid.Usage{ev.Usage}) {
		d.pending = []keybus.Event{ev}
		d.pendingSince = ev.Timestamp
		return actions
	}
	return append(actions, key(ev))
}

func (d *ComboDetector) up(ev keybus.Event) []Action {
	if d.consumed[ev.Usage] {
		delete(d.consumed, ev.Usage)
		if d.active < 0 {
			return nil
		}
		idx := d.active
		d.active = -1
		return []Action{d.binding(ActionRelease, idx, ev.Timestamp)}
	}
	return append(d.flush(), key(ev))
}

// Expire flushes held-back keys once their timeout has passed.
func (d *ComboDetector) Expire(now time.Duration) []Action {
	deadline, ok := d.Deadline()
	if !ok || now < deadline {
		return nil
	}
	return d.flush()
}

func (d *ComboDetector) flush() []Action {
	if len(d.pending) == 0 {
		return nil
	}
	actions := make([]Action, 0, len(d.pending))
	for _, ev := range d.pending {
		actions = append(actions, key(ev))
	}
	d.pending = nil
	return actions
}

func (d *ComboDetector) pendingUsages() []hid.Usage {
	held := make([]hid.Usage, 0, len(d.pending)+1)
	for _, ev := range d.pending {
		held = append(held, ev.Usage)
	}
	return held
}

func (d *ComboDetector) binding(kind ActionKind, idx int, ts time.Duration) Action {
	return Action{
		Kind:    kind,
		Binding: d.offset + idx,
		List:    d.mapping.Bindings[idx].List,
		Event:   keybus.Event{Timestamp: ts},
	}
}

func key(ev keybus.Event) Action {
	return Action{Kind: ActionKey, Event: ev}
}
