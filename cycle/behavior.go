package cycle

import (
	"time"

	"github.com/goCycleKeys/emitter"
	"github.com/goCycleKeys/encoder"
	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/logging"
	"github.com/goCycleKeys/wordlist"
)

// Separator is typed after every emitted string.
const Separator = hid.Space

// BindingEvent is a press or release of a configured binding.
type BindingEvent struct {
	Binding   int
	List      int
	Position  int
	Timestamp time.Duration
}

// Result tells the host whether the binding consumed the event.
type Result int

// Opaque means the binding consumed the event; it is the only result a
// cycle binding returns.
const Opaque Result = 0

// Behavior handles presses and releases for every binding in a registry.
type Behavior struct {
	registry *Registry
	table    wordlist.Table
	emit     *emitter.Emitter
	logger   logging.Logger
	timeout  time.Duration
}

// NewBehavior wires a behavior. A zero timeout keeps a cycle alive until
// another key is typed.
func NewBehavior(registry *Registry, table wordlist.Table, emit *emitter.Emitter, logger logging.Logger, timeout time.Duration) *Behavior {
	return &Behavior{
		registry: registry,
		table:    table,
		emit:     emit,
		logger:   logger,
		timeout:  timeout,
	}
}

// Pressed undoes the binding's previous output when it is continuing the
// same cycle, types the next string of the list and a separator, and
// advances the cursor.
func (b *Behavior) Pressed(ev BindingEvent) Result {
	list, ok := b.table.Lookup(ev.List)
	if !ok || len(list) == 0 {
		b.logger.Error("invalid list index", "list", ev.List, "binding", ev.Binding, "lists", b.table.Len())
		return Opaque
	}
	st, ok := b.registry.State(ev.Binding)
	if !ok {
		b.logger.Error("unknown binding", "binding", ev.Binding)
		return Opaque
	}

	b.logger.Debug("cycle string pressed", "binding", ev.Binding, "list", ev.List, "index", st.CurrentIndex)

	newSequence := st.LastList != ev.List
	if !newSequence && b.timeout > 0 && ev.Timestamp-st.LastPress > b.timeout {
		b.logger.Debug("cycle timed out", "binding", ev.Binding, "idle", ev.Timestamp-st.LastPress)
		newSequence = true
	}
	if newSequence {
		b.logger.Debug("new cycle sequence", "list", ev.List)
		st.CurrentIndex = 0
	}

	if st.Active && !newSequence {
		// The string typed last is the one before the cursor.
		prev := (st.CurrentIndex - 1 + len(list)) % len(list)
		// Backspaces count typed characters, so multibyte and skipped
		// characters are removed exactly.
		n := encoder.TypedLen(list[prev]) + 1
		b.logger.Debug("backspacing previous string", "text", list[prev], "count", n)
		b.emit.Backspace(n)
	}

	current := list[st.CurrentIndex]
	typed := b.emit.Type(current)
	b.emit.Tap(Separator)
	b.logger.Debug("typed string", "text", current, "chars", typed)

	next := (st.CurrentIndex + 1) % len(list)
	b.registry.update(ev.Binding, func(s *State) {
		s.CurrentIndex = next
		s.Active = true
		s.LastList = ev.List
		s.LastPress = ev.Timestamp
	})
	return Opaque
}

// Released leaves the state alone so the next press of the same binding
// continues the cycle.
func (b *Behavior) Released(ev BindingEvent) Result {
	b.logger.Debug("cycle string released", "binding", ev.Binding)
	return Opaque
}
