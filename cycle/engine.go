package cycle

import (
	"time"

	"github.com/goCycleKeys/emitter"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/logging"
	"github.com/goCycleKeys/wordlist"
)

// Options configures an Engine.
type Options struct {
	Bindings int
	Table    wordlist.Table
	Output   keybus.Output
	Logger   logging.Logger
	Clock    emitter.Clock
	TapDelay time.Duration
	Timeout  time.Duration
}

// Engine is the composition root of the cycle core: one bus, one registry
// holding every binding, the press/release behavior and the global
// listener subscribed to the bus.
type Engine struct {
	Bus      *keybus.Bus
	Registry *Registry
	Behavior *Behavior
	Listener *Listener
	Emitter  *emitter.Emitter
}

// NewEngine builds and wires an engine.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	table := opts.Table
	if table == nil {
		table = wordlist.Default()
	}

	bus := keybus.New(opts.Output)
	emitOpts := []emitter.Option{emitter.WithTapDelay(opts.TapDelay)}
	if opts.Clock != nil {
		emitOpts = append(emitOpts, emitter.WithClock(opts.Clock))
	}
	emit := emitter.New(bus, logger.With("component", "emitter"), emitOpts...)

	registry := NewRegistry(opts.Bindings)
	listener := NewListener(registry, emit, logger.With("component", "listener"))
	bus.Subscribe("cycle_string", listener)

	return &Engine{
		Bus:      bus,
		Registry: registry,
		Behavior: NewBehavior(registry, table, emit, logger.With("component", "behavior"), opts.Timeout),
		Listener: listener,
		Emitter:  emit,
	}
}

// Press runs the press handler for one binding.
func (e *Engine) Press(ev BindingEvent) Result {
	return e.Behavior.Pressed(ev)
}

// Release runs the release handler for one binding.
func (e *Engine) Release(ev BindingEvent) Result {
	return e.Behavior.Released(ev)
}

// Key raises an ordinary key transition on the bus, as the host would for
// any physical key that is not a binding.
func (e *Engine) Key(ev keybus.Event) (bool, error) {
	return e.Bus.Raise(ev)
}
