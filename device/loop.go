package device

import (
	"context"
	"time"

	"github.com/goCycleKeys/cycle"
	"github.com/goCycleKeys/emitter"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/logging"
)

// RawKey is a key transition as read from a device. Source indexes the
// loop's detectors.
type RawKey struct {
	Source  int
	Code    uint16
	Pressed bool
}

// RawSender forwards codes that have no usage mapping.
type RawSender interface {
	SendRaw(code uint16, pressed bool) error
}

// Loop serializes every device's events through one goroutine, so the
// engine only ever runs on one thread.
type Loop struct {
	engine    *cycle.Engine
	detectors []*ComboDetector
	raw       RawSender
	clock     emitter.Clock
	logger    logging.Logger
}

// NewLoop creates an event loop. detectors[i] serves RawKey.Source i.
func NewLoop(engine *cycle.Engine, detectors []*ComboDetector, raw RawSender, clock emitter.Clock, logger logging.Logger) *Loop {
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}
	return &Loop{
		engine:    engine,
		detectors: detectors,
		raw:       raw,
		clock:     clock,
		logger:    logger,
	}
}

// Run handles keys from in until ctx is done or in is closed.
func (l *Loop) Run(ctx context.Context, in <-chan RawKey) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		var expire <-chan time.Time
		if deadline, ok := l.nextDeadline(); ok {
			wait := deadline - l.clock()
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			expire = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case k, ok := <-in:
			if !ok {
				return nil
			}
			l.Handle(k)
		case <-expire:
			l.Expire()
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
}

func (l *Loop) nextDeadline() (time.Duration, bool) {
	var next time.Duration
	found := false
	for _, d := range l.detectors {
		if deadline, ok := d.Deadline(); ok && (!found || deadline < next) {
			next = deadline
			found = true
		}
	}
	return next, found
}

// Handle processes one raw key.
func (l *Loop) Handle(k RawKey) {
	u, ok := UsageOf(k.Code)
	if !ok {
		// Unknown to the engine, but still a key the user typed.
		if k.Pressed {
			l.engine.Registry.ResetAll()
		}
		if err := l.raw.SendRaw(k.Code, k.Pressed); err != nil {
			l.logger.Error("failed to forward key", "code", k.Code, "err", err)
		}
		return
	}
	if k.Source < 0 || k.Source >= len(l.detectors) {
		l.logger.Warn("key from unknown source", "source", k.Source)
		return
	}

	ev := keybus.Event{Usage: u, Pressed: k.Pressed, Timestamp: l.clock()}
	l.apply(l.detectors[k.Source].Feed(ev))
}

// Expire flushes detectors whose held-back keys timed out.
func (l *Loop) Expire() {
	now := l.clock()
	for _, d := range l.detectors {
		l.apply(d.Expire(now))
	}
}

func (l *Loop) apply(actions []Action) {
	for _, a := range actions {
		switch a.Kind {
		case ActionKey:
			if _, err := l.engine.Key(a.Event); err != nil {
				l.logger.Error("failed to send key", "event", a.Event.String(), "err", err)
			}
		case ActionPress:
			l.logger.Debug("binding pressed", "binding", a.Binding, "list", a.List)
			l.engine.Press(l.bindingEvent(a))
		case ActionRelease:
			l.engine.Release(l.bindingEvent(a))
		}
	}
}

func (l *Loop) bindingEvent(a Action) cycle.BindingEvent {
	return cycle.BindingEvent{
		Binding:   a.Binding,
		List:      a.List,
		Position:  a.Binding,
		Timestamp: a.Event.Timestamp,
	}
}
