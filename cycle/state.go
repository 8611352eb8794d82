// Package cycle implements cycle-string bindings: repeated presses of one
// binding step through a list of words, replacing the previous word, and a
// global listener collapses the trailing space before punctuation.
package cycle

import (
	"sync"
	"time"
)

// NoList marks a binding that has not cycled through any list yet.
const NoList = -1

// State is the per-binding cycle record.
type State struct {
	CurrentIndex int
	Active       bool
	LastList     int
	// LastPress is when the binding last emitted; only used when an idle
	// timeout is configured.
	LastPress time.Duration
}

func newState() State {
	return State{LastList: NoList}
}

// reset invalidates the binding without touching CurrentIndex; the next
// press sees a new sequence and restarts it.
func (s *State) reset() {
	s.Active = false
	s.LastList = NoList
}

// Registry owns the state of every configured binding.
type Registry struct {
	mu     sync.Mutex
	states []State
}

// NewRegistry allocates n idle bindings.
func NewRegistry(n int) *Registry {
	r := &Registry{states: make([]State, n)}
	for i := range r.states {
		r.states[i] = newState()
	}
	return r
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.states)
}

// State returns a copy of binding id's state.
func (r *Registry) State(id int) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.states) {
		return State{}, false
	}
	return r.states[id], true
}

func (r *Registry) update(id int, fn func(*State)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || id >= len(r.states) {
		return false
	}
	fn(&r.states[id])
	return true
}

// AnyActive reports whether some binding's last output is still eligible
// for undo or collapse.
func (r *Registry) AnyActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.states {
		if s.Active {
			return true
		}
	}
	return false
}

// ResetAll invalidates every binding.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.states {
		r.states[i].reset()
	}
}
