// Package statemachine provides a small named-state machine with deferred transitions.
//
// A transition requested while another state's OnEnter is still running is not
// executed immediately. It is queued and replayed by Update, one per call, so a
// state that immediately asks for the next state never recurses on the stack.
package statemachine

import (
	"fmt"
	"log"
)

// State is a named state with an optional enter handler.
type State[K comparable] struct {
	Name    K
	OnEnter func()
}

// Machine holds registered states, the current state and the pending queue.
type Machine[K comparable] struct {
	id       string
	states   map[K]State[K]
	current  *State[K]
	changing bool
	queue    []K
	logger   *log.Logger
	onChange func(from, to K)
}

// Option configures a Machine.
type Option[K comparable] func(*Machine[K])

// WithLogger directs the machine's diagnostics to l.
func WithLogger[K comparable](l *log.Logger) Option[K] {
	return func(m *Machine[K]) {
		m.logger = l
	}
}

// WithTransitionHook registers fn to be called after the current state changes
// and before the new state's OnEnter runs.
func WithTransitionHook[K comparable](fn func(from, to K)) Option[K] {
	return func(m *Machine[K]) {
		m.onChange = fn
	}
}

// New creates an empty machine. id only appears in log lines.
func New[K comparable](id string, opts ...Option[K]) *Machine[K] {
	m := &Machine[K]{
		id:     id,
		states: make(map[K]State[K]),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddState registers a state, replacing any state with the same name.
func (m *Machine[K]) AddState(state State[K]) {
	m.states[state.Name] = state
}

// HasState reports whether name has been registered.
func (m *Machine[K]) HasState(name K) bool {
	_, ok := m.states[name]
	return ok
}

// CurrentState returns the current state name. ok is false before the first transition.
func (m *Machine[K]) CurrentState() (name K, ok bool) {
	if m.current == nil {
		return name, false
	}
	return m.current.Name, true
}

// Pending returns the number of queued transitions.
func (m *Machine[K]) Pending() int {
	return len(m.queue)
}

// SetState moves the machine to name.
// Unknown names are logged and ignored, and asking for the current state does nothing.
func (m *Machine[K]) SetState(name K) {
	state, ok := m.states[name]
	if !ok {
		m.logger.Printf("[%s] setState: unable to find state %v", m.id, name)
		return
	}

	if m.isCurrentState(name) {
		return
	}

	if m.changing {
		m.queue = append(m.queue, name)
		return
	}

	m.changing = true
	defer func() { m.changing = false }()

	var from K
	if m.current != nil {
		from = m.current.Name
	}
	m.current = &state
	if m.onChange != nil {
		m.onChange(from, name)
	}

	if state.OnEnter != nil {
		state.OnEnter()
	}
}

// Update replays at most one queued transition. Call it once per frame.
func (m *Machine[K]) Update() {
	if len(m.queue) == 0 {
		return
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.SetState(next)
}

// String returns a short description for logs.
func (m *Machine[K]) String() string {
	if m.current == nil {
		return fmt.Sprintf("%s(<none>, pending=%d)", m.id, len(m.queue))
	}
	return fmt.Sprintf("%s(%v, pending=%d)", m.id, m.current.Name, len(m.queue))
}

func (m *Machine[K]) isCurrentState(name K) bool {
	return m.current != nil && m.current.Name == name
}
