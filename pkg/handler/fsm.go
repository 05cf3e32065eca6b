package handler

import "time"

// State is one phase of the invocation pipeline. Every invocation walks the
// states in order and terminates in StateDone on every path.
type State int

const (
	StateStart State = iota
	StateNormalizing
	StateLoadingSettings
	StateBuilding
	StateDispatching
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateNormalizing:
		return "NORMALIZING"
	case StateLoadingSettings:
		return "LOADING_SETTINGS"
	case StateBuilding:
		return "BUILDING"
	case StateDispatching:
		return "DISPATCHING"
	case StateDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// StateChange represents a state transition event.
type StateChange struct {
	FromState State
	ToState   State
	Timestamp time.Time
	Reason    string
}

// StateListener observes pipeline state changes.
type StateListener interface {
	OnStateChange(event StateChange)
}

// stateMachine tracks the invocation phase. One instance per invocation, no
// shared state between invocations, so no locking.
type stateMachine struct {
	currentState State
	listeners    []StateListener
}

func newStateMachine(listeners ...StateListener) *stateMachine {
	return &stateMachine{currentState: StateStart, listeners: listeners}
}

func (m *stateMachine) State() State {
	return m.currentState
}

// transitionValid checks whether a state transition is allowed. Any state may
// jump straight to DONE: local failures terminate the invocation early.
func (m *stateMachine) transitionValid(from, to State) bool {
	if to == StateDone {
		return from != StateDone
	}
	validTransitions := map[State][]State{
		StateStart:           {StateNormalizing},
		StateNormalizing:     {StateLoadingSettings},
		StateLoadingSettings: {StateBuilding},
		StateBuilding:        {StateDispatching},
	}
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves to a new state with validation.
func (m *stateMachine) Transition(state State, reason string) error {
	if !m.transitionValid(m.currentState, state) {
		return &InvalidTransitionError{From: m.currentState, To: state}
	}
	event := StateChange{
		FromState: m.currentState,
		ToState:   state,
		Timestamp: time.Now(),
		Reason:    reason,
	}
	m.currentState = state
	for _, listener := range m.listeners {
		listener.OnStateChange(event)
	}
	return nil
}

// InvalidTransitionError represents an invalid state transition attempt.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return "invalid state transition from " + e.From.String() + " to " + e.To.String()
}
