package machina

// Transition describes a completed move of the current state.
type Transition[ID, S comparable] struct {
	// Source is the state transitioned from.
	Source ID

	// Destination is the state transitioned to.
	Destination ID

	// Signal is the signal that caused the transition.
	Signal S
}

// NewTransition creates a new transition.
func NewTransition[ID, S comparable](source, destination ID, signal S) Transition[ID, S] {
	return Transition[ID, S]{
		Source:      source,
		Destination: destination,
		Signal:      signal,
	}
}

// IsReentry returns true if the transition is a re-entry, i.e., the identity transition.
func (t Transition[ID, S]) IsReentry() bool {
	return t.Source == t.Destination
}

// TransitionHandler is called after the current state has moved.
type TransitionHandler[ID, S comparable] func(Transition[ID, S])

// transitionEvent holds the handlers registered with OnTransitioned.
type transitionEvent[ID, S comparable] struct {
	handlers []TransitionHandler[ID, S]
}

func (e *transitionEvent[ID, S]) register(handler TransitionHandler[ID, S]) {
	e.handlers = append(e.handlers, handler)
}

func (e *transitionEvent[ID, S]) unregisterAll() {
	e.handlers = nil
}

func (e *transitionEvent[ID, S]) invoke(transition Transition[ID, S]) {
	for _, handler := range e.handlers {
		handler(transition)
	}
}
