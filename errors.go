package machina

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels for branching with errors.Is. Every typed error below reports
// itself as its matching sentinel.
var (
	ErrDuplicateVertex = errors.New("duplicate vertex")
	ErrDuplicateSignal = errors.New("duplicate signal")
	ErrDuplicateOutput = errors.New("duplicate output")
	ErrNoSuchVertex    = errors.New("no such vertex")
	ErrNoSuchEdge      = errors.New("no such edge")
	ErrNoCurrentState  = errors.New("no current state")
	ErrNoTransition    = errors.New("no transition")
	ErrOutputNotBound  = errors.New("output not bound")
)

// DuplicateVertexError is returned when a vertex identifier is already in use.
type DuplicateVertexError struct {
	ID any
}

func (e *DuplicateVertexError) Error() string {
	return fmt.Sprintf("vertex '%v' already exists", e.ID)
}

func (e *DuplicateVertexError) Is(target error) bool { return target == ErrDuplicateVertex }

// DuplicateSignalError is returned when a vertex already has an outgoing edge
// labeled with the signal.
type DuplicateSignalError struct {
	Source any
	Signal any
}

func (e *DuplicateSignalError) Error() string {
	return fmt.Sprintf("vertex '%v' already has a transition on signal '%v'", e.Source, e.Signal)
}

func (e *DuplicateSignalError) Is(target error) bool { return target == ErrDuplicateSignal }

// DuplicateOutputError is returned when an output is already bound to a vertex.
type DuplicateOutputError struct {
	ID any
}

func (e *DuplicateOutputError) Error() string {
	return fmt.Sprintf("vertex '%v' already has an output bound", e.ID)
}

func (e *DuplicateOutputError) Is(target error) bool { return target == ErrDuplicateOutput }

// NoSuchVertexError is returned when an operation names an unknown vertex.
type NoSuchVertexError struct {
	ID any
}

func (e *NoSuchVertexError) Error() string {
	return fmt.Sprintf("vertex '%v' does not exist", e.ID)
}

func (e *NoSuchVertexError) Is(target error) bool { return target == ErrNoSuchVertex }

// NoSuchEdgeError is returned when a vertex has no outgoing edge matching the
// requested destination or signal. Exactly one of Destination and Signal is set.
type NoSuchEdgeError struct {
	Source      any
	Destination any
	Signal      any
}

func (e *NoSuchEdgeError) Error() string {
	if e.Signal != nil {
		return fmt.Sprintf("vertex '%v' has no edge on signal '%v'", e.Source, e.Signal)
	}
	return fmt.Sprintf("vertex '%v' is not connected to '%v'", e.Source, e.Destination)
}

func (e *NoSuchEdgeError) Is(target error) bool { return target == ErrNoSuchEdge }

// NoCurrentStateError is returned when an operation needs the current vertex
// but none has been set.
type NoCurrentStateError struct{}

func (e *NoCurrentStateError) Error() string {
	return "current state is not set"
}

func (e *NoCurrentStateError) Is(target error) bool { return target == ErrNoCurrentState }

// NoTransitionError is returned when a signal is submitted that the vertex has
// no leaving edge for.
type NoTransitionError struct {
	State            any
	Signal           any
	PermittedSignals []any
}

func (e *NoTransitionError) Error() string {
	if len(e.PermittedSignals) == 0 {
		return fmt.Sprintf(
			"no transition from state '%v' on signal '%v'. No leaving transitions are defined for the state.",
			e.State, e.Signal)
	}
	return fmt.Sprintf(
		"no transition from state '%v' on signal '%v'. Permitted signals: %v.",
		e.State, e.Signal, e.PermittedSignals)
}

func (e *NoTransitionError) Is(target error) bool { return target == ErrNoTransition }

// OutputNotBoundError means a vertex of a Moore machine has no output. It is
// only reachable when a vertex was added without one.
type OutputNotBoundError struct {
	ID any
}

func (e *OutputNotBoundError) Error() string {
	return fmt.Sprintf("no output bound to vertex '%v'", e.ID)
}

func (e *OutputNotBoundError) Is(target error) bool { return target == ErrOutputNotBound }
