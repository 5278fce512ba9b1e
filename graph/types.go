// Package graph provides visualization utilities for machines.
package graph

import (
	"github.com/atlekbai/machina"
)

// State represents a vertex in the graph.
type State struct {
	// StateName is the name of the state.
	StateName string

	// NodeName is the name used for the node in the graph.
	NodeName string

	// Output is the formatted Moore output of the state, if HasOutput is set.
	Output string

	// HasOutput indicates if the state carries a Moore output.
	HasOutput bool

	// Leaving are the transitions leaving this state.
	Leaving []*Transition

	// Arriving are the transitions arriving at this state.
	Arriving []*Transition

	// VertexInfo contains the underlying vertex information.
	VertexInfo *machina.VertexInfo
}

// Transition represents an edge in the graph.
type Transition struct {
	// Signal is the signal that selects this transition.
	Signal machina.SignalInfo

	// SourceState is the source state of the transition.
	SourceState *State

	// DestinationState is the destination state of the transition.
	DestinationState *State
}

// IsLoop returns true if the transition leaves and arrives at the same state.
func (t *Transition) IsLoop() bool {
	return t.SourceState == t.DestinationState
}
