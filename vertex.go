package machina

import "github.com/cockroachdb/errors"

// Vertex is a state of the automaton together with its leaving edges.
// Edges keep the order in which they were connected.
type Vertex[ID, S comparable] struct {
	id    ID
	edges []Edge[ID, S]
}

// NewVertex creates a vertex with no leaving edges.
func NewVertex[ID, S comparable](id ID) *Vertex[ID, S] {
	return &Vertex[ID, S]{id: id}
}

// ID returns the identifier of the vertex.
func (v *Vertex[ID, S]) ID() ID {
	return v.id
}

// Len returns the number of leaving edges.
func (v *Vertex[ID, S]) Len() int {
	return len(v.edges)
}

// Connect adds a leaving edge to target, selected by signal. A vertex can
// have at most one edge per signal.
func (v *Vertex[ID, S]) Connect(target ID, signal S) error {
	if v.HasSignal(signal) {
		return errors.WithStack(&DuplicateSignalError{Source: v.id, Signal: signal})
	}
	v.edges = append(v.edges, NewEdge(v.id, target, signal))
	return nil
}

// TransitionOn returns the destination of the edge selected by signal.
func (v *Vertex[ID, S]) TransitionOn(signal S) (ID, error) {
	if i := v.indexBySignal(signal); i >= 0 {
		return v.edges[i].Destination, nil
	}
	var zero ID
	return zero, errors.WithStack(&NoTransitionError{
		State:            v.id,
		Signal:           signal,
		PermittedSignals: v.permittedSignals(),
	})
}

// HasSignal returns true if a leaving edge is labeled with signal.
func (v *Vertex[ID, S]) HasSignal(signal S) bool {
	return v.indexBySignal(signal) >= 0
}

// IsConnectedTo returns true if at least one leaving edge arrives at id.
func (v *Vertex[ID, S]) IsConnectedTo(id ID) bool {
	return v.indexByDestination(id) >= 0
}

// EdgeTo returns the first edge, in connection order, that arrives at id.
func (v *Vertex[ID, S]) EdgeTo(id ID) (Edge[ID, S], error) {
	if i := v.indexByDestination(id); i >= 0 {
		return v.edges[i], nil
	}
	return Edge[ID, S]{}, errors.WithStack(&NoSuchEdgeError{Source: v.id, Destination: id})
}

// Disconnect removes the first leaving edge, in connection order, that
// arrives at target.
func (v *Vertex[ID, S]) Disconnect(target ID) error {
	i := v.indexByDestination(target)
	if i < 0 {
		return errors.WithStack(&NoSuchEdgeError{Source: v.id, Destination: target})
	}
	v.edges = append(v.edges[:i], v.edges[i+1:]...)
	return nil
}

// DisconnectBySignal removes the leaving edge labeled with signal.
func (v *Vertex[ID, S]) DisconnectBySignal(signal S) error {
	i := v.indexBySignal(signal)
	if i < 0 {
		return errors.WithStack(&NoSuchEdgeError{Source: v.id, Signal: signal})
	}
	v.edges = append(v.edges[:i], v.edges[i+1:]...)
	return nil
}

// Edges returns a copy of the leaving edges in connection order.
func (v *Vertex[ID, S]) Edges() []Edge[ID, S] {
	result := make([]Edge[ID, S], len(v.edges))
	copy(result, v.edges)
	return result
}

// Signals returns the signals of the leaving edges in connection order.
func (v *Vertex[ID, S]) Signals() []S {
	result := make([]S, 0, len(v.edges))
	for _, e := range v.edges {
		result = append(result, e.Signal)
	}
	return result
}

// disconnectAll drops the edges arriving at target and reports how many
// were removed.
func (v *Vertex[ID, S]) disconnectAll(target ID) int {
	kept := v.edges[:0]
	for _, e := range v.edges {
		if e.Destination != target {
			kept = append(kept, e)
		}
	}
	removed := len(v.edges) - len(kept)
	clear(v.edges[len(kept):])
	v.edges = kept
	return removed
}

func (v *Vertex[ID, S]) clone() *Vertex[ID, S] {
	return &Vertex[ID, S]{id: v.id, edges: v.Edges()}
}

func (v *Vertex[ID, S]) indexBySignal(signal S) int {
	for i, e := range v.edges {
		if e.Signal == signal {
			return i
		}
	}
	return -1
}

func (v *Vertex[ID, S]) indexByDestination(id ID) int {
	for i, e := range v.edges {
		if e.Destination == id {
			return i
		}
	}
	return -1
}

func (v *Vertex[ID, S]) permittedSignals() []any {
	signals := make([]any, 0, len(v.edges))
	for _, e := range v.edges {
		signals = append(signals, e.Signal)
	}
	return signals
}
