package machina

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Machine is a deterministic finite automaton. It owns its vertices, which
// in turn own their leaving edges, and tracks the current vertex.
//
// A Machine is not safe for concurrent use.
type Machine[ID, S comparable] struct {
	compare  func(a, b ID) int
	vertices *table[ID, *Vertex[ID, S]]

	// current is a handle into vertices, valid only when hasCurrent is set.
	current    ID
	hasCurrent bool

	onTransitioned *transitionEvent[ID, S]

	// onDelete is notified after a vertex has been removed.
	onDelete []func(ID)

	config *config
}

// New creates an empty machine over an ordered identifier type. Identifiers
// are matched with ==, so a NaN identifier is kept apart from every other
// vertex but can never be found again.
func New[ID constraints.Ordered, S comparable](opts ...Option) *Machine[ID, S] {
	return NewWithComparator[ID, S](Compare[ID], opts...)
}

// NewWithComparator creates an empty machine whose vertices are ordered by
// compare, which must return a negative number, zero or a positive number as
// a sorts before, with or after b.
func NewWithComparator[ID, S comparable](compare func(a, b ID) int, opts ...Option) *Machine[ID, S] {
	return &Machine[ID, S]{
		compare:        compare,
		vertices:       newTable[ID, *Vertex[ID, S]](compare),
		onTransitioned: &transitionEvent[ID, S]{},
		config:         newConfig(opts),
	}
}

// AddVertex inserts a vertex with no leaving edges.
func (m *Machine[ID, S]) AddVertex(id ID) error {
	if m.vertices.has(id) {
		m.config.logf("add vertex %v rejected: duplicate", id)
		return errors.WithStack(&DuplicateVertexError{ID: id})
	}
	m.vertices.put(id, NewVertex[ID, S](id))
	m.config.logf("added vertex %v", id)
	return nil
}

// DeleteVertex removes a vertex, its leaving edges and every edge arriving at
// it. If the vertex was current, the machine is left without a current state.
func (m *Machine[ID, S]) DeleteVertex(id ID) error {
	if !m.vertices.has(id) {
		return errors.WithStack(&NoSuchVertexError{ID: id})
	}
	removed := 0
	m.vertices.each(func(_ ID, v *Vertex[ID, S]) {
		removed += v.disconnectAll(id)
	})
	m.vertices.remove(id)
	if m.hasCurrent && m.current == id {
		var zero ID
		m.current, m.hasCurrent = zero, false
	}
	for _, fn := range m.onDelete {
		fn(id)
	}
	m.config.logf("deleted vertex %v and %d arriving edges", id, removed)
	return nil
}

// AddEdge connects from to to on signal. Both vertices must exist.
func (m *Machine[ID, S]) AddEdge(from, to ID, signal S) error {
	source, err := m.lookup(from)
	if err != nil {
		return err
	}
	if !m.vertices.has(to) {
		return errors.WithStack(&NoSuchVertexError{ID: to})
	}
	if err := source.Connect(to, signal); err != nil {
		m.config.logf("add edge %v -(%v)-> %v rejected: %v", from, signal, to, err)
		return err
	}
	m.config.logf("added edge %v -(%v)-> %v", from, signal, to)
	return nil
}

// DeleteEdge removes the first edge, in connection order, from from to to.
func (m *Machine[ID, S]) DeleteEdge(from, to ID) error {
	source, err := m.lookup(from)
	if err != nil {
		return err
	}
	if err := source.Disconnect(to); err != nil {
		return err
	}
	m.config.logf("deleted edge %v -> %v", from, to)
	return nil
}

// SetCurrent makes id the current vertex.
func (m *Machine[ID, S]) SetCurrent(id ID) error {
	if !m.vertices.has(id) {
		return errors.WithStack(&NoSuchVertexError{ID: id})
	}
	m.current, m.hasCurrent = id, true
	m.config.logf("current state set to %v", id)
	return nil
}

// SubmitSignal moves the current vertex along its leaving edge labeled with
// signal. On error the current vertex is unchanged.
func (m *Machine[ID, S]) SubmitSignal(signal S) error {
	current, err := m.currentVertex()
	if err != nil {
		return err
	}
	next, err := current.TransitionOn(signal)
	if err != nil {
		m.config.logf("signal %v rejected in state %v", signal, m.current)
		return err
	}
	transition := NewTransition(m.current, next, signal)
	m.current = next
	m.config.logf("transitioned %v -(%v)-> %v", transition.Source, signal, next)
	m.onTransitioned.invoke(transition)
	return nil
}

// CurrentID returns the identifier of the current vertex.
func (m *Machine[ID, S]) CurrentID() (ID, error) {
	if !m.hasCurrent {
		var zero ID
		return zero, errors.WithStack(&NoCurrentStateError{})
	}
	return m.current, nil
}

// HasCurrent returns true if a current vertex is set.
func (m *Machine[ID, S]) HasCurrent() bool {
	return m.hasCurrent
}

// IsInState returns true if id is the current vertex.
func (m *Machine[ID, S]) IsInState(id ID) bool {
	return m.hasCurrent && m.current == id
}

// PermittedSignals returns the signals the current vertex has leaving edges
// for, in connection order.
func (m *Machine[ID, S]) PermittedSignals() ([]S, error) {
	current, err := m.currentVertex()
	if err != nil {
		return nil, err
	}
	return current.Signals(), nil
}

// CanSubmit returns true if SubmitSignal(signal) would succeed.
func (m *Machine[ID, S]) CanSubmit(signal S) bool {
	current, err := m.currentVertex()
	return err == nil && current.HasSignal(signal)
}

// HasVertex returns true if id names a vertex of the machine.
func (m *Machine[ID, S]) HasVertex(id ID) bool {
	return m.vertices.has(id)
}

// Len returns the number of vertices.
func (m *Machine[ID, S]) Len() int {
	return m.vertices.len()
}

// Vertex returns a copy of the vertex named id. Changes to the copy do not
// affect the machine.
func (m *Machine[ID, S]) Vertex(id ID) (*Vertex[ID, S], error) {
	v, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return v.clone(), nil
}

// VertexIDs returns the vertex identifiers in ascending order.
func (m *Machine[ID, S]) VertexIDs() []ID {
	return m.vertices.keys()
}

// Edges returns every edge, ordered by source identifier and then by the
// order in which the edges were added.
func (m *Machine[ID, S]) Edges() []Edge[ID, S] {
	edges := make([]Edge[ID, S], 0)
	m.vertices.each(func(_ ID, v *Vertex[ID, S]) {
		edges = append(edges, v.edges...)
	})
	return edges
}

// OnTransitioned registers a callback that will be called when a transition is completed.
func (m *Machine[ID, S]) OnTransitioned(handler TransitionHandler[ID, S]) {
	m.onTransitioned.register(handler)
}

// UnregisterAllCallbacks removes all OnTransitioned callbacks.
func (m *Machine[ID, S]) UnregisterAllCallbacks() {
	m.onTransitioned.unregisterAll()
}

// String returns a string representation of the current state.
func (m *Machine[ID, S]) String() string {
	if !m.hasCurrent {
		return fmt.Sprintf("Machine { Vertices = %d, State = <unset> }", m.Len())
	}
	return fmt.Sprintf("Machine { Vertices = %d, State = %v }", m.Len(), m.current)
}

func (m *Machine[ID, S]) lookup(id ID) (*Vertex[ID, S], error) {
	v, ok := m.vertices.get(id)
	if !ok {
		return nil, errors.WithStack(&NoSuchVertexError{ID: id})
	}
	return v, nil
}

func (m *Machine[ID, S]) currentVertex() (*Vertex[ID, S], error) {
	if !m.hasCurrent {
		return nil, errors.WithStack(&NoCurrentStateError{})
	}
	v, ok := m.vertices.get(m.current)
	if !ok {
		return nil, errors.AssertionFailedf("current state %v is not a vertex", m.current)
	}
	return v, nil
}
