package machina

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Output is an output value bound to a vertex of a Moore machine.
type Output[ID comparable, O any] struct {
	ID    ID
	Value O
}

// Moore decorates a Machine with one output per vertex. The output of the
// machine is the output of its current vertex.
//
// Vertices should be added with AddVertexOut. All other Machine operations are
// available unchanged through the embedded Machine; deleting a vertex also
// drops its output.
type Moore[ID, S comparable, O any] struct {
	*Machine[ID, S]

	outputs *table[ID, O]
}

// NewMoore creates an empty Moore machine over an ordered identifier type.
func NewMoore[ID constraints.Ordered, S comparable, O any](opts ...Option) *Moore[ID, S, O] {
	return WrapMoore[ID, S, O](New[ID, S](opts...))
}

// NewMooreWithComparator creates an empty Moore machine whose vertices are
// ordered by compare.
func NewMooreWithComparator[ID, S comparable, O any](compare func(a, b ID) int, opts ...Option) *Moore[ID, S, O] {
	return WrapMoore[ID, S, O](NewWithComparator[ID, S](compare, opts...))
}

// WrapMoore decorates m. Vertices already in m have no output until one is
// bound with BindOutput.
func WrapMoore[ID, S comparable, O any](m *Machine[ID, S]) *Moore[ID, S, O] {
	mm := &Moore[ID, S, O]{
		Machine: m,
		outputs: newTable[ID, O](m.compare),
	}
	m.onDelete = append(m.onDelete, mm.unbind)
	return mm
}

// AddVertexOut inserts a vertex and binds out as its output.
func (mm *Moore[ID, S, O]) AddVertexOut(id ID, out O) error {
	if mm.HasVertex(id) {
		return errors.WithStack(&DuplicateVertexError{ID: id})
	}
	if mm.outputs.has(id) {
		return errors.WithStack(&DuplicateOutputError{ID: id})
	}
	if err := mm.AddVertex(id); err != nil {
		return err
	}
	mm.outputs.put(id, out)
	mm.config.logf("bound output %v to vertex %v", out, id)
	return nil
}

// BindOutput binds out to an existing vertex that has no output yet.
func (mm *Moore[ID, S, O]) BindOutput(id ID, out O) error {
	if !mm.HasVertex(id) {
		return errors.WithStack(&NoSuchVertexError{ID: id})
	}
	if mm.outputs.has(id) {
		return errors.WithStack(&DuplicateOutputError{ID: id})
	}
	mm.outputs.put(id, out)
	mm.config.logf("bound output %v to vertex %v", out, id)
	return nil
}

// Output returns the output bound to id.
func (mm *Moore[ID, S, O]) Output(id ID) (O, error) {
	if !mm.HasVertex(id) {
		var zero O
		return zero, errors.WithStack(&NoSuchVertexError{ID: id})
	}
	out, ok := mm.outputs.get(id)
	if !ok {
		var zero O
		return zero, errors.WithStack(&OutputNotBoundError{ID: id})
	}
	return out, nil
}

// CurrentOutput returns the output of the current vertex.
func (mm *Moore[ID, S, O]) CurrentOutput() (O, error) {
	id, err := mm.CurrentID()
	if err != nil {
		var zero O
		return zero, err
	}
	out, ok := mm.outputs.get(id)
	if !ok {
		var zero O
		return zero, errors.WithAssertionFailure(errors.WithStack(&OutputNotBoundError{ID: id}))
	}
	return out, nil
}

// Outputs returns every bound output in ascending identifier order.
func (mm *Moore[ID, S, O]) Outputs() []Output[ID, O] {
	result := make([]Output[ID, O], 0, mm.outputs.len())
	mm.outputs.each(func(id ID, out O) {
		result = append(result, Output[ID, O]{ID: id, Value: out})
	})
	return result
}

// Info returns the machine's introspection data including outputs.
func (mm *Moore[ID, S, O]) Info() *MachineInfo {
	info := mm.Machine.Info()
	info.OutputType = typeName[O]()
	for _, v := range info.Vertices {
		id, _ := v.UnderlyingID.(ID)
		if out, ok := mm.outputs.get(id); ok {
			v.Output = out
			v.HasOutput = true
		}
	}
	return info
}

func (mm *Moore[ID, S, O]) unbind(id ID) {
	if mm.outputs.has(id) {
		mm.outputs.remove(id)
		mm.config.logf("unbound output of vertex %v", id)
	}
}
