package machina

import (
	"fmt"
	"reflect"
)

// NullString is the string representation of a null value.
const NullString = "<null>"

// MachineInfo exposes the vertices and edges of a machine.
type MachineInfo struct {
	// Current is the current vertex, if any.
	Current *VertexInfo

	// Vertices contains all vertices in ascending identifier order.
	Vertices []*VertexInfo

	// Edges contains all edges in the order returned by Machine.Edges.
	Edges []*EdgeInfo

	// IDType is a string representation of the identifier type.
	IDType string

	// SignalType is a string representation of the signal type.
	SignalType string

	// OutputType is a string representation of the output type of a Moore
	// machine. It is empty for plain machines.
	OutputType string
}

// VertexInfo describes a vertex through the reflection API.
type VertexInfo struct {
	// UnderlyingID is the identifier of the vertex.
	UnderlyingID any

	// Output is the output bound to the vertex. Only meaningful if HasOutput is set.
	Output any

	// HasOutput indicates if the vertex belongs to a Moore machine and has an output bound.
	HasOutput bool

	// Leaving are the edges leaving the vertex, in connection order.
	Leaving []*EdgeInfo

	// Arriving are the edges arriving at the vertex.
	Arriving []*EdgeInfo
}

// String returns the string representation of the vertex identifier.
func (v *VertexInfo) String() string {
	if v == nil || v.UnderlyingID == nil {
		return NullString
	}
	return fmt.Sprintf("%v", v.UnderlyingID)
}

// EdgeInfo describes an edge through the reflection API.
type EdgeInfo struct {
	// Source is the vertex the edge leaves.
	Source *VertexInfo

	// Destination is the vertex the edge arrives at.
	Destination *VertexInfo

	// Signal describes the signal labeling the edge.
	Signal SignalInfo
}

// IsLoop returns true if the edge leaves and arrives at the same vertex.
func (e *EdgeInfo) IsLoop() bool {
	return e.Source == e.Destination
}

// SignalInfo describes a signal.
type SignalInfo struct {
	// UnderlyingSignal is the underlying signal value.
	UnderlyingSignal any
}

// String returns the string representation of the signal.
func (s SignalInfo) String() string {
	if s.UnderlyingSignal == nil {
		return NullString
	}
	return fmt.Sprintf("%v", s.UnderlyingSignal)
}

// Info returns information about the machine's graph for introspection.
func (m *Machine[ID, S]) Info() *MachineInfo {
	info := &MachineInfo{
		Vertices:   make([]*VertexInfo, 0, m.Len()),
		IDType:     typeName[ID](),
		SignalType: typeName[S](),
	}

	byID := make(map[ID]*VertexInfo, m.Len())
	m.vertices.each(func(id ID, _ *Vertex[ID, S]) {
		vi := &VertexInfo{UnderlyingID: id}
		byID[id] = vi
		info.Vertices = append(info.Vertices, vi)
	})

	for _, e := range m.Edges() {
		source, destination := byID[e.Source], byID[e.Destination]
		ei := &EdgeInfo{
			Source:      source,
			Destination: destination,
			Signal:      SignalInfo{UnderlyingSignal: e.Signal},
		}
		source.Leaving = append(source.Leaving, ei)
		destination.Arriving = append(destination.Arriving, ei)
		info.Edges = append(info.Edges, ei)
	}

	if m.hasCurrent {
		info.Current = byID[m.current]
	}
	return info
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
