package machina

import "fmt"

// Edge is a labeled transition between two vertices. The destination is held
// by identifier and resolved through the owning machine's vertex table.
type Edge[ID, S comparable] struct {
	// Source is the vertex the edge leaves.
	Source ID

	// Destination is the vertex the edge arrives at.
	Destination ID

	// Signal is the input that selects this edge.
	Signal S
}

// NewEdge creates a new edge.
func NewEdge[ID, S comparable](source, destination ID, signal S) Edge[ID, S] {
	return Edge[ID, S]{
		Source:      source,
		Destination: destination,
		Signal:      signal,
	}
}

// IsLoop returns true if the edge leaves and arrives at the same vertex.
func (e Edge[ID, S]) IsLoop() bool {
	return e.Source == e.Destination
}

func (e Edge[ID, S]) String() string {
	return fmt.Sprintf("%v -(%v)-> %v", e.Source, e.Signal, e.Destination)
}
