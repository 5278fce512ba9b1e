// Package machina provides a generic finite automaton and a Moore machine
// built on top of it.
//
// A Machine is a directed graph of vertices (states) whose edges are labeled
// with signals. Submitting a signal moves the current vertex along the one
// leaving edge carrying that signal:
//
//   - Generic identifier and signal types
//   - At most one leaving edge per signal, so every transition is deterministic
//   - Deleting a vertex removes every edge that touches it
//   - Deterministic snapshots of vertices, edges and outputs
//   - Typed errors for every failure
//   - Introspection and graph generation
//
// # Basic Usage
//
// Build the graph, pick the current vertex, then submit signals:
//
//	m := machina.New[State, Signal]()
//	_ = m.AddVertex(Idle)
//	_ = m.AddVertex(Running)
//	_ = m.AddEdge(Idle, Running, Start)
//	_ = m.SetCurrent(Idle)
//	err := m.SubmitSignal(Start)
//
// Identifiers that are not ordered types can be used with NewWithComparator.
//
// # Moore Machines
//
// A Moore machine binds an output to each vertex:
//
//	mm := machina.NewMoore[int, int, string]()
//	_ = mm.AddVertexOut(0, "off")
//	_ = mm.AddVertexOut(1, "on")
//	_ = mm.AddEdge(0, 1, 1)
//	_ = mm.SetCurrent(0)
//	_ = mm.SubmitSignal(1)
//	out, _ := mm.CurrentOutput() // "on"
//
// # Errors
//
// Failures can be told apart with errors.Is against the Err* sentinels, or
// with errors.As to reach the identifiers involved:
//
//	var nt *machina.NoTransitionError
//	if errors.As(err, &nt) { ... }
//
// # Logging
//
// Mutations and transitions are logged through klog at DefaultVerbosity.
// Use WithVerbosity and WithName to change this per machine.
//
// # Graph Generation
//
// Export to DOT or Mermaid format:
//
//	import "github.com/atlekbai/machina/graph"
//	dot := graph.UmlDotGraph(m.Info())
package machina
