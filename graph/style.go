package graph

// Style defines the interface for formatting state graphs.
type Style interface {
	// GetPrefix returns the text that starts a new graph.
	GetPrefix() string

	// GetCurrentTransition returns the text marking the current state.
	GetCurrentTransition(current *State) string

	// FormatOneState formats a single state.
	FormatOneState(state *State) string

	// FormatAllTransitions formats all transitions.
	FormatAllTransitions(transitions []*Transition) []string

	// FormatOneTransition formats a single transition.
	FormatOneTransition(sourceNodeName, signal, destinationNodeName string) string
}

// FormatTransitions is a helper that formats all transitions using the given style.
// This eliminates duplicate logic between different style implementations.
func FormatTransitions(style Style, transitions []*Transition) []string {
	var lines []string

	for _, transit := range transitions {
		if transit.SourceState == nil || transit.DestinationState == nil {
			continue
		}
		lines = append(lines, style.FormatOneTransition(
			transit.SourceState.NodeName,
			transit.Signal.String(),
			transit.DestinationState.NodeName,
		))
	}

	return lines
}
