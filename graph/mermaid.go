package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atlekbai/machina"
)

// MermaidGraphDirection specifies the direction of the Mermaid graph.
type MermaidGraphDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidGraphDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// MermaidGraphStyle generates Mermaid graphs.
type MermaidGraphStyle struct {
	graph     *StateGraph
	direction *MermaidGraphDirection

	// sanitized maps node names to the names used in the diagram.
	sanitized            map[string]string
	sanitizedInitialized bool
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(graph *StateGraph, direction *MermaidGraphDirection) *MermaidGraphStyle {
	return &MermaidGraphStyle{
		graph:     graph,
		direction: direction,
		sanitized: make(map[string]string),
	}
}

// GetPrefix returns the text that starts a new Mermaid graph.
func (s *MermaidGraphStyle) GetPrefix() string {
	s.buildSanitizedNames()

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	if s.direction != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\tdirection %s", getDirectionCode(*s.direction)))
	}

	// Describe states whose names were sanitized or that carry an output.
	for _, state := range s.graph.Ordered {
		name := s.getSanitizedStateName(state.NodeName)
		switch {
		case state.HasOutput:
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("\t%s : %s / %s", name, state.StateName, state.Output))
		case name != state.StateName:
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("\t%s : %s", name, state.StateName))
		}
	}

	return sb.String()
}

// FormatOneState formats a single state (Mermaid doesn't need explicit state definitions).
func (s *MermaidGraphStyle) FormatOneState(_ *State) string {
	return ""
}

// FormatAllTransitions formats all transitions.
func (s *MermaidGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *MermaidGraphStyle) FormatOneTransition(sourceNodeName, signal, destinationNodeName string) string {
	sanitizedSource := s.getSanitizedStateName(sourceNodeName)
	sanitizedDest := s.getSanitizedStateName(destinationNodeName)

	return fmt.Sprintf("\t%s --> %s : %s", sanitizedSource, sanitizedDest, signal)
}

// GetCurrentTransition returns the text pointing at the current state.
func (s *MermaidGraphStyle) GetCurrentTransition(current *State) string {
	if current == nil {
		return ""
	}

	return fmt.Sprintf("\n[*] --> %s", s.getSanitizedStateName(current.NodeName))
}

// buildSanitizedNames assigns every state a unique name usable in Mermaid.
func (s *MermaidGraphStyle) buildSanitizedNames() {
	if s.sanitizedInitialized {
		return
	}

	taken := make(map[string]bool)
	for _, state := range s.graph.Ordered {
		if sanitizeStateName(state.NodeName) == state.NodeName {
			taken[state.NodeName] = true
		}
	}

	for _, state := range s.graph.Ordered {
		sanitizedName := sanitizeStateName(state.NodeName)

		if sanitizedName != state.NodeName {
			count := 1
			tempName := sanitizedName
			for taken[tempName] {
				tempName = fmt.Sprintf("%s_%d", sanitizedName, count)
				count++
			}
			sanitizedName = tempName
			taken[sanitizedName] = true
		}

		s.sanitized[state.NodeName] = sanitizedName
	}

	s.sanitizedInitialized = true
}

// getSanitizedStateName returns the sanitized name for a node.
func (s *MermaidGraphStyle) getSanitizedStateName(nodeName string) string {
	if name, ok := s.sanitized[nodeName]; ok {
		return name
	}
	return nodeName
}

// sanitizeStateName removes characters that would cause invalid Mermaid graphs.
func sanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// getDirectionCode returns the Mermaid direction code.
func getDirectionCode(direction MermaidGraphDirection) string {
	switch direction {
	case TopToBottom:
		return "TB"
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidGraph generates a Mermaid graph from machine info.
func MermaidGraph(machineInfo *machina.MachineInfo, direction *MermaidGraphDirection) string {
	graph := NewStateGraph(machineInfo)
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction))
}
