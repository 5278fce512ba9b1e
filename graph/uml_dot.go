package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/machina"
)

// UmlDotGraphStyle generates DOT graphs in basic UML style.
type UmlDotGraphStyle struct{}

// NewUmlDotGraphStyle creates a new UML DOT graph style.
func NewUmlDotGraphStyle() *UmlDotGraphStyle {
	return &UmlDotGraphStyle{}
}

// GetPrefix returns the text that starts a new DOT graph.
func (s *UmlDotGraphStyle) GetPrefix() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")
	return sb.String()
}

// FormatOneState formats a single state. Moore outputs become a second record field.
func (s *UmlDotGraphStyle) FormatOneState(state *State) string {
	escapedNode := EscapeLabel(state.NodeName)
	escapedName := EscapeLabel(state.StateName)

	if !state.HasOutput {
		return fmt.Sprintf("\"%s\" [label=\"%s\"];\n", escapedNode, escapedName)
	}

	return fmt.Sprintf("\"%s\" [label=\"%s|%s\"];\n",
		escapedNode, escapeRecord(escapedName), escapeRecord(EscapeLabel(state.Output)))
}

// FormatAllTransitions formats all transitions.
func (s *UmlDotGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *UmlDotGraphStyle) FormatOneTransition(sourceNodeName, signal, destinationNodeName string) string {
	return formatOneLine(sourceNodeName, destinationNodeName, signal)
}

// GetCurrentTransition returns the text pointing at the current state.
func (s *UmlDotGraphStyle) GetCurrentTransition(current *State) string {
	if current == nil {
		return "\n}"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]", EscapeLabel(current.NodeName)))
	sb.WriteString("\n")
	sb.WriteString("}")

	return sb.String()
}

// formatOneLine formats a single transition line.
func formatOneLine(fromNodeName, toNodeName, label string) string {
	return fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];",
		EscapeLabel(fromNodeName), EscapeLabel(toNodeName), EscapeLabel(label))
}

// EscapeLabel escapes special characters in a label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}

// escapeRecord escapes the characters that delimit Mrecord fields.
func escapeRecord(field string) string {
	r := strings.NewReplacer("|", "\\|", "{", "\\{", "}", "\\}", "<", "\\<", ">", "\\>")
	return r.Replace(field)
}

// UmlDotGraph generates a UML DOT graph from machine info.
func UmlDotGraph(machineInfo *machina.MachineInfo) string {
	graph := NewStateGraph(machineInfo)
	return graph.ToGraph(NewUmlDotGraphStyle())
}
