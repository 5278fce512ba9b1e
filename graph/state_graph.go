package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/machina"
)

// StateGraph generates a symbolic representation of the graph structure.
type StateGraph struct {
	// Current is the state of the current vertex, if any.
	Current *State

	// States contains all states in the graph, indexed by node name.
	States map[string]*State

	// Ordered contains all states in identifier order.
	Ordered []*State

	// Transitions contains all transitions in the graph.
	Transitions []*Transition

	byVertex map[*machina.VertexInfo]*State
}

// NewStateGraph creates a new state graph from machine info.
func NewStateGraph(machineInfo *machina.MachineInfo) *StateGraph {
	sg := &StateGraph{
		States:   make(map[string]*State),
		byVertex: make(map[*machina.VertexInfo]*State),
	}

	sg.addStates(machineInfo)
	sg.addTransitions(machineInfo)
	sg.Current = sg.byVertex[machineInfo.Current]

	return sg
}

// addStates adds one state per vertex, keeping the machine's identifier order.
// Vertices that print the same get distinct node names: the first keeps the
// name, later ones get a numeric suffix.
func (sg *StateGraph) addStates(machineInfo *machina.MachineInfo) {
	taken := make(map[string]bool)
	owner := make(map[string]*machina.VertexInfo)
	for _, vertexInfo := range machineInfo.Vertices {
		stateName := vertexInfo.String()
		if !taken[stateName] {
			taken[stateName] = true
			owner[stateName] = vertexInfo
		}
	}

	for _, vertexInfo := range machineInfo.Vertices {
		stateName := vertexInfo.String()
		nodeName := stateName
		if owner[stateName] != vertexInfo {
			for count := 1; taken[nodeName]; count++ {
				nodeName = fmt.Sprintf("%s_%d", stateName, count)
			}
			taken[nodeName] = true
		}

		state := &State{
			StateName:  stateName,
			NodeName:   nodeName,
			HasOutput:  vertexInfo.HasOutput,
			VertexInfo: vertexInfo,
		}
		if vertexInfo.HasOutput {
			state.Output = fmt.Sprintf("%v", vertexInfo.Output)
		}
		sg.States[nodeName] = state
		sg.byVertex[vertexInfo] = state
		sg.Ordered = append(sg.Ordered, state)
	}
}

// addTransitions adds all transitions to the graph.
func (sg *StateGraph) addTransitions(machineInfo *machina.MachineInfo) {
	for _, edgeInfo := range machineInfo.Edges {
		fromState := sg.byVertex[edgeInfo.Source]
		toState := sg.byVertex[edgeInfo.Destination]

		trans := &Transition{
			Signal:           edgeInfo.Signal,
			SourceState:      fromState,
			DestinationState: toState,
		}
		sg.Transitions = append(sg.Transitions, trans)
		if fromState != nil {
			fromState.Leaving = append(fromState.Leaving, trans)
		}
		if toState != nil {
			toState.Arriving = append(toState.Arriving, trans)
		}
	}
}

// ToGraph converts the state graph to a string representation using the specified style.
func (sg *StateGraph) ToGraph(style Style) string {
	var sb strings.Builder

	sb.WriteString(style.GetPrefix())

	for _, state := range sg.Ordered {
		sb.WriteString(style.FormatOneState(state))
	}

	// Transitions are already ordered by source identifier, then connection order.
	lines := style.FormatAllTransitions(sg.Transitions)
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	sb.WriteString(style.GetCurrentTransition(sg.Current))

	return sb.String()
}
