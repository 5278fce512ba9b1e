package machina_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/machina"
)

func TestMoore_CurrentOutput(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertexOut(StateA, "idle"))
	require.NoError(t, mm.AddVertexOut(StateB, "busy"))
	require.NoError(t, mm.AddEdge(StateA, StateB, SignalX))

	_, err := mm.CurrentOutput()
	require.ErrorIs(t, err, machina.ErrNoCurrentState)

	require.NoError(t, mm.SetCurrent(StateA))
	out, err := mm.CurrentOutput()
	require.NoError(t, err)
	assert.Equal(t, "idle", out)

	require.NoError(t, mm.SubmitSignal(SignalX))
	out, err = mm.CurrentOutput()
	require.NoError(t, err)
	assert.Equal(t, "busy", out)
}

func TestMoore_AddVertexOut_Duplicate(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertexOut(StateA, "first"))

	err := mm.AddVertexOut(StateA, "second")
	require.ErrorIs(t, err, machina.ErrDuplicateVertex)

	out, err := mm.Output(StateA)
	require.NoError(t, err)
	assert.Equal(t, "first", out)
}

func TestMoore_DuplicateVertexFromPlainAdd(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertex(StateA))

	require.ErrorIs(t, mm.AddVertexOut(StateA, "late"), machina.ErrDuplicateVertex)
	assert.Empty(t, mm.Outputs())
}

func TestMoore_UnboundOutput(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertex(StateA))
	require.NoError(t, mm.SetCurrent(StateA))

	_, err := mm.CurrentOutput()
	require.ErrorIs(t, err, machina.ErrOutputNotBound)
	assert.True(t, errors.HasAssertionFailure(err))

	var onb *machina.OutputNotBoundError
	require.True(t, errors.As(err, &onb))
	assert.Equal(t, StateA, onb.ID)

	_, err = mm.Output(StateA)
	require.ErrorIs(t, err, machina.ErrOutputNotBound)
	assert.False(t, errors.HasAssertionFailure(err))
}

func TestMoore_BindOutput(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertex(StateA))

	require.ErrorIs(t, mm.BindOutput(StateB, "nope"), machina.ErrNoSuchVertex)
	require.NoError(t, mm.BindOutput(StateA, "bound"))
	require.ErrorIs(t, mm.BindOutput(StateA, "again"), machina.ErrDuplicateOutput)

	require.NoError(t, mm.SetCurrent(StateA))
	out, err := mm.CurrentOutput()
	require.NoError(t, err)
	assert.Equal(t, "bound", out)
}

func TestMoore_Output(t *testing.T) {
	mm := machina.NewMoore[State, Signal, int]()
	require.NoError(t, mm.AddVertexOut(StateA, 7))

	out, err := mm.Output(StateA)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	_, err = mm.Output(StateB)
	require.ErrorIs(t, err, machina.ErrNoSuchVertex)
}

func TestMoore_DeleteVertexDropsOutput(t *testing.T) {
	mm := machina.NewMoore[State, Signal, string]()
	require.NoError(t, mm.AddVertexOut(StateA, "a"))
	require.NoError(t, mm.AddVertexOut(StateB, "b"))

	require.NoError(t, mm.DeleteVertex(StateA))
	assert.Equal(t, []machina.Output[State, string]{{ID: StateB, Value: "b"}}, mm.Outputs())

	// Deleting through the decorated machine drops the output as well.
	require.NoError(t, mm.Machine.DeleteVertex(StateB))
	assert.Empty(t, mm.Outputs())

	// The identifier can be reused with a new output.
	require.NoError(t, mm.AddVertexOut(StateA, "a2"))
	out, err := mm.Output(StateA)
	require.NoError(t, err)
	assert.Equal(t, "a2", out)
}

func TestMoore_Outputs(t *testing.T) {
	mm := machina.NewMoore[int, int, int]()
	for _, id := range []int{2, 0, 1} {
		require.NoError(t, mm.AddVertexOut(id, id*50))
	}

	want := []machina.Output[int, int]{
		{ID: 0, Value: 0},
		{ID: 1, Value: 50},
		{ID: 2, Value: 100},
	}
	if diff := cmp.Diff(want, mm.Outputs()); diff != "" {
		t.Errorf("unexpected outputs (-want +got):\n%s", diff)
	}
}

func TestMoore_NilInterfaceOutput(t *testing.T) {
	mm := machina.NewMoore[int, int, error]()
	require.NoError(t, mm.AddVertexOut(0, nil))
	require.NoError(t, mm.SetCurrent(0))

	out, err := mm.CurrentOutput()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWrapMoore(t *testing.T) {
	m := newMachine(t)
	mm := machina.WrapMoore[State, Signal, string](m)

	// Existing vertices have no output until bound.
	assert.Empty(t, mm.Outputs())
	require.NoError(t, mm.BindOutput(StateA, "a"))
	require.NoError(t, mm.AddVertexOut(StateD, "d"))

	// Both layers see the same graph.
	assert.True(t, m.HasVertex(StateD))
	assert.Equal(t, m.VertexIDs(), mm.VertexIDs())

	require.NoError(t, m.SetCurrent(StateA))
	out, err := mm.CurrentOutput()
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestNewMooreWithComparator(t *testing.T) {
	desc := func(a, b int) int { return machina.Compare(b, a) }
	mm := machina.NewMooreWithComparator[int, string, string](desc)
	for _, id := range []int{1, 3, 2} {
		require.NoError(t, mm.AddVertexOut(id, "v"))
	}

	assert.Equal(t, []int{3, 2, 1}, mm.VertexIDs())
	ids := make([]int, 0, 3)
	for _, o := range mm.Outputs() {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{3, 2, 1}, ids)
}

// TestMoore_EndToEnd drives the three state scenario: vertices 0, 1 and 2
// with outputs 0, 0 and 100, edges 0 -3-> 1 and 1 -0-> 0.
func TestMoore_EndToEnd(t *testing.T) {
	mm := machina.NewMoore[int, int, int]()
	require.NoError(t, mm.AddVertexOut(0, 0))
	require.NoError(t, mm.AddVertexOut(1, 0))
	require.NoError(t, mm.AddVertexOut(2, 100))
	require.NoError(t, mm.AddEdge(0, 1, 3))
	require.NoError(t, mm.AddEdge(1, 0, 0))
	require.NoError(t, mm.SetCurrent(0))

	require.NoError(t, mm.SubmitSignal(3))
	id, err := mm.CurrentID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, mm.SubmitSignal(0))
	id, err = mm.CurrentID()
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	wantEdges := []machina.Edge[int, int]{
		machina.NewEdge(0, 1, 3),
		machina.NewEdge(1, 0, 0),
	}
	if diff := cmp.Diff(wantEdges, mm.Edges()); diff != "" {
		t.Errorf("unexpected edges (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, mm.Edges()[0].Signal)

	wantOutputs := []machina.Output[int, int]{
		{ID: 0, Value: 0},
		{ID: 1, Value: 0},
		{ID: 2, Value: 100},
	}
	if diff := cmp.Diff(wantOutputs, mm.Outputs()); diff != "" {
		t.Errorf("unexpected outputs (-want +got):\n%s", diff)
	}

	out, err := mm.CurrentOutput()
	require.NoError(t, err)
	assert.Equal(t, 0, out)
}
