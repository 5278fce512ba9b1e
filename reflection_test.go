package machina_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/machina"
)

func TestMachine_Info(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.AddEdge(StateA, StateA, SignalZ))
	require.NoError(t, m.SetCurrent(StateB))

	info := m.Info()

	assert.Equal(t, "machina_test.State", info.IDType)
	assert.Equal(t, "machina_test.Signal", info.SignalType)
	assert.Empty(t, info.OutputType)
	require.NotNil(t, info.Current)
	assert.Equal(t, StateB, info.Current.UnderlyingID)

	require.Len(t, info.Vertices, 3)
	a := info.Vertices[0]
	assert.Equal(t, "StateA", a.String())
	assert.False(t, a.HasOutput)
	require.Len(t, a.Leaving, 2)
	assert.Equal(t, "SignalX", a.Leaving[0].Signal.String())
	assert.Same(t, info.Vertices[1], a.Leaving[0].Destination)
	assert.True(t, a.Leaving[1].IsLoop())
	// C -Z-> A and the A -Z-> A loop arrive at A.
	assert.Len(t, a.Arriving, 2)

	require.Len(t, info.Edges, 4)
}

func TestMachine_InfoWithoutCurrent(t *testing.T) {
	info := machina.New[int, int]().Info()
	assert.Nil(t, info.Current)
	assert.Empty(t, info.Vertices)
	assert.Equal(t, "int", info.IDType)
}

func TestMoore_Info(t *testing.T) {
	mm := machina.NewMoore[int, string, any]()
	require.NoError(t, mm.AddVertexOut(1, "one"))
	require.NoError(t, mm.AddVertex(2))

	info := mm.Info()

	assert.Equal(t, "interface {}", info.OutputType)
	require.Len(t, info.Vertices, 2)
	assert.True(t, info.Vertices[0].HasOutput)
	assert.Equal(t, "one", info.Vertices[0].Output)
	assert.False(t, info.Vertices[1].HasOutput)
}

func TestInfoStrings(t *testing.T) {
	var v *machina.VertexInfo
	assert.Equal(t, machina.NullString, v.String())
	assert.Equal(t, machina.NullString, machina.SignalInfo{}.String())
}
