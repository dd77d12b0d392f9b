package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
)

func TestStar(t *testing.T) {
	g, err := builder.StarTopology(5, 2)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}, {2, 3}, {2, 4}}, g.Edges())
	c, ok := g.Center()
	require.True(t, ok)
	assert.Equal(t, 2, c)
}

func TestStar_Errors(t *testing.T) {
	_, err := builder.StarTopology(1, 0)
	require.ErrorIs(t, err, builder.ErrTooFewQubits)
	_, err = builder.StarTopology(5, 5)
	require.ErrorIs(t, err, builder.ErrCenterOutOfRange)
	_, err = builder.StarTopology(5, -1)
	require.ErrorIs(t, err, builder.ErrCenterOutOfRange)
}

func TestLineRing(t *testing.T) {
	line, err := builder.BuildTopology(4, builder.Line())
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, line.Edges())

	ring, err := builder.BuildTopology(4, builder.Ring())
	require.NoError(t, err)
	assert.Equal(t, 4, ring.EdgeCount())
	assert.True(t, ring.HasEdge(3, 0))

	_, err = builder.BuildTopology(2, builder.Ring())
	require.ErrorIs(t, err, builder.ErrTooFewQubits)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildTopology(6, builder.Grid(2, 3))
	require.NoError(t, err)
	// 2 rows × 2 horizontal + 3 vertical
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 4))
	assert.False(t, g.HasEdge(2, 3), "row ends do not wrap")

	_, err = builder.BuildTopology(6, builder.Grid(2, 2))
	require.ErrorIs(t, err, builder.ErrGridShape)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildTopology(5, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestBuildTopology_ComposeAndNil(t *testing.T) {
	g, err := builder.BuildTopology(4, builder.Line(), builder.Star(0))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount()) // 0-1 shared
	_, err = builder.BuildTopology(4, nil)
	require.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.BuildTopology(0)
	require.ErrorIs(t, err, core.ErrBadQubitCount)
}

func TestRandomCircuit_Deterministic(t *testing.T) {
	a, err := builder.RandomCircuit(4, 30, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomCircuit(4, 30, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.Ops(), b.Ops())
	assert.Equal(t, 30, a.Len())
	for _, op := range a.Ops() {
		if op.IsTwoQubit() {
			assert.NotEqual(t, op.Qubits[0], op.Qubits[1])
		}
	}
}

func TestRandomCircuit_Errors(t *testing.T) {
	_, err := builder.RandomCircuit(4, 3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomCircuit(1, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewQubits)
	_, err = builder.RandomCircuit(3, 3, builder.WithSeed(1), builder.WithTwoQubitRatio(1.5))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.RandomCircuit(3, 3, builder.WithSeed(1), builder.WithSingleQubitGates())
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestRandomCircuit_AllTwoQubit(t *testing.T) {
	c, err := builder.RandomCircuit(3, 12, builder.WithSeed(3),
		builder.WithTwoQubitRatio(1), builder.WithTwoQubitGate(core.GateCZ))
	require.NoError(t, err)
	assert.Equal(t, 12, c.Count(core.GateCZ))
}

func TestReferenceCircuits(t *testing.T) {
	a := builder.ReferenceCircuitA()
	assert.Equal(t, builder.ReferenceQubits, a.NumQubits())
	assert.Equal(t, 20, a.Len())
	assert.Equal(t, 13, a.TwoQubitCount())

	b := builder.ReferenceCircuitB()
	assert.Equal(t, 26, b.Len())
	assert.Equal(t, 15, b.TwoQubitCount())
}
