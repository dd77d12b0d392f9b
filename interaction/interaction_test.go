package interaction_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/interaction"
)

// scenario is (0,2),(2,4),(1,3),(2,4) over five qubits with one H mixed in.
func scenario() *core.Circuit {
	c := core.MustCircuit(5)
	c.MustAdd("CNOT", 0, 2).MustAdd("H", 1).MustAdd("CNOT", 2, 4).MustAdd("CNOT", 1, 3).MustAdd("CNOT", 2, 4)
	return c
}

func TestBuild_CountsPairs(t *testing.T) {
	g := interaction.Build(scenario())

	assert.Equal(t, 5, g.NumQubits())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.Weight(0, 2))
	assert.Equal(t, 2, g.Weight(4, 2), "pairs are unordered")
	assert.Equal(t, 0, g.Weight(0, 1))
	assert.Equal(t, []interaction.Pair{{0, 2}, {1, 3}, {2, 4}}, g.Pairs())
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 3, g.Strength(2))
	assert.Equal(t, [][]int{{2}, {3}, {0, 4}, {1}, {2}}, g.Adjacency())
}

func TestBuild_NilAndSingleQubitOnly(t *testing.T) {
	assert.Zero(t, interaction.Build(nil).NumQubits())

	c := core.MustCircuit(3)
	c.MustAdd("H", 0).MustAdd("X", 2)
	g := interaction.Build(c)
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, interaction.Decompose(g))
}

func TestGraph_AddErrors(t *testing.T) {
	g := interaction.NewGraph(3)
	require.ErrorIs(t, g.Add(0, 3, 1), interaction.ErrQubitOutOfRange)
	require.ErrorIs(t, g.Add(1, 1, 1), interaction.ErrSelfPair)
	require.ErrorIs(t, g.Add(0, 1, 0), interaction.ErrBadWeight)
	require.NoError(t, g.Add(1, 0, 4))
	assert.Equal(t, 4, g.Weight(0, 1))
}

// A path interaction graph must come out as a single chain.
func TestDecompose_PathIsOneChain(t *testing.T) {
	c := core.MustCircuit(4)
	c.MustAdd("CNOT", 0, 1).MustAdd("CNOT", 1, 2).MustAdd("CNOT", 2, 3)

	d := interaction.Decompose(interaction.Build(c))
	require.Len(t, d, 1)
	assert.Equal(t, 1, d[0].Root)
	assert.Equal(t, []int{0, 1, 2, 3}, d[0].Qubits)
	assert.Equal(t, []int{1, 0, 2, 3}, d.Order())
}

func TestDecompose_ScenarioOrder(t *testing.T) {
	d := interaction.Decompose(interaction.Build(scenario()))
	require.Len(t, d, 2)
	assert.Equal(t, interaction.Chain{Root: 2, Qubits: []int{4, 2, 0}}, d[0])
	assert.Equal(t, interaction.Chain{Root: 1, Qubits: []int{1, 3}}, d[1])
	assert.Equal(t, []int{2, 4, 0, 1, 3}, d.Order())
}

func TestDecompose_IsolatedQubitsOmitted(t *testing.T) {
	c := core.MustCircuit(6)
	c.MustAdd("CZ", 0, 5).MustAdd("H", 3)

	d := interaction.Decompose(interaction.Build(c))
	assert.ElementsMatch(t, []int{0, 5}, d.Order())
}

// assertPartition checks that every edge of g appears exactly once and that
// no chain revisits a qubit.
func assertPartition(t *testing.T, g *interaction.Graph, d interaction.Decomposition) {
	t.Helper()
	seen := make(map[interaction.Pair]int)
	for _, ch := range d {
		require.NotEmpty(t, ch.Qubits)
		assert.Contains(t, ch.Qubits, ch.Root)
		inChain := make(map[int]bool)
		for _, q := range ch.Qubits {
			assert.False(t, inChain[q], "qubit %d repeated in chain %v", q, ch.Qubits)
			inChain[q] = true
		}
		for _, e := range ch.Edges() {
			seen[e]++
		}
	}
	for _, p := range g.Pairs() {
		assert.Equal(t, 1, seen[p], "pair %v", p)
	}
	assert.Len(t, seen, g.EdgeCount(), "chains must not invent pairs")
}

func TestDecompose_PartitionsRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		c, err := builder.RandomCircuit(7, 30, builder.WithSeed(seed), builder.WithTwoQubitRatio(0.8))
		require.NoError(t, err)
		g := interaction.Build(c)

		assertPartition(t, g, interaction.Decompose(g))
		assertPartition(t, g, interaction.Decompose(g, interaction.WithRand(rand.New(rand.NewSource(seed)))))
	}
}

func TestDecompose_DoesNotMutateGraph(t *testing.T) {
	g := interaction.Build(scenario())
	before := g.Pairs()
	_ = interaction.Decompose(g)
	assert.Equal(t, before, g.Pairs())
	assert.Equal(t, 2, g.Degree(2))
}

func TestDecompose_RandTiesStayValid(t *testing.T) {
	// Complete interaction graph over four qubits: every root pick is a tie.
	g := interaction.NewGraph(4)
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			require.NoError(t, g.Add(a, b, 1))
		}
	}
	roots := make(map[int]bool)
	for seed := int64(0); seed < 32; seed++ {
		d := interaction.Decompose(g, interaction.WithRand(rand.New(rand.NewSource(seed))))
		assertPartition(t, g, d)
		roots[d[0].Root] = true
	}
	assert.Greater(t, len(roots), 1, "random tie-breaking should vary the first root")
}
