package routing_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/placement"
	"github.com/katalvlaran/qmap/routing"
)

func TestSearch_Scenario(t *testing.T) {
	star, err := builder.StarTopology(5, 2)
	require.NoError(t, err)

	res, layout, err := routing.Search(scenario(), star, 10)
	require.NoError(t, err)
	// The center must hold a member of {0,2}, {2,4}, {1,3}, {2,4} in turn,
	// so two center changes are unavoidable.
	assert.Equal(t, 2, res.Swaps)
	assert.Equal(t, 2, layout.Physical(2))

	greedy, err := placement.Greedy().Place(scenario(), star)
	require.NoError(t, err)
	assert.True(t, layout.Equal(greedy), "ties keep the lowest trial, the deterministic one")
	assert.True(t, layout.Equal(res.Initial))
}

func TestSearch_Errors(t *testing.T) {
	star, err := builder.StarTopology(5, 2)
	require.NoError(t, err)

	_, _, err = routing.Search(scenario(), star, 0)
	require.ErrorIs(t, err, routing.ErrBadIterations)
	_, _, err = routing.Search(nil, star, 1)
	require.ErrorIs(t, err, core.ErrNilCircuit)
	_, _, err = routing.Search(scenario(), nil, 1)
	require.ErrorIs(t, err, core.ErrNilConnectivity)
	_, _, err = routing.Search(core.MustCircuit(4), star, 1)
	require.ErrorIs(t, err, core.ErrQubitCountMismatch)
	_, _, err = routing.Search(scenario(), star, 1, routing.WithWorkers(0))
	require.ErrorIs(t, err, routing.ErrOptionViolation)
	_, _, err = routing.Search(scenario(), star, 1, routing.WithInitialLayout(nil))
	require.ErrorIs(t, err, routing.ErrOptionViolation)
	_, _, err = routing.Search(scenario(), star, 1, routing.WithInitialLayout(core.IdentityLayout(4)))
	require.ErrorIs(t, err, core.ErrInvalidLayout)

	split, err := core.NewConnectivity(5)
	require.NoError(t, err)
	require.NoError(t, split.AddEdge(0, 1))
	_, _, err = routing.Search(scenario(), split, 3)
	require.ErrorIs(t, err, core.ErrDisconnectedTopology)
}

func TestSearch_PinnedLayout(t *testing.T) {
	star, err := builder.StarTopology(5, 2)
	require.NoError(t, err)
	pinned := core.IdentityLayout(5)

	res, layout, err := routing.Search(scenario(), star, 4, routing.WithInitialLayout(pinned))
	require.NoError(t, err)
	assert.True(t, layout.IsIdentity())

	direct, err := routing.Route(scenario(), star, pinned)
	require.NoError(t, err)
	assert.Equal(t, direct.Swaps, res.Swaps)
}

func TestSearch_WorkersMatchSequential(t *testing.T) {
	star, err := builder.StarTopology(builder.ReferenceQubits, 0)
	require.NoError(t, err)
	for _, c := range []*core.Circuit{builder.ReferenceCircuitA(), builder.ReferenceCircuitB()} {
		seq, seqLayout, err := routing.Search(c, star, 24, routing.WithSeed(7))
		require.NoError(t, err)
		par, parLayout, err := routing.Search(c, star, 24, routing.WithSeed(7), routing.WithWorkers(4))
		require.NoError(t, err)

		assert.Equal(t, seq.Swaps, par.Swaps)
		assert.True(t, seqLayout.Equal(parLayout))
		assert.Equal(t, seq.Circuit.String(), par.Circuit.String())
		require.NoError(t, routing.CheckAdjacency(par.Circuit, star))
	}
}

func TestSearch_NeverWorseThanSingleTrial(t *testing.T) {
	grid, err := builder.BuildTopology(6, builder.Grid(2, 3))
	require.NoError(t, err)
	for seed := int64(1); seed <= 10; seed++ {
		c, err := builder.RandomCircuit(6, 30, builder.WithSeed(seed))
		require.NoError(t, err)
		one, _, err := routing.Search(c, grid, 1, routing.WithSeed(seed))
		require.NoError(t, err)
		many, _, err := routing.Search(c, grid, 12, routing.WithSeed(seed))
		require.NoError(t, err)
		assert.LessOrEqual(t, many.Swaps, one.Swaps)
	}
}

func TestSearch_LogsEveryTrial(t *testing.T) {
	star, err := builder.StarTopology(5, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err = routing.Search(scenario(), star, 3, routing.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "routing trial"))
	assert.Contains(t, buf.String(), "routing search done")
}

func TestSearch_Cancelled(t *testing.T) {
	star, err := builder.StarTopology(5, 2)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = routing.SearchContext(ctx, scenario(), star, 5)
	require.ErrorIs(t, err, context.Canceled)
	_, _, err = routing.SearchContext(ctx, scenario(), star, 5, routing.WithWorkers(2))
	require.ErrorIs(t, err, context.Canceled)
}
