package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/placement"
	"github.com/katalvlaran/qmap/routing"
)

// RouteSuite exercises Route, FinalLayout and CheckAdjacency.
type RouteSuite struct {
	suite.Suite
	star *core.Connectivity
	line *core.Connectivity
}

func (s *RouteSuite) SetupTest() {
	var err error
	s.star, err = builder.StarTopology(5, 2)
	require.NoError(s.T(), err)
	s.line, err = builder.BuildTopology(4, builder.Line())
	require.NoError(s.T(), err)
}

func scenario() *core.Circuit {
	c := core.MustCircuit(5)
	c.MustAdd("CNOT", 0, 2).MustAdd("CNOT", 2, 4).MustAdd("CNOT", 1, 3).MustAdd("CNOT", 2, 4)
	return c
}

func opStrings(c *core.Circuit) []string {
	out := make([]string, 0, c.Len())
	for _, op := range c.Ops() {
		out = append(out, op.String())
	}
	return out
}

// TestScenarioOnStar routes the five-qubit scenario from the greedy layout.
func (s *RouteSuite) TestScenarioOnStar() {
	initial, err := placement.Greedy().Place(scenario(), s.star)
	require.NoError(s.T(), err)

	res, err := routing.Route(scenario(), s.star, initial)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Swaps)
	require.Equal(s.T(), []string{
		"CNOT(1,2)", "CNOT(2,0)",
		"SWAP(3,2)", "CNOT(2,4)",
		"SWAP(3,2)", "CNOT(2,0)",
	}, opStrings(res.Circuit))
	require.True(s.T(), res.Initial.Equal(initial))
	require.Equal(s.T(), []int{1, 3, 2, 4, 0}, res.Final.Slice())
}

// TestAlreadyAdjacentNeedsNoSwaps checks that a routable circuit is left alone.
func (s *RouteSuite) TestAlreadyAdjacentNeedsNoSwaps() {
	c := core.MustCircuit(4)
	c.MustAdd("H", 0).MustAdd("CNOT", 0, 1).MustAdd("CZ", 2, 1).MustAdd("CNOT", 2, 3)
	require.NoError(s.T(), c.AddParam("RZ", []float64{0.25}, 3))

	res, err := routing.Route(c, s.line, core.IdentityLayout(4))
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Swaps)
	require.True(s.T(), res.Final.IsIdentity())
	require.Equal(s.T(), opStrings(c), opStrings(res.Circuit))
}

// TestStarLookAhead moves the operand needed again next onto the center.
func (s *RouteSuite) TestStarLookAhead() {
	star4, err := builder.StarTopology(4, 0)
	require.NoError(s.T(), err)
	c := core.MustCircuit(4)
	c.MustAdd("CNOT", 1, 2).MustAdd("CNOT", 2, 3)

	res, err := routing.Route(c, star4, core.IdentityLayout(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Swaps)
	require.Equal(s.T(), []string{"SWAP(2,0)", "CNOT(1,0)", "CNOT(0,3)"}, opStrings(res.Circuit))
}

// TestPathStrategyOnLine walks the first operand next to the second.
func (s *RouteSuite) TestPathStrategyOnLine() {
	c := core.MustCircuit(4)
	c.MustAdd("CNOT", 0, 3)

	res, err := routing.Route(c, s.line, core.IdentityLayout(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Swaps)
	require.Equal(s.T(), []string{"SWAP(0,1)", "SWAP(1,2)", "CNOT(2,3)"}, opStrings(res.Circuit))
	require.Equal(s.T(), []int{2, 0, 1, 3}, res.Final.Slice())
}

func (s *RouteSuite) TestErrors() {
	_, err := routing.Route(nil, s.star, core.IdentityLayout(5))
	require.ErrorIs(s.T(), err, core.ErrNilCircuit)
	_, err = routing.Route(scenario(), nil, core.IdentityLayout(5))
	require.ErrorIs(s.T(), err, core.ErrNilConnectivity)
	_, err = routing.Route(scenario(), s.line, core.IdentityLayout(4))
	require.ErrorIs(s.T(), err, core.ErrQubitCountMismatch)
	_, err = routing.Route(scenario(), s.star, core.IdentityLayout(3))
	require.ErrorIs(s.T(), err, core.ErrInvalidLayout)
	_, err = routing.Route(scenario(), s.star, nil)
	require.ErrorIs(s.T(), err, core.ErrInvalidLayout)

	c := core.MustCircuit(4)
	c.MustAdd("CNOT", 0, 3)
	_, err = routing.Route(c, s.line, core.IdentityLayout(4), routing.WithStrategy(routing.StarStrategy{}))
	require.ErrorIs(s.T(), err, routing.ErrNotStar)

	split, err := core.NewConnectivity(4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), split.AddEdge(0, 1))
	require.NoError(s.T(), split.AddEdge(2, 3))
	_, err = routing.Route(c, split, core.IdentityLayout(4))
	require.ErrorIs(s.T(), err, core.ErrDisconnectedTopology)
}

// TestRandomCircuitsStayOnEdges is the adjacency property over several
// topologies and both strategies.
func (s *RouteSuite) TestRandomCircuitsStayOnEdges() {
	topologies := map[string]builder.Constructor{
		"star": builder.Star(0),
		"line": builder.Line(),
		"ring": builder.Ring(),
		"grid": builder.Grid(2, 3),
	}
	for name, cons := range topologies {
		conn, err := builder.BuildTopology(6, cons)
		require.NoError(s.T(), err, name)
		for seed := int64(1); seed <= 15; seed++ {
			c, err := builder.RandomCircuit(6, 40, builder.WithSeed(seed))
			require.NoError(s.T(), err)
			initial, err := placement.Random(seed).Place(c, conn)
			require.NoError(s.T(), err)

			res, err := routing.Route(c, conn, initial)
			require.NoError(s.T(), err, "%s seed %d", name, seed)
			require.NoError(s.T(), routing.CheckAdjacency(res.Circuit, conn), "%s seed %d", name, seed)
			require.Equal(s.T(), c.Len()+res.Swaps, res.Circuit.Len())
			require.Equal(s.T(), res.Swaps, res.Circuit.Count(core.GateSWAP)-c.Count(core.GateSWAP))

			replayed, err := routing.FinalLayout(res.Circuit, initial)
			require.NoError(s.T(), err)
			require.True(s.T(), replayed.Equal(res.Final), "%s seed %d", name, seed)
			replayed, err = res.Replay()
			require.NoError(s.T(), err)
			require.True(s.T(), replayed.Equal(res.Final), "%s seed %d", name, seed)
		}
	}
}

// TestInputSwapIsNotARoutingSwap keeps a circuit's own SWAP out of the layout.
func (s *RouteSuite) TestInputSwapIsNotARoutingSwap() {
	c := core.MustCircuit(4)
	c.MustAdd("SWAP", 0, 1).MustAdd("CNOT", 0, 3)

	res, err := routing.Route(c, s.line, core.IdentityLayout(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Swaps)
	require.Equal(s.T(), []int{1, 2}, res.Inserted)
	require.Equal(s.T(), []string{"SWAP(0,1)", "SWAP(0,1)", "SWAP(1,2)", "CNOT(2,3)"}, opStrings(res.Circuit))

	replayed, err := res.Replay()
	require.NoError(s.T(), err)
	require.True(s.T(), replayed.Equal(res.Final))
}

func (s *RouteSuite) TestReplayRejectsBadIndex() {
	res := &routing.Result{
		Circuit:  core.MustCircuit(2).MustAdd("CNOT", 0, 1),
		Initial:  core.IdentityLayout(2),
		Final:    core.IdentityLayout(2),
		Inserted: []int{0},
	}
	_, err := res.Replay()
	require.ErrorIs(s.T(), err, core.ErrQubitOutOfRange)
}

func (s *RouteSuite) TestCheckAdjacency() {
	c := core.MustCircuit(4)
	c.MustAdd("CNOT", 0, 1).MustAdd("CNOT", 0, 2)
	require.ErrorIs(s.T(), routing.CheckAdjacency(c, s.line), routing.ErrNotAdjacent)
	require.ErrorIs(s.T(), routing.CheckAdjacency(nil, s.line), core.ErrNilCircuit)
}

func (s *RouteSuite) TestFinalLayoutErrors() {
	_, err := routing.FinalLayout(nil, core.IdentityLayout(2))
	require.ErrorIs(s.T(), err, core.ErrNilCircuit)
	_, err = routing.FinalLayout(core.MustCircuit(3), core.IdentityLayout(2))
	require.ErrorIs(s.T(), err, core.ErrInvalidLayout)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}
