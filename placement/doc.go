// Package placement chooses the initial logical→physical layout a circuit is
// routed from.
//
// Every placer implements Placer:
//
//	Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error)
//
// Available placers:
//
//   - Greedy: decomposes the interaction graph (see package interaction) and
//     seats qubits in decomposition order, the busiest logical qubit on the
//     hub of the connectivity graph. Remaining slots are filled in BFS order
//     from the hub, so chains land on physically close qubits.
//   - Custom: returns a caller-supplied layout after validating it.
//   - Trivial: the identity layout.
//   - Random: a seeded uniform permutation.
//
// Greedy and Random hold a *rand.Rand when randomized and are therefore not
// safe for concurrent use; build one placer per goroutine.
package placement
