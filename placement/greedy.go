// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: Interaction-driven placement around the connectivity hub.
// Determinism:
//   - Without WithRand the layout depends only on (c, conn).
// Complexity:
//   - O(len(c) + V·E) dominated by the chain decomposition.

package placement

import (
	"github.com/katalvlaran/qmap/bfs"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/interaction"
)

// GreedyPlacer seats logical qubits in chain-decomposition order.
type GreedyPlacer struct {
	opts options
}

// Greedy returns the decomposition-driven placer.
func Greedy(opts ...Option) *GreedyPlacer {
	p := &GreedyPlacer{}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Place computes the layout:
//  1. order := Decompose(Build(c)).Order(), the busiest qubit first;
//  2. append qubits without two-qubit operations (ascending, or shuffled);
//  3. seat order[i] on the i-th physical qubit of SlotOrder(conn).
//
// Errors: core.ErrNilCircuit, core.ErrNilConnectivity, core.ErrQubitCountMismatch.
func (p *GreedyPlacer) Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error) {
	if err := checkArgs("Greedy.Place", c, conn); err != nil {
		return nil, err
	}
	n := c.NumQubits()

	var dopts []interaction.Option
	if p.opts.rng != nil {
		dopts = append(dopts, interaction.WithRand(p.opts.rng))
	}
	order := interaction.Decompose(interaction.Build(c), dopts...).Order()

	placed := make([]bool, n)
	for _, q := range order {
		placed[q] = true
	}
	rest := make([]int, 0, n-len(order))
	for q := 0; q < n; q++ {
		if !placed[q] {
			rest = append(rest, q)
		}
	}
	if p.opts.rng != nil {
		p.opts.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	}
	order = append(order, rest...)

	slots := SlotOrder(conn)
	phys := make([]int, n)
	for i, q := range order {
		phys[q] = slots[i]
	}
	return core.NewLayout(phys)
}

// SlotOrder lists every physical qubit in BFS order from conn.Hub(), the
// star center when conn is a star. Qubits unreachable from the hub follow
// in ascending order.
func SlotOrder(conn *core.Connectivity) []int {
	n := conn.NumQubits()
	out := make([]int, 0, n)
	seen := make([]bool, n)
	if res, err := bfs.BFS(conn, conn.Hub()); err == nil {
		for _, q := range res.Order {
			out = append(out, q)
			seen[q] = true
		}
	}
	for q := 0; q < n; q++ {
		if !seen[q] {
			out = append(out, q)
		}
	}
	return out
}
