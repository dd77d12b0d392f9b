// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: Swap-insertion strategies.
// Contract:
//   - Swaps is only called for a two-qubit operation whose operands are not
//     adjacent under layout. It must not mutate layout.
//   - Every returned pair is an edge of conn; applying the pairs in order to
//     layout leaves the operands adjacent.

package routing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/bfs"
	"github.com/katalvlaran/qmap/core"
)

// Strategy decides which swaps bring the operands of ops[i] together.
// ops is the whole logical program, so a strategy may look ahead.
type Strategy interface {
	Swaps(conn *core.Connectivity, layout *core.Layout, ops []core.Operation, i int) ([][2]int, error)
}

// StarStrategy routes on a star: any two leaves are one swap apart.
type StarStrategy struct{}

// Swaps moves onto the center the operand whose next two-qubit use comes
// first (the first operand on ties, including when neither is used again).
//
// Errors: ErrNotStar.
func (StarStrategy) Swaps(conn *core.Connectivity, layout *core.Layout, ops []core.Operation, i int) ([][2]int, error) {
	center, ok := conn.Center()
	if !ok {
		return nil, fmt.Errorf("StarStrategy.Swaps: %w", ErrNotStar)
	}
	a, b := ops[i].Qubits[0], ops[i].Qubits[1]
	mover := a
	if nextUse(ops, i+1, b) < nextUse(ops, i+1, a) {
		mover = b
	}
	return [][2]int{{layout.Physical(mover), center}}, nil
}

// nextUse returns the index of the first two-qubit operation at or after
// from that touches logical qubit q, or len(ops) when there is none.
func nextUse(ops []core.Operation, from, q int) int {
	for j := from; j < len(ops); j++ {
		if !ops[j].IsTwoQubit() {
			continue
		}
		if ops[j].Qubits[0] == q || ops[j].Qubits[1] == q {
			return j
		}
	}
	return len(ops)
}

// PathStrategy routes on arbitrary connected graphs along shortest paths.
type PathStrategy struct{}

// Swaps walks the first operand along a BFS shortest path toward the second,
// one swap per hop, stopping one hop short. A path of k qubits costs k-2 swaps.
//
// Errors: core.ErrDisconnectedTopology when no path exists.
func (PathStrategy) Swaps(conn *core.Connectivity, layout *core.Layout, ops []core.Operation, i int) ([][2]int, error) {
	src := layout.Physical(ops[i].Qubits[0])
	dst := layout.Physical(ops[i].Qubits[1])
	path, err := bfs.ShortestPath(conn, src, dst)
	if err != nil {
		if errors.Is(err, bfs.ErrUnreachable) {
			return nil, fmt.Errorf("PathStrategy.Swaps(%d,%d): %w", src, dst, core.ErrDisconnectedTopology)
		}
		return nil, fmt.Errorf("PathStrategy.Swaps(%d,%d): %w", src, dst, err)
	}
	swaps := make([][2]int, 0, len(path))
	for k := 0; k+2 < len(path); k++ {
		swaps = append(swaps, [2]int{path[k], path[k+1]})
	}
	return swaps, nil
}

// defaultStrategy picks StarStrategy when conn has a center.
func defaultStrategy(conn *core.Connectivity) Strategy {
	if _, ok := conn.Center(); ok {
		return StarStrategy{}
	}
	return PathStrategy{}
}
