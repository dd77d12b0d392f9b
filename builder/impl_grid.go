// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_grid.go - Grid(rows, cols) and Complete() constructors.
//
// Contract:
//   - Grid: rows ≥ 1, cols ≥ 1, rows*cols == n (else ErrGridShape); qubit at
//     (r,c) has index r*cols + c; right and down neighbors are connected.
//   - Complete: n ≥ 2; every unordered pair i<j, emitted i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

const (
	methodGrid       = "Grid"
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Grid returns a Constructor for a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Connectivity) error {
		n := g.NumQubits()
		if rows < 1 || cols < 1 || rows*cols != n {
			return fmt.Errorf("%s: %dx%d for n=%d: %w", methodGrid, rows, cols, n, ErrGridShape)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := g.AddEdge(u, u+1); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, u+1, err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(u, u+cols); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, u+cols, err)
					}
				}
			}
		}
		return nil
	}
}

// Complete returns a Constructor connecting every pair of qubits.
func Complete() Constructor {
	return func(g *core.Connectivity) error {
		n := g.NumQubits()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewQubits)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}
		return nil
	}
}
