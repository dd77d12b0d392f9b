// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_path.go - Line() and Ring() constructors.
//
// Contract:
//   - Line: n ≥ 2; edges (i,i+1) for i = 0..n-2.
//   - Ring: n ≥ 3; Line plus (n-1,0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

const (
	methodLine   = "Line"
	methodRing   = "Ring"
	minLineNodes = 2
	minRingNodes = 3
)

// Line returns a Constructor that chains qubits 0–1–…–(n-1).
func Line() Constructor {
	return func(g *core.Connectivity) error {
		n := g.NumQubits()
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewQubits)
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodLine, i, i+1, err)
			}
		}
		return nil
	}
}

// Ring returns a Constructor that builds the cycle 0–1–…–(n-1)–0.
func Ring() Constructor {
	return func(g *core.Connectivity) error {
		n := g.NumQubits()
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewQubits)
		}
		if err := Line()(g); err != nil {
			return fmt.Errorf("%s: %w", methodRing, err)
		}
		if err := g.AddEdge(n-1, 0); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,0): %w", methodRing, n-1, err)
		}
		return nil
	}
}
