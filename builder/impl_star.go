// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_star.go - implementation of Star(center) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewQubits).
//   - 0 ≤ center < n (else ErrCenterOutOfRange).
//   - Emits spokes center–leaf in ascending leaf order; no other edges.
//
// Complexity:
//   - Time: O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects center to every other qubit.
func Star(center int) Constructor {
	return func(g *core.Connectivity) error {
		n := g.NumQubits()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewQubits)
		}
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d not in [0,%d): %w", methodStar, center, n, ErrCenterOutOfRange)
		}
		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			if err := g.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, center, leaf, err)
			}
		}
		return nil
	}
}
