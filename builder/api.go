// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// api.go - public entry-point for topology construction.
//
// Design contract:
//   - One orchestrator: BuildTopology(n, cons...). Creates the graph, runs cons in order.
//   - Constructors validate early and return sentinel errors; they never panic.
//   - Determinism: same n and constructor order ⇒ identical edge sets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

// Constructor adds edges to a connectivity graph whose qubit count is
// already fixed. Constructors compose: BuildTopology(6, Line(), Star(0))
// yields the union of both edge sets.
type Constructor func(g *core.Connectivity) error

// BuildTopology creates an n-qubit connectivity graph and applies every
// constructor in order. Any constructor error is wrapped with the context
// "BuildTopology: %w" and returned immediately.
//
// Complexity: O(n) allocation plus the sum of constructor costs.
func BuildTopology(n int, cons ...Constructor) (*core.Connectivity, error) {
	g, err := core.NewConnectivity(n)
	if err != nil {
		return nil, fmt.Errorf("BuildTopology: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTopology: nil constructor at index %d: %w", i, ErrOptionViolation)
		}
		if err = fn(g); err != nil {
			return nil, fmt.Errorf("BuildTopology: %w", err)
		}
	}
	return g, nil
}

// StarTopology is shorthand for BuildTopology(n, Star(center)).
func StarTopology(n, center int) (*core.Connectivity, error) {
	return BuildTopology(n, Star(center))
}
