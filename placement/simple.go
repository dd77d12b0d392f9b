// SPDX-License-Identifier: MIT
//
// File: simple.go
// Role: Custom, Trivial and Random placers.

package placement

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/core"
)

// CustomPlacer returns a fixed, caller-chosen layout.
type CustomPlacer struct {
	layout *core.Layout
}

// Custom pins placement to layout. The layout is cloned on every Place call,
// so routing never mutates the caller's copy.
func Custom(layout *core.Layout) *CustomPlacer {
	return &CustomPlacer{layout: layout}
}

// Place validates the pinned layout against c and conn.
//
// Errors: core.ErrNilCircuit, core.ErrNilConnectivity, core.ErrQubitCountMismatch,
// core.ErrInvalidLayout (nil layout or wrong size).
func (p *CustomPlacer) Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error) {
	if err := checkArgs("Custom.Place", c, conn); err != nil {
		return nil, err
	}
	if p.layout == nil {
		return nil, fmt.Errorf("Custom.Place: nil layout: %w", core.ErrInvalidLayout)
	}
	if p.layout.Len() != c.NumQubits() {
		return nil, fmt.Errorf("Custom.Place: layout covers %d qubits, circuit %d: %w",
			p.layout.Len(), c.NumQubits(), core.ErrInvalidLayout)
	}
	return p.layout.Clone(), nil
}

// TrivialPlacer maps logical qubit q onto physical qubit q.
type TrivialPlacer struct{}

// Trivial returns the identity placer.
func Trivial() TrivialPlacer { return TrivialPlacer{} }

// Place returns the identity layout.
func (TrivialPlacer) Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error) {
	if err := checkArgs("Trivial.Place", c, conn); err != nil {
		return nil, err
	}
	return core.IdentityLayout(c.NumQubits()), nil
}

// RandomPlacer draws a uniform permutation. Each Place call reseeds from the
// stored seed, so repeated calls return the same layout.
type RandomPlacer struct {
	seed int64
}

// Random returns a placer drawing a permutation from seed.
func Random(seed int64) *RandomPlacer { return &RandomPlacer{seed: seed} }

// Place returns the seeded permutation.
func (p *RandomPlacer) Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error) {
	if err := checkArgs("Random.Place", c, conn); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(p.seed))
	return core.NewLayout(rng.Perm(c.NumQubits()))
}
