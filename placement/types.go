// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Placer interface, options and shared argument checks.

package placement

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/core"
)

// Placer produces an initial layout for c on conn.
type Placer interface {
	Place(c *core.Circuit, conn *core.Connectivity) (*core.Layout, error)
}

// Option configures randomized placers.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand makes Greedy break decomposition ties and order the qubits that
// never interact using r. A nil r keeps the deterministic behavior.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// checkArgs validates the arguments every placer shares.
func checkArgs(method string, c *core.Circuit, conn *core.Connectivity) error {
	if c == nil {
		return fmt.Errorf("%s: %w", method, core.ErrNilCircuit)
	}
	if conn == nil {
		return fmt.Errorf("%s: %w", method, core.ErrNilConnectivity)
	}
	if c.NumQubits() != conn.NumQubits() {
		return fmt.Errorf("%s: circuit has %d qubits, connectivity %d: %w",
			method, c.NumQubits(), conn.NumQubits(), core.ErrQubitCountMismatch)
	}
	return nil
}
