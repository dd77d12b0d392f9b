// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_random_circuit.go - seeded random circuit fixtures.
//
// Contract:
//   - n ≥ 2 (two-qubit gates need two distinct wires), length ≥ 0.
//   - cfg.rng must be non-nil (ErrNeedRandSource).
//   - Each step draws "two-qubit?" with cfg.twoQubitRatio, then operands
//     uniformly (distinct for two-qubit), then a gate from the pool.
//
// Determinism:
//   - Fixed draw order per step ⇒ identical circuits for identical seeds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

const (
	methodRandomCircuit = "RandomCircuit"
	minRandomQubits     = 2
)

// RandomCircuit returns a circuit of length operations over n qubits.
func RandomCircuit(n, length int, opts ...BuilderOption) (*core.Circuit, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomCircuit, cfg.err)
	}
	if n < minRandomQubits {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomCircuit, n, minRandomQubits, ErrTooFewQubits)
	}
	if length < 0 {
		return nil, fmt.Errorf("%s: length=%d: %w", methodRandomCircuit, length, ErrOptionViolation)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomCircuit, ErrNeedRandSource)
	}

	c, err := core.NewCircuit(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomCircuit, err)
	}
	rng := cfg.rng
	for i := 0; i < length; i++ {
		if rng.Float64() < cfg.twoQubitRatio {
			a := rng.Intn(n)
			b := rng.Intn(n - 1)
			if b >= a {
				b++
			}
			err = c.Add(cfg.twoQubitGate, a, b)
		} else {
			q := rng.Intn(n)
			err = c.Add(cfg.singleGates[rng.Intn(len(cfg.singleGates))], q)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodRandomCircuit, i, err)
		}
	}
	return c, nil
}
