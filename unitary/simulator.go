// SPDX-License-Identifier: MIT
//
// File: simulator.go
// Role: Dense unitary evaluation by in-place row updates.
// Complexity:
//   - O(len(c) · 4^n) time, O(4^n) memory.

package unitary

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/matrix"
)

// Simulator is the built-in Evaluator. It holds no state between calls and
// is safe for concurrent use.
type Simulator struct {
	maxQubits int
}

var _ Evaluator = (*Simulator)(nil)

// NewSimulator returns a Simulator; the qubit ceiling defaults to
// DefaultMaxQubits.
//
// Errors: ErrOptionViolation.
func NewSimulator(opts ...Option) (*Simulator, error) {
	o := options{maxQubits: DefaultMaxQubits}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("NewSimulator: %w", o.err)
	}
	return &Simulator{maxQubits: o.maxQubits}, nil
}

// MaxQubits returns the configured ceiling.
func (s *Simulator) MaxQubits() int { return s.maxQubits }

// Unitary returns U = G_k···G_1 for the operations G_1..G_k of c.
//
// Errors: core.ErrNilCircuit, ErrTooManyQubits, ErrUnknownGate,
// ErrMissingParam, ErrGateArity.
func (s *Simulator) Unitary(c *core.Circuit) (*matrix.Dense, error) {
	if c == nil {
		return nil, fmt.Errorf("Simulator.Unitary: %w", core.ErrNilCircuit)
	}
	n := c.NumQubits()
	if n > s.maxQubits {
		return nil, fmt.Errorf("Simulator.Unitary: %d qubits > %d: %w", n, s.maxQubits, ErrTooManyQubits)
	}
	u, err := matrix.Identity(1 << n)
	if err != nil {
		return nil, fmt.Errorf("Simulator.Unitary: %w", err)
	}
	for i := 0; i < c.Len(); i++ {
		if err = apply(u, c.At(i)); err != nil {
			return nil, fmt.Errorf("Simulator.Unitary: op %d: %w", i, err)
		}
	}
	return u, nil
}

// apply left-multiplies u by the gate op.
func apply(u *matrix.Dense, op core.Operation) error {
	dim := u.Rows()
	if op.Arity() == 1 {
		b, err := singleBlock(op)
		if err != nil {
			return err
		}
		bit := 1 << op.Qubits[0]
		for i := 0; i < dim; i++ {
			if i&bit != 0 {
				continue
			}
			if err = u.MixRows(i, i|bit, b[0], b[1], b[2], b[3]); err != nil {
				return err
			}
		}
		return nil
	}

	a, b := 1<<op.Qubits[0], 1<<op.Qubits[1]
	switch op.Name {
	case core.GateCNOT:
		// control a set: flip target b.
		for i := 0; i < dim; i++ {
			if i&a != 0 && i&b == 0 {
				if err := u.SwapRows(i, i|b); err != nil {
					return err
				}
			}
		}
	case core.GateCZ:
		for i := 0; i < dim; i++ {
			if i&a != 0 && i&b != 0 {
				if err := u.ScaleRow(i, -1); err != nil {
					return err
				}
			}
		}
	case core.GateSWAP:
		// |..1_a..0_b..> <-> |..0_a..1_b..>
		for i := 0; i < dim; i++ {
			if i&a != 0 && i&b == 0 {
				if err := u.SwapRows(i, i^a|b); err != nil {
					return err
				}
			}
		}
	default:
		if _, ok := singleGates[op.Name]; ok {
			return fmt.Errorf("%s: %w", op, ErrGateArity)
		}
		return fmt.Errorf("%s: %w", op, ErrUnknownGate)
	}
	return nil
}
