// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Evaluator interface, sentinel errors and Simulator options.

package unitary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/matrix"
)

// Sentinel errors for unitary evaluation.
var (
	// ErrUnknownGate indicates a gate name the simulator cannot evaluate.
	ErrUnknownGate = errors.New("unitary: unknown gate")

	// ErrMissingParam indicates a rotation without its angle.
	ErrMissingParam = errors.New("unitary: missing gate parameter")

	// ErrGateArity indicates a known gate applied to the wrong number of qubits.
	ErrGateArity = errors.New("unitary: gate applied to wrong number of qubits")

	// ErrTooManyQubits indicates a circuit above the configured qubit ceiling.
	ErrTooManyQubits = errors.New("unitary: too many qubits for dense evaluation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("unitary: invalid option supplied")
)

// DefaultMaxQubits bounds dense evaluation: 2^10×2^10 complex128 is 16 MiB.
const DefaultMaxQubits = 10

// Evaluator computes the unitary of a circuit.
type Evaluator interface {
	Unitary(c *core.Circuit) (*matrix.Dense, error)
}

// Option configures a Simulator.
type Option func(*options)

type options struct {
	maxQubits int
	err       error
}

// WithMaxQubits sets the qubit ceiling; n must be in 1..20.
func WithMaxQubits(n int) Option {
	return func(o *options) {
		if n < 1 || n > 20 {
			o.err = fmt.Errorf("WithMaxQubits(%d): %w", n, ErrOptionViolation)
			return
		}
		o.maxQubits = n
	}
}
