// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors and options for equivalence checking.

package verify

import (
	"errors"

	"github.com/katalvlaran/qmap/unitary"
)

// Sentinel errors for verification.
var (
	// ErrNotEquivalent is returned when fidelity falls below 1 - tolerance.
	ErrNotEquivalent = errors.New("verify: routed circuit is not equivalent")

	// ErrBadTolerance is returned for a tolerance outside [0,1).
	ErrBadTolerance = errors.New("verify: tolerance must be in [0,1)")

	// ErrLayoutMismatch is returned when the layouts carried by a routing
	// result disagree with the caller's initial layout or with a replay of
	// its SWAP operations.
	ErrLayoutMismatch = errors.New("verify: layout does not match routed circuit")

	// ErrNilResult is returned for a nil routing result.
	ErrNilResult = errors.New("verify: routing result is nil")
)

// Option configures CheckEquivalence.
type Option func(*options)

type options struct {
	eval      unitary.Evaluator
	maxQubits int
}

// WithEvaluator replaces the built-in simulator. A nil e is ignored.
func WithEvaluator(e unitary.Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.eval = e
		}
	}
}

// WithMaxQubits sets the qubit ceiling of the built-in simulator.
// Ignored when WithEvaluator is used.
func WithMaxQubits(n int) Option {
	return func(o *options) { o.maxQubits = n }
}
