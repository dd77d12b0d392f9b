// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// errors.go : sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context as "<Method>: ...: %w".

package builder

import "errors"

// ErrTooFewQubits indicates a qubit count below the constructor's minimum.
var ErrTooFewQubits = errors.New("builder: too few qubits")

// ErrCenterOutOfRange indicates a star center outside 0..n-1.
var ErrCenterOutOfRange = errors.New("builder: center out of range")

// ErrGridShape indicates rows*cols does not equal the qubit count, or a
// non-positive dimension.
var ErrGridShape = errors.New("builder: grid shape does not match qubit count")

// ErrNeedRandSource indicates a stochastic fixture was requested without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a meaningless option value (e.g. ratio outside [0,1]).
var ErrOptionViolation = errors.New("builder: invalid option value")
