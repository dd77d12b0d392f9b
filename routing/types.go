// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Result and functional options for Route and Search.

package routing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qmap/core"
)

// Sentinel errors for routing.
var (
	// ErrBadIterations is returned by Search when iterations < 1.
	ErrBadIterations = errors.New("routing: iterations must be at least 1")

	// ErrNotStar is returned by StarStrategy on a graph without a center.
	ErrNotStar = errors.New("routing: connectivity is not a star")

	// ErrNotAdjacent is returned when a two-qubit operation acts on a
	// non-adjacent pair (CheckAdjacency, or a Strategy that fell short).
	ErrNotAdjacent = errors.New("routing: two-qubit operation on non-adjacent qubits")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("routing: invalid option supplied")
)

// Result is a routed circuit together with the layouts it starts and ends in.
// It is not mutated after being returned.
type Result struct {
	// Circuit holds physical-index operations, inserted SWAPs included.
	Circuit *core.Circuit
	// Initial is the layout routing started from.
	Initial *core.Layout
	// Final is the layout after the last operation.
	Final *core.Layout
	// Swaps counts inserted SWAP operations.
	Swaps int
	// Inserted lists the Circuit indices of the SWAPs routing inserted, in
	// order. SWAP gates of the input circuit are not listed.
	Inserted []int
}

// Replay applies the inserted swaps to a copy of Initial. For a consistent
// result it equals Final.
//
// Errors: core.ErrInvalidLayout, core.ErrQubitOutOfRange (an index that is
// not a SWAP of the routed circuit).
func (r *Result) Replay() (*core.Layout, error) {
	if r.Circuit == nil {
		return nil, fmt.Errorf("Result.Replay: %w", core.ErrNilCircuit)
	}
	if r.Initial == nil || r.Initial.Len() != r.Circuit.NumQubits() {
		return nil, fmt.Errorf("Result.Replay: %w", core.ErrInvalidLayout)
	}
	l := r.Initial.Clone()
	for _, i := range r.Inserted {
		if i < 0 || i >= r.Circuit.Len() || !r.Circuit.At(i).IsSwap() {
			return nil, fmt.Errorf("Result.Replay: index %d is not a swap: %w", i, core.ErrQubitOutOfRange)
		}
		op := r.Circuit.At(i)
		l.SwapPhysical(op.Qubits[0], op.Qubits[1])
	}
	return l, nil
}

// Option configures Route and Search.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds routing and search parameters.
type Options struct {
	// Strategy inserts swaps; nil selects StarStrategy on a star and
	// PathStrategy otherwise.
	Strategy Strategy

	// InitialLayout pins every Search trial to this layout.
	InitialLayout *core.Layout

	// Seed is the base seed trial streams derive from (0 selects a fixed default).
	Seed int64

	// Workers bounds concurrent Search trials; values ≤ 1 run sequentially.
	Workers int

	// Logger receives per-trial debug records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns automatic strategy selection, sequential trials and
// a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithStrategy overrides strategy selection.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithInitialLayout makes every Search trial start from l.
func WithInitialLayout(l *core.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("WithInitialLayout: nil layout: %w", ErrOptionViolation)
			return
		}
		o.InitialLayout = l
	}
}

// WithSeed sets the base seed for randomized trials.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers runs up to k trials concurrently. k must be ≥ 1.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("WithWorkers(%d): %w", k, ErrOptionViolation)
			return
		}
		o.Workers = k
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
