// SPDX-License-Identifier: MIT
//
// File: transpile.go
// Role: End-to-end pipeline and its report.

package transpile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/qmap/config"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/routing"
	"github.com/katalvlaran/qmap/verify"
)

// Report summarizes one pipeline run.
type Report struct {
	// Result is the best routing found by the search.
	Result *routing.Result
	// Initial is the layout Result was routed from.
	Initial *core.Layout
	// Iterations is the number of search trials run.
	Iterations int
	// Verified is true when the equivalence check ran and passed.
	Verified bool
	// Fidelity is set when the equivalence check ran.
	Fidelity float64
	// SkipReason explains why verification did not run; empty otherwise.
	SkipReason string
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the pipeline and the search it runs.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Run is RunContext with context.Background().
func Run(c *core.Circuit, cfg config.Config, opts ...Option) (*Report, error) {
	return RunContext(context.Background(), c, cfg, opts...)
}

// RunContext validates cfg, builds the connectivity graph, searches for the
// lowest-swap routing of c and, when cfg.Verify.Enabled, checks equivalence.
// Verification is skipped, not failed, when c exceeds cfg.Verify.MaxQubits.
//
// On ErrNotEquivalent the report is returned together with the error.
//
// Errors: config.ErrInvalidConfig, builder errors, routing errors,
// verify errors.
func RunContext(ctx context.Context, c *core.Circuit, cfg config.Config, opts ...Option) (*Report, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("transpile: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("transpile: %w", core.ErrNilCircuit)
	}
	conn, err := cfg.Connectivity()
	if err != nil {
		return nil, fmt.Errorf("transpile: %w", err)
	}

	res, initial, err := routing.SearchContext(ctx, c, conn, cfg.Search.Iterations, cfg.SearchOptions(o.logger)...)
	if err != nil {
		return nil, fmt.Errorf("transpile: %w", err)
	}
	rep := &Report{Result: res, Initial: initial, Iterations: cfg.Search.Iterations}

	switch {
	case !cfg.Verify.Enabled:
		rep.SkipReason = "verification disabled"
	case c.NumQubits() > cfg.Verify.MaxQubits:
		rep.SkipReason = fmt.Sprintf("%d qubits above ceiling %d", c.NumQubits(), cfg.Verify.MaxQubits)
	default:
		rep.Fidelity, err = verify.CheckEquivalence(c, res, initial, cfg.Verify.Tolerance, cfg.VerifyOptions()...)
		if err != nil {
			rep.Elapsed = time.Since(start)
			o.logger.Error("equivalence check failed", "fidelity", rep.Fidelity, "error", err)
			return rep, fmt.Errorf("transpile: %w", err)
		}
		rep.Verified = true
	}
	rep.Elapsed = time.Since(start)

	o.logger.Info("mapping done",
		"topology", cfg.Topology.Kind,
		"qubits", c.NumQubits(),
		"ops", c.Len(),
		"swaps", res.Swaps,
		"initial", initial.String(),
		"final", res.Final.String(),
		"verified", rep.Verified,
		"fidelity", rep.Fidelity,
		"skip", rep.SkipReason,
		"elapsed", rep.Elapsed)
	return rep, nil
}
