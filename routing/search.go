// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Multi-trial best-mapping search.
// Determinism:
//   - Trial 0 uses deterministic greedy placement; trial i > 0 uses greedy
//     placement with the stream trialRNG(seed, i). The best trial is the one
//     with the fewest swaps, lowest index on ties, independent of Workers.
// Concurrency:
//   - Trials share only read-only inputs (circuit, connectivity). Each writes
//     its own slot of the results slice.

package routing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qmap/bfs"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/placement"
)

// Search routes c from iterations initial layouts and returns the result
// with the fewest swaps together with the initial layout that produced it.
// It is SearchContext with context.Background().
func Search(c *core.Circuit, conn *core.Connectivity, iterations int, opts ...Option) (*Result, *core.Layout, error) {
	return SearchContext(context.Background(), c, conn, iterations, opts...)
}

// SearchContext is Search with cancellation. Structural problems are
// reported before any trial runs; the first failing trial aborts the rest.
//
// Errors: ErrBadIterations, ErrOptionViolation, core.ErrNilCircuit,
// core.ErrNilConnectivity, core.ErrQubitCountMismatch, core.ErrInvalidLayout,
// core.ErrDisconnectedTopology (connectivity split while the circuit has
// two-qubit operations), any Route error, ctx.Err().
func SearchContext(ctx context.Context, c *core.Circuit, conn *core.Connectivity, iterations int, opts ...Option) (*Result, *core.Layout, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("Search: %w", err)
	}
	if iterations < 1 {
		return nil, nil, fmt.Errorf("Search(iterations=%d): %w", iterations, ErrBadIterations)
	}
	if err = checkInputs("Search", c, conn); err != nil {
		return nil, nil, err
	}
	if o.InitialLayout != nil && o.InitialLayout.Len() != c.NumQubits() {
		return nil, nil, fmt.Errorf("Search: initial layout covers %d qubits, circuit %d: %w",
			o.InitialLayout.Len(), c.NumQubits(), core.ErrInvalidLayout)
	}
	if c.TwoQubitCount() > 0 && !bfs.Connected(conn) {
		return nil, nil, fmt.Errorf("Search: %w", core.ErrDisconnectedTopology)
	}

	results := make([]*Result, iterations)
	trial := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := runTrial(c, conn, i, &o)
		if err != nil {
			return fmt.Errorf("Search: trial %d: %w", i, err)
		}
		o.Logger.Debug("routing trial",
			"trial", i,
			"swaps", res.Swaps,
			"initial", res.Initial.String())
		results[i] = res
		return nil
	}

	if o.Workers <= 1 {
		for i := 0; i < iterations; i++ {
			if err = trial(ctx, i); err != nil {
				return nil, nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Workers)
		for i := 0; i < iterations; i++ {
			g.Go(func() error { return trial(gctx, i) })
		}
		if err = g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	best := 0
	for i := 1; i < iterations; i++ {
		if results[i].Swaps < results[best].Swaps {
			best = i
		}
	}
	o.Logger.Debug("routing search done",
		"trials", iterations,
		"best_trial", best,
		"swaps", results[best].Swaps)
	return results[best], results[best].Initial.Clone(), nil
}

// runTrial places and routes once.
func runTrial(c *core.Circuit, conn *core.Connectivity, i int, o *Options) (*Result, error) {
	var p placement.Placer
	switch {
	case o.InitialLayout != nil:
		p = placement.Custom(o.InitialLayout)
	case i == 0:
		p = placement.Greedy()
	default:
		p = placement.Greedy(placement.WithRand(trialRNG(o.Seed, i)))
	}
	initial, err := p.Place(c, conn)
	if err != nil {
		return nil, err
	}
	return Route(c, conn, initial, WithStrategy(o.Strategy))
}
