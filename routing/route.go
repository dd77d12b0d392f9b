// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: Single-pass router plus post-condition helpers.
// Complexity:
//   - Route: O(len(c) · S) where S is the strategy cost per non-adjacent pair
//     (O(1) + look-ahead for StarStrategy, O(V+E) for PathStrategy).

package routing

import (
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

// Route maps c onto conn starting from initial.
// Fails fast: on error no partial result is returned.
//
// Errors: core.ErrNilCircuit, core.ErrNilConnectivity, core.ErrQubitCountMismatch,
// core.ErrInvalidLayout, core.ErrDisconnectedTopology, ErrNotStar, ErrNotAdjacent,
// ErrOptionViolation.
func Route(c *core.Circuit, conn *core.Connectivity, initial *core.Layout, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Route: %w", err)
	}
	if err = checkInputs("Route", c, conn); err != nil {
		return nil, err
	}
	if initial == nil || initial.Len() != c.NumQubits() {
		return nil, fmt.Errorf("Route: initial layout does not cover %d qubits: %w", c.NumQubits(), core.ErrInvalidLayout)
	}
	strategy := o.Strategy
	if strategy == nil {
		strategy = defaultStrategy(conn)
	}

	ops := c.Ops()
	layout := initial.Clone()
	out, err := core.NewCircuit(conn.NumQubits())
	if err != nil {
		return nil, fmt.Errorf("Route: %w", err)
	}
	var inserted []int

	for i, op := range ops {
		if !op.IsTwoQubit() {
			if err = out.AddOp(op.OnQubits(layout.Physical(op.Qubits[0]))); err != nil {
				return nil, fmt.Errorf("Route: op %d: %w", i, err)
			}
			continue
		}
		pa, pb := layout.Physical(op.Qubits[0]), layout.Physical(op.Qubits[1])
		if !conn.HasEdge(pa, pb) {
			pairs, serr := strategy.Swaps(conn, layout, ops, i)
			if serr != nil {
				return nil, fmt.Errorf("Route: op %d %s: %w", i, op, serr)
			}
			for _, sw := range pairs {
				if !conn.HasEdge(sw[0], sw[1]) {
					return nil, fmt.Errorf("Route: op %d: swap (%d,%d): %w", i, sw[0], sw[1], ErrNotAdjacent)
				}
				layout.SwapPhysical(sw[0], sw[1])
				inserted = append(inserted, out.Len())
				if err = out.Add(core.GateSWAP, sw[0], sw[1]); err != nil {
					return nil, fmt.Errorf("Route: op %d: %w", i, err)
				}
			}
			pa, pb = layout.Physical(op.Qubits[0]), layout.Physical(op.Qubits[1])
			if !conn.HasEdge(pa, pb) {
				return nil, fmt.Errorf("Route: op %d %s still on (%d,%d) after swaps: %w", i, op, pa, pb, ErrNotAdjacent)
			}
		}
		if err = out.AddOp(op.OnQubits(pa, pb)); err != nil {
			return nil, fmt.Errorf("Route: op %d: %w", i, err)
		}
	}

	return &Result{
		Circuit:  out,
		Initial:  initial.Clone(),
		Final:    layout,
		Swaps:    len(inserted),
		Inserted: inserted,
	}, nil
}

// FinalLayout replays the SWAP operations of a routed circuit on a copy of
// initial and returns the resulting layout. Other operations are ignored.
// Every SWAP is taken to be a routing swap; for inputs that carry their own
// SWAP gates use Result.Replay.
//
// Errors: core.ErrNilCircuit, core.ErrInvalidLayout (nil or wrong size).
func FinalLayout(routed *core.Circuit, initial *core.Layout) (*core.Layout, error) {
	if routed == nil {
		return nil, fmt.Errorf("FinalLayout: %w", core.ErrNilCircuit)
	}
	if initial == nil || initial.Len() != routed.NumQubits() {
		return nil, fmt.Errorf("FinalLayout: %w", core.ErrInvalidLayout)
	}
	l := initial.Clone()
	for i := 0; i < routed.Len(); i++ {
		if op := routed.At(i); op.IsSwap() {
			l.SwapPhysical(op.Qubits[0], op.Qubits[1])
		}
	}
	return l, nil
}

// CheckAdjacency verifies that every two-qubit operation of routed acts on
// an edge of conn.
//
// Errors: core.ErrNilCircuit, core.ErrNilConnectivity, ErrNotAdjacent
// (wrapped with the first offending index).
func CheckAdjacency(routed *core.Circuit, conn *core.Connectivity) error {
	if err := checkInputs("CheckAdjacency", routed, conn); err != nil {
		return err
	}
	for i := 0; i < routed.Len(); i++ {
		op := routed.At(i)
		if op.IsTwoQubit() && !conn.HasEdge(op.Qubits[0], op.Qubits[1]) {
			return fmt.Errorf("CheckAdjacency: op %d %s: %w", i, op, ErrNotAdjacent)
		}
	}
	return nil
}

func checkInputs(method string, c *core.Circuit, conn *core.Connectivity) error {
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
