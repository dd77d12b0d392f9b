// SPDX-License-Identifier: MIT
//
// File: equivalence.go
// Role: Layout restoration and trace-overlap fidelity.
// Complexity:
//   - Restore: O(n). Corrected: O(len(routed) + n).
//   - CheckEquivalence: O((len(orig) + len(corrected)) · 4^n).

package verify

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/matrix"
	"github.com/katalvlaran/qmap/routing"
	"github.com/katalvlaran/qmap/unitary"
)

// Restore returns the physical swaps that carry every logical qubit from its
// position under l back onto the physical qubit with its own index. At most
// n-1 swaps are returned; the identity needs none.
func Restore(l *core.Layout) [][2]int {
	if l == nil {
		return nil
	}
	holder := l.Clone()
	var swaps [][2]int
	for q := 0; q < holder.Len(); q++ {
		if p := holder.Physical(q); p != q {
			swaps = append(swaps, [2]int{p, q})
			holder.SwapPhysical(p, q)
		}
	}
	return swaps
}

// Corrected returns the logical-index circuit equivalent to res:
// the reversed restore swaps of initial, the routed operations, then the
// restore swaps of res.Final.
//
// Errors: ErrNilResult, core.ErrNilCircuit, core.ErrInvalidLayout.
func Corrected(res *routing.Result, initial *core.Layout) (*core.Circuit, error) {
	if res == nil {
		return nil, fmt.Errorf("Corrected: %w", ErrNilResult)
	}
	if res.Circuit == nil {
		return nil, fmt.Errorf("Corrected: %w", core.ErrNilCircuit)
	}
	n := res.Circuit.NumQubits()
	if initial == nil || initial.Len() != n || res.Final == nil || res.Final.Len() != n {
		return nil, fmt.Errorf("Corrected: layouts must cover %d qubits: %w", n, core.ErrInvalidLayout)
	}
	out := core.MustCircuit(n)
	prefix := Restore(initial)
	for i := len(prefix) - 1; i >= 0; i-- {
		if err := out.Add(core.GateSWAP, prefix[i][0], prefix[i][1]); err != nil {
			return nil, fmt.Errorf("Corrected: %w", err)
		}
	}
	for _, op := range res.Circuit.Ops() {
		if err := out.AddOp(op); err != nil {
			return nil, fmt.Errorf("Corrected: %w", err)
		}
	}
	for _, sw := range Restore(res.Final) {
		if err := out.Add(core.GateSWAP, sw[0], sw[1]); err != nil {
			return nil, fmt.Errorf("Corrected: %w", err)
		}
	}
	return out, nil
}

// Fidelity returns |tr(u†·v)|² / d² for d×d matrices u and v, clamped to [0,1].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func Fidelity(u, v *matrix.Dense) (float64, error) {
	if u == nil || v == nil {
		return 0, fmt.Errorf("Fidelity: %w", matrix.ErrNilMatrix)
	}
	if u.Rows() != u.Cols() {
		return 0, fmt.Errorf("Fidelity: %w", matrix.ErrNonSquare)
	}
	overlap, err := matrix.Inner(u, v)
	if err != nil {
		return 0, fmt.Errorf("Fidelity: %w", err)
	}
	d := float64(u.Rows())
	a := cmplx.Abs(overlap)
	return math.Min(1, a*a/(d*d)), nil
}

// CheckEquivalence reports the fidelity between orig and the corrected form
// of res, routed from initial. The fidelity is returned together with
// ErrNotEquivalent when it falls below 1 - tol.
//
// Errors: ErrBadTolerance, ErrNilResult, core.ErrNilCircuit,
// core.ErrQubitCountMismatch, core.ErrInvalidLayout, ErrLayoutMismatch,
// ErrNotEquivalent, and evaluator errors (e.g. unitary.ErrTooManyQubits).
func CheckEquivalence(orig *core.Circuit, res *routing.Result, initial *core.Layout, tol float64, opts ...Option) (float64, error) {
	if tol < 0 || tol >= 1 || math.IsNaN(tol) {
		return 0, fmt.Errorf("CheckEquivalence(tol=%g): %w", tol, ErrBadTolerance)
	}
	if orig == nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", core.ErrNilCircuit)
	}
	if res == nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", ErrNilResult)
	}
	if res.Circuit == nil {
		return 0, fmt.Errorf("CheckEquivalence: routed: %w", core.ErrNilCircuit)
	}
	if orig.NumQubits() != res.Circuit.NumQubits() {
		return 0, fmt.Errorf("CheckEquivalence: original has %d qubits, routed %d: %w",
			orig.NumQubits(), res.Circuit.NumQubits(), core.ErrQubitCountMismatch)
	}
	if initial == nil || initial.Len() != orig.NumQubits() {
		return 0, fmt.Errorf("CheckEquivalence: %w", core.ErrInvalidLayout)
	}
	if res.Initial != nil && !res.Initial.Equal(initial) {
		return 0, fmt.Errorf("CheckEquivalence: result started from %s, caller gave %s: %w",
			res.Initial, initial, ErrLayoutMismatch)
	}
	replayed, err := res.Replay()
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", err)
	}
	if !replayed.Equal(res.Final) {
		return 0, fmt.Errorf("CheckEquivalence: final %s, swaps replay to %s: %w",
			res.Final, replayed, ErrLayoutMismatch)
	}

	eval, err := evaluator(opts)
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", err)
	}
	corrected, err := Corrected(res, initial)
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", err)
	}
	uOrig, err := eval.Unitary(orig)
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: original: %w", err)
	}
	uCorr, err := eval.Unitary(corrected)
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: corrected: %w", err)
	}
	f, err := Fidelity(uOrig, uCorr)
	if err != nil {
		return 0, fmt.Errorf("CheckEquivalence: %w", err)
	}
	if f < 1-tol {
		return f, fmt.Errorf("CheckEquivalence: fidelity %.6f < %.6f: %w", f, 1-tol, ErrNotEquivalent)
	}
	return f, nil
}

func evaluator(opts []Option) (unitary.Evaluator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.eval != nil {
		return o.eval, nil
	}
	var sopts []unitary.Option
	if o.maxQubits != 0 {
		sopts = append(sopts, unitary.WithMaxQubits(o.maxQubits))
	}
	return unitary.NewSimulator(sopts...)
}
