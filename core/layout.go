// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: Logical→physical bijection with O(1) lookups in both directions.
// Invariant:
//   - phys[log[p]] == p and log[phys[q]] == q for every index, at all times.

package core

import (
	"fmt"
	"strings"
)

// Layout maps logical qubits onto physical qubits. It is always a bijection
// over 0..n-1. The only mutator, SwapPhysical, preserves that invariant.
type Layout struct {
	phys []int // logical -> physical
	log  []int // physical -> logical
}

// NewLayout builds a Layout from phys, where phys[l] is the physical qubit
// holding logical qubit l. The slice is copied.
//
// Errors: ErrInvalidLayout when phys is empty or not a permutation of 0..len-1.
// Complexity: O(n).
func NewLayout(phys []int) (*Layout, error) {
	n := len(phys)
	if n == 0 {
		return nil, fmt.Errorf("NewLayout: empty mapping: %w", ErrInvalidLayout)
	}
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for l, p := range phys {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("NewLayout: logical %d -> physical %d out of range: %w", l, p, ErrInvalidLayout)
		}
		if inv[p] != -1 {
			return nil, fmt.Errorf("NewLayout: physical %d assigned to logical %d and %d: %w", p, inv[p], l, ErrInvalidLayout)
		}
		inv[p] = l
	}
	return &Layout{phys: append([]int(nil), phys...), log: inv}, nil
}

// IdentityLayout returns the layout mapping every logical qubit l to physical l.
func IdentityLayout(n int) *Layout {
	phys := make([]int, n)
	for i := range phys {
		phys[i] = i
	}
	return &Layout{phys: phys, log: append([]int(nil), phys...)}
}

// Len returns the number of qubits covered.
func (l *Layout) Len() int { return len(l.phys) }

// Physical returns the physical qubit currently holding logical qubit q.
func (l *Layout) Physical(q int) int { return l.phys[q] }

// Logical returns the logical qubit currently held by physical qubit p.
func (l *Layout) Logical(p int) int { return l.log[p] }

// SwapPhysical exchanges the logical qubits held by physical qubits p and q.
// This is the layout effect of a SWAP operation on (p,q).
func (l *Layout) SwapPhysical(p, q int) {
	a, b := l.log[p], l.log[q]
	l.log[p], l.log[q] = b, a
	l.phys[a], l.phys[b] = q, p
}

// Slice returns a copy of the logical→physical table.
func (l *Layout) Slice() []int { return append([]int(nil), l.phys...) }

// Inverse returns a copy of the physical→logical table.
func (l *Layout) Inverse() []int { return append([]int(nil), l.log...) }

// IsIdentity reports whether every logical qubit sits on its own index.
func (l *Layout) IsIdentity() bool {
	for q, p := range l.phys {
		if q != p {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (l *Layout) Clone() *Layout {
	return &Layout{phys: l.Slice(), log: l.Inverse()}
}

// Equal reports whether both layouts map every logical qubit identically.
func (l *Layout) Equal(o *Layout) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.phys) != len(o.phys) {
		return false
	}
	for i := range l.phys {
		if l.phys[i] != o.phys[i] {
			return false
		}
	}
	return true
}

// Then returns the composition "l followed by next", read as: a logical
// qubit first placed by l, then relabelled by next acting on physical
// indices. Useful for composing an initial layout with a routing permutation.
func (l *Layout) Then(next *Layout) (*Layout, error) {
	if next == nil || next.Len() != l.Len() {
		return nil, fmt.Errorf("Layout.Then: size mismatch: %w", ErrInvalidLayout)
	}
	out := make([]int, l.Len())
	for q, p := range l.phys {
		out[q] = next.phys[p]
	}
	return NewLayout(out)
}

// String renders the mapping as "{q0->p0 q1->p1 ...}".
func (l *Layout) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for q, p := range l.phys {
		if q > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "q%d->%d", q, p)
	}
	sb.WriteByte('}')
	return sb.String()
}
