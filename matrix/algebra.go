// SPDX-License-Identifier: MIT

// Package matrix - complex linear algebra on Dense.
//
// Determinism:
//   - Fixed i-k-j loop order; results are bit-identical across runs.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ---------- operation tags ----------

const (
	opMul     = "Mul"
	opAdjoint = "Adjoint"
	opTrace   = "Trace"
	opInner   = "Inner"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			brow := b.data[k*b.c : (k+1)*b.c]
			for j := range row {
				row[j] += aik * brow[j]
			}
		}
	}
	return out, nil
}

// Adjoint returns the conjugate transpose m†.
//
// Errors:
//   - ErrNilMatrix.
func Adjoint(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAdjoint, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}
	return out, nil
}

// Trace returns Σ m_ii.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (complex128, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, matrixErrorf(opTrace, ErrNonSquare)
	}
	var s complex128
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}
	return s, nil
}

// Inner returns the Frobenius inner product Σ conj(a_ij)·b_ij, which equals
// tr(a†·b) without forming the product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r·c), Space O(1).
func Inner(a, b *Dense) (complex128, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opInner, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return 0, matrixErrorf(opInner, ErrDimensionMismatch)
	}
	var s complex128
	for k := range a.data {
		s += cmplx.Conj(a.data[k]) * b.data[k]
	}
	return s, nil
}
