// Package matrix offers a small complex-valued dense matrix for unitary
// evaluation.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with error-returning accessors.
//   - Algebra: Mul, Adjoint, Trace and the Frobenius inner product Inner,
//     where Inner(a, b) = Σ conj(a_ij)·b_ij = tr(a†·b).
//   - In-place row kernels (SwapRows, ScaleRow, MixRows) used to left-multiply
//     by one- and two-qubit gates without materializing 2^n×2^n gate matrices.
//
// Matrices here are square 2^n×2^n in practice; memory is O(4^n), so callers
// cap n (see package unitary).
package matrix
