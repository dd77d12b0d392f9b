// SPDX-License-Identifier: MIT

// Package matrix - in-place row kernels.
//
// Left-multiplying by a gate that acts on one qubit only ever combines pairs
// of rows whose indices differ in that qubit's bit. These kernels perform
// exactly that combination in O(cols) per pair.

package matrix

import "fmt"

func (m *Dense) checkRow(method string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(row %d): %w", method, i, ErrOutOfRange)
	}
	return nil
}

// SwapRows exchanges rows i and j.
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow("SwapRows", i); err != nil {
		return err
	}
	if err := m.checkRow("SwapRows", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
	return nil
}

// ScaleRow multiplies row i by s.
func (m *Dense) ScaleRow(i int, s complex128) error {
	if err := m.checkRow("ScaleRow", i); err != nil {
		return err
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	for k := range ri {
		ri[k] *= s
	}
	return nil
}

// MixRows replaces rows i and j by
//
//	row_i' = u00·row_i + u01·row_j
//	row_j' = u10·row_i + u11·row_j
//
// i.e. left-multiplication by the 2×2 block [[u00 u01] [u10 u11]] on the
// subspace spanned by i and j. Requires i != j.
func (m *Dense) MixRows(i, j int, u00, u01, u10, u11 complex128) error {
	if err := m.checkRow("MixRows", i); err != nil {
		return err
	}
	if err := m.checkRow("MixRows", j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("Dense.MixRows(%d,%d): rows must differ: %w", i, j, ErrOutOfRange)
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		a, b := ri[k], rj[k]
		ri[k] = u00*a + u01*b
		rj[k] = u10*a + u11*b
	}
	return nil
}
