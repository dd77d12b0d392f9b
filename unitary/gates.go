// SPDX-License-Identifier: MIT
//
// File: gates.go
// Role: 2×2 blocks of the supported single-qubit gates.

package unitary

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qmap/core"
)

// block is a 2×2 matrix [[u00 u01] [u10 u11]].
type block [4]complex128

// oneQubit describes a single-qubit gate: how many angles it takes and how
// to build its block from them.
type oneQubit struct {
	params int
	build  func(p []float64) block
}

var invSqrt2 = complex(1/math.Sqrt2, 0)

func phase(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }

func fixed(b block) oneQubit {
	return oneQubit{build: func([]float64) block { return b }}
}

var singleGates = map[string]oneQubit{
	core.GateI:       fixed(block{1, 0, 0, 1}),
	core.GateMeasure: fixed(block{1, 0, 0, 1}),
	core.GateH:       fixed(block{invSqrt2, invSqrt2, invSqrt2, -invSqrt2}),
	core.GateX:       fixed(block{0, 1, 1, 0}),
	core.GateY:       fixed(block{0, -1i, 1i, 0}),
	core.GateZ:       fixed(block{1, 0, 0, -1}),
	core.GateS:       fixed(block{1, 0, 0, 1i}),
	core.GateSDG:     fixed(block{1, 0, 0, -1i}),
	core.GateT:       fixed(block{1, 0, 0, phase(math.Pi / 4)}),
	core.GateTDG:     fixed(block{1, 0, 0, phase(-math.Pi / 4)}),
	core.GateRX: {params: 1, build: func(p []float64) block {
		c, s := complex(math.Cos(p[0]/2), 0), complex(0, -math.Sin(p[0]/2))
		return block{c, s, s, c}
	}},
	core.GateRY: {params: 1, build: func(p []float64) block {
		c, s := complex(math.Cos(p[0]/2), 0), complex(math.Sin(p[0]/2), 0)
		return block{c, -s, s, c}
	}},
	core.GateRZ: {params: 1, build: func(p []float64) block {
		return block{phase(-p[0] / 2), 0, 0, phase(p[0] / 2)}
	}},
	core.GateP: {params: 1, build: func(p []float64) block {
		return block{1, 0, 0, phase(p[0])}
	}},
}

// singleBlock resolves op to its 2×2 block.
func singleBlock(op core.Operation) (block, error) {
	g, ok := singleGates[op.Name]
	if !ok {
		return block{}, fmt.Errorf("%s: %w", op, ErrUnknownGate)
	}
	if len(op.Params) < g.params {
		return block{}, fmt.Errorf("%s: want %d angle(s): %w", op, g.params, ErrMissingParam)
	}
	return g.build(op.Params), nil
}
