// SPDX-License-Identifier: MIT
//
// File: circuit.go
// Role: Operation and Circuit value types.
// Policy:
//   - Operations are validated when appended; a Circuit never holds an
//     operation that touches an out-of-range qubit.
//   - Accessors hand out copies so downstream passes cannot mutate the source.

package core

import (
	"fmt"
	"strings"
)

// Operation is a named gate acting on one or two qubits.
// Qubits are logical indices inside an input circuit and physical indices
// inside a routed one. Params carries rotation angles for RX/RY/RZ/P.
type Operation struct {
	Name   string
	Qubits []int
	Params []float64
}

// Arity returns the number of operands.
func (op Operation) Arity() int { return len(op.Qubits) }

// IsTwoQubit reports whether the operation is constrained by adjacency.
func (op Operation) IsTwoQubit() bool { return len(op.Qubits) == 2 }

// IsSwap reports whether op is the exchange kind the router may insert.
func (op Operation) IsSwap() bool { return op.Name == GateSWAP && len(op.Qubits) == 2 }

// Clone returns a deep copy of op.
func (op Operation) Clone() Operation {
	out := Operation{Name: op.Name, Qubits: append([]int(nil), op.Qubits...)}
	if len(op.Params) > 0 {
		out.Params = append([]float64(nil), op.Params...)
	}
	return out
}

// OnQubits returns a copy of op acting on the given qubits instead.
// Used by the router to rewrite logical operands onto physical ones.
func (op Operation) OnQubits(qubits ...int) Operation {
	out := op.Clone()
	out.Qubits = append(out.Qubits[:0], qubits...)
	return out
}

// String renders op as "NAME(q0,q1)" or "NAME[θ](q0)".
func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Name)
	if len(op.Params) > 0 {
		sb.WriteByte('[')
		for i, p := range op.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%g", p)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('(')
	for i, q := range op.Qubits {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", q)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Circuit is an ordered sequence of operations over a fixed number of qubits.
type Circuit struct {
	n   int
	ops []Operation
}

// NewCircuit returns an empty circuit over n qubits.
// Returns ErrBadQubitCount if n <= 0.
func NewCircuit(n int) (*Circuit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewCircuit(%d): %w", n, ErrBadQubitCount)
	}
	return &Circuit{n: n}, nil
}

// MustCircuit is NewCircuit for fixtures and examples; it panics on n <= 0.
func MustCircuit(n int) *Circuit {
	c, err := NewCircuit(n)
	if err != nil {
		panic(err)
	}
	return c
}

// NumQubits returns the qubit count.
func (c *Circuit) NumQubits() int { return c.n }

// Len returns the number of operations.
func (c *Circuit) Len() int { return len(c.ops) }

// Add appends the gate name acting on qubits.
// The name is canonicalized (see Canonical).
//
// Errors: ErrEmptyGateName, ErrBadArity, ErrQubitOutOfRange, ErrDuplicateOperand.
func (c *Circuit) Add(name string, qubits ...int) error {
	return c.AddOp(Operation{Name: name, Qubits: qubits})
}

// AddParam appends a parameterized single- or two-qubit gate.
func (c *Circuit) AddParam(name string, params []float64, qubits ...int) error {
	return c.AddOp(Operation{Name: name, Qubits: qubits, Params: params})
}

// AddOp validates and appends a copy of op.
func (c *Circuit) AddOp(op Operation) error {
	op = op.Clone()
	op.Name = Canonical(op.Name)
	if err := c.validate(op); err != nil {
		return fmt.Errorf("Circuit.Add %s: %w", op, err)
	}
	c.ops = append(c.ops, op)
	return nil
}

// MustAdd is Add that panics on error; intended for literal fixtures.
func (c *Circuit) MustAdd(name string, qubits ...int) *Circuit {
	if err := c.Add(name, qubits...); err != nil {
		panic(err)
	}
	return c
}

func (c *Circuit) validate(op Operation) error {
	if op.Name == "" {
		return ErrEmptyGateName
	}
	if op.Arity() < 1 || op.Arity() > 2 {
		return ErrBadArity
	}
	for _, q := range op.Qubits {
		if q < 0 || q >= c.n {
			return ErrQubitOutOfRange
		}
	}
	if op.IsTwoQubit() && op.Qubits[0] == op.Qubits[1] {
		return ErrDuplicateOperand
	}
	return nil
}

// At returns a copy of the i-th operation. Panics if i is out of range,
// like slice indexing.
func (c *Circuit) At(i int) Operation { return c.ops[i].Clone() }

// Ops returns a deep copy of all operations in program order.
func (c *Circuit) Ops() []Operation {
	out := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Clone()
	}
	return out
}

// Count returns how many operations carry the given (canonicalized) name.
func (c *Circuit) Count(name string) int {
	name = Canonical(name)
	k := 0
	for _, op := range c.ops {
		if op.Name == name {
			k++
		}
	}
	return k
}

// TwoQubitCount returns the number of adjacency-constrained operations.
func (c *Circuit) TwoQubitCount() int {
	k := 0
	for _, op := range c.ops {
		if op.IsTwoQubit() {
			k++
		}
	}
	return k
}

// Clone returns a deep copy of c.
func (c *Circuit) Clone() *Circuit {
	return &Circuit{n: c.n, ops: c.Ops()}
}

// String renders one operation per line.
func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "circuit(%d qubits, %d ops)\n", c.n, len(c.ops))
	for _, op := range c.ops {
		sb.WriteString("  ")
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
