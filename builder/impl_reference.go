// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// impl_reference.go - fixed 5-qubit benchmark circuits.
//
// Both circuits mix CNOT with X/H and are sized for the 5-qubit star with
// center 2, the hardware the router targets.

package builder

import "github.com/katalvlaran/qmap/core"

// ReferenceQubits is the width of the reference circuits.
const ReferenceQubits = 5

type step struct {
	gate   string
	qubits []int
}

func fromSteps(steps []step) *core.Circuit {
	c := core.MustCircuit(ReferenceQubits)
	for _, s := range steps {
		c.MustAdd(s.gate, s.qubits...)
	}
	return c
}

// ReferenceCircuitA returns the 20-operation benchmark circuit A.
func ReferenceCircuitA() *core.Circuit {
	return fromSteps([]step{
		{core.GateCNOT, []int{0, 2}},
		{core.GateCNOT, []int{2, 4}},
		{core.GateCNOT, []int{1, 3}},
		{core.GateCNOT, []int{2, 4}},
		{core.GateX, []int{0}},
		{core.GateCNOT, []int{1, 0}},
		{core.GateCNOT, []int{4, 3}},
		{core.GateCNOT, []int{1, 0}},
		{core.GateX, []int{0}},
		{core.GateCNOT, []int{1, 2}},
		{core.GateCNOT, []int{0, 1}},
		{core.GateX, []int{2}},
		{core.GateH, []int{0}},
		{core.GateH, []int{3}},
		{core.GateCNOT, []int{1, 0}},
		{core.GateCNOT, []int{3, 2}},
		{core.GateCNOT, []int{0, 3}},
		{core.GateH, []int{0}},
		{core.GateH, []int{0}},
		{core.GateCNOT, []int{0, 3}},
	})
}

// ReferenceCircuitB returns the 26-operation benchmark circuit B.
func ReferenceCircuitB() *core.Circuit {
	return fromSteps([]step{
		{core.GateCNOT, []int{2, 0}},
		{core.GateCNOT, []int{3, 1}},
		{core.GateX, []int{0}},
		{core.GateH, []int{1}},
		{core.GateCNOT, []int{1, 4}},
		{core.GateH, []int{1}},
		{core.GateX, []int{0}},
		{core.GateCNOT, []int{0, 2}},
		{core.GateH, []int{3}},
		{core.GateCNOT, []int{4, 1}},
		{core.GateCNOT, []int{0, 4}},
		{core.GateX, []int{2}},
		{core.GateH, []int{3}},
		{core.GateCNOT, []int{1, 3}},
		{core.GateH, []int{0}},
		{core.GateCNOT, []int{0, 4}},
		{core.GateCNOT, []int{2, 3}},
		{core.GateCNOT, []int{0, 4}},
		{core.GateX, []int{4}},
		{core.GateCNOT, []int{0, 4}},
		{core.GateCNOT, []int{4, 0}},
		{core.GateCNOT, []int{1, 2}},
		{core.GateH, []int{2}},
		{core.GateH, []int{0}},
		{core.GateCNOT, []int{3, 4}},
		{core.GateCNOT, []int{3, 2}},
	})
}
