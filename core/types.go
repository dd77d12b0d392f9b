// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors and canonical gate names shared across qmap.
// Policy:
//   - Sentinels are never formatted at definition site; wrap with %w.
//   - Gate names are upper-case; aliases are resolved by Canonical.

package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core types and for the routing pipeline built on them.
var (
	// ErrInvalidLayout indicates a mapping that is not a bijection over the qubit set.
	ErrInvalidLayout = errors.New("core: layout is not a bijection over the qubit set")

	// ErrQubitCountMismatch indicates a circuit whose qubit count disagrees with the
	// connectivity graph it is being mapped onto.
	ErrQubitCountMismatch = errors.New("core: circuit qubit count does not match connectivity")

	// ErrDisconnectedTopology indicates two physical qubits with no connecting path.
	ErrDisconnectedTopology = errors.New("core: connectivity graph is disconnected")

	// ErrQubitOutOfRange indicates a qubit index outside 0..n-1.
	ErrQubitOutOfRange = errors.New("core: qubit index out of range")

	// ErrBadArity indicates an operation that does not act on one or two qubits.
	ErrBadArity = errors.New("core: operation must act on one or two qubits")

	// ErrDuplicateOperand indicates a two-qubit operation naming the same qubit twice.
	ErrDuplicateOperand = errors.New("core: two-qubit operation repeats an operand")

	// ErrSelfLoop indicates an attempted connectivity edge from a qubit to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEmptyGateName indicates an operation without a name.
	ErrEmptyGateName = errors.New("core: operation name is empty")

	// ErrBadQubitCount indicates a non-positive qubit count.
	ErrBadQubitCount = errors.New("core: qubit count must be positive")

	// ErrNilCircuit indicates a nil *Circuit argument.
	ErrNilCircuit = errors.New("core: circuit is nil")

	// ErrNilConnectivity indicates a nil *Connectivity argument.
	ErrNilConnectivity = errors.New("core: connectivity is nil")
)

// Canonical gate names. The router only treats GateSWAP specially; every
// other name is opaque to mapping and interpreted by the unitary evaluator.
const (
	GateI       = "I"
	GateH       = "H"
	GateX       = "X"
	GateY       = "Y"
	GateZ       = "Z"
	GateS       = "S"
	GateSDG     = "SDG"
	GateT       = "T"
	GateTDG     = "TDG"
	GateRX      = "RX"
	GateRY      = "RY"
	GateRZ      = "RZ"
	GateP       = "P"
	GateCNOT    = "CNOT"
	GateCZ      = "CZ"
	GateSWAP    = "SWAP"
	GateMeasure = "MEASURE"
)

// gateAliases maps accepted spellings onto canonical names.
var gateAliases = map[string]string{
	"CX": GateCNOT,
	"ID": GateI,
	"M":  GateMeasure,
	"U1": GateP,
}

// Canonical upper-cases name and resolves known aliases ("cx" → "CNOT").
func Canonical(name string) string {
	up := strings.ToUpper(strings.TrimSpace(name))
	if c, ok := gateAliases[up]; ok {
		return c
	}
	return up
}
