// Package core defines the data model shared by every qmap package:
// operations, circuits, physical connectivity graphs and layouts.
//
// Qubits are plain non-negative ints. Whether an index is logical (a wire
// of the circuit as written) or physical (a hardware slot) depends on where
// it is used: a Circuit handed to the router speaks logical indices, the
// circuit it returns speaks physical ones.
//
// Types:
//
//	Operation    – gate name + 1 or 2 qubit operands (+ optional angles).
//	Circuit      – fixed qubit count + ordered operations, validated on Add.
//	Connectivity – undirected, loop-free adjacency over physical qubits.
//	Layout       – logical→physical bijection (forward + inverse tables).
//
// Errors:
//
//	ErrInvalidLayout        - mapping is not a bijection over 0..n-1.
//	ErrQubitCountMismatch   - circuit size differs from the connectivity graph.
//	ErrDisconnectedTopology - no path links two physical qubits.
//	ErrQubitOutOfRange      - index outside 0..n-1.
//	ErrBadArity             - operation with zero or more than two operands.
//	ErrDuplicateOperand     - two-qubit operation acting twice on one qubit.
//	ErrSelfLoop             - connectivity edge from a qubit to itself.
//	ErrNilCircuit           - nil *Circuit passed where one is required.
//	ErrNilConnectivity      - nil *Connectivity passed where one is required.
//
// Connectivity is safe for concurrent reads once built; Circuit and Layout
// are plain values owned by one goroutine at a time.
package core
