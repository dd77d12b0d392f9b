// Package routing rewrites a logical circuit onto physical qubits, inserting
// SWAP operations wherever a two-qubit operation acts on qubits that are not
// adjacent in the connectivity graph.
//
// Route walks the circuit once in program order, keeping a mutable copy of
// the initial layout:
//
//   - single-qubit operations are rewritten onto their current physical qubit;
//   - a two-qubit operation on adjacent physical qubits is rewritten as is;
//   - otherwise the configured Strategy proposes swaps, each swap is applied to
//     the layout and emitted as SWAP(p,q), then the operation is emitted.
//
// SWAP gates already present in the input are ordinary operations: they are
// rewritten onto physical qubits and leave the layout alone. Result.Inserted
// tells them apart from routing swaps.
//
// Every two-qubit operation of the output, inserted swaps included, acts on
// an edge of the connectivity graph. The layout after the last operation is
// returned as Result.Final.
//
// Strategies:
//
//   - StarStrategy: one swap per non-adjacent pair; the operand used again
//     soonest moves onto the center.
//   - PathStrategy: the first operand walks along a BFS shortest path until it
//     neighbors the second. Works on any connected graph.
//
// Search runs Route from many initial layouts (greedy placement with derived
// random streams) and keeps the result with the fewest swaps. Trials may run
// on a bounded worker pool; the outcome does not depend on the worker count.
package routing
