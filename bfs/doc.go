// Package bfs provides breadth-first search over a core.Connectivity,
// returning hop distances, parent links and visit order.
//
// What
//
//   - BFS explores physical qubits in non-decreasing hop distance from a start.
//   - Result holds Order (visit sequence), Depth (-1 when unreached) and
//     Parent (-1 for the root and unreached qubits).
//   - ShortestPath returns one minimum-hop path between two qubits; the
//     router uses it to move an operand next to its partner on topologies
//     other than the star.
//   - Connected reports whether every qubit is reachable from qubit 0.
//
// Determinism
//
//	core.Connectivity.Neighbors returns ascending indices and BFS enqueues in
//	that order, so for equal inputs the visit order and the returned paths
//	are identical: among equal-length paths the lexicographically smallest
//	parent chain wins.
//
// Complexity (V = qubits, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
