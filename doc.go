// Package qmap maps quantum circuits onto hardware with restricted qubit
// connectivity: it chooses an initial placement, inserts SWAP operations so
// every two-qubit gate runs on coupled qubits, searches many placements for
// the cheapest routing and checks that the result still implements the
// original unitary.
//
// 🚀 What is qmap?
//
//	A small, deterministic toolkit that brings together:
//		• Core types: circuits, connectivity graphs, logical→physical layouts
//		• Topology builders: star, line, ring, grid, complete
//		• Interaction analysis: pair counts and greedy chain decomposition
//		• Placement: greedy (hub-first), custom, trivial, random
//		• Routing: star and shortest-path swap strategies, multi-trial search
//		• Verification: dense unitary simulation and trace fidelity
//
// Everything is organized in flat subpackages:
//
//	core/         Operation, Circuit, Connectivity, Layout, shared errors
//	builder/      connectivity constructors and circuit fixtures
//	bfs/          breadth-first search and shortest paths on Connectivity
//	interaction/  interaction graph and chain decomposition
//	placement/    Placer implementations
//	routing/      Route, Search, swap strategies
//	matrix/       complex dense matrices
//	unitary/      circuit → unitary evaluator
//	verify/       equivalence checking
//	config/       YAML + environment configuration
//	transpile/    the whole pipeline in one call
//
// Quick ASCII example, a five-qubit star centered on physical qubit 2:
//
//	      0
//	      │
//	  1───2───3
//	      │
//	      4
//
// Any two leaves are one SWAP apart: route the first operand through the center.
//
//	go get github.com/katalvlaran/qmap
package qmap
