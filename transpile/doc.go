// Package transpile wires the mapping pipeline end to end:
//
//	config → connectivity → routing.Search → verify.CheckEquivalence
//
// Run returns a Report describing the best routing found and, when enabled
// and the circuit is small enough, its verified fidelity.
package transpile
