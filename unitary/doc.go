// Package unitary evaluates the 2^n×2^n unitary a circuit implements.
//
// Evaluator is the boundary the equivalence checker depends on; Simulator is
// the built-in implementation. It starts from the identity and left-multiplies
// one gate at a time using row kernels from package matrix, so a gate costs
// O(4^n) instead of the O(8^n) of a full matrix product.
//
// Basis ordering is little-endian: qubit q corresponds to bit 1<<q of the
// basis index. Matrix column k is the image of basis state |k>.
//
// Supported gates: I, H, X, Y, Z, S, SDG, T, TDG, RX, RY, RZ, P (one angle
// each for the rotations), CNOT (control first), CZ, SWAP. MEASURE acts as
// the identity. Anything else is ErrUnknownGate.
package unitary
