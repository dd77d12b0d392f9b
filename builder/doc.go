// Package builder provides deterministic constructors for physical
// connectivity graphs and for circuit fixtures.
//
// Topologies are assembled by BuildTopology from one or more Constructor
// closures, the same way every time for the same inputs:
//
//	star, err := builder.BuildTopology(5, builder.Star(2))
//
// Available topologies:
//
//   - Star(center):   one hub adjacent to every other qubit (the target hardware).
//   - Line():         0–1–2–…–(n-1).
//   - Ring():         Line plus the closing edge (n ≥ 3).
//   - Grid(r, c):     4-neighborhood lattice, row-major indices, r·c == n.
//   - Complete():     every pair adjacent (routing never needs a swap).
//
// Circuit fixtures:
//
//   - RandomCircuit(n, length, opts...): seeded random mix of 1- and 2-qubit gates.
//   - ReferenceCircuitA / ReferenceCircuitB: the two 5-qubit benchmark circuits
//     used to exercise the star router end to end.
//
// Errors are sentinels (ErrTooFewQubits, ErrCenterOutOfRange, ErrGridShape,
// ErrNeedRandSource, ErrOptionViolation) wrapped with the constructor name.
package builder
