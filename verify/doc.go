// Package verify checks that a routed circuit still computes the unitary of
// the circuit it was routed from.
//
// The routed circuit acts on physical qubits and ends in a permuted layout.
// CheckEquivalence turns it back into a logical-index circuit:
//
//	corrected = reverse(Restore(initial)) ++ routed ++ Restore(final)
//
// The prefix carries every logical qubit l from wire l onto its initial
// physical qubit; the suffix carries it home from its final one. For a
// correct routing the corrected circuit equals the original exactly, and
//
//	fidelity = |tr(U_orig† · U_corr)|² / d²,  d = 2^n
//
// is 1. Global phase does not change the fidelity.
//
// Dense evaluation costs O(4^n) memory; keep n small (default ceiling 10).
package verify
