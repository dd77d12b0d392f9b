// Package interaction derives a weighted qubit-interaction graph from a
// circuit and decomposes it into greedy, degree-descending chains.
//
// Build counts, for every unordered pair of logical qubits, how many
// two-qubit operations act on that pair. Single-qubit operations are ignored.
//
// Decompose partitions the edge set of that graph into chains:
//
//  1. Pick the remaining qubit with the highest degree (lowest index on ties,
//     or uniformly among ties with WithRand). This is the chain's Root.
//  2. Walk from the tail to the neighbor with the highest remaining degree
//     that is not yet in the chain, consuming the traversed edge. When the
//     tail is stuck, walk the same way from the head.
//  3. Drop qubits whose remaining degree reached zero.
//  4. Repeat until no edges remain.
//
// Every edge appears in exactly one chain as a pair of consecutive qubits,
// and no chain repeats a qubit. Qubits with no two-qubit operation never
// appear; placers must seat them separately.
//
// The working adjacency is a private copy built per Decompose call and
// discarded afterwards; the input Graph is never mutated.
package interaction
