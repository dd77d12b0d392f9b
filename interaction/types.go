// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Interaction graph, chain and decomposition types + options.

package interaction

import (
	"errors"
	"math/rand"
)

// Sentinel errors for the interaction package.
var (
	// ErrQubitOutOfRange indicates a pair endpoint outside 0..n-1.
	ErrQubitOutOfRange = errors.New("interaction: qubit index out of range")

	// ErrSelfPair indicates a pair {q,q}.
	ErrSelfPair = errors.New("interaction: pair endpoints must differ")

	// ErrBadWeight indicates a non-positive pair weight.
	ErrBadWeight = errors.New("interaction: weight must be positive")
)

// Pair is an unordered pair of logical qubits normalized so that A < B.
type Pair struct {
	A, B int
}

// MakePair returns the normalized pair {a,b}.
func MakePair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Chain is a path through the interaction graph. Root is the qubit the
// chain was grown from; Qubits lists the path in order and contains Root.
type Chain struct {
	Root   int
	Qubits []int
}

// Edges returns the consecutive pairs the chain covers.
func (c Chain) Edges() []Pair {
	if len(c.Qubits) < 2 {
		return nil
	}
	out := make([]Pair, 0, len(c.Qubits)-1)
	for i := 0; i+1 < len(c.Qubits); i++ {
		out = append(out, MakePair(c.Qubits[i], c.Qubits[i+1]))
	}
	return out
}

// Decomposition is the ordered list of chains produced by Decompose.
type Decomposition []Chain

// Order lists every qubit that appears in the decomposition by first
// appearance, visiting each chain's Root before the rest of that chain.
// The first element is therefore the root of the first chain, the qubit
// with the highest interaction degree.
func (d Decomposition) Order() []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	add := func(q int) {
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	for _, ch := range d {
		add(ch.Root)
		for _, q := range ch.Qubits {
			add(q)
		}
	}
	return out
}

// Edges returns every pair covered by the decomposition, chain by chain.
func (d Decomposition) Edges() []Pair {
	var out []Pair
	for _, ch := range d {
		out = append(out, ch.Edges()...)
	}
	return out
}

// Option configures Decompose.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand breaks degree ties uniformly at random using r instead of
// picking the lowest index. A nil r keeps the deterministic rule.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}
