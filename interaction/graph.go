// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Weighted interaction graph over logical qubits.
// Determinism:
//   - Pairs(), Neighbors() and Adjacency() return ascending order.

package interaction

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qmap/core"
)

// Graph maps unordered logical-qubit pairs to the number of two-qubit
// operations between them. Built once per circuit; read-only afterwards.
type Graph struct {
	n   int
	w   map[Pair]int
	adj []map[int]struct{}
}

// NewGraph returns an empty interaction graph over n logical qubits.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{n: n, w: make(map[Pair]int), adj: adj}
}

// Build derives the interaction graph of c: every two-operand operation on
// (a,b) adds one to the weight of {a,b}. Single-operand operations are
// ignored. A nil circuit yields an empty graph over zero qubits.
//
// Complexity: O(len(c)).
func Build(c *core.Circuit) *Graph {
	if c == nil {
		return NewGraph(0)
	}
	g := NewGraph(c.NumQubits())
	for i := 0; i < c.Len(); i++ {
		op := c.At(i)
		if !op.IsTwoQubit() {
			continue
		}
		// Circuit.Add already guarantees distinct in-range operands.
		_ = g.Add(op.Qubits[0], op.Qubits[1], 1)
	}
	return g
}

// Add increases the weight of {a,b} by w, creating the pair if absent.
//
// Errors: ErrQubitOutOfRange, ErrSelfPair, ErrBadWeight.
func (g *Graph) Add(a, b, w int) error {
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return fmt.Errorf("Graph.Add(%d,%d): %w", a, b, ErrQubitOutOfRange)
	}
	if a == b {
		return fmt.Errorf("Graph.Add(%d,%d): %w", a, b, ErrSelfPair)
	}
	if w <= 0 {
		return fmt.Errorf("Graph.Add(%d,%d,w=%d): %w", a, b, w, ErrBadWeight)
	}
	g.w[MakePair(a, b)] += w
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	return nil
}

// NumQubits returns the number of logical qubits covered.
func (g *Graph) NumQubits() int { return g.n }

// EdgeCount returns the number of distinct interacting pairs.
func (g *Graph) EdgeCount() int { return len(g.w) }

// Weight returns the interaction count of {a,b} (0 if absent).
func (g *Graph) Weight(a, b int) int { return g.w[MakePair(a, b)] }

// Pairs returns all interacting pairs sorted by (A, B).
func (g *Graph) Pairs() []Pair {
	out := make([]Pair, 0, len(g.w))
	for p := range g.w {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Degree returns the number of distinct partners of q.
func (g *Graph) Degree(q int) int {
	if q < 0 || q >= g.n {
		return 0
	}
	return len(g.adj[q])
}

// Strength returns the summed weight of every pair touching q.
func (g *Graph) Strength(q int) int {
	s := 0
	for _, nb := range g.Neighbors(q) {
		s += g.Weight(q, nb)
	}
	return s
}

// Neighbors returns the partners of q in ascending order.
func (g *Graph) Neighbors(q int) []int {
	if q < 0 || q >= g.n {
		return nil
	}
	out := make([]int, 0, len(g.adj[q]))
	for nb := range g.adj[q] {
		out = append(out, nb)
	}
	sort.Ints(out)
	return out
}

// Adjacency returns the presence-only adjacency lists, one per qubit.
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, g.n)
	for q := range out {
		out[q] = g.Neighbors(q)
	}
	return out
}
