// SPDX-License-Identifier: MIT
//
// File: decompose.go
// Role: Greedy degree-descending chain decomposition.
// Complexity:
//   - O(E · V) time in the worst case (each consumed edge scans the tail's
//     neighbors; each root pick scans all qubits), O(V + E) memory.

package interaction

import (
	"math/rand"
	"sort"
)

// decomposer owns the working copy of the adjacency for one Decompose call.
type decomposer struct {
	adj []map[int]struct{}
	rng *rand.Rand
}

// Decompose partitions the edges of g into chains (see package doc).
// An empty graph yields an empty decomposition.
func Decompose(g *Graph, opts ...Option) Decomposition {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil
	}
	d := &decomposer{adj: make([]map[int]struct{}, g.n), rng: o.rng}
	for q := range d.adj {
		d.adj[q] = make(map[int]struct{}, len(g.adj[q]))
		for nb := range g.adj[q] {
			d.adj[q][nb] = struct{}{}
		}
	}

	var out Decomposition
	for {
		root := d.pickRoot()
		if root < 0 {
			break
		}
		out = append(out, d.grow(root))
	}
	return out
}

// grow extends a chain from root, tail first and then head, consuming every
// traversed edge.
func (d *decomposer) grow(root int) Chain {
	in := map[int]struct{}{root: {}}
	chain := []int{root}

	for tail := root; ; {
		next := d.pickNeighbor(tail, in)
		if next < 0 {
			break
		}
		d.consume(tail, next)
		in[next] = struct{}{}
		chain = append(chain, next)
		tail = next
	}
	for head := root; ; {
		next := d.pickNeighbor(head, in)
		if next < 0 {
			break
		}
		d.consume(head, next)
		in[next] = struct{}{}
		chain = append([]int{next}, chain...)
		head = next
	}
	return Chain{Root: root, Qubits: chain}
}

// pickRoot returns the qubit with the highest remaining degree, or -1 when
// no edges remain.
func (d *decomposer) pickRoot() int {
	cands := make([]int, 0, len(d.adj))
	for q := range d.adj {
		if len(d.adj[q]) > 0 {
			cands = append(cands, q)
		}
	}
	return d.best(cands)
}

// pickNeighbor returns the neighbor of q not yet in the chain with the
// highest remaining degree, or -1 if none is left.
func (d *decomposer) pickNeighbor(q int, in map[int]struct{}) int {
	cands := make([]int, 0, len(d.adj[q]))
	for nb := range d.adj[q] {
		if _, used := in[nb]; !used {
			cands = append(cands, nb)
		}
	}
	sort.Ints(cands)
	return d.best(cands)
}

// best returns the candidate with maximal remaining degree. cands must be
// ascending; ties go to the first candidate, or to a uniform pick among the
// tied ones when an rng is set.
func (d *decomposer) best(cands []int) int {
	best, bestDeg, ties := -1, 0, 0
	for _, q := range cands {
		deg := len(d.adj[q])
		switch {
		case deg > bestDeg:
			best, bestDeg, ties = q, deg, 1
		case deg == bestDeg && d.rng != nil:
			ties++
			if d.rng.Intn(ties) == 0 {
				best = q
			}
		}
	}
	return best
}

// consume removes the edge {a,b}; qubits left with no edges drop out of
// every later pick because their degree is zero.
func (d *decomposer) consume(a, b int) {
	delete(d.adj[a], b)
	delete(d.adj[b], a)
}
