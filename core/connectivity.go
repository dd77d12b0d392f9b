// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Undirected physical connectivity graph over int-indexed qubits.
// Determinism:
//   - Neighbors() and Edges() return ascending order.
// Concurrency:
//   - muAdj guards adjacency; reads take RLock, AddEdge takes Lock.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// Connectivity describes which physical qubits may interact directly.
// Invariants: symmetric, no self-loops, no parallel edges.
type Connectivity struct {
	muAdj sync.RWMutex
	n     int
	adj   []map[int]struct{}
	edges int
}

// NewConnectivity returns an edgeless connectivity graph over n physical qubits.
// Returns ErrBadQubitCount if n <= 0.
func NewConnectivity(n int) (*Connectivity, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewConnectivity(%d): %w", n, ErrBadQubitCount)
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Connectivity{n: n, adj: adj}, nil
}

// NumQubits returns the number of physical qubits.
func (c *Connectivity) NumQubits() int { return c.n }

// AddEdge connects physical qubits u and v. Adding an existing edge is a no-op.
//
// Errors: ErrQubitOutOfRange, ErrSelfLoop.
// Complexity: O(1).
func (c *Connectivity) AddEdge(u, v int) error {
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return fmt.Errorf("Connectivity.AddEdge(%d,%d): %w", u, v, ErrQubitOutOfRange)
	}
	if u == v {
		return fmt.Errorf("Connectivity.AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	c.muAdj.Lock()
	defer c.muAdj.Unlock()

	if _, ok := c.adj[u][v]; ok {
		return nil
	}
	c.adj[u][v] = struct{}{}
	c.adj[v][u] = struct{}{}
	c.edges++
	return nil
}

// HasEdge reports whether u and v are directly connected.
// Out-of-range indices simply report false.
func (c *Connectivity) HasEdge(u, v int) bool {
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return false
	}
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	_, ok := c.adj[u][v]
	return ok
}

// Degree returns the number of neighbors of u (0 when out of range).
func (c *Connectivity) Degree(u int) int {
	if u < 0 || u >= c.n {
		return 0
	}
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	return len(c.adj[u])
}

// Neighbors returns the neighbors of u in ascending order.
func (c *Connectivity) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= c.n {
		return nil, fmt.Errorf("Connectivity.Neighbors(%d): %w", u, ErrQubitOutOfRange)
	}
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	out := make([]int, 0, len(c.adj[u]))
	for v := range c.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// EdgeCount returns the number of undirected edges.
func (c *Connectivity) EdgeCount() int {
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	return c.edges
}

// Edges returns every edge once as [u,v] with u < v, sorted lexicographically.
func (c *Connectivity) Edges() [][2]int {
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	out := make([][2]int, 0, c.edges)
	for u := 0; u < c.n; u++ {
		for v := range c.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Center returns the hub of a star graph: the unique qubit adjacent to every
// other qubit while no other edges exist. ok is false for any other shape.
// A two-qubit graph with one edge reports qubit 0.
func (c *Connectivity) Center() (center int, ok bool) {
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	if c.n < 2 || c.edges != c.n-1 {
		return -1, false
	}
	for u := 0; u < c.n; u++ {
		if len(c.adj[u]) == c.n-1 {
			return u, true
		}
	}
	return -1, false
}

// Hub returns the physical qubit with the highest degree, lowest index on ties.
// For a star this is the center.
func (c *Connectivity) Hub() int {
	c.muAdj.RLock()
	defer c.muAdj.RUnlock()

	best, bestDeg := 0, -1
	for u := 0; u < c.n; u++ {
		if d := len(c.adj[u]); d > bestDeg {
			best, bestDeg = u, d
		}
	}
	return best
}
