// Package bfs provides breadth-first search over a core.Connectivity,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmap/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

type queueItem struct {
	q     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Connectivity
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any hook error.
func BFS(g *core.Connectivity, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumQubits()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start %d of %d: %w", start, n, ErrStartOutOfRange)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks q discovered at depth d with the given parent.
func (w *walker) enqueue(q, d, parent int) {
	w.res.Depth[q] = d
	w.res.Parent[q] = parent
	w.queue = append(w.queue, queueItem{q: q, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.q)
		if err := w.opts.OnVisit(item.q, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.q, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.q)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.q, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.q, nbr) {
			continue
		}
		if w.res.Depth[nbr] == -1 {
			w.enqueue(nbr, next, item.q)
		}
	}
	return nil
}

// ShortestPath returns a minimum-hop path from src to dst, both inclusive.
// src == dst yields the single-element path.
//
// Errors: ErrGraphNil, ErrStartOutOfRange, ErrUnreachable (also when dst is
// out of range).
func ShortestPath(g *core.Connectivity, src, dst int) ([]int, error) {
	var stop = errors.New("found")
	res, err := BFS(g, src, WithOnVisit(func(q, _ int) error {
		if q == dst {
			return stop
		}
		return nil
	}))
	if err != nil && !errors.Is(err, stop) {
		return nil, err
	}
	return res.PathTo(dst)
}

// Connected reports whether every qubit of g is reachable from qubit 0.
// A nil graph is not connected.
func Connected(g *core.Connectivity) bool {
	if g == nil {
		return false
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}
	return len(res.Order) == g.NumQubits()
}
