// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - Parallel edges are relaxed individually; the cheapest one wins and, on
//     equal cost, the one met first in the node's incident order.
//   - Heap ties are broken by node key so results are deterministic.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: node key → minimum distance (+Inf if unreachable).
//   - prev: if ReturnPath, node key → edge used to reach it (absent for the
//     source and for unreached nodes); nil otherwise.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]*core.Edge, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%q: %w", cfg.Source, ErrVertexNotFound)
	}

	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]*core.Edge, V)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// Trail rebuilds the source → target trail from a ReturnPath run.
// The source is the node absent from prev with distance 0.
func Trail(source, target string, dist map[string]float64, prev map[string]*core.Edge) (*core.Trail, error) {
	d, ok := dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("Trail(%q,%q): %w", source, target, ErrUnreachable)
	}
	var rev []*core.Edge
	for cur := target; cur != source; {
		e, ok := prev[cur]
		if !ok || len(rev) > len(dist) {
			return nil, fmt.Errorf("Trail(%q,%q): no predecessor for %q: %w", source, target, cur, ErrUnreachable)
		}
		rev = append(rev, e)
		cur, _ = e.Other(cur)
	}
	path := make([]*core.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return core.NewTrail(source, target, d, path)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]*core.Edge
	visited map[string]bool
	pq      nodePQ
}

// init sets dist to +Inf everywhere, the source to 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for _, v := range r.g.Keys() {
		r.dist[v] = inf
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited node until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every incident edge of u.
func (r *runner) relax(u string) error {
	incident, err := r.g.Incident(u)
	if err != nil {
		return fmt.Errorf("dijkstra: incident edges of %q: %w", u, err)
	}
	var (
		v       string
		w       float64
		newDist float64
	)
	for _, e := range incident {
		v, _ = e.Other(u)
		w = e.Cost()
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = e
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
