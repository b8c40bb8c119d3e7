// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: incremental, user-driven trail construction with undo.

package core

import "fmt"

// Walk accumulates a trail one edge at a time starting from a fixed node.
// It reads the Graph on every step; mutating the Graph while a Walk is in
// progress leaves the Walk's edges as they were when stepped.
type Walk struct {
	g       *Graph
	start   string
	current string
	edges   []*Edge
}

// NewWalk starts a walk at start.
func NewWalk(g *Graph, start string) (*Walk, error) {
	if _, err := g.Node(start); err != nil {
		return nil, fmt.Errorf("NewWalk: %w", err)
	}

	return &Walk{g: g, start: start, current: start}, nil
}

// Step extends the walk to the neighbour to, using the first incident edge
// (in incidence order) that joins the current node and to.
func (w *Walk) Step(to string) (*Edge, error) {
	if to == w.current {
		return nil, fmt.Errorf("Walk.Step(%q): already there: %w", to, ErrNotAdjacent)
	}
	n, err := w.g.Node(w.current)
	if err != nil {
		return nil, fmt.Errorf("Walk.Step(%q): %w", to, err)
	}
	for _, id := range n.edges {
		e := w.g.edges[id]
		if e.Connects(w.current, to) {
			w.push(e, to)
			return e, nil
		}
	}

	return nil, fmt.Errorf("Walk.Step(%q) from %q: %w", to, w.current, ErrNotAdjacent)
}

// StepEdge extends the walk along edge id, which must touch the current node.
func (w *Walk) StepEdge(id string) (*Edge, error) {
	e, err := w.g.Edge(id)
	if err != nil {
		return nil, fmt.Errorf("Walk.StepEdge: %w", err)
	}
	next, ok := e.Other(w.current)
	if !ok {
		return nil, fmt.Errorf("Walk.StepEdge(%q) from %q: %w", id, w.current, ErrNotAdjacent)
	}
	w.push(e, next)

	return e, nil
}

// Back removes the last edge and reports whether anything was undone.
func (w *Walk) Back() bool {
	if len(w.edges) == 0 {
		return false
	}
	last := w.edges[len(w.edges)-1]
	w.edges = w.edges[:len(w.edges)-1]
	w.current, _ = last.Other(w.current)

	return true
}

// Start returns the key the walk began at.
func (w *Walk) Start() string { return w.start }

// Current returns the key of the node the walk currently ends at.
func (w *Walk) Current() string { return w.current }

// Edges returns a copy of the walked edges in order.
func (w *Walk) Edges() []*Edge { return append([]*Edge(nil), w.edges...) }

// Cost returns the sum of the walked edge costs; repeated edges count again.
func (w *Walk) Cost() float64 {
	var sum float64
	for _, e := range w.edges {
		sum += e.cost
	}

	return sum
}

// Trail freezes the walk into an immutable Trail. A closed, non-empty walk
// cannot be expressed as a Trail and yields ErrNotAdjacent.
func (w *Walk) Trail() (*Trail, error) {
	return NewTrail(w.start, w.current, w.Cost(), w.edges)
}

func (w *Walk) push(e *Edge, next string) {
	w.edges = append(w.edges, e)
	w.current = next
}
