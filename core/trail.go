// SPDX-License-Identifier: MIT
//
// File: trail.go
// Role: immutable walk result between two nodes.

package core

import "fmt"

// Trail is an ordered sequence of edges leading from one node to another,
// together with its total cost. A Trail is immutable once constructed.
type Trail struct {
	from string
	to   string
	cost float64
	path []*Edge
}

// NewTrail validates and builds a Trail.
//
// Contract:
//   - cost must be finite and non-negative (ErrNegativeCost otherwise).
//   - path must be empty iff from == to, and must form a connected walk
//     from → to (ErrNotAdjacent otherwise).
//
// The path slice is copied.
func NewTrail(from, to string, cost float64, path []*Edge) (*Trail, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyKey
	}
	if !validCost(cost) {
		return nil, fmt.Errorf("NewTrail(%q,%q): cost=%g: %w", from, to, cost, ErrNegativeCost)
	}
	cur := from
	for i, e := range path {
		next, ok := e.Other(cur)
		if !ok {
			return nil, fmt.Errorf("NewTrail(%q,%q): edge %d %s does not touch %q: %w", from, to, i, e, cur, ErrNotAdjacent)
		}
		cur = next
	}
	if cur != to || (from == to && len(path) > 0) {
		return nil, fmt.Errorf("NewTrail(%q,%q): walk ends at %q: %w", from, to, cur, ErrNotAdjacent)
	}

	return &Trail{from: from, to: to, cost: cost, path: append([]*Edge(nil), path...)}, nil
}

// From returns the start node key.
func (t *Trail) From() string { return t.from }

// To returns the end node key.
func (t *Trail) To() string { return t.to }

// Cost returns the total cost of the trail.
func (t *Trail) Cost() float64 { return t.cost }

// Len returns the number of edges on the trail.
func (t *Trail) Len() int { return len(t.path) }

// Path returns a copy of the edges ordered from From to To.
func (t *Trail) Path() []*Edge { return append([]*Edge(nil), t.path...) }

// Nodes returns the node keys visited, From first and To last.
func (t *Trail) Nodes() []string {
	out := make([]string, 0, len(t.path)+1)
	cur := t.from
	out = append(out, cur)
	for _, e := range t.path {
		cur, _ = e.Other(cur)
		out = append(out, cur)
	}

	return out
}

// PathCost returns the sum of the edge costs along the path. For trails
// produced by a solver it equals Cost.
func (t *Trail) PathCost() float64 {
	var sum float64
	for _, e := range t.path {
		sum += e.cost
	}

	return sum
}
