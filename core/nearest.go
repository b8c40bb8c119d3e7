// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: nearest-neighbour lookups used for hit-testing on the drawing.
//
// Tie-break: candidates are scanned in a fixed order (nodes by key, edges by
// creation) and replaced only on a strictly smaller distance, so the first
// minimum seen wins.

package core

import "math"

// FindNearestNode returns the node closest to p within maxDistance (inclusive).
// It reports false when no node is close enough.
// Complexity: O(V log V).
func (g *Graph) FindNearestNode(p Point, maxDistance float64) (*Node, bool) {
	var (
		found *Node
		best  = math.Inf(1)
	)
	for _, n := range g.Nodes() {
		d := n.Pos.DistanceTo(p)
		if d <= maxDistance && d < best {
			found, best = n, d
		}
	}

	return found, found != nil
}

// FindNearestEdge returns the edge with a segment closest to p within
// maxDistance (inclusive). It reports false when no edge is close enough.
// Complexity: O(E log E + S) where S is the total segment count.
func (g *Graph) FindNearestEdge(p Point, maxDistance float64) (*Edge, bool) {
	var (
		found *Edge
		best  = math.Inf(1)
	)
	for _, e := range g.Edges() {
		for _, s := range e.segments {
			d := s.DistanceTo(p)
			if d <= maxDistance && d < best {
				found, best = e, d
			}
		}
	}

	return found, found != nil
}
