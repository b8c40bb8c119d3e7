// SPDX-License-Identifier: MIT
//
// File: compact.go
// Role: structural simplification (removal of isolated nodes, folding of
//       pass-through nodes).

package core

// CompactStats summarizes one Compact pass.
type CompactStats struct {
	// Isolated is the number of degree-0 nodes removed.
	Isolated int

	// Folded is the number of degree-2 nodes bypassed and removed.
	Folded int

	// Skipped is the number of degree-2 nodes kept because both incident
	// edges lead to the same neighbour (folding would create a self-loop).
	Skipped int
}

// Compact simplifies the graph in a single pass over the nodes in key order.
//
// For every node, at the moment it is visited:
//   - degree 0: the node is removed;
//   - degree 2: its two incident edges e1, e2 are merged into a new edge that
//     takes over e1's ID. Segments are concatenated in traversal order (far
//     end of e1 → node → far end of e2), costs are summed, and the node and
//     e2 are deleted;
//   - any other degree: untouched.
//
// Total edge cost is preserved, and so are shortest-path costs between the
// remaining nodes. Edge values are never modified, so Trails and Walks built
// before the call stay as they were. The pass is not repeated: callers wanting a fixed point
// may call Compact until it reports no change.
//
// Complexity: O(V log V + Σ deg).
func (g *Graph) Compact() CompactStats {
	var stats CompactStats
	for _, key := range g.Keys() {
		n, ok := g.nodes[key]
		if !ok {
			continue
		}
		switch len(n.edges) {
		case 0:
			delete(g.nodes, key)
			stats.Isolated++
		case 2:
			if g.fold(n) {
				stats.Folded++
			} else {
				stats.Skipped++
			}
		}
	}
	if stats.Isolated+stats.Folded > 0 {
		g.touch()
	}
	g.log.Debug().
		Int("isolated", stats.Isolated).
		Int("folded", stats.Folded).
		Int("skipped", stats.Skipped).
		Int("nodes", len(g.nodes)).
		Int("edges", len(g.edges)).
		Msg("graph compacted")

	return stats
}

// fold merges the two incident edges of a degree-2 node and removes the node.
// It reports false (and changes nothing) when both edges reach the same neighbour.
func (g *Graph) fold(n *Node) bool {
	e1 := g.edges[n.edges[0]]
	e2 := g.edges[n.edges[1]]
	far1, _ := e1.Other(n.Key)
	far2, _ := e2.Other(n.Key)
	if far1 == far2 {
		return false
	}

	// orient e1 as far1 → n and e2 as n → far2
	head := e1.segments
	if e1.b != n.Key {
		head = reverseSegments(head)
	}
	tail := e2.segments
	if e2.a != n.Key {
		tail = reverseSegments(tail)
	}
	merged := make([]Segment, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	// e1 is replaced, not edited: trails and walks built earlier keep
	// pointing at the old edge and must not change.
	g.edges[e1.ID] = &Edge{
		ID:       e1.ID,
		a:        far1,
		b:        far2,
		segments: merged,
		cost:     e1.cost + e2.cost,
		seq:      e1.seq,
	}
	g.nodes[far2].replace(e2.ID, e1.ID)
	delete(g.edges, e2.ID)
	delete(g.nodes, n.Key)

	return true
}
