// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: cloning and clearing graph instances.

package core

// Clone returns a deep copy of the Graph: nodes, incidence lists, edges and
// segments. Edge IDs and the ID sequence are carried, so edges created later
// on the clone never collide with the original's. The logger is shared.
// Complexity: O(V + E + S).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithLogger(g.log))
	clone.nextEdgeID = g.nextEdgeID
	clone.version = g.version
	for key, n := range g.nodes {
		clone.nodes[key] = &Node{Key: n.Key, Pos: n.Pos, edges: append([]string(nil), n.edges...)}
	}
	for id, e := range g.edges {
		clone.edges[id] = &Edge{
			ID:       e.ID,
			a:        e.a,
			b:        e.b,
			segments: append([]Segment(nil), e.segments...),
			cost:     e.cost,
			seq:      e.seq,
		}
	}

	return clone
}

// Clear removes all nodes and edges. The edge ID sequence restarts.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.nextEdgeID = 0
	g.touch()
}
