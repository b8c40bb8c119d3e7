// SPDX-License-Identifier: MIT
// File: circuit.go
// Role: Eulerian circuit (Hierholzer) over the graph plus correction trails.

package route

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/solver"
)

// Step is one traversal of an edge in a Circuit.
type Step struct {
	Edge      *core.Edge
	From, To  string
	Duplicate bool // true when the edge is walked again as part of a correction trail
}

// Circuit is a closed walk covering every edge at least once.
type Circuit struct {
	Steps []Step
	Cost  float64
}

// Nodes returns the visited node sequence, start repeated at the end.
func (c *Circuit) Nodes() []string {
	if len(c.Steps) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Steps)+1)
	out = append(out, c.Steps[0].From)
	for _, s := range c.Steps {
		out = append(out, s.To)
	}

	return out
}

// Duplicates counts the steps that re-walk an edge.
func (c *Circuit) Duplicates() int {
	n := 0
	for _, s := range c.Steps {
		if s.Duplicate {
			n++
		}
	}

	return n
}

// arc is one traversable copy of a graph edge.
type arc struct {
	e   *core.Edge
	dup bool
}

// Circuit builds a closed walk from start that traverses every edge once
// and every correction-trail edge one extra time. An empty start picks the
// smallest key. Cost equals the graph's total cost plus Normalize's total.
//
// Complexity: O(V³) for the solve, then O(E') for Hierholzer where E' is
// the augmented edge count.
func (in *Inspector) Circuit(start string) (*Circuit, error) {
	if in.g.EdgeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if start == "" {
		start = in.g.Keys()[0]
	} else if !in.g.HasNode(start) {
		return nil, fmt.Errorf("Circuit(%q): %w", start, solver.ErrUnknownNode)
	}
	plan, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	arcs := make([]arc, 0, in.g.EdgeCount()+len(plan.Pairs))
	for _, e := range in.g.Edges() {
		arcs = append(arcs, arc{e: e})
	}
	for _, p := range plan.Pairs {
		for _, e := range p.Trail.Path() {
			arcs = append(arcs, arc{e: e, dup: true})
		}
	}
	adj := make(map[string][]int, in.g.NodeCount())
	for id, a := range arcs {
		adj[a.e.A()] = append(adj[a.e.A()], id)
		adj[a.e.B()] = append(adj[a.e.B()], id)
	}

	steps := hierholzer(arcs, adj, start)
	if len(steps) != len(arcs) {
		// Normalize validated connectivity and balanced every degree.
		return nil, fmt.Errorf("Circuit(%q): covered %d of %d edges: %w", start, len(steps), len(arcs), solver.ErrDisconnected)
	}
	c := &Circuit{Steps: steps}
	for _, s := range steps {
		c.Cost += s.Edge.Cost()
	}
	in.log.Debug().
		Str("start", start).
		Int("steps", len(steps)).
		Int("duplicates", c.Duplicates()).
		Float64("cost", c.Cost).
		Msg("circuit built")

	return c, nil
}

// hierholzer walks unused arcs depth-first and emits them while
// backtracking; the reversed emission order is the circuit.
func hierholzer(arcs []arc, adj map[string][]int, start string) []Step {
	type frame struct {
		node string
		via  int // arc used to enter node, -1 for start
	}
	used := make([]bool, len(arcs))
	ptr := make(map[string]int, len(adj))
	stack := []frame{{node: start, via: -1}}
	rev := make([]Step, 0, len(arcs))

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		list := adj[top.node]
		i := ptr[top.node]
		for i < len(list) && used[list[i]] {
			i++
		}
		ptr[top.node] = i
		if i < len(list) {
			id := list[i]
			used[id] = true
			next, _ := arcs[id].e.Other(top.node)
			stack = append(stack, frame{node: next, via: id})
			continue
		}
		stack = stack[:len(stack)-1]
		if top.via >= 0 {
			from := stack[len(stack)-1].node
			rev = append(rev, Step{Edge: arcs[top.via].e, From: from, To: top.node, Duplicate: arcs[top.via].dup})
		}
	}

	steps := make([]Step, len(rev))
	for i, s := range rev {
		steps[len(rev)-1-i] = s
	}

	return steps
}
