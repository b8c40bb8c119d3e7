// SPDX-License-Identifier: MIT

// Package lvroute solves route inspection on line drawings: find the
// cheapest closed walk that covers every drawn line at least once.
//
// A drawing becomes a weighted undirected multigraph (core). All-pairs
// shortest paths are computed lazily and invalidated whenever the graph
// changes (solver). Odd-degree nodes are found (parity) and paired so that
// the summed shortest-path cost stays low (matching). The facade (route)
// ties these together and emits the final Eulerian circuit.
//
// Layout:
//
//	core/      Graph, Node, Edge, Segment, Trail, Walk; drawing import, compaction
//	matrix/    dense cost matrix and Floyd–Warshall with next-hop reconstruction
//	solver/    all-pairs shortest-path cache: Cost, Trail, CostMatrix
//	parity/    degree parity analysis
//	matching/  best-first and greedy pairing, pair-swap improvement
//	route/     Inspector: Normalize and Circuit
//	dijkstra/  single-source shortest paths for ad-hoc queries
//	builder/   deterministic drawings of classic shapes
//	cmd/lvroute CLI over YAML drawings
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    D───C
//
// A and C have degree 3; walking the diagonal twice costs 1 extra unit.
//
//	go get github.com/katalvlaran/lvroute
package lvroute
