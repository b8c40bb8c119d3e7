// SPDX-License-Identifier: MIT

// Package solver answers all-pairs shortest-path queries over a core.Graph.
//
// A Solver is bound to one graph. On the first query it indexes the graph's
// nodes (sorted keys → dense indices), loads every edge into an n×n cost
// matrix keeping the cheapest parallel edge as the direct hop, runs
// Floyd–Warshall with next-hop tracking (lvroute/matrix) and validates the
// result. Later queries read the cached tables until the graph's Version
// changes, at which point everything is rebuilt from scratch.
//
// Queries:
//
//	Cost(from, to)     - relaxed shortest-path cost.
//	Trail(from, to)    - core.Trail following the next-hop chain.
//	Parallel(a, b)     - every direct edge between a and b (creation order).
//	Degree(key)        - incident edge count seen at build time.
//	CostMatrix()       - a copy of the relaxed matrix plus its key order.
//
// Validation:
//
//	The graph must be connected: an isolated node or an unreachable pair
//	fails every query with ErrDisconnected. ErrNegativeCycle is reported if
//	a relaxed self-distance drops below zero (unreachable through core,
//	which rejects negative segment costs).
//
// Concurrency:
//
//	No locking. Callers serialise graph mutation and solver queries.
//
// Complexity:
//
//	Build O(V + E), solve O(V³) time and O(V²) space, Cost O(1),
//	Trail O(path length).
package solver
