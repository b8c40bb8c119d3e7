// SPDX-License-Identifier: MIT

// Package route is the caller-facing facade of lvroute: it wires a solver,
// a parity analyzer and the matching heuristic to one core.Graph and adds
// the last step of route inspection, an Eulerian circuit over the graph
// augmented with the duplicated correction trails.
//
//	in, _ := route.NewInspector(g)
//	plan, _ := in.Normalize()        // which trails to walk twice
//	tour, _ := in.Circuit("AA")      // every edge at least once, back to AA
//
// Normalize is a pure computation; nothing is printed. The Inspector keeps
// no state of its own beyond its collaborators, each of which follows the
// graph's Version.
package route
