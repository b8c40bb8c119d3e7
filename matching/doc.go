// SPDX-License-Identifier: MIT

// Package matching pairs up an even set of node keys so that the summed
// pairwise shortest-path cost is low. It is the correction step of route
// inspection: duplicating the shortest trail of every pair makes all
// degrees even.
//
// The result is an approximation, not a minimum-weight perfect matching.
//
// Strategies:
//
//	BestFirst (default) - best-first search over partial matchings. Nodes
//	  are closed one at a time in order of f = g + h, where h is a greedy
//	  lower-bound estimate of the cost to pair the nodes still open. Passes
//	  alternate: a "propose" pass scores each open node as the partner of the
//	  node just closed (h excludes both), a "free" pass scores it as the
//	  start of the next pair (h excludes only the closed set). Consecutive
//	  nodes in closing order form the pairs.
//	Greedy - each remaining node, in key order, takes its nearest free partner.
//
// WithImprovement adds a pair-swap pass afterwards: for any two pairs
// (a,b),(c,d) the cheaper of (a,c)(b,d) and (a,d)(b,c) replaces them while
// that strictly lowers the total.
//
// Complexity (k = number of keys):
//
//	cost table O(k²) metric calls; BestFirst O(k⁴) (k expansions × k
//	relaxations × O(k²) bound); Greedy O(k²); improvement O(k²) per sweep.
package matching
