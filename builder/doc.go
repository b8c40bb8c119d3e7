// SPDX-License-Identifier: MIT

// Package builder produces deterministic line drawings of classic graph
// shapes for fixtures, demos and property tests. A drawing is a []core.Line;
// core.FromLines turns it into a graph whose edge costs are the drawn
// lengths times the length scale.
//
// The package offers:
//
//   - Constructors (each appends lines to the drawing):
//     - Cycle(n):        regular n-gon, side = spacing.
//     - Path(n):         n points on a horizontal line.
//     - Grid(r, c):      r×c lattice.
//     - Star(n):         centre joined to n rim points.
//     - Wheel(n):        n-gon rim plus spokes to the centre.
//     - Complete(n):     n-gon with every chord drawn.
//     - RandomSparse(n, p): n-gon vertices, each chord kept with probability p.
//   - Options:
//     - WithOrigin, WithSpacing:  placement and scale.
//     - WithSeed, WithRand:       RNG for RandomSparse and WithJitter.
//     - WithJitter:               random vertex displacement (needs an RNG).
//
// Guarantees:
//
//   - Same options, same constructors ⇒ identical drawing, line by line.
//   - Every vertex position is computed once and reused, so shared endpoints
//     compare equal and FromLines merges them into one node.
//   - Constructors drawn at the same origin may share positions; FromLines
//     merges those too, exactly as a hand-made drawing would.
//   - Option constructors panic on invalid values; constructors return
//     sentinel errors.
package builder
