// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage and the all-pairs
// shortest-path kernel used by lvroute/solver.
//
// The package is intentionally small:
//   - Dense: an r×c float64 matrix with error-returning accessors.
//   - NewDistance: an n×n distance fixture (0 on the diagonal, +Inf elsewhere).
//   - FloydWarshallNext: in-place relaxation that also maintains a next-hop
//     table for path reconstruction.
//   - ValidateSquare / ValidateSymmetric: shape and symmetry guards.
//
// Numeric policy:
//   - +Inf is the "no path" marker and is always accepted by Set.
//   - NaN is always rejected by Set (ErrNaN).
//
// Determinism:
//   - Every kernel iterates in a fixed k → i → j order and relaxes only on
//     strict improvement, so equal-cost alternatives keep the earlier value.
package matrix
