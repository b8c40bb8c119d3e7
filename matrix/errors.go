// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." for grep-ability. Sentinels are
// returned wrapped with call-site context via fmt.Errorf("...: %w", ErrX);
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes (non-square input,
	// wrong buffer length, wrong next-hop table length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaN signals a NaN value offered to Set.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not (within eps).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNegativeCycle signals that relaxation drove a diagonal entry below zero.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")
)
