// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape/symmetry checks used by kernels.
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= eps for all i<j.
// Equal infinities are symmetric; an infinity opposite a finite value is not.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry.
// Complexity: O(n^2) over the upper triangle.
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.r
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = m.data[i*n+j], m.data[j*n+i]
			if a == b {
				continue
			}
			if math.IsInf(a, 0) || math.IsInf(b, 0) || math.Abs(a-b) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
