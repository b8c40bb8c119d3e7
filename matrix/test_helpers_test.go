// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
)

// MustDistance allocates an n×n distance fixture or fails the test.
func MustDistance(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDistance(n)
	require.NoError(t, err)

	return d
}

// MustSetSym sets (i,j) and (j,i) to v.
func MustSetSym(t *testing.T, d *matrix.Dense, i, j int, v float64) {
	t.Helper()
	require.NoError(t, d.Set(i, j, v))
	require.NoError(t, d.Set(j, i, v))
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}
