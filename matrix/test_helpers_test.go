// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and utilities.
//
// Purpose:
//   • Provide small, deterministic fixtures for the storage/view/elimination tests.
//   • Keep all data finite and exactly representable where exactness is asserted.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lamath/matrix"
	"github.com/katalvlaran/lamath/scalar"
)

// R abbreviates the real scalar in table literals.
type R = scalar.Real

// hide WRAPS any Matrix to mask its concrete type from type assertions,
// forcing code under test onto the interface fallback path instead of the
// *Dense fast path. Wrap ONLY the operand you want to de-opt.
type hide struct{ matrix.Matrix[R] }

// mustDense ALLOCATES an r×c real Dense or fails the test (fatal on error).
func mustDense(t *testing.T, r, c int, opts ...matrix.Option[R]) *matrix.Dense[R] {
	t.Helper()
	m, err := matrix.NewDense[R](r, c, opts...)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// mustFromRows BUILDS a real Dense from row literals or fails the test.
func mustFromRows(t *testing.T, rows [][]R) *matrix.Dense[R] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// requireMatExact ASSERTS element-by-element equality against row literals.
// Exact comparison; use requireMatClose when rounding is expected.
func requireMatExact(t *testing.T, want [][]R, got matrix.Matrix[R]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err, "At(%d,%d)", i, j)
			require.Equal(t, want[i][j], v, "element [%d,%d]", i, j)
		}
	}
}

// requireMatClose ASSERTS element-by-element equality within delta.
func requireMatClose(t *testing.T, want [][]R, got matrix.Matrix[R], delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err, "At(%d,%d)", i, j)
			require.InDelta(t, float64(want[i][j]), float64(v), delta, "element [%d,%d]", i, j)
		}
	}
}
