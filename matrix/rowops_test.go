// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the elementary row operations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lamath/matrix"
)

func TestRowSwap(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	// the rows exchange cleanly even though both projections alias the same
	// buffer (the snapshot inside RowSwap prevents self-corruption)
	require.NoError(t, m.RowSwap(0, 2))
	requireMatExact(t, [][]R{
		{7, 8, 9},
		{4, 5, 6},
		{1, 2, 3},
	}, m)

	// a second swap restores the original ordering
	require.NoError(t, m.RowSwap(0, 2))
	requireMatExact(t, [][]R{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, m)

	// a self-swap is a no-op
	require.NoError(t, m.RowSwap(1, 1))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, R(4), v)

	require.ErrorIs(t, m.RowSwap(0, 3), matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.RowSwap(-1, 0), matrix.ErrOutOfBounds)
}

func TestRowScale(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {3, 4}})

	require.NoError(t, m.RowScale(1, 10))
	requireMatExact(t, [][]R{{1, 2}, {30, 40}}, m)

	require.ErrorIs(t, m.RowScale(2, 1), matrix.ErrOutOfBounds)
}

func TestRowAdd(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {10, 20}})

	require.NoError(t, m.RowAdd(0, 1))
	requireMatExact(t, [][]R{{11, 22}, {10, 20}}, m)
}

func TestRowAddMultiple(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {10, 20}})

	// row0 += -0.5 * row1
	require.NoError(t, m.RowAddMultiple(0, 1, -0.5))
	requireMatExact(t, [][]R{{-4, -8}, {10, 20}}, m)

	// accumulating a row into itself is refused
	require.ErrorIs(t, m.RowAddMultiple(1, 1, 2), matrix.ErrBadDimensions)

	require.ErrorIs(t, m.RowAddMultiple(0, 5, 1), matrix.ErrOutOfBounds)
}
