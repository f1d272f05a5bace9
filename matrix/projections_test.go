// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the write-through row and
// column projections.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lamath/matrix"
)

func TestRowView_ReadWrite(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 3, row.Len())

	v, err := row.AtVec(2)
	require.NoError(t, err)
	require.Equal(t, R(6), v)

	// a write through the projection lands in the parent
	require.NoError(t, row.SetVec(0, 40))
	requireMatExact(t, [][]R{{1, 2, 3}, {40, 5, 6}}, m)

	// and a parent write is visible through the projection
	require.NoError(t, m.Set(1, 1, 50))
	v, err = row.AtVec(1)
	require.NoError(t, err)
	require.Equal(t, R(50), v)

	// bounds are the parent's strict bounds
	_, err = row.AtVec(3)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	require.ErrorIs(t, row.SetVec(-1, 0), matrix.ErrOutOfBounds)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

func TestColView_ReadWrite(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {3, 4}, {5, 6}})
	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())

	v, err := col.AtVec(2)
	require.NoError(t, err)
	require.Equal(t, R(6), v)

	require.NoError(t, col.SetVec(0, 20))
	requireMatExact(t, [][]R{{1, 20}, {3, 4}, {5, 6}}, m)

	_, err = col.AtVec(3)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
}

func TestProjection_Materialize_Detaches(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)
	owned, err := row.Materialize()
	require.NoError(t, err)
	require.True(t, owned.IsRow())
	requireMatExact(t, [][]R{{1, 2}}, owned)

	col, err := m.Col(0)
	require.NoError(t, err)
	ownedCol, err := col.Materialize()
	require.NoError(t, err)
	require.False(t, ownedCol.IsRow())
	requireMatExact(t, [][]R{{1}, {3}}, ownedCol)

	// the copies are snapshots, not live views
	require.NoError(t, m.Set(0, 0, 99))
	v, err := owned.AtVec(0)
	require.NoError(t, err)
	require.Equal(t, R(1), v)
	v, err = ownedCol.AtVec(0)
	require.NoError(t, err)
	require.Equal(t, R(1), v)
}

func TestProjectionWrite_InvalidatesMemoizedResults(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 0}, {0, 1}})

	det, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, R(1), det)

	// a write through a projection must flush the cached determinant
	row, err := m.Row(0)
	require.NoError(t, err)
	require.NoError(t, row.SetVec(0, 3))

	det, err = m.Det()
	require.NoError(t, err)
	require.Equal(t, R(3), det)
}
