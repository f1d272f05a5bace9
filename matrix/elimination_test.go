// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Gauss–Jordan engine:
// RREF, paired reduction, determinant and inverse.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lamath/matrix"
	"github.com/katalvlaran/lamath/scalar"
)

func TestRREF_FullRank(t *testing.T) {
	t.Parallel()

	// augmented system with an exact-in-binary reduction path
	m := mustFromRows(t, [][]R{
		{1, 2, -1, -4},
		{2, 3, -1, -11},
		{-2, 0, -3, 22},
	})
	reduced := m.RREF()

	requireMatExact(t, [][]R{
		{1, 0, 0, -8},
		{0, 1, 0, 1},
		{0, 0, 1, -2},
	}, reduced)

	// the receiver is never mutated
	requireMatExact(t, [][]R{
		{1, 2, -1, -4},
		{2, 3, -1, -11},
		{-2, 0, -3, 22},
	}, m)
}

func TestRREF_RankDeficient_PartialResult(t *testing.T) {
	t.Parallel()

	// a dependent row reduces to zeros; no error is raised
	m := mustFromRows(t, [][]R{{1, 2}, {2, 4}})
	requireMatExact(t, [][]R{{1, 2}, {0, 0}}, m.RREF())
}

func TestRREF_SkipsPivotlessColumns(t *testing.T) {
	t.Parallel()

	// the first two columns hold no pivot anywhere; the scan advances the
	// lead column without advancing the pivot row
	m := mustFromRows(t, [][]R{
		{0, 0, 2},
		{0, 0, 4},
	})
	requireMatExact(t, [][]R{
		{0, 0, 1},
		{0, 0, 0},
	}, m.RREF())
}

func TestRREFWith_SolvesLinearSystem(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]R{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]R{{5}, {11}})

	x, err := a.RREFWith(b)
	require.NoError(t, err)
	requireMatExact(t, [][]R{{1}, {2}}, x) // a · [1 2]ᵀ = [5 11]ᵀ

	// neither operand is mutated
	requireMatExact(t, [][]R{{1, 2}, {3, 4}}, a)
	requireMatExact(t, [][]R{{5}, {11}}, b)
}

func TestRREFWith_Errors(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]R{{1, 2}, {3, 4}})

	_, err := a.RREFWith(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	tall := mustFromRows(t, [][]R{{1}, {2}, {3}})
	_, err = a.RREFWith(tall)
	require.ErrorIs(t, err, matrix.ErrBadDimensions)
}

func TestDet_KnownValues(t *testing.T) {
	t.Parallel()

	t.Run("2x2", func(t *testing.T) {
		m := mustFromRows(t, [][]R{{1, 2}, {3, 4}})
		det, err := m.Det()
		require.NoError(t, err)
		require.Equal(t, R(-2), det)
	})

	t.Run("identity", func(t *testing.T) {
		for n := 1; n <= 4; n++ {
			e, err := matrix.Eye[R](n, n)
			require.NoError(t, err)
			det, err := e.Det()
			require.NoError(t, err)
			require.Equal(t, R(1), det, "det(I_%d)", n)
		}
	})

	t.Run("singular_is_zero", func(t *testing.T) {
		m := mustFromRows(t, [][]R{{1, 2}, {2, 4}})
		det, err := m.Det()
		require.NoError(t, err)
		require.Equal(t, R(0), det)
	})

	t.Run("triangular", func(t *testing.T) {
		m := mustFromRows(t, [][]R{
			{2, 1, 5},
			{0, 3, -1},
			{0, 0, 4},
		})
		det, err := m.Det()
		require.NoError(t, err)
		require.InDelta(t, 24, float64(det), 1e-12)
	})
}

func TestDet_RowSwapNegates(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{1, 2}, {3, 4}})
	det, err := m.Det()
	require.NoError(t, err)

	swapped := m.Clone()
	require.NoError(t, swapped.RowSwap(0, 1))
	detSwapped, err := swapped.Det()
	require.NoError(t, err)

	require.InDelta(t, -float64(det), float64(detSwapped), 1e-12)
}

func TestDet_NonSquare(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 2, 3)
	_, err := m.Det()
	require.ErrorIs(t, err, matrix.ErrBadDimensions)
	require.Equal(t, matrix.CodeBadDimensions, matrix.Code(err))
}

func TestDet_ComplexScalars(t *testing.T) {
	t.Parallel()

	i := scalar.Complex{Im: 1}
	m, err := matrix.NewDenseFromRows([][]scalar.Complex{
		{i, {}},
		{{}, i},
	})
	require.NoError(t, err)

	// det(diag(i, i)) = i² = -1
	det, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, scalar.Complex{Re: -1}, det)
}

func TestInv_Diagonal(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{2, 0}, {0, 4}})
	inv, err := m.Inv()
	require.NoError(t, err)
	requireMatExact(t, [][]R{{0.5, 0}, {0, 0.25}}, inv)

	// the receiver is untouched
	requireMatExact(t, [][]R{{2, 0}, {0, 4}}, m)
}

func TestInv_TimesOriginalIsIdentity(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	inv, err := m.Inv()
	require.NoError(t, err)

	prod, err := matrix.Mul[R](m, inv)
	require.NoError(t, err)
	requireMatClose(t, [][]R{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, prod, 1e-12)
}

func TestInv_SingularSurfacesError(t *testing.T) {
	t.Parallel()

	// dependent rows: no inverse exists, and no partial garbage escapes
	m := mustFromRows(t, [][]R{{1, 2}, {2, 4}})
	inv, err := m.Inv()
	require.Nil(t, inv)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, matrix.CodeSingular, matrix.Code(err))
}

func TestInv_NonSquare(t *testing.T) {
	t.Parallel()

	m := mustDense(t, 3, 2)
	_, err := m.Inv()
	require.ErrorIs(t, err, matrix.ErrBadDimensions)
}

func TestInv_QuaternionScalars(t *testing.T) {
	t.Parallel()

	// quaternion units invert exactly: i⁻¹ = -i, j⁻¹ = -j
	i := scalar.Quaternion{X: 1}
	j := scalar.Quaternion{Y: 1}
	m, err := matrix.NewDenseFromRows([][]scalar.Quaternion{
		{i, {}},
		{{}, j},
	})
	require.NoError(t, err)

	inv, err := m.Inv()
	require.NoError(t, err)
	v, err := inv.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, i.Neg(), v)
	v, err = inv.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, j.Neg(), v)

	// the division ring has no zero divisors, so m·m⁻¹ is exactly identity
	prod, err := matrix.Mul[scalar.Quaternion](m, inv)
	require.NoError(t, err)
	one := i.One()
	d, err := prod.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, one, d)
	d, err = prod.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, one, d)
}

func TestInv_OneByOne(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]R{{8}})
	inv, err := m.Inv()
	require.NoError(t, err)
	requireMatExact(t, [][]R{{0.125}}, inv)

	zero := mustFromRows(t, [][]R{{0}})
	_, err = zero.Inv()
	require.ErrorIs(t, err, matrix.ErrSingular)
}
