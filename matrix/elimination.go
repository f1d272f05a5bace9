// SPDX-License-Identifier: MIT

// Package matrix: the Gauss–Jordan elimination engine.
//
// Purpose:
//   - One shared pivoting loop drives all three entry points: RREF (and its
//     paired variant RREFWith) and Det. Inv is the paired reduction of
//     [A | I] with a post-condition check.
//   - Pivot policy: the FIRST nonzero entry scanning downward from the
//     current row in the current lead column. Deterministic, not
//     magnitude-based; the tie-break is part of the contract and must be
//     preserved for reproducible results (a documented upgrade to partial
//     pivoting would be a breaking change to reproducibility).
//
// Notes:
//   - Exhausting a lead column without a pivot advances lead WITHOUT
//     advancing the pivot row. A matrix whose columns run out before its
//     rows yields the partial elimination performed so far — rank-deficient
//     input is a partial result, not an error, for the rref entry points.
//   - All entry points operate on clones; receivers are never mutated.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// eliminate runs the shared pivoting loop over a, mirroring every row
// operation onto rhs when rhs is non-nil. With forwardOnly=true (the
// determinant path) only rows BELOW the pivot are eliminated, and the swap
// sign and running pivot product are tracked and returned; otherwise both
// returns are the multiplicative identity.
//
// Implementation:
//   - Stage 1 (Scan): from the pivot row downward, find the first row with a
//     nonzero entry in column lead; exhausting the column advances lead and
//     restarts the scan; exhausting all columns stops the whole loop.
//   - Stage 2 (Swap): move the pivot row into place (sign flips in det mode).
//   - Stage 3 (Normalize): scale the pivot row by 1/pivot so the pivot
//     becomes one (the pivot value joins the product in det mode).
//   - Stage 4 (Eliminate): clear column lead in every other row (det mode:
//     only rows below) via RowAddMultiple with factor -a[i2][lead].
//
// Determinism: fixed scan and elimination orders; no data-dependent
// tie-breaks beyond the documented first-nonzero policy.
//
// Complexity: O(rows² · cols) time, O(cols) transient space (row snapshot).
func eliminate[T scalar.Scalar[T]](a, rhs *Dense[T], forwardOnly bool) (sign, product T) {
	var zero T
	zero = zero.Zero()
	one := zero.One()
	sign, product = one, one

	rows, cols := a.r, a.c
	lead := 0 // current pivot column
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return sign, product // columns exhausted: partial result stands
		}

		// Stage 1: scan downward for the first nonzero entry in column lead.
		i := r
		for a.data[i*cols+lead].Equal(zero) {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return sign, product // no pivot anywhere to the right
				}
			}
		}

		// Stage 2: move the pivot row into place.
		if i != r {
			_ = a.RowSwap(i, r)
			if rhs != nil {
				_ = rhs.RowSwap(i, r)
			}
			if forwardOnly {
				sign = sign.Neg() // each swap negates the determinant
			}
		}

		// Stage 3: normalize the pivot row.
		if pivot := a.data[r*cols+lead]; !pivot.Equal(zero) {
			factor := one.Div(pivot)
			_ = a.RowScale(r, factor)
			if rhs != nil {
				_ = rhs.RowScale(r, factor)
			}
			// pivot·(1/pivot) is exactly one mathematically; write it exactly
			// so inexact scalar division cannot leave residue on the pivot.
			_ = a.Set(r, lead, one)
			if forwardOnly {
				product = product.Mul(pivot)
			}
		}

		// Stage 4: eliminate column lead everywhere else.
		lo := 0
		if forwardOnly {
			lo = r + 1 // determinant needs forward elimination only
		}
		for i2 := lo; i2 < rows; i2++ {
			if i2 == r {
				continue
			}
			factor := a.data[i2*cols+lead].Neg()
			_ = a.RowAddMultiple(i2, r, factor)
			if rhs != nil {
				_ = rhs.RowAddMultiple(i2, r, factor)
			}
			// x + (-x)·1 is exactly zero mathematically; write it exactly so
			// the cleared pivot column carries no floating-point residue.
			_ = a.Set(i2, lead, zero)
		}
		lead++
	}

	return sign, product
}

// RREF returns the row-reduced echelon form of the matrix as a fresh Dense;
// the receiver is untouched. Rank-deficient input yields the partial
// elimination performed so far (never an error).
// Complexity: O(rows² · cols).
func (m *Dense[T]) RREF() *Dense[T] {
	reduced := m.Clone()
	eliminate(reduced, nil, false)

	return reduced
}

// RREFWith performs the paired reduction of [m | rhs]: every row operation
// applied to m is mirrored onto rhs, and the transformed rhs is returned.
// This is the primitive behind solving m·X = rhs and behind Inv.
//
// Errors:
//   - ErrNilMatrix     — rhs is nil.
//   - ErrBadDimensions — rhs row count differs from m's.
//
// Complexity: O(rows² · (cols + rhs.cols)).
func (m *Dense[T]) RREFWith(rhs *Dense[T]) (*Dense[T], error) {
	if rhs == nil {
		return nil, fmt.Errorf("Dense.RREFWith: %w", ErrNilMatrix)
	}
	if rhs.r != m.r {
		return nil, fmt.Errorf("Dense.RREFWith: %w", ErrBadDimensions)
	}

	a, b := m.Clone(), rhs.Clone()
	eliminate(a, b, false)

	return b, nil
}

// Det returns the determinant of a square matrix via forward elimination:
// the product of the pivots, negated once per row swap, times the product of
// the reduced diagonal (which contributes exactly the additive identity when
// some row never finds a pivot — the singular case).
//
// The result is memoized under the sticky-compute mask; any subsequent write
// to the matrix invalidates it.
//
// Errors:
//   - ErrBadDimensions — non-square receiver.
//
// Complexity: O(n³) on a miss, O(1) on a hit.
func (m *Dense[T]) Det() (T, error) {
	var zero T
	if m.cache.valid(stickyDet) {
		return m.cache.det, nil
	}
	if err := validateSquare[T](m); err != nil {
		return zero, fmt.Errorf("Dense.Det: %w", err)
	}

	work := m.Clone()
	sign, product := eliminate(work, nil, true)

	// diag(work) is all ones exactly when every row found a pivot; any
	// pivotless row leaves a zero on the diagonal and annihilates the product.
	det := sign.Mul(product).Mul(work.Diag().Prod())

	m.cache.det = det
	m.cache.mask |= stickyDet

	return det, nil
}

// Inv returns the inverse of a square matrix, computed as the paired
// reduction of [m | I] until the left side becomes the identity; the
// transformed right side is the inverse. If m is singular the left side
// cannot reach the identity, and the partially-transformed garbage is NEVER
// returned — the failure surfaces as ErrSingular.
//
// The result is memoized under the sticky-compute mask; the returned matrix
// is a defensive copy, so callers may mutate it without poisoning the cache.
//
// Errors:
//   - ErrBadDimensions — non-square receiver.
//   - ErrSingular      — m is not invertible.
//
// Complexity: O(n³) on a miss, O(n²) on a hit (the copy).
func (m *Dense[T]) Inv() (*Dense[T], error) {
	if m.cache.valid(stickyInv) {
		return m.cache.inv.Clone(), nil
	}
	if err := validateSquare[T](m); err != nil {
		return nil, fmt.Errorf("Dense.Inv: %w", err)
	}

	identity, err := Eye[T](m.r, m.c)
	if err != nil {
		return nil, fmt.Errorf("Dense.Inv: %w", err)
	}

	work := m.Clone()
	eliminate(work, identity, false)

	// Post-condition: the left side must have reduced to the identity.
	if !work.isIdentity() {
		return nil, fmt.Errorf("Dense.Inv: %w", ErrSingular)
	}

	m.cache.inv = identity
	m.cache.mask |= stickyInv

	return identity.Clone(), nil
}

// isIdentity reports whether the matrix is exactly the identity (ones on the
// diagonal, additive identity elsewhere). Internal: assumes square input.
// Complexity: O(n²).
func (m *Dense[T]) isIdentity() bool {
	var zero T
	zero = zero.Zero()
	one := zero.One()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			want := zero
			if i == j {
				want = one
			}
			if !m.data[i*m.c+j].Equal(want) {
				return false
			}
		}
	}

	return true
}
