// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Each validator documents what it assumes (e.g. no nil check).

package matrix

import "github.com/katalvlaran/lamath/scalar"

// validateShape enforces the construction preconditions: negative extents are
// a dimension error, zero extents an empty-shape error. The ordering matters
// and is part of the contract (negative wins over zero when both apply).
// Complexity: O(1).
func validateShape(rows, cols int) error {
	// Negative allocation request.
	if rows < 0 || cols < 0 {
		return ErrBadDimensions
	}
	// Empty allocation request.
	if rows == 0 || cols == 0 {
		return ErrEmptyShape
	}

	return nil
}

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil[T scalar.Scalar[T]](m Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func validateSameShape[T scalar.Scalar[T]](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrBadDimensions
	}

	return nil
}

// validateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func validateSquare[T scalar.Scalar[T]](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return ErrBadDimensions
	}

	return nil
}

// validateRowIndex checks 0 ≤ r < rows (strict upper bound).
// Complexity: O(1).
func validateRowIndex[T scalar.Scalar[T]](m Matrix[T], r int) error {
	if r < 0 || r >= m.Rows() {
		return ErrOutOfBounds
	}

	return nil
}
