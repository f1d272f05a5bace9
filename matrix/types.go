// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces.
// The engine deliberately keeps a small closed set of storage variants over
// {owns storage vs. projects into a parent} × {read-only vs. write-through}:
//
//	Dense[T]      — owns, write-through (the only owner of its buffer)
//	Vector[T]     — owns, write-through (Dense with one dimension pinned to 1)
//	Transpose[T]  — projects, read-only
//	SubMatrix[T]  — projects, read-only
//	RowView[T]    — projects, write-through (1-D)
//	ColView[T]    — projects, write-through (1-D)
//
// The interfaces below are the read/write surfaces those variants share.
package matrix

import "github.com/katalvlaran/lamath/scalar"

// Matrix is the 2-D read surface shared by owned storage and views.
// Implementations MUST bounds-check At and return ErrOutOfBounds rather than
// panic; views check against their OWN shape before remapping coordinates.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T scalar.Scalar[T]] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Mutable is the 2-D write surface. Only owning storage implements it;
// the read-only views (Transpose, SubMatrix) intentionally do not, which
// removes a whole class of aliasing hazards during elimination.
type Mutable[T scalar.Scalar[T]] interface {
	Matrix[T]

	// Set assigns v at (i, j) and invalidates any memoized derived
	// quantities of the owning matrix.
	Set(i, j int, v T) error
}

// Vec is the 1-D read surface shared by Vector and the row/column
// projections. Len is O(1) by contract.
type Vec[T scalar.Scalar[T]] interface {
	// Len returns the number of elements.
	Len() int

	// AtVec retrieves element k. Returns ErrOutOfBounds if k<0 or k>=Len().
	AtVec(k int) (T, error)
}

// MutableVec is the 1-D write surface. For projections, SetVec writes
// through to the parent matrix at the mapped coordinate.
type MutableVec[T scalar.Scalar[T]] interface {
	Vec[T]

	// SetVec assigns v at element k.
	SetVec(k int, v T) error
}
