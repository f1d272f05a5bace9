// SPDX-License-Identifier: MIT

// Package matrix: read-only zero-copy views.
//
// Transpose and SubMatrix hold a non-owning reference to a parent plus a
// coordinate-mapping rule (identity-with-swap, offset-and-clip). They are
// deliberately READ-ONLY: allowing writes through a transposed or offset
// window while the elimination engine walks the parent invites aliasing bugs
// that are miserable to diagnose. To mutate, Materialize first.
//
// Lifetime: the parent must outlive the view. Views are meant for a single
// logical operation; the engine does not guard against use after the parent
// is gone (it never resizes in place, so that is the only hazard).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// Transpose is a read-only view with shape (parent.Cols, parent.Rows) and
// At(r,c) == parent.At(c,r). Construction is O(1); no cell is copied.
type Transpose[T scalar.Scalar[T]] struct {
	parent Matrix[T] // non-owning back-reference
}

// TransposeOf wraps any Matrix (owned or view) in a transpose view.
func TransposeOf[T scalar.Scalar[T]](m Matrix[T]) (*Transpose[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, fmt.Errorf("TransposeOf: %w", err)
	}

	return &Transpose[T]{parent: m}, nil
}

// Rows returns the parent's column count.
// Complexity: O(1).
func (t *Transpose[T]) Rows() int { return t.parent.Cols() }

// Cols returns the parent's row count.
// Complexity: O(1).
func (t *Transpose[T]) Cols() int { return t.parent.Rows() }

// At retrieves the element at (row, col) of the transposed shape by reading
// the parent at the swapped coordinates. Bounds are checked by the parent
// (swapping maps the view's valid rectangle exactly onto the parent's).
// Complexity: O(1).
func (t *Transpose[T]) At(row, col int) (T, error) {
	return t.parent.At(col, row)
}

// Materialize copies all cells with swapped coordinates into a fresh owned
// Dense, detaching the result from the parent's lifetime.
// Complexity: O(r*c).
func (t *Transpose[T]) Materialize() (*Dense[T], error) {
	return Materialize[T](t)
}

// SubMatrix is a read-only window [r1..r2]×[c1..c2] (inclusive) over a
// parent. Shape is (r2-r1+1, c2-c1+1); At(r,c) == parent.At(r+r1, c+c1),
// bounds-checked against the VIEW's shape first so indexing can never escape
// the declared window into the parent.
type SubMatrix[T scalar.Scalar[T]] struct {
	parent Matrix[T] // non-owning back-reference
	r1, c1 int       // window origin within the parent
	r, c   int       // window shape
}

// newSubMatrix validates the window and builds the view.
// Inverted ranges (r2<r1 or c2<c1) are ErrBadDimensions; windows that do not
// fit inside the parent are ErrOutOfBounds.
// Complexity: O(1).
func newSubMatrix[T scalar.Scalar[T]](parent Matrix[T], r1, r2, c1, c2 int) (*SubMatrix[T], error) {
	if err := validateNotNil(parent); err != nil {
		return nil, fmt.Errorf("Range: %w", err)
	}
	// An inverted range has no shape.
	if r2 < r1 || c2 < c1 {
		return nil, fmt.Errorf("Range(%d,%d,%d,%d): %w", r1, r2, c1, c2, ErrBadDimensions)
	}
	// The whole window must sit inside the parent.
	if r1 < 0 || r2 >= parent.Rows() || c1 < 0 || c2 >= parent.Cols() {
		return nil, fmt.Errorf("Range(%d,%d,%d,%d): %w", r1, r2, c1, c2, ErrOutOfBounds)
	}

	return &SubMatrix[T]{parent: parent, r1: r1, c1: c1, r: r2 - r1 + 1, c: c2 - c1 + 1}, nil
}

// Rows returns the window height.
// Complexity: O(1).
func (s *SubMatrix[T]) Rows() int { return s.r }

// Cols returns the window width.
// Complexity: O(1).
func (s *SubMatrix[T]) Cols() int { return s.c }

// At retrieves the element at (row, col) of the window.
// Stage 1 (Validate): strict bounds against the view's OWN shape — this is
// what prevents escaping the declared window into the parent.
// Stage 2 (Execute): offset and read through.
// Complexity: O(1).
func (s *SubMatrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		var zero T

		return zero, fmt.Errorf("SubMatrix.At(%d,%d): %w", row, col, ErrOutOfBounds)
	}

	return s.parent.At(row+s.r1, col+s.c1)
}

// Range returns a window into this window; offsets compose, so the result
// still addresses the original ancestor's storage with no copying.
// Complexity: O(1).
func (s *SubMatrix[T]) Range(r1, r2, c1, c2 int) (*SubMatrix[T], error) {
	return newSubMatrix[T](s, r1, r2, c1, c2)
}

// Index degrades the window toward element extraction, mirroring classic
// bracket indexing: a one-row window yields the 1×1 window of cell k; any
// other window yields the one-row window of row k. Chaining Index twice on a
// general window therefore isolates a single cell.
// Complexity: O(1).
func (s *SubMatrix[T]) Index(k int) (*SubMatrix[T], error) {
	if s.r == 1 {
		return newSubMatrix[T](s, 0, 0, k, k)
	}

	return newSubMatrix[T](s, k, k, 0, s.c-1)
}

// Item returns the single element of a 1×1 window; any larger shape is
// ErrBadDimensions. The natural terminus of an Index chain.
// Complexity: O(1).
func (s *SubMatrix[T]) Item() (T, error) {
	if s.r != 1 || s.c != 1 {
		var zero T

		return zero, fmt.Errorf("SubMatrix.Item: %dx%d window: %w", s.r, s.c, ErrBadDimensions)
	}

	return s.At(0, 0)
}

// Materialize copies the window into a fresh owned Dense.
// Complexity: O(r*c).
func (s *SubMatrix[T]) Materialize() (*Dense[T], error) {
	return Materialize[T](s)
}
