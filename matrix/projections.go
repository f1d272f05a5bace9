// SPDX-License-Identifier: MIT

// Package matrix: write-through 1-D projections.
//
// RowView and ColView are live windows over one row/column of a parent Dense.
// Unlike the read-only views they WRITE THROUGH: SetVec stores into the
// parent's buffer at the mapped coordinate (and therefore invalidates the
// parent's sticky-compute cache, because every write funnels into Dense.Set).
// The elimination engine is built on them: row operations become plain vector
// operations that mutate the parent in place.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// RowView is a live 1-D projection of one row of a parent Dense.
type RowView[T scalar.Scalar[T]] struct {
	parent *Dense[T] // non-owning back-reference
	row    int       // fixed row index within the parent
}

// Len returns the parent's column count.
// Complexity: O(1).
func (v *RowView[T]) Len() int { return v.parent.c }

// AtVec reads element k through to the parent at (row, k).
// Complexity: O(1).
func (v *RowView[T]) AtVec(k int) (T, error) {
	return v.parent.At(v.row, k)
}

// SetVec writes element k through to the parent at (row, k), invalidating
// the parent's memoized quantities like any other write.
// Complexity: O(1).
func (v *RowView[T]) SetVec(k int, val T) error {
	return v.parent.Set(v.row, k, val)
}

// Materialize copies the projected row into an owned 1×n row Vector.
// Complexity: O(n).
func (v *RowView[T]) Materialize() (*Vector[T], error) {
	out := make([]T, v.parent.c)
	copy(out, v.parent.data[v.row*v.parent.c:(v.row+1)*v.parent.c])

	return rowVectorOf(out), nil
}

// ColView is a live 1-D projection of one column of a parent Dense.
type ColView[T scalar.Scalar[T]] struct {
	parent *Dense[T] // non-owning back-reference
	col    int       // fixed column index within the parent
}

// Len returns the parent's row count.
// Complexity: O(1).
func (v *ColView[T]) Len() int { return v.parent.r }

// AtVec reads element k through to the parent at (k, col).
// Complexity: O(1).
func (v *ColView[T]) AtVec(k int) (T, error) {
	return v.parent.At(k, v.col)
}

// SetVec writes element k through to the parent at (k, col).
// Complexity: O(1).
func (v *ColView[T]) SetVec(k int, val T) error {
	return v.parent.Set(k, v.col, val)
}

// Materialize copies the projected column into an owned n×1 column Vector.
// Complexity: O(n).
func (v *ColView[T]) Materialize() (*Vector[T], error) {
	out := make([]T, v.parent.r)
	for i := range out {
		out[i] = v.parent.data[i*v.parent.c+v.col]
	}

	return ColVectorOf(out...)
}

// compile-time conformance checks: the closed variant set stays closed.
var (
	_ fmt.Stringer = (*Dense[scalar.Real])(nil)

	_ Mutable[scalar.Real] = (*Dense[scalar.Real])(nil)
	_ Mutable[scalar.Real] = (*Vector[scalar.Real])(nil)
	_ Matrix[scalar.Real]  = (*Transpose[scalar.Real])(nil)
	_ Matrix[scalar.Real]  = (*SubMatrix[scalar.Real])(nil)

	_ MutableVec[scalar.Real] = (*Vector[scalar.Real])(nil)
	_ MutableVec[scalar.Real] = (*RowView[scalar.Real])(nil)
	_ MutableVec[scalar.Real] = (*ColView[scalar.Real])(nil)
)
