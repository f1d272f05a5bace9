// SPDX-License-Identifier: MIT

// Package matrix: construction beyond plain allocation — nested-slice and
// block layouts, convenience fills, and view materialization.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// NewDenseFromRows builds a Dense from a rectangular nested slice.
// Stage 1 (Validate): at least one row, at least one column, all rows equal length.
// Stage 2 (Execute): copy values row by row.
//
// Errors:
//   - ErrEmptyShape     — no rows, or the first row is empty.
//   - ErrBadDimensions  — ragged input (rows of differing lengths).
//
// Complexity: O(r*c).
func NewDenseFromRows[T scalar.Scalar[T]](rows [][]T) (*Dense[T], error) {
	// An empty outer slice has no shape at all.
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrEmptyShape)
	}
	cols := len(rows[0])

	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}
	for i, row := range rows {
		// Every row must match the width of the first one.
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrBadDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewDenseFromBlocks assembles a Dense from a grid of sub-matrices.
// Within each block row all blocks must agree on row count; every block row
// must produce the same total column count. Layout example:
//
//	[ A B ]      rows(A)==rows(B), rows(C)==rows(D),
//	[ C D ]      cols(A)+cols(B) == cols(C)+cols(D)
//
// Stage 1 (Validate): non-empty grid, no nil blocks, consistent block shapes.
// Stage 2 (Prepare): allocate the joined matrix.
// Stage 3 (Execute): copy each block at its (rowStart, colStart) offset.
//
// Errors:
//   - ErrEmptyShape     — empty grid or empty block row.
//   - ErrNilMatrix      — a nil block.
//   - ErrBadDimensions  — disagreeing row/column counts.
//
// Complexity: O(total cells).
func NewDenseFromBlocks[T scalar.Scalar[T]](blocks [][]*Dense[T]) (*Dense[T], error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromBlocks: %w", ErrEmptyShape)
	}

	// Total columns are fixed by the first block row.
	var totalRows, totalCols int
	for _, b := range blocks[0] {
		if b == nil {
			return nil, fmt.Errorf("NewDenseFromBlocks: %w", ErrNilMatrix)
		}
		totalCols += b.c
	}

	// Validate every block row before allocating anything.
	for i, blockRow := range blocks {
		if len(blockRow) == 0 {
			return nil, fmt.Errorf("NewDenseFromBlocks: block row %d: %w", i, ErrEmptyShape)
		}
		if blockRow[0] == nil {
			return nil, fmt.Errorf("NewDenseFromBlocks: block row %d: %w", i, ErrNilMatrix)
		}
		rowHeight := blockRow[0].r
		rowCols := 0
		for j, b := range blockRow {
			if b == nil {
				return nil, fmt.Errorf("NewDenseFromBlocks: block (%d,%d): %w", i, j, ErrNilMatrix)
			}
			// All blocks in a block row share one height.
			if b.r != rowHeight {
				return nil, fmt.Errorf("NewDenseFromBlocks: block (%d,%d): %w", i, j, ErrBadDimensions)
			}
			rowCols += b.c
		}
		// Every block row spans the same total width.
		if rowCols != totalCols {
			return nil, fmt.Errorf("NewDenseFromBlocks: block row %d: %w", i, ErrBadDimensions)
		}
		totalRows += rowHeight
	}

	m, err := NewDense[T](totalRows, totalCols)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromBlocks: %w", err)
	}

	// Copy blocks into place; offsets advance per block (columns) and per
	// block row (rows).
	rowStart := 0
	for _, blockRow := range blocks {
		colStart := 0
		for _, b := range blockRow {
			for i := 0; i < b.r; i++ {
				copy(
					m.data[(rowStart+i)*totalCols+colStart:(rowStart+i)*totalCols+colStart+b.c],
					b.data[i*b.c:(i+1)*b.c],
				)
			}
			colStart += b.c
		}
		rowStart += blockRow[0].r
	}

	return m, nil
}

// Materialize copies the logical contents of any Matrix (owned or view) into
// a freshly owned Dense. This is the sanctioned way to extend a view's
// lifetime independently of its parent.
// Complexity: O(r*c).
func Materialize[T scalar.Scalar[T]](src Matrix[T]) (*Dense[T], error) {
	if err := validateNotNil(src); err != nil {
		return nil, fmt.Errorf("Materialize: %w", err)
	}

	m, err := NewDense[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, fmt.Errorf("Materialize: %w", err)
	}
	var v T
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("Materialize: %w", err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Zeros creates an r×c matrix of additive identities.
func Zeros[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// Ones creates an r×c matrix of multiplicative identities.
func Ones[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDense(rows, cols, WithFill[T](FillOnes))
}

// Eye creates an r×c matrix with ones on the diagonal of the largest
// top-left square sub-matrix and zeros elsewhere.
func Eye[T scalar.Scalar[T]](rows, cols int) (*Dense[T], error) {
	return NewDense(rows, cols, WithFill[T](FillEye))
}

// Rand creates an r×c matrix of independent uniform draws from [low, high),
// deterministic for a given seed (seed==0 ⇒ DefaultRandSeed).
func Rand[T scalar.Scalar[T]](rows, cols int, low, high T, seed int64) (*Dense[T], error) {
	return NewDense(rows, cols, WithRandRange(low, high), WithSeed[T](seed))
}
