// Package matrix: Vector is a Dense specialization with one dimension pinned
// to 1 (row vector: rows==1; column vector: cols==1). It tracks its element
// count separately so length queries are O(1) without consulting the shape.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// Vector is a one-row or one-column matrix with O(1) length.
// Invariant: n == Rows()*Cols() and min(Rows(), Cols()) == 1.
type Vector[T scalar.Scalar[T]] struct {
	Dense[T]     // owning storage, one dimension pinned to 1
	n        int // element count, kept for O(1) Len
}

// rowVectorOf wraps an existing slice as a 1×n row vector WITHOUT copying.
// Internal: callers must pass a non-empty slice they own.
func rowVectorOf[T scalar.Scalar[T]](data []T) *Vector[T] {
	return &Vector[T]{Dense: Dense[T]{r: 1, c: len(data), data: data}, n: len(data)}
}

// NewRowVector creates a 1×n row vector.
// Errors mirror NewDense: n<0 ⇒ ErrBadDimensions, n==0 ⇒ ErrEmptyShape.
// Complexity: O(n).
func NewRowVector[T scalar.Scalar[T]](n int, opts ...Option[T]) (*Vector[T], error) {
	m, err := NewDense(1, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewRowVector: %w", err)
	}

	return &Vector[T]{Dense: *m, n: n}, nil
}

// NewColVector creates an n×1 column vector.
// Errors mirror NewDense: n<0 ⇒ ErrBadDimensions, n==0 ⇒ ErrEmptyShape.
// Complexity: O(n).
func NewColVector[T scalar.Scalar[T]](n int, opts ...Option[T]) (*Vector[T], error) {
	m, err := NewDense(n, 1, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewColVector: %w", err)
	}

	return &Vector[T]{Dense: *m, n: n}, nil
}

// RowVectorOf creates a 1×n row vector from the given values.
// Complexity: O(n).
func RowVectorOf[T scalar.Scalar[T]](values ...T) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("RowVectorOf: %w", ErrEmptyShape)
	}

	return rowVectorOf(append([]T(nil), values...)), nil
}

// ColVectorOf creates an n×1 column vector from the given values.
// Complexity: O(n).
func ColVectorOf[T scalar.Scalar[T]](values ...T) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("ColVectorOf: %w", ErrEmptyShape)
	}
	data := append([]T(nil), values...)

	return &Vector[T]{Dense: Dense[T]{r: len(data), c: 1, data: data}, n: len(data)}, nil
}

// Len returns the number of elements.
// Complexity: O(1).
func (v *Vector[T]) Len() int {
	return v.n
}

// IsRow reports whether the vector is a row vector (rows == 1).
func (v *Vector[T]) IsRow() bool {
	return v.r == 1
}

// AtVec retrieves element k regardless of orientation.
// Returns ErrOutOfBounds if k<0 or k>=Len().
// Complexity: O(1).
func (v *Vector[T]) AtVec(k int) (T, error) {
	if k < 0 || k >= v.n {
		var zero T

		return zero, fmt.Errorf("Vector.AtVec(%d): %w", k, ErrOutOfBounds)
	}

	return v.data[k], nil
}

// SetVec assigns element k regardless of orientation and invalidates the
// sticky-compute cache like any other write.
// Complexity: O(1).
func (v *Vector[T]) SetVec(k int, val T) error {
	if k < 0 || k >= v.n {
		return fmt.Errorf("Vector.SetVec(%d): %w", k, ErrOutOfBounds)
	}
	v.data[k] = val
	v.cache.invalidate()

	return nil
}

// Sum returns the sum of all elements (additive identity for no fold steps
// cannot occur: vectors are non-empty by construction).
// Complexity: O(n).
func (v *Vector[T]) Sum() T {
	acc := v.data[0]
	for k := 1; k < v.n; k++ {
		acc = acc.Add(v.data[k])
	}

	return acc
}

// Prod returns the product of all elements.
// Complexity: O(n).
func (v *Vector[T]) Prod() T {
	acc := v.data[0]
	for k := 1; k < v.n; k++ {
		acc = acc.Mul(v.data[k])
	}

	return acc
}

// Dot computes the inner product of two 1-D sequences (owned vectors or live
// projections alike; orientation is irrelevant).
//
// Errors:
//   - ErrNilMatrix     — either argument is nil.
//   - ErrEmptyShape    — either argument has no elements.
//   - ErrBadDimensions — lengths differ.
//
// Complexity: O(n).
func Dot[T scalar.Scalar[T]](a, b Vec[T]) (T, error) {
	var zero T
	if a == nil || b == nil {
		return zero, fmt.Errorf("Dot: %w", ErrNilMatrix)
	}
	if a.Len() == 0 || b.Len() == 0 {
		return zero, fmt.Errorf("Dot: %w", ErrEmptyShape)
	}
	if a.Len() != b.Len() {
		return zero, fmt.Errorf("Dot: %w", ErrBadDimensions)
	}

	// Seed the accumulator with the first product, then fold the rest.
	av, err := a.AtVec(0)
	if err != nil {
		return zero, err
	}
	bv, err := b.AtVec(0)
	if err != nil {
		return zero, err
	}
	acc := av.Mul(bv)
	for k := 1; k < a.Len(); k++ {
		if av, err = a.AtVec(k); err != nil {
			return zero, err
		}
		if bv, err = b.AtVec(k); err != nil {
			return zero, err
		}
		acc = acc.Add(av.Mul(bv))
	}

	return acc, nil
}
