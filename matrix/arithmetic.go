// SPDX-License-Identifier: MIT

// Package matrix: element-wise and product arithmetic over the Matrix
// interface. Every operation returns a fresh Dense; operands are never
// mutated. Operands may be any Matrix variant (Dense, Transpose, SubMatrix),
// but a *Dense fast path walks the backing slice directly and skips the
// per-element bounds machinery.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lamath/scalar"
)

// combine is the shared element-wise kernel behind Add and Sub.
// op is applied as op(a[i][j], b[i][j]) at every coordinate.
func combine[T scalar.Scalar[T]](method string, a, b Matrix[T], op func(x, y T) T) (*Dense[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out, err := NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Fast path: both operands own contiguous storage.
	da, okA := a.(*Dense[T])
	db, okB := b.(*Dense[T])
	if okA && okB {
		for k := range out.data {
			out.data[k] = op(da.data[k], db.data[k])
		}

		return out, nil
	}

	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			x, _ := a.At(i, j) // in range: shape validated above
			y, _ := b.At(i, j)
			out.data[i*out.c+j] = op(x, y)
		}
	}

	return out, nil
}

// Add returns a + b as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix     — either operand is nil.
//   - ErrBadDimensions — shapes differ.
func Add[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return combine("Add", a, b, func(x, y T) T { return x.Add(y) })
}

// Sub returns a - b as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix     — either operand is nil.
//   - ErrBadDimensions — shapes differ.
func Sub[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	return combine("Sub", a, b, func(x, y T) T { return x.Sub(y) })
}

// Neg returns the additive inverse of a as a fresh Dense.
func Neg[T scalar.Scalar[T]](a Matrix[T]) (*Dense[T], error) {
	return mapElems("Neg", a, func(x T) T { return x.Neg() })
}

// Scale returns k · a as a fresh Dense. The scalar multiplies from the left
// (k.Mul(elem)), which matters for non-commutative scalars like quaternions.
func Scale[T scalar.Scalar[T]](k T, a Matrix[T]) (*Dense[T], error) {
	return mapElems("Scale", a, func(x T) T { return k.Mul(x) })
}

// mapElems applies op to every element of a, producing a fresh Dense.
func mapElems[T scalar.Scalar[T]](method string, a Matrix[T], op func(x T) T) (*Dense[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out, err := Materialize(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for k := range out.data {
		out.data[k] = op(out.data[k])
	}

	return out, nil
}

// Mul returns the matrix product a · b as a fresh Dense. Inner products
// accumulate left-to-right in index order, so the result is well defined
// for non-commutative scalars.
//
// Errors:
//   - ErrNilMatrix     — either operand is nil.
//   - ErrBadDimensions — a.Cols() != b.Rows().
//
// Complexity: O(a.Rows · a.Cols · b.Cols). Schoolbook; no blocking.
func Mul[T scalar.Scalar[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Mul: inner dimensions %d and %d: %w", a.Cols(), b.Rows(), ErrBadDimensions)
	}

	out, err := NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Fast path: owned operands compute each cell as a row·column inner
	// product over the live projections.
	da, okA := a.(*Dense[T])
	db, okB := b.(*Dense[T])
	if okA && okB {
		for i := 0; i < out.r; i++ {
			row := RowView[T]{parent: da, row: i}
			for j := 0; j < out.c; j++ {
				col := ColView[T]{parent: db, col: j}
				d, _ := Dot[T](&row, &col) // shapes proven compatible above
				out.data[i*out.c+j] = d
			}
		}

		return out, nil
	}

	inner := a.Cols()
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			x, _ := a.At(i, 0)
			y, _ := b.At(0, j)
			acc := x.Mul(y) // seed with the first product; no Zero() needed
			for k := 1; k < inner; k++ {
				x, _ = a.At(i, k)
				y, _ = b.At(k, j)
				acc = acc.Add(x.Mul(y))
			}
			out.data[i*out.c+j] = acc
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and scalar-equal
// elements at every coordinate. Nil operands and shape mismatches compare
// unequal rather than erroring.
func Equal[T scalar.Scalar[T]](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			if !x.Equal(y) {
				return false
			}
		}
	}

	return true
}
