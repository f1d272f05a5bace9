// SPDX-License-Identifier: MIT

// Package matrix: bridges to gonum/mat for the float64 specialization.
//
// The generic engine is scalar-agnostic; gonum is not. These adapters apply
// only to scalar.Real matrices and always copy — the two libraries never
// alias each other's storage, so neither side can invalidate the other's
// caches behind its back.
package matrix

import (
	"fmt"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lamath/scalar"
)

// ToGonum copies a real-valued matrix into a freshly-allocated gonum Dense.
//
// Errors:
//   - ErrNilMatrix — m is nil.
func ToGonum(m Matrix[scalar.Real]) (*gmat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j) // in range by construction
			data[i*cols+j] = float64(v)
		}
	}

	return gmat.NewDense(rows, cols, data), nil
}

// FromGonum copies a gonum matrix into a freshly-allocated Dense[scalar.Real].
//
// Errors:
//   - ErrNilMatrix — g is nil.
//   - ErrEmptyShape — g has a zero dimension.
func FromGonum(g gmat.Matrix) (*Dense[scalar.Real], error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}

	rows, cols := g.Dims()
	out, err := NewDense[scalar.Real](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = scalar.Real(g.At(i, j))
		}
	}

	return out, nil
}
