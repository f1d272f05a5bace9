// Package matrix: in-place elementary row operations, the building blocks of
// the elimination engine. Each operation is O(cols) and is expressed over the
// write-through row projections, so every element write funnels through
// Dense.Set and the sticky-compute invalidation stays airtight.
package matrix

import "fmt"

// RowSwap exchanges rows r1 and r2 element-wise.
// Stage 1 (Validate): both indices in range.
// Stage 2 (Snapshot): copy row r1 into a temporary — the projections alias
// the same buffer, so overwriting r1 first would corrupt the transfer when
// the swap is routed through them.
// Stage 3 (Execute): r1 ← r2, then r2 ← snapshot.
// Complexity: O(cols).
func (m *Dense[T]) RowSwap(r1, r2 int) error {
	if err := validateRowIndex[T](m, r1); err != nil {
		return fmt.Errorf("Dense.RowSwap(%d,%d): %w", r1, r2, err)
	}
	if err := validateRowIndex[T](m, r2); err != nil {
		return fmt.Errorf("Dense.RowSwap(%d,%d): %w", r1, r2, err)
	}
	if r1 == r2 {
		return nil // nothing to exchange
	}

	v1 := RowView[T]{parent: m, row: r1}
	v2 := RowView[T]{parent: m, row: r2}

	// Snapshot r1 before it is overwritten.
	tmp := make([]T, m.c)
	for j := 0; j < m.c; j++ {
		tmp[j], _ = v1.AtVec(j) // indices proven in range above
	}
	for j := 0; j < m.c; j++ {
		elem, _ := v2.AtVec(j)
		_ = v1.SetVec(j, elem)
	}
	for j := 0; j < m.c; j++ {
		_ = v2.SetVec(j, tmp[j])
	}

	return nil
}

// RowScale multiplies every element of row r by k in place.
// Complexity: O(cols).
func (m *Dense[T]) RowScale(r int, k T) error {
	if err := validateRowIndex[T](m, r); err != nil {
		return fmt.Errorf("Dense.RowScale(%d): %w", r, err)
	}

	v := RowView[T]{parent: m, row: r}
	for j := 0; j < m.c; j++ {
		elem, _ := v.AtVec(j)
		_ = v.SetVec(j, k.Mul(elem))
	}

	return nil
}

// RowAdd adds row r2 to row r1 element-wise (the k==1 case of
// RowAddMultiple).
// Complexity: O(cols).
func (m *Dense[T]) RowAdd(r1, r2 int) error {
	var zero T

	return m.RowAddMultiple(r1, r2, zero.One())
}

// RowAddMultiple performs row[r1] += k * row[r2], reading r2's pre-update
// values. The elimination engine never calls it with r1==r2; the guard below
// keeps external callers from corrupting a row by accumulating into its own
// source.
// Complexity: O(cols).
func (m *Dense[T]) RowAddMultiple(r1, r2 int, k T) error {
	if err := validateRowIndex[T](m, r1); err != nil {
		return fmt.Errorf("Dense.RowAddMultiple(%d,%d): %w", r1, r2, err)
	}
	if err := validateRowIndex[T](m, r2); err != nil {
		return fmt.Errorf("Dense.RowAddMultiple(%d,%d): %w", r1, r2, err)
	}
	if r1 == r2 {
		return fmt.Errorf("Dense.RowAddMultiple(%d,%d): %w", r1, r2, ErrBadDimensions)
	}

	dst := RowView[T]{parent: m, row: r1}
	src := RowView[T]{parent: m, row: r2}
	for j := 0; j < m.c; j++ {
		d, _ := dst.AtVec(j)
		s, _ := src.AtVec(j) // r1 != r2, so src is untouched by our writes
		_ = dst.SetVec(j, d.Add(k.Mul(s)))
	}

	return nil
}
