// Package matrix: Dense is the owning, row-major storage at the heart of the
// engine. It is the ONLY type that owns a buffer; every view projects into a
// Dense (directly or through another view) and borrows its storage.
package matrix

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lamath/scalar"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds exactly r*c elements in row-major
// order — the buffer length invariant is established at construction and
// never broken (the engine never resizes in place).
type Dense[T scalar.Scalar[T]] struct {
	r, c  int            // number of rows and columns, both > 0
	data  []T            // flat backing storage, length == r*c
	cache stickyCache[T] // memoized derived quantities, see cache.go
}

// NewDense creates an r×c Dense matrix.
// Stage 1 (Validate): negative extents ⇒ ErrBadDimensions, zero ⇒ ErrEmptyShape.
// Stage 2 (Prepare): allocate the flat backing slice (zero-valued == zero-filled).
// Stage 3 (Execute): apply the configured fill mode.
// Stage 4 (Finalize): the sticky-compute mask starts at "nothing valid".
// Complexity: O(r*c) time and memory.
func NewDense[T scalar.Scalar[T]](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	// Validate the requested shape.
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	// Allocate flat storage; a fresh slice is zero-valued, and the scalar
	// contract makes the zero value the additive identity.
	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}

	// Apply the fill policy.
	if err := m.applyFill(gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return m, nil
}

// applyFill populates the buffer according to the resolved options.
// Unknown selectors surface as ErrUnknownFill.
// Complexity: O(r*c).
func (m *Dense[T]) applyFill(o Options[T]) error {
	var zero T
	switch o.fill {
	case FillZeros:
		// Fresh storage is already the additive identity everywhere.
	case FillOnes:
		m.fill(zero.One())
	case FillValue:
		m.fill(o.fillValue)
	case FillEye:
		m.eye()
	case FillRand:
		m.randFill(rand.New(rand.NewSource(o.seed)), o.randLow, o.randHigh)
	default:
		return fmt.Errorf("NewDense: fill mode %#x: %w", int(o.fill), ErrUnknownFill)
	}

	return nil
}

// fill writes elem into every cell.
func (m *Dense[T]) fill(elem T) {
	for idx := range m.data {
		m.data[idx] = elem
	}
}

// eye zero-fills, then writes ones on the diagonal of the largest top-left
// square sub-matrix.
func (m *Dense[T]) eye() {
	var zero T
	one := zero.One()
	m.fill(zero.Zero())
	for i := 0; i < m.r && i < m.c; i++ {
		m.data[i*m.c+i] = one
	}
}

// randFill draws every cell independently from [low, high) using rng.
func (m *Dense[T]) randFill(rng *rand.Rand, low, high T) {
	var zero T
	for idx := range m.data {
		m.data[idx] = zero.Uniform(rng, low, high)
	}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfBounds
// with the calling method's name in the context.
// Bounds are STRICT on both ends: 0 ≤ row < r and 0 ≤ col < c.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the data slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) and unconditionally invalidates the
// whole sticky-compute mask — coarse, always-safe invalidation regardless of
// whether the written cell could affect any memoized quantity.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	// Any write clears everything; see cache.go for the invariant.
	m.cache.invalidate()

	return nil
}

// Clone returns a deep copy of the Dense matrix. The memoization cache is NOT
// carried over: the copy starts with "nothing valid".
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// T returns a read-only zero-copy transpose view of the matrix.
// The receiver must outlive the view.
// Complexity: O(1).
func (m *Dense[T]) T() *Transpose[T] {
	return &Transpose[T]{parent: m}
}

// Range returns a read-only zero-copy window [r1..r2]×[c1..c2] (inclusive).
// Inverted ranges fail with ErrBadDimensions; windows escaping the receiver
// fail with ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) Range(r1, r2, c1, c2 int) (*SubMatrix[T], error) {
	return newSubMatrix[T](m, r1, r2, c1, c2)
}

// Index returns the requested row wrapped in a one-row SubMatrix window,
// mirroring classic bracket indexing. Chain with SubMatrix.Index to degrade
// toward a single cell.
// Complexity: O(1).
func (m *Dense[T]) Index(row int) (*SubMatrix[T], error) {
	return newSubMatrix[T](m, row, row, 0, m.c-1)
}

// Row returns a live write-through projection of row i.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) (*RowView[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfBounds)
	}

	return &RowView[T]{parent: m, row: i}, nil
}

// Col returns a live write-through projection of column j.
// Complexity: O(1).
func (m *Dense[T]) Col(j int) (*ColView[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfBounds)
	}

	return &ColView[T]{parent: m, col: j}, nil
}

// SetRow overwrites row i with the contents of v.
// The vector length must equal Cols (ErrBadDimensions otherwise).
// Complexity: O(cols).
func (m *Dense[T]) SetRow(i int, v Vec[T]) error {
	if v == nil {
		return fmt.Errorf("Dense.SetRow: %w", ErrNilMatrix)
	}
	if v.Len() != m.c {
		return fmt.Errorf("Dense.SetRow: %w", ErrBadDimensions)
	}
	for j := 0; j < m.c; j++ {
		elem, err := v.AtVec(j)
		if err != nil {
			return err
		}
		if err = m.Set(i, j, elem); err != nil {
			return err
		}
	}

	return nil
}

// SetCol overwrites column j with the contents of v.
// The vector length must equal Rows (ErrBadDimensions otherwise).
// Complexity: O(rows).
func (m *Dense[T]) SetCol(j int, v Vec[T]) error {
	if v == nil {
		return fmt.Errorf("Dense.SetCol: %w", ErrNilMatrix)
	}
	if v.Len() != m.r {
		return fmt.Errorf("Dense.SetCol: %w", ErrBadDimensions)
	}
	for i := 0; i < m.r; i++ {
		elem, err := v.AtVec(i)
		if err != nil {
			return err
		}
		if err = m.Set(i, j, elem); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer: values space-separated within a row,
// newline between rows (no trailing newline).
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		if i > 0 {
			sb.WriteByte('\n') // newline between rows
		}
		for j := 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteByte(' ') // space between values
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
	}

	return sb.String()
}
