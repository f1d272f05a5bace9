// SPDX-License-Identifier: MIT

// Package matrix: sticky compute — per-matrix memoization of expensive
// derived quantities (diagonal, determinant, inverse).
//
// Invariant: a mask bit is set ONLY if its cached value was computed strictly
// after the most recent mutation of the owning matrix. Every write path —
// Set, SetRow/SetCol, the row operations, and the write-through projections
// (which all funnel into Set) — clears the ENTIRE mask. The invalidation is
// deliberately coarse: it never inspects whether the written cell could
// actually change a memoized quantity, so it can never serve a stale result.
// Refining it requires a correctness proof; until then the baseline stands.
package matrix

import "github.com/katalvlaran/lamath/scalar"

// Sticky-compute mask bits, one per memoized quantity. The values mirror the
// historical layout and are stable.
const (
	stickyDiag uint64 = 1 << 0 // cached major diagonal is valid
	stickyDet  uint64 = 1 << 1 // cached determinant is valid
	stickyInv  uint64 = 1 << 2 // cached inverse is valid
)

// stickyCache is the per-Dense memoization record. It lives inside Dense by
// value; it is never shared between matrices, and Clone deliberately drops it.
type stickyCache[T scalar.Scalar[T]] struct {
	mask uint64    // bitmask of currently valid quantities
	diag []T       // cached major diagonal (stickyDiag)
	det  T         // cached determinant (stickyDet)
	inv  *Dense[T] // cached inverse (stickyInv)
}

// invalidate clears the whole mask and drops cached values so the GC can
// reclaim them. Called on every mutation of the owning matrix.
// Complexity: O(1).
func (s *stickyCache[T]) invalidate() {
	var zero T
	s.mask = 0
	s.diag = nil
	s.det = zero
	s.inv = nil
}

// valid reports whether the given quantity bit is currently set.
func (s *stickyCache[T]) valid(bit uint64) bool {
	return s.mask&bit != 0
}

// Diag returns the major diagonal as a fresh row Vector of length
// min(rows, cols). The scan result is memoized; the returned vector is a
// defensive copy, so callers may mutate it freely without poisoning the cache.
// Complexity: O(min(r,c)) on a cache hit or miss alike (the copy dominates).
func (m *Dense[T]) Diag() *Vector[T] {
	if !m.cache.valid(stickyDiag) {
		n := m.r
		if m.c < n {
			n = m.c
		}
		diag := make([]T, n)
		for i := 0; i < n; i++ {
			diag[i] = m.data[i*m.c+i]
		}
		m.cache.diag = diag
		m.cache.mask |= stickyDiag
	}

	return rowVectorOf(append([]T(nil), m.cache.diag...))
}

// Trace returns the sum of the diagonal elements.
// Complexity: O(min(r,c)).
func (m *Dense[T]) Trace() T {
	return m.Diag().Sum()
}
