// Package matrix implements the dense linear-algebra engine of lamath.
//
// The matrix package provides:
//
//   - Dense[T] — exclusive, contiguous, row-major storage with strict
//     bounds-checked At/Set and O(1) shape queries.
//   - Vector[T] — a Dense specialization with one dimension pinned to 1 and
//     O(1) length, plus Sum/Prod/Dot reductions.
//   - Zero-copy views: Transpose and SubMatrix (read-only windows), RowView
//     and ColView (write-through 1-D projections into a parent).
//   - In-place row operations (swap, scale, add-multiple) and a single shared
//     Gauss–Jordan pivoting loop behind RREF, RREFWith, Det and Inv.
//   - Sticky compute: per-matrix memoization of diagonal, determinant and
//     inverse, invalidated wholesale by any write.
//
// Element types are generic: anything satisfying scalar.Scalar of itself
// (Real, Complex and Quaternion ship in lamath/scalar). Pivoting scans for
// the first nonzero entry downward — deterministic, not magnitude-based —
// so results are bit-reproducible for a given input.
//
// Matrices are single-owner and single-threaded by design: no two Dense
// values share a mutable buffer, views borrow rather than own, and nothing
// in this package blocks, retries or touches global state.
package matrix
