// Package lamath is an in-memory playground for dense linear algebra —
// contiguous row-major matrices, zero-copy views, Gauss–Jordan elimination
// and memoized derived quantities, generic over the element type.
//
// 🚀 What is lamath?
//
//	A modern, deterministic, dependency-light library that brings together:
//		• Dense storage: contiguous row-major buffers, strict bounds checks
//		• Views: transpose, sub-matrix ranges, row/column projections
//		• Row operations: swap, scale, add-multiple — the elimination toolkit
//		• Elimination: one shared pivoting loop behind RREF, Det and Inv
//		• Sticky compute: per-matrix memoization of diag/det/inverse
//		• Scalars: Real, Complex and Quaternion element types out of the box
//
// ✨ Why choose lamath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Deterministic – fixed pivot policy, seeded random fills, no globals
//   - Extensible – any type satisfying scalar.Scalar drops straight in
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, views, row operations, elimination & caching
//	scalar/ — the element contract plus Real, Complex, Quaternion wrappers
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]scalar.Real{{1, 2}, {3, 4}})
//	d, _ := a.Det()      // -2
//	inv, _ := a.Inv()    // [[-2, 1], [1.5, -0.5]]
//
// See each subpackage's doc.go for details and examples.
package lamath
