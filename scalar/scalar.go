// SPDX-License-Identifier: MIT

// Package scalar: the self-referential element contract.
// This file intentionally contains ONLY the Scalar interface; concrete
// wrappers live in dedicated files (real.go, complex.go, quaternion.go)
// per the global conventions.
package scalar

import "math/rand"

// Scalar is the contract a matrix element type must satisfy of itself
// (the type parameter T is the implementing type — a self-referential
// generic constraint).
//
// Behavior highlights:
//   - Pure value semantics: every method returns a fresh value and never
//     mutates the receiver.
//   - Zero/One are callable on the zero value of T, so generic code can
//     obtain both identities without a seed instance.
//   - The Go zero value of T must equal Zero() (documented package invariant).
//
// Complexity notes: all methods are expected O(1).
type Scalar[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T

	// One returns the multiplicative identity of T.
	One() T

	// Add returns receiver + other.
	Add(other T) T

	// Sub returns receiver - other.
	Sub(other T) T

	// Mul returns receiver * other.
	Mul(other T) T

	// Div returns receiver / other. Division by the additive identity is the
	// caller's responsibility to avoid; implementations follow the underlying
	// numeric behavior (IEEE-754 Inf/NaN for the float-backed wrappers).
	Div(other T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Equal reports exact equality with other.
	Equal(other T) bool

	// Sqrt returns a principal square root of the receiver.
	Sqrt() T

	// Uniform draws a value uniformly from [lo, hi) using r.
	// Multi-component types draw each component independently from the
	// corresponding component interval.
	Uniform(r *rand.Rand, lo, hi T) T
}
