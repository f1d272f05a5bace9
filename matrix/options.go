// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction-time fills and
// the deterministic numeric policy. This file defines:
//   - FillMode selector constants (stable numeric values),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - FillMode values are part of the public contract (they mirror the
//     historical selector codes) and must never be renumbered.
//   - An unrecognized FillMode is a USER error, not a programmer error: the
//     constructor returns ErrUnknownFill instead of panicking.
package matrix

import "github.com/katalvlaran/lamath/scalar"

// FillMode selects how a freshly allocated matrix or vector is populated.
type FillMode int

// Fill selector constants. The numeric values are stable public contract.
const (
	// FillZeros fills every cell with the additive identity.
	FillZeros FillMode = 0x0

	// FillOnes fills every cell with the multiplicative identity.
	FillOnes FillMode = 0x1

	// FillValue fills every cell with the value given via WithFillValue.
	FillValue FillMode = 0x2

	// FillEye zero-fills, then writes ones on the diagonal of the largest
	// top-left square sub-matrix (works for rectangular shapes).
	FillEye FillMode = 0x3

	// FillRand fills every cell with an independent uniform draw from
	// [low, high); bounds default to [Zero, One) unless WithRandRange is given.
	FillRand FillMode = 0x4
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultFill is the fill applied when no option says otherwise. A fresh
	// buffer is already zero-valued, and the scalar contract guarantees the
	// zero value IS the additive identity, so this costs nothing.
	DefaultFill = FillZeros

	// DefaultRandSeed is the fixed seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	DefaultRandSeed int64 = 1
)

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// last-writer-wins semantics.
type Option[T scalar.Scalar[T]] func(*Options[T])

// Options stores the effective construction configuration after applying
// Option setters. It is intentionally unexported-field-only to prevent
// external mutation; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options[T scalar.Scalar[T]] struct {
	fill      FillMode // selected fill mode
	fillValue T        // value for FillValue
	randLow   T        // lower uniform bound for FillRand
	randHigh  T        // upper uniform bound for FillRand
	randRange bool     // true when WithRandRange supplied explicit bounds
	seed      int64    // RNG seed; 0 ⇒ DefaultRandSeed
}

// WithFill selects a fill mode verbatim.
//
// Behavior highlights:
//   - Validation is deferred to the constructor: an unknown selector surfaces
//     as ErrUnknownFill there, never as a panic here.
//
// Complexity: O(1).
func WithFill[T scalar.Scalar[T]](mode FillMode) Option[T] {
	return func(o *Options[T]) { o.fill = mode }
}

// WithFillValue selects FillValue with the given element.
//
// Behavior highlights:
//   - Implies WithFill(FillValue); a later WithFill overrides the mode but
//     keeps the stored value.
//
// Complexity: O(1).
func WithFillValue[T scalar.Scalar[T]](v T) Option[T] {
	return func(o *Options[T]) {
		o.fill = FillValue
		o.fillValue = v
	}
}

// WithRandRange selects FillRand drawing uniformly from [low, high).
//
// Behavior highlights:
//   - Implies WithFill(FillRand).
//   - Bound ordering is the element type's concern (multi-component types
//     draw per component); the engine passes bounds through verbatim.
//
// Complexity: O(1).
func WithRandRange[T scalar.Scalar[T]](low, high T) Option[T] {
	return func(o *Options[T]) {
		o.fill = FillRand
		o.randLow = low
		o.randHigh = high
		o.randRange = true
	}
}

// WithSeed fixes the RNG seed for FillRand.
// Policy: seed==0 ⇒ DefaultRandSeed; otherwise the seed is used verbatim.
// Randomness is never time-based — same seed, same matrix, every run.
//
// Complexity: O(1).
func WithSeed[T scalar.Scalar[T]](seed int64) Option[T] {
	return func(o *Options[T]) { o.seed = seed }
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants (default uniform bounds [Zero, One)).
// This is the canonical internal entry for all constructors.
//
// Determinism: stable for a given sequence of setters.
// Complexity: O(k) for k options.
func gatherOptions[T scalar.Scalar[T]](user ...Option[T]) Options[T] {
	var zero T
	o := Options[T]{
		fill: DefaultFill,
		seed: DefaultRandSeed,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	// Default uniform bounds are [Zero, One) unless explicitly overridden.
	if !o.randRange {
		o.randLow = zero.Zero()
		o.randHigh = zero.One()
	}
	if o.seed == 0 {
		o.seed = DefaultRandSeed
	}

	return o
}
